// Package mix provides the one-way functions used to decorrelate sequential
// counter blocks before they are handed out as identifiers. Only the
// distribution of the output matters here; none of the digests is relied on
// for a security property.
package mix
