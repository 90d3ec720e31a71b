// Package tracing bridges identifiers with OpenTelemetry. Transactions and
// other entities addressed by an ident.ID can use that identifier as their
// trace ID, so traces and entities correlate without a lookup table. Only the
// OpenTelemetry API is used; exporters and providers are left to the host
// application.
package tracing
