package ident

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilAndUnset(t *testing.T) {
	assert.True(t, Nil().IsNil())
	assert.False(t, Nil().IsUnset())

	u := Unset()
	assert.True(t, u.IsUnset())
	assert.False(t, u.IsNil())
	assert.Equal(t, "UNSET_UUID_____\x00", string(u[:]))

	var zero ID
	assert.True(t, zero.IsNil())
	assert.Equal(t, Nil(), zero)
}

func TestID_Compare(t *testing.T) {
	var testCases = []struct {
		description string
		a           ID
		b           ID
		expect      int
	}{
		{description: "equal", a: ID{1, 2, 3}, b: ID{1, 2, 3}, expect: 0},
		{description: "first byte decides", a: ID{1, 0xff}, b: ID{2}, expect: -1},
		{description: "last byte decides", a: ID{15: 2}, b: ID{15: 1}, expect: 1},
		{description: "nil before unset", a: Nil(), b: Unset(), expect: -1},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.a.Compare(testCase.b), testCase.description)
		assert.Equal(t, testCase.expect == 0, testCase.a.Equal(testCase.b), testCase.description)
		assert.Equal(t, testCase.expect < 0, testCase.a.Less(testCase.b), testCase.description)
		assert.Equal(t, -testCase.expect, testCase.b.Compare(testCase.a), testCase.description)
	}
}

func TestID_SortOrder(t *testing.T) {
	ids := []ID{{3}, {1, 1}, {1}, {0, 0xff}, Nil()}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	assert.Equal(t, []ID{Nil(), {0, 0xff}, {1}, {1, 1}, {3}}, ids)
}

func TestFromBytes(t *testing.T) {
	id := ID{0: 0xde, 15: 0xad}
	actual, err := FromBytes(id.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, id, actual)

	b := id.Bytes()
	b[0] = 0
	assert.Equal(t, byte(0xde), id[0], "Bytes returns a copy")

	_, err = FromBytes(make([]byte, 15))
	assert.Error(t, err)
	_, err = FromBytes(make([]byte, 17))
	assert.Error(t, err)
}
