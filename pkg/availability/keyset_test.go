package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeySet_WithWithoutDoNotMutate(t *testing.T) {
	k1 := Key{ModelID: "m1", ClientID: "c1"}
	k2 := Key{ModelID: "m1", ClientID: "c2"}

	var empty KeySet
	one := empty.With(k1)
	two := one.With(k2)

	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())

	back := two.Without(k1)
	assert.True(t, two.Has(k1), "Without must not modify the receiver")
	assert.False(t, back.Has(k1))
	assert.True(t, back.Has(k2))
}

func TestKeySet_AddPresentIsNoop(t *testing.T) {
	k := Key{ModelID: "m1", ClientID: "c1"}
	s := NewKeySet(k)
	again := s.With(k)

	assert.Equal(t, 1, again.Len())
	assert.Equal(t, s.Keys(), again.Keys())

	// Removing an absent key leaves the set as it was.
	assert.Equal(t, 1, s.Without(Key{ModelID: "x"}).Len())
}

func TestKeySet_KeysOrdered(t *testing.T) {
	s := NewKeySet(
		Key{ModelID: "b", ClientID: "1"},
		Key{ModelID: "a", ClientID: "2"},
		Key{ModelID: "a", ClientID: "1"},
	)
	assert.Equal(t, []Key{
		{ModelID: "a", ClientID: "1"},
		{ModelID: "a", ClientID: "2"},
		{ModelID: "b", ClientID: "1"},
	}, s.Keys())
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "m1:c1", Key{ModelID: "m1", ClientID: "c1"}.String())
}
