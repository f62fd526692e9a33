package availability

import "sort"

// KeySet is an immutable set of composite keys. With and Without return a
// new set and leave the receiver untouched, so a set handed out in a
// snapshot never changes underneath its reader.
type KeySet struct {
	m map[Key]struct{}
}

// NewKeySet builds a set from keys.
func NewKeySet(keys ...Key) KeySet {
	s := KeySet{}
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	_, ok := s.m[k]
	return ok
}

// Len returns the number of keys.
func (s KeySet) Len() int {
	return len(s.m)
}

// With returns a set containing k. Adding a present key returns s itself.
func (s KeySet) With(k Key) KeySet {
	if s.Has(k) {
		return s
	}
	next := make(map[Key]struct{}, len(s.m)+1)
	for key := range s.m {
		next[key] = struct{}{}
	}
	next[k] = struct{}{}
	return KeySet{m: next}
}

// Without returns a set that does not contain k.
func (s KeySet) Without(k Key) KeySet {
	if !s.Has(k) {
		return s
	}
	next := make(map[Key]struct{}, len(s.m))
	for key := range s.m {
		if key != k {
			next[key] = struct{}{}
		}
	}
	return KeySet{m: next}
}

// Keys returns the members ordered by model ID, then client ID.
func (s KeySet) Keys() []Key {
	keys := make([]Key, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ModelID != keys[j].ModelID {
			return keys[i].ModelID < keys[j].ModelID
		}
		return keys[i].ClientID < keys[j].ClientID
	})
	return keys
}
