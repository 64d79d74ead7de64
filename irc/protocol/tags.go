package protocol

import "strings"

// Tag is a single IRCv3 message tag. Flag is set for tags sent without a
// value.
type Tag struct {
	Key   string
	Value string
	Flag  bool
}

// Tags is an ordered collection of message tags with unique keys. The zero
// value is an empty collection ready to use. Tags never modify their backing
// array in place, so a copied value can be changed without affecting the
// original.
type Tags struct {
	tags []Tag
}

// Set sets the value of a tag. An existing tag keeps its position.
func (t *Tags) Set(key, value string) {
	t.set(Tag{Key: key, Value: value})
}

// SetFlag sets a tag without a value.
func (t *Tags) SetFlag(key string) {
	t.set(Tag{Key: key, Flag: true})
}

func (t *Tags) set(tag Tag) {
	rv := make([]Tag, len(t.tags), len(t.tags)+1)
	copy(rv, t.tags)
	if i := t.find(tag.Key); i >= 0 {
		rv[i] = tag
	} else {
		rv = append(rv, tag)
	}
	t.tags = rv
}

func (t Tags) find(key string) int {
	for i, tag := range t.tags {
		if tag.Key == key {
			return i
		}
	}
	return -1
}

// Get returns the tag with the given key.
func (t Tags) Get(key string) (Tag, bool) {
	i := t.find(key)
	if i < 0 {
		return Tag{}, false
	}
	return t.tags[i], true
}

// Value returns the value of the tag with the given key. Flags have an empty
// value.
func (t Tags) Value(key string) (string, bool) {
	tag, ok := t.Get(key)
	return tag.Value, ok
}

// Delete removes a tag.
func (t *Tags) Delete(key string) {
	i := t.find(key)
	if i < 0 {
		return
	}
	rv := make([]Tag, 0, len(t.tags)-1)
	rv = append(rv, t.tags[:i]...)
	t.tags = append(rv, t.tags[i+1:]...)
}

func (t Tags) Len() int {
	return len(t.tags)
}

// Keys returns the keys in insertion order.
func (t Tags) Keys() []string {
	rv := make([]string, len(t.tags))
	for i, tag := range t.tags {
		rv[i] = tag.Key
	}
	return rv
}

// All returns the tags in insertion order.
func (t Tags) All() []Tag {
	return append([]Tag{}, t.tags...)
}

// Copy returns an independent copy of the tags.
func (t Tags) Copy() Tags {
	return Tags{tags: append([]Tag(nil), t.tags...)}
}

// parseTags decodes a tag block with the leading '@' already removed. Empty
// entries and entries without a key are skipped, an entry with an empty
// value becomes a flag.
func parseTags(s string) Tags {
	var tags []Tag
	index := make(map[string]int)
	for _, piece := range strings.Split(s, ";") {
		key, value, hasValue := strings.Cut(piece, "=")
		if key == "" {
			continue
		}
		tag := Tag{Key: key, Value: value, Flag: !hasValue || value == ""}
		if i, ok := index[key]; ok {
			tags[i] = tag
			continue
		}
		index[key] = len(tags)
		tags = append(tags, tag)
	}
	return Tags{tags: tags}
}
