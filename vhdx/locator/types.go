package locator

import "github.com/joshuapare/vhdxkit/internal/format"

// Entry is one key/value pair of a locator.
type Entry struct {
	Key   string
	Value string
}

// Descriptor is a raw key/value descriptor slot as stored on disk. Offsets are
// relative to the start of the locator; lengths are in bytes.
type Descriptor struct {
	KeyOffset   uint32
	ValueOffset uint32
	KeyLength   uint16
	ValueLength uint16
}

// Locator is a VHDX parent locator table. The zero value is an empty locator.
type Locator struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty locator.
func New() *Locator {
	return &Locator{}
}

// Len returns the number of entries. This is the KeyValueCount Encode writes.
func (l *Locator) Len() int {
	return len(l.entries)
}

// Get returns the value stored under key.
func (l *Locator) Get(key string) (string, bool) {
	i, ok := l.index[key]
	if !ok {
		return "", false
	}
	return l.entries[i].Value, true
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (l *Locator) Set(key, value string) {
	if i, ok := l.index[key]; ok {
		l.entries[i].Value = value
		return
	}
	if l.index == nil {
		l.index = make(map[string]int)
	}
	l.index[key] = len(l.entries)
	l.entries = append(l.entries, Entry{Key: key, Value: value})
}

// Delete removes key and reports whether it was present.
func (l *Locator) Delete(key string) bool {
	i, ok := l.index[key]
	if !ok {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	delete(l.index, key)
	for j := i; j < len(l.entries); j++ {
		l.index[l.entries[j].Key] = j
	}
	return true
}

// Keys returns the keys in encode order.
func (l *Locator) Keys() []string {
	keys := make([]string, len(l.entries))
	for i, e := range l.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in encode order.
func (l *Locator) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Map returns the entries as a map.
func (l *Locator) Map() map[string]string {
	m := make(map[string]string, len(l.entries))
	for _, e := range l.entries {
		m[e.Key] = e.Value
	}
	return m
}

// Size returns the exact number of bytes Encode writes for the current entries:
// the fixed header, one descriptor per entry, and the UTF-16LE text.
func (l *Locator) Size() int {
	n := format.LocatorHeaderSize + len(l.entries)*format.DescriptorSize
	for _, e := range l.entries {
		n += format.UTF16UnitSize * (format.UTF16Len(e.Key) + format.UTF16Len(e.Value))
	}
	return n
}
