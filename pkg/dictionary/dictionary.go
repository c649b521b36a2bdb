// Package dictionary indexes a word list by keypad key.
//
// A Dictionary maps every key to the words that encode to it, in the order the
// words were added. Words are never deduplicated. A patricia trie over the keys
// answers whether any word key starts with a given digit prefix, which lets a
// search stop extending a prefix as soon as nothing can match.
//
// A Dictionary is filled once and then only read, so it can be shared by any
// number of goroutines without locking.
package dictionary

import (
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/phonecode/pkg/keypad"
)

// Dictionary is the word index.
type Dictionary struct {
	entries     map[keypad.Key][]string
	trie        *patricia.Trie
	words       int
	indexedKeys int
	unreachable int
}

// Stats describes the contents of a Dictionary.
type Stats struct {
	Words       int
	Keys        int
	Unreachable int // words without letters
	MaxShared   int // most words sharing one key
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		entries: make(map[keypad.Key][]string, 100),
		trie:    patricia.NewTrie(),
	}
}

// Build indexes words in order.
func Build(words []string) *Dictionary {
	d := New()
	for _, w := range words {
		d.Add(w)
	}
	return d
}

// Add appends word to the entry of its key.
// Words without letters land under the empty key; they are kept but no
// search can reach them.
func (d *Dictionary) Add(word string) {
	key := keypad.WordKey(word)
	if key == "" {
		d.unreachable++
	} else if _, exists := d.entries[key]; !exists {
		d.trie.Insert(patricia.Prefix(key), struct{}{})
		d.indexedKeys++
	}
	d.entries[key] = append(d.entries[key], word)
	d.words++
}

// Lookup returns the words encoding to key in insertion order.
// The returned slice must not be modified.
func (d *Dictionary) Lookup(key keypad.Key) []string {
	return d.entries[key]
}

// HasPrefix reports whether some non-empty word key starts with prefix.
func (d *Dictionary) HasPrefix(prefix keypad.Key) bool {
	if prefix == "" {
		return d.indexedKeys > 0
	}
	return d.trie.MatchSubtree(patricia.Prefix(prefix))
}

// Len returns the number of words added, duplicates included.
func (d *Dictionary) Len() int {
	return d.words
}

// Keys returns the number of distinct keys.
func (d *Dictionary) Keys() int {
	return len(d.entries)
}

// Stats returns counters about the index.
func (d *Dictionary) Stats() Stats {
	s := Stats{
		Words:       d.words,
		Keys:        len(d.entries),
		Unreachable: d.unreachable,
	}
	for _, words := range d.entries {
		if len(words) > s.MaxShared {
			s.MaxShared = len(words)
		}
	}
	return s
}
