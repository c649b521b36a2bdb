package encode

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bastiangx/phonecode/pkg/dictionary"
	"github.com/bastiangx/phonecode/pkg/keypad"
)

// Encoder runs searches against one dictionary and remembers the results of
// recently seen digit sequences. Numbers that differ only in punctuation, such
// as "5624-82" and "562482", share one search.
// An Encoder is safe for concurrent use.
type Encoder struct {
	dict  *dictionary.Dictionary
	cache *lru.Cache[keypad.Key, []Solution]

	searches  atomic.Int64
	cacheHits atomic.Int64
	solutions atomic.Int64
}

// NewEncoder creates an encoder for dict. cacheSize is the number of digit
// sequences whose solutions are kept; 0 disables the cache.
func NewEncoder(dict *dictionary.Dictionary, cacheSize int) (*Encoder, error) {
	if cacheSize < 0 {
		return nil, fmt.Errorf("cache size must not be negative, got %d", cacheSize)
	}
	e := &Encoder{dict: dict}
	if cacheSize > 0 {
		cache, err := lru.New[keypad.Key, []Solution](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create result cache: %w", err)
		}
		e.cache = cache
	}
	return e, nil
}

// Encode returns every solution for digits in search order.
// Cached results are shared between callers and must not be modified.
func (e *Encoder) Encode(digits keypad.Key) ([]Solution, error) {
	if e.cache != nil {
		if cached, ok := e.cache.Get(digits); ok {
			e.cacheHits.Add(1)
			return cached, nil
		}
	}

	var solutions []Solution
	err := e.Each(digits, func(s Solution) {
		solutions = append(solutions, s)
	})
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		e.cache.Add(digits, solutions)
	}
	return solutions, nil
}

// Each streams the solutions for digits to fn. It never consults the cache.
func (e *Encoder) Each(digits keypad.Key, fn func(Solution)) error {
	e.searches.Add(1)
	return Search(digits, e.dict, func(s Solution) {
		e.solutions.Add(1)
		fn(s)
	})
}

// CacheHits returns how many Encode calls were answered from the cache.
func (e *Encoder) CacheHits() int {
	return int(e.cacheHits.Load())
}

// Stats returns counters about the searches run so far.
func (e *Encoder) Stats() map[string]int {
	stats := map[string]int{
		"searches":  int(e.searches.Load()),
		"cacheHits": int(e.cacheHits.Load()),
		"solutions": int(e.solutions.Load()),
		"cached":    0,
	}
	if e.cache != nil {
		stats["cached"] = e.cache.Len()
	}
	return stats
}
