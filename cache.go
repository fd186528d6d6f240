package tson

// A refCache is an append-only back-reference table, the encode/decode-side
// counterpart of ion/symboltable.go's sst type: an ordered list of distinct
// values plus an index for fast lookup by value. One refCache tracks Strings,
// a second tracks Document keys; both are created fresh for each top-level
// Encode or Decode call and discarded when it completes (spec §3, §4.7).
type refCache struct {
	items []string
	index map[string]int
}

func newRefCache() *refCache {
	return &refCache{index: make(map[string]int)}
}

// find returns the back-reference index of s, if it has already been added.
func (c *refCache) find(s string) (int, bool) {
	i, ok := c.index[s]
	return i, ok
}

// add appends s as the next back-referenceable item and returns its index.
// Callers must have already confirmed s is not present via find.
func (c *refCache) add(s string) int {
	i := len(c.items)
	c.items = append(c.items, s)
	c.index[s] = i
	return i
}

// at returns the item previously added at back-reference index i.
func (c *refCache) at(i int) (string, bool) {
	if i < 0 || i >= len(c.items) {
		return "", false
	}
	return c.items[i], true
}

func (c *refCache) size() int {
	return len(c.items)
}
