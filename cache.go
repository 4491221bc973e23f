package isodist

import (
	"github.com/arloliu/isodist/chem"
	"github.com/arloliu/isodist/envelope"
	"github.com/arloliu/isodist/internal/hash"
)

// DistCache memoizes composition-to-envelope results, keyed by the
// xxHash64 of the canonical formula string. Batch workloads that walk many
// precursors hit the same handful of averagine compositions over and over;
// the cache turns every repeat into a lookup plus a copy.
//
// Cached and uncached paths return equal results. The cache hands out
// copies, so callers can mutate what they get back without corrupting the
// stored envelope.
//
// A DistCache is not safe for concurrent use; give each goroutine its own.
type DistCache struct {
	table   chem.IsotopeTable
	opts    []envelope.ConvolveOption
	entries map[uint64]*envelope.Envelope
}

// NewDistCache creates a cache bound to one isotope table and one set of
// convolution options. Entries computed under one configuration are never
// valid under another, so the binding is per cache, not per call.
func NewDistCache(table chem.IsotopeTable, opts ...envelope.ConvolveOption) *DistCache {
	return &DistCache{
		table:   table,
		opts:    opts,
		entries: make(map[uint64]*envelope.Envelope),
	}
}

// FromComposition returns the isotope envelope of the composition,
// computing and storing it on the first request and copying it out of the
// cache afterwards.
func (c *DistCache) FromComposition(comp chem.Composition) (*envelope.Envelope, error) {
	id := hash.FormulaID(comp.Formula())
	if env, ok := c.entries[id]; ok {
		return env.Copy(), nil
	}

	env, err := envelope.FromComposition(comp, c.table, c.opts...)
	if err != nil {
		return nil, err
	}
	c.entries[id] = env

	return env.Copy(), nil
}

// Len returns the number of distinct compositions cached so far.
func (c *DistCache) Len() int {
	return len(c.entries)
}
