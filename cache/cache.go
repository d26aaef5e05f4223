// Package cache memoizes (inputs) → size across the recursive layout
// traversal (spec §4.2 "Cache lookup"). One Cache lives per tree node.
package cache

import "github.com/rowanstack/flexlayout/geom"

// RunMode selects whether an algorithm invocation must also write
// children's positions (PerformLayout) or only needs to report a size
// (ComputeSize).
type RunMode int

const (
	PerformLayout RunMode = iota
	ComputeSize
)

// SizingMode labels a call as sizing by the node's own size styles
// (InherentSize) or probing its content contribution (ContentSize). The
// value is carried in the algorithm input, but no algorithm reads it: a
// ContentSize probe is sized exactly like an InherentSize call, with the
// node's own size styles applied, and the cache key does not include it.
type SizingMode int

const (
	InherentSize SizingMode = iota
	ContentSize
)

// Output is what an algorithm returns and what gets cached: the resolved
// border-box size, the scrollable-overflow content size, and the node's
// first-baseline offset from its top edge (nil if the node has none).
type Output struct {
	Size         geom.Size[float64]
	ContentSize  geom.Size[float64]
	FirstBaseline *float64
}

// entry is one memoized (inputs) → Output pair.
type entry struct {
	known     geom.OptionSize
	available geom.AvailableSpaceSize
	runMode   RunMode
	output    Output
	valid     bool
}

// slots is the number of cache entries kept per node. Spec §3 requires
// "at least 5" so that MinContent, MaxContent and one-or-two Definite(w)
// probes within a single traversal don't evict each other; taffy itself
// uses a handful more to additionally cover a final PerformLayout call,
// hence 7.
const slots = 7

// Cache holds the memoized layout results for a single node.
type Cache struct {
	entries [slots]entry
	// next is the round-robin slot used when no matching/empty slot is
	// found; this approximates "choose a slot by input shape" (spec §4.2)
	// without needing the exact index scheme a specific implementation
	// might use.
	next int
}

// New returns an empty Cache.
func New() *Cache { return &Cache{} }

// Get looks up a cached Output for the given query shape. A slot matches
// iff the run mode is compatible (a cached PerformLayout result also
// satisfies a ComputeSize query), both known-dimension values are equal
// under epsilon, and available space matches per axis.
func (c *Cache) Get(known geom.OptionSize, available geom.AvailableSpaceSize, runMode RunMode) (Output, bool) {
	for i := range c.entries {
		e := &c.entries[i]
		if !e.valid {
			continue
		}
		if !runModeCompatible(e.runMode, runMode) {
			continue
		}
		if !e.known.ApproxEqual(known) {
			continue
		}
		if !e.available.ApproxEqual(available) {
			continue
		}
		return e.output, true
	}
	return Output{}, false
}

// runModeCompatible reports whether an entry computed under cached can
// satisfy a query that asked for wanted.
func runModeCompatible(cached, wanted RunMode) bool {
	if cached == wanted {
		return true
	}
	return cached == PerformLayout && wanted == ComputeSize
}

// Store writes a result into the cache, reusing a matching or empty slot
// before falling back to round-robin eviction so that distinct query
// shapes (e.g. the flex algorithm's MinContent vs MaxContent intrinsic
// probes) do not thrash one another out.
func (c *Cache) Store(known geom.OptionSize, available geom.AvailableSpaceSize, runMode RunMode, output Output) {
	for i := range c.entries {
		e := &c.entries[i]
		if e.valid && e.known.ApproxEqual(known) && e.available.ApproxEqual(available) && e.runMode == runMode {
			e.output = output
			return
		}
	}
	for i := range c.entries {
		if !c.entries[i].valid {
			c.entries[i] = entry{known: known, available: available, runMode: runMode, output: output, valid: true}
			return
		}
	}
	idx := c.next
	c.next = (c.next + 1) % slots
	c.entries[idx] = entry{known: known, available: available, runMode: runMode, output: output, valid: true}
}

// Clear invalidates every entry (spec §4.1 mark_dirty: "invalidated... may
// clear lazily" — this engine clears eagerly on mark_dirty).
func (c *Cache) Clear() {
	for i := range c.entries {
		c.entries[i] = entry{}
	}
}
