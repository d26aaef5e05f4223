package tree

import (
	"fmt"

	"github.com/rowanstack/flexlayout/cache"
	"github.com/rowanstack/flexlayout/style"
)

// nodeData is the per-node record a Tree owns by value (spec §9: "A
// exclusively owns B; cross-references are lookups, not ownership").
// Child lists hold NodeId handles, never pointers, so a slot can be
// reused once freed without leaving dangling references elsewhere.
type nodeData struct {
	style    style.Style
	children []NodeId
	parent   NodeId // nilNodeId if this is a root
	measure  MeasureFunc
	layout   ComputedLayout
	cache    *cache.Cache
	dirty    bool
}

// slot is one entry in the Tree's backing storage: either a live node at
// the current generation, or a free slot awaiting reuse.
type slot struct {
	gen   uint32
	alive bool
	node  nodeData
}

// Tree is the ground truth for structure (spec §4.1): it owns every node
// by value in a slot-map and exposes handle-based CRUD plus the recursive
// compute_layout entry point (the entry point itself lives in package
// layoutalgo, which depends on Tree's exported accessors below, to avoid
// an import cycle between the store and the algorithms that walk it).
type Tree struct {
	slots    []slot
	freeList []uint32
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// alloc reserves a slot (reusing a freed one when available) and returns
// its NodeId at the slot's current generation.
func (t *Tree) alloc(n nodeData) NodeId {
	if len(t.freeList) > 0 {
		idx := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		s := &t.slots[idx]
		s.alive = true
		s.node = n
		return NodeId{index: idx, gen: s.gen}
	}
	idx := uint32(len(t.slots))
	t.slots = append(t.slots, slot{gen: 1, alive: true, node: n})
	return NodeId{index: idx, gen: 1}
}

// get returns the live node data for id, or ErrInvalidNodeId.
func (t *Tree) get(id NodeId) (*nodeData, error) {
	if id.IsNil() || int(id.index) >= len(t.slots) {
		return nil, ErrInvalidNodeId
	}
	s := &t.slots[id.index]
	if !s.alive || s.gen != id.gen {
		return nil, ErrInvalidNodeId
	}
	return &s.node, nil
}

// NewLeaf creates a childless node with the given style. The style is
// validated at this boundary (spec §7): out-of-domain values never reach
// a layout pass.
func (t *Tree) NewLeaf(s style.Style) (NodeId, error) {
	if err := s.Validate(); err != nil {
		return NodeId{}, fmt.Errorf("tree.NewLeaf: %w", err)
	}
	return t.alloc(nodeData{style: s, cache: cache.New(), dirty: true}), nil
}

// NewLeafWithMeasure creates a childless node with an attached measurement
// hook. The style is validated at this boundary (spec §7).
func (t *Tree) NewLeafWithMeasure(s style.Style, measure MeasureFunc) (NodeId, error) {
	if err := s.Validate(); err != nil {
		return NodeId{}, fmt.Errorf("tree.NewLeafWithMeasure: %w", err)
	}
	return t.alloc(nodeData{style: s, cache: cache.New(), measure: measure, dirty: true}), nil
}

// NewWithChildren creates a node with the given children, atomically: if
// any child handle is invalid, nothing is created (spec §4.1). The style
// is validated at this boundary (spec §7).
func (t *Tree) NewWithChildren(s style.Style, children []NodeId) (NodeId, error) {
	if err := s.Validate(); err != nil {
		return NodeId{}, fmt.Errorf("tree.NewWithChildren: %w", err)
	}
	for _, c := range children {
		if _, err := t.get(c); err != nil {
			return NodeId{}, fmt.Errorf("tree.NewWithChildren: %w", ErrInvalidChild)
		}
	}
	kids := append([]NodeId(nil), children...)
	id := t.alloc(nodeData{style: s, children: kids, cache: cache.New(), dirty: true})
	for _, c := range kids {
		child, _ := t.get(c)
		child.parent = id
	}
	return id, nil
}

// SetStyle replaces a node's style and marks it (and ancestors) dirty.
// The style is validated at this boundary (spec §7): out-of-domain
// values never reach a layout pass.
func (t *Tree) SetStyle(id NodeId, s style.Style) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("tree.SetStyle: %w", err)
	}
	n, err := t.get(id)
	if err != nil {
		return fmt.Errorf("tree.SetStyle: %w", err)
	}
	n.style = s
	return t.MarkDirty(id)
}

// Style returns a node's current style.
func (t *Tree) Style(id NodeId) (style.Style, error) {
	n, err := t.get(id)
	if err != nil {
		return style.Style{}, fmt.Errorf("tree.Style: %w", err)
	}
	return n.style, nil
}

// SetMeasure attaches (or, given nil, clears) a measurement hook. A node
// with children cannot take a hook (spec §4.1).
func (t *Tree) SetMeasure(id NodeId, measure MeasureFunc) error {
	n, err := t.get(id)
	if err != nil {
		return fmt.Errorf("tree.SetMeasure: %w", err)
	}
	if measure != nil && len(n.children) > 0 {
		return fmt.Errorf("tree.SetMeasure: %w", ErrChildrenExistOnMeasureNode)
	}
	n.measure = measure
	return t.MarkDirty(id)
}

// AddChild appends child to parent's child list. A measure-node cannot
// take children (spec §4.1).
func (t *Tree) AddChild(parent, child NodeId) error {
	p, err := t.get(parent)
	if err != nil {
		return fmt.Errorf("tree.AddChild: %w", err)
	}
	c, err := t.get(child)
	if err != nil {
		return fmt.Errorf("tree.AddChild: %w", ErrInvalidChild)
	}
	if p.measure != nil {
		return fmt.Errorf("tree.AddChild: %w", ErrMeasureNodeHasChildren)
	}
	p.children = append(p.children, child)
	c.parent = parent
	return t.MarkDirty(parent)
}

// RemoveChild removes the first occurrence of child from parent's child
// list (the child itself is orphaned, not freed — spec §4.1: "the caller
// must explicitly remove to free it").
func (t *Tree) RemoveChild(parent, child NodeId) error {
	p, err := t.get(parent)
	if err != nil {
		return fmt.Errorf("tree.RemoveChild: %w", err)
	}
	for i, c := range p.children {
		if c == child {
			_, err := t.RemoveChildAtIndex(parent, i)
			return err
		}
	}
	_ = p
	return fmt.Errorf("tree.RemoveChild: %w", ErrInvalidChild)
}

// RemoveChildAtIndex removes and returns the child at index i.
func (t *Tree) RemoveChildAtIndex(parent NodeId, i int) (NodeId, error) {
	p, err := t.get(parent)
	if err != nil {
		return NodeId{}, fmt.Errorf("tree.RemoveChildAtIndex: %w", err)
	}
	if i < 0 || i >= len(p.children) {
		return NodeId{}, fmt.Errorf("tree.RemoveChildAtIndex: %w", ErrInvalidChild)
	}
	removed := p.children[i]
	p.children = append(p.children[:i], p.children[i+1:]...)
	if c, err := t.get(removed); err == nil {
		c.parent = nilNodeId
	}
	return removed, t.MarkDirty(parent)
}

// ReplaceChildAtIndex replaces the child at index i, returning the
// previous occupant.
func (t *Tree) ReplaceChildAtIndex(parent NodeId, i int, child NodeId) (NodeId, error) {
	p, err := t.get(parent)
	if err != nil {
		return NodeId{}, fmt.Errorf("tree.ReplaceChildAtIndex: %w", err)
	}
	c, err := t.get(child)
	if err != nil {
		return NodeId{}, fmt.Errorf("tree.ReplaceChildAtIndex: %w", ErrInvalidChild)
	}
	if i < 0 || i >= len(p.children) {
		return NodeId{}, fmt.Errorf("tree.ReplaceChildAtIndex: %w", ErrInvalidChild)
	}
	prev := p.children[i]
	p.children[i] = child
	c.parent = parent
	if old, err := t.get(prev); err == nil {
		old.parent = nilNodeId
	}
	return prev, t.MarkDirty(parent)
}

// SetChildren replaces parent's entire child list atomically. A node with
// a measure function cannot take children.
func (t *Tree) SetChildren(parent NodeId, children []NodeId) error {
	p, err := t.get(parent)
	if err != nil {
		return fmt.Errorf("tree.SetChildren: %w", err)
	}
	if p.measure != nil && len(children) > 0 {
		return fmt.Errorf("tree.SetChildren: %w", ErrMeasureNodeHasChildren)
	}
	for _, c := range children {
		if _, err := t.get(c); err != nil {
			return fmt.Errorf("tree.SetChildren: %w", ErrInvalidChild)
		}
	}
	for _, old := range p.children {
		if oc, err := t.get(old); err == nil {
			oc.parent = nilNodeId
		}
	}
	kids := append([]NodeId(nil), children...)
	p.children = kids
	for _, c := range kids {
		child, _ := t.get(c)
		child.parent = parent
	}
	return t.MarkDirty(parent)
}

// Children returns a copy of a node's child-handle list.
func (t *Tree) Children(id NodeId) ([]NodeId, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, fmt.Errorf("tree.Children: %w", err)
	}
	return append([]NodeId(nil), n.children...), nil
}

// ChildCount returns the number of children a node has.
func (t *Tree) ChildCount(id NodeId) (int, error) {
	n, err := t.get(id)
	if err != nil {
		return 0, fmt.Errorf("tree.ChildCount: %w", err)
	}
	return len(n.children), nil
}

// Parent returns a node's parent, and false if it is a root.
func (t *Tree) Parent(id NodeId) (NodeId, bool, error) {
	n, err := t.get(id)
	if err != nil {
		return NodeId{}, false, fmt.Errorf("tree.Parent: %w", err)
	}
	if n.parent.IsNil() {
		return NodeId{}, false, nil
	}
	return n.parent, true, nil
}

// Measure returns a node's attached measurement hook, or nil.
func (t *Tree) Measure(id NodeId) (MeasureFunc, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, fmt.Errorf("tree.Measure: %w", err)
	}
	return n.measure, nil
}

// Cache returns the per-node measurement cache used by the dispatcher.
func (t *Tree) Cache(id NodeId) (*cache.Cache, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, fmt.Errorf("tree.Cache: %w", err)
	}
	return n.cache, nil
}

// Remove recursively frees id and every descendant unless a descendant is
// otherwise reachable (spec §4.1 invariant 3). Since this engine gives
// every node a single parent, "otherwise reachable" never applies, and
// Remove always frees the whole subtree.
func (t *Tree) Remove(id NodeId) error {
	n, err := t.get(id)
	if err != nil {
		return fmt.Errorf("tree.Remove: %w", err)
	}
	if !n.parent.IsNil() {
		if p, err := t.get(n.parent); err == nil {
			for i, c := range p.children {
				if c == id {
					p.children = append(p.children[:i], p.children[i+1:]...)
					break
				}
			}
		}
	}
	for _, c := range n.children {
		_ = t.removeSubtree(c)
	}
	return t.removeSubtree(id)
}

// removeSubtree frees id and all descendants without touching any parent
// child-list (the caller has already detached it, or is a recursive call
// from Remove itself).
func (t *Tree) removeSubtree(id NodeId) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	for _, c := range n.children {
		_ = t.removeSubtree(c)
	}
	s := &t.slots[id.index]
	s.alive = false
	s.node = nodeData{}
	s.gen++
	t.freeList = append(t.freeList, id.index)
	return nil
}

// MarkDirty marks id and every transitive ancestor dirty, invalidating
// their measurement caches (spec §4.1).
func (t *Tree) MarkDirty(id NodeId) error {
	cur := id
	for {
		n, err := t.get(cur)
		if err != nil {
			return fmt.Errorf("tree.MarkDirty: %w", err)
		}
		n.dirty = true
		n.cache.Clear()
		if n.parent.IsNil() {
			return nil
		}
		cur = n.parent
	}
}

// Dirty reports whether id is in the Dirty state.
func (t *Tree) Dirty(id NodeId) (bool, error) {
	n, err := t.get(id)
	if err != nil {
		return false, fmt.Errorf("tree.Dirty: %w", err)
	}
	return n.dirty, nil
}

// Layout returns the last computed layout for id (the zero layout if it
// has never been computed).
func (t *Tree) Layout(id NodeId) (ComputedLayout, error) {
	n, err := t.get(id)
	if err != nil {
		return ComputedLayout{}, fmt.Errorf("tree.Layout: %w", err)
	}
	return n.layout, nil
}

// SetComputedLayout writes a node's computed layout and clears its dirty
// flag. Used by the dispatcher (package layoutalgo) as it returns from
// each recursive call.
func (t *Tree) SetComputedLayout(id NodeId, l ComputedLayout) error {
	n, err := t.get(id)
	if err != nil {
		return fmt.Errorf("tree.SetComputedLayout: %w", err)
	}
	n.layout = l
	n.dirty = false
	return nil
}
