package pagecraft

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Tree is the ordered forest of placed components that makes up a page.
//
// Invariants maintained by every operation:
//   - ids are unique across the whole forest
//   - only containers have children
//   - every child's ParentID names the container holding it
//   - an instance belongs to at most one tree
//
// Tree is not safe for concurrent use; callers serialize access (see the
// editor package).
type Tree struct {
	roots []*Instance
	newID func() string
}

// TreeOption configures a Tree.
type TreeOption func(*Tree)

// WithIDSource replaces the id generator used by NewInstance. The function
// must never return an id it has returned before.
func WithIDSource(fn func() string) TreeOption {
	return func(t *Tree) {
		t.newID = fn
	}
}

// NewTree creates an empty tree. Instance ids are random UUIDs unless
// WithIDSource is given.
func NewTree(opts ...TreeOption) *Tree {
	t := &Tree{newID: uuid.NewString}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewInstance allocates a fresh instance of kind seeded with the registry
// defaults. It does not insert the instance; that is the caller's job.
func (t *Tree) NewInstance(kind Kind) (*Instance, error) {
	props, err := DefaultsFor(kind)
	if err != nil {
		return nil, err
	}
	return &Instance{
		id:    t.newID(),
		kind:  kind,
		props: props,
	}, nil
}

// InsertAtRoot appends inst to the top-level sequence.
func (t *Tree) InsertAtRoot(inst *Instance) error {
	if err := t.checkInsertable(inst); err != nil {
		return err
	}
	inst.parentID = ""
	inst.setOwner(t)
	t.roots = append(t.roots, inst)
	return nil
}

// InsertIntoContainer appends inst to the children of the container with id
// containerID. The tree is left untouched on error.
func (t *Tree) InsertIntoContainer(containerID string, inst *Instance) error {
	if err := t.checkInsertable(inst); err != nil {
		return err
	}
	target := t.Find(containerID)
	if target == nil {
		return fmt.Errorf("insert into %q: %w", containerID, ErrNotFound)
	}
	if !target.IsContainer() {
		return fmt.Errorf("insert into %q (%s): %w", containerID, target.kind, ErrNotAContainer)
	}
	inst.parentID = target.id
	inst.setOwner(t)
	target.children = append(target.children, inst)
	return nil
}

func (t *Tree) checkInsertable(inst *Instance) error {
	if inst == nil {
		return ErrNilInstance
	}
	if !inst.IsContainer() && len(inst.children) > 0 {
		return fmt.Errorf("insert %q (%s) with children: %w", inst.id, inst.kind, ErrNotAContainer)
	}
	var bad error
	walk(inst, 0, func(n *Instance, _ int) bool {
		switch {
		case t.Contains(n.id):
			bad = fmt.Errorf("insert %q: %w", n.id, ErrDuplicateID)
		case n.owner != nil:
			bad = fmt.Errorf("insert %q: %w", n.id, ErrAlreadyOwned)
		default:
			return true
		}
		return false
	})
	return bad
}

// UpdateProperties merges patch into the properties of the instance with id.
// Keys in patch overwrite, all other keys are retained.
func (t *Tree) UpdateProperties(id string, patch Props) error {
	inst := t.Find(id)
	if inst == nil {
		return fmt.Errorf("update %q: %w", id, ErrNotFound)
	}
	if inst.props == nil {
		inst.props = Props{}
	}
	inst.props.Merge(patch)
	return nil
}

// Remove deletes the instance with id and its whole subtree, wherever it
// sits in the forest. Removing an absent id is a no-op. It reports whether
// anything was removed. A removed subtree is detached and may be inserted
// again.
func (t *Tree) Remove(id string) bool {
	var removed *Instance
	t.roots, removed = removeFrom(t.roots, id)
	if removed == nil {
		return false
	}
	removed.parentID = ""
	removed.setOwner(nil)
	return true
}

func removeFrom(list []*Instance, id string) ([]*Instance, *Instance) {
	for n, inst := range list {
		if inst.id == id {
			return slices.Delete(list, n, n+1), inst
		}
		if len(inst.children) > 0 {
			var removed *Instance
			inst.children, removed = removeFrom(inst.children, id)
			if removed != nil {
				return list, removed
			}
		}
	}
	return list, nil
}

// Find looks up an instance anywhere in the forest. It returns nil when the
// id is absent.
func (t *Tree) Find(id string) *Instance {
	var found *Instance
	t.Walk(func(inst *Instance, _ int) bool {
		if inst.id == id {
			found = inst
			return false
		}
		return true
	})
	return found
}

// Contains reports whether id is present anywhere in the forest.
func (t *Tree) Contains(id string) bool {
	return t.Find(id) != nil
}

// Roots returns the top-level instances in order.
func (t *Tree) Roots() []*Instance {
	return slices.Clone(t.roots)
}

// Len counts every instance in the forest, nested ones included.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(*Instance, int) bool {
		n++
		return true
	})
	return n
}

// Walk visits every instance depth-first in document order. Returning false
// from fn stops the walk.
func (t *Tree) Walk(fn func(inst *Instance, depth int) bool) {
	for _, root := range t.roots {
		if !walk(root, 0, fn) {
			return
		}
	}
}

func walk(inst *Instance, depth int, fn func(*Instance, int) bool) bool {
	if !fn(inst, depth) {
		return false
	}
	for _, child := range inst.children {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the tree sharing the same id source.
func (t *Tree) Clone() *Tree {
	out := &Tree{newID: t.newID}
	if len(t.roots) > 0 {
		out.roots = make([]*Instance, len(t.roots))
		for n, r := range t.roots {
			out.roots[n] = r.clone(out)
		}
	}
	return out
}

// MarshalJSON renders the top-level sequence as a JSON array.
func (t *Tree) MarshalJSON() ([]byte, error) {
	if len(t.roots) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(t.roots)
}
