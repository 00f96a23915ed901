package pagecraft

import (
	"encoding/json"
	"slices"
)

// Instance is a placed component. The owning Tree is the only mutator;
// accessors return copies so callers cannot break nesting invariants.
type Instance struct {
	id       string
	kind     Kind
	props    Props
	children []*Instance
	parentID string
	owner    *Tree
}

// ID returns the instance's unique, stable identifier.
func (i *Instance) ID() string { return i.id }

// Kind returns the component kind, fixed at creation.
func (i *Instance) Kind() Kind { return i.kind }

// ParentID returns the id of the containing instance, or "" at top level.
func (i *Instance) ParentID() string { return i.parentID }

// IsContainer reports whether the instance may own children.
func (i *Instance) IsContainer() bool { return i.kind == KindContainer }

// Props returns a copy of the instance's property bag.
func (i *Instance) Props() Props { return i.props.Clone() }

// Prop returns a single property value.
func (i *Instance) Prop(key string) (Value, bool) {
	v, ok := i.props[key]
	return v, ok
}

// Children returns the instance's children in order. The slice is a copy;
// the instances are shared with the tree.
func (i *Instance) Children() []*Instance { return slices.Clone(i.children) }

// clone deep-copies the instance and its subtree into owner.
func (i *Instance) clone(owner *Tree) *Instance {
	out := &Instance{
		id:       i.id,
		kind:     i.kind,
		props:    i.props.Clone(),
		parentID: i.parentID,
		owner:    owner,
	}
	if len(i.children) > 0 {
		out.children = make([]*Instance, len(i.children))
		for n, c := range i.children {
			out.children[n] = c.clone(owner)
		}
	}
	return out
}

// setOwner marks the instance and its subtree as held by owner, or as
// detached when owner is nil.
func (i *Instance) setOwner(owner *Tree) {
	walk(i, 0, func(n *Instance, _ int) bool {
		n.owner = owner
		return true
	})
}

type instanceJSON struct {
	ID       string      `json:"id"`
	Kind     Kind        `json:"type"`
	Props    Props       `json:"props"`
	Children []*Instance `json:"children"`
	ParentID *string     `json:"parentId"`
}

// MarshalJSON renders the instance in the editor's wire shape.
func (i *Instance) MarshalJSON() ([]byte, error) {
	out := instanceJSON{
		ID:       i.id,
		Kind:     i.kind,
		Props:    i.props,
		Children: i.children,
	}
	if out.Props == nil {
		out.Props = Props{}
	}
	if out.Children == nil {
		out.Children = []*Instance{}
	}
	if i.parentID != "" {
		parent := i.parentID
		out.ParentID = &parent
	}
	return json.Marshal(out)
}
