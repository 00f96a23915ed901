package pagecraft

import (
	"fmt"
	"strconv"
)

// Node describes an instance for BuildTree.
//
// By default the instance is seeded with registry defaults and Props is
// merged on top. Set Sparse to start from an empty bag instead, which is how
// a tree looks when defaults were never stored.
type Node struct {
	Kind     Kind
	Props    Props
	Sparse   bool
	Children []Node
}

// SequentialIDs returns an id source yielding prefix-1, prefix-2, ... Use it
// with WithIDSource for trees whose ids must be predictable in tests.
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

// BuildTree assembles a tree from node descriptions through the regular
// insert operations, so every invariant is checked. Ids are sequential
// ("c-1", "c-2", ... in document order) unless opts override the source.
//
//	tree, err := pagecraft.BuildTree(
//	    pagecraft.Node{Kind: pagecraft.KindContainer, Children: []pagecraft.Node{
//	        {Kind: pagecraft.KindText, Props: pagecraft.Props{"text": pagecraft.String("Hi")}},
//	    }},
//	)
func BuildTree(nodes []Node, opts ...TreeOption) (*Tree, error) {
	t := NewTree(append([]TreeOption{WithIDSource(SequentialIDs("c"))}, opts...)...)
	for _, n := range nodes {
		inst, err := t.buildNode(n)
		if err != nil {
			return nil, err
		}
		if err := t.InsertAtRoot(inst); err != nil {
			return nil, err
		}
		if err := t.buildChildren(inst, n.Children); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustBuildTree is BuildTree that panics on error.
func MustBuildTree(nodes []Node, opts ...TreeOption) *Tree {
	t, err := BuildTree(nodes, opts...)
	if err != nil {
		panic(fmt.Sprintf("pagecraft: build tree: %v", err))
	}
	return t
}

func (t *Tree) buildNode(n Node) (*Instance, error) {
	inst, err := t.NewInstance(n.Kind)
	if err != nil {
		return nil, err
	}
	if n.Sparse {
		inst.props = Props{}
	}
	inst.props.Merge(n.Props)
	return inst, nil
}

func (t *Tree) buildChildren(parent *Instance, children []Node) error {
	for _, n := range children {
		inst, err := t.buildNode(n)
		if err != nil {
			return err
		}
		if err := t.InsertIntoContainer(parent.id, inst); err != nil {
			return err
		}
		if err := t.buildChildren(inst, n.Children); err != nil {
			return err
		}
	}
	return nil
}

// TestInstance builds a detached instance with exactly the given fields.
// It bypasses the registry, so renderers can be exercised with sparse bags
// or kinds outside the enumeration. Never insert it into a real tree.
func TestInstance(id string, kind Kind, props Props, children ...*Instance) *Instance {
	inst := &Instance{id: id, kind: kind, props: props.Clone()}
	for _, c := range children {
		c.parentID = id
		inst.children = append(inst.children, c)
	}
	return inst
}
