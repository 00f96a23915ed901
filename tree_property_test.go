package pagecraft

import (
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// randomTree drops one palette component per step. kinds[i] picks the kind
// and parents[i] picks either the root or one of the containers placed so
// far, so arbitrarily deep nesting is reachable.
func randomTree(kinds, parents []int) *Tree {
	tree := NewTree(WithIDSource(SequentialIDs("p")))
	r := NewResolver(tree)
	var containers []string

	for i, k := range kinds {
		kind := Kinds()[k%len(Kinds())]
		target := RootTarget()
		if i < len(parents) && len(containers) > 0 {
			if pick := parents[i] % (len(containers) + 1); pick > 0 {
				target = ContainerTarget(containers[pick-1])
			}
		}

		r.Start(FromPalette(kind))
		p := r.Drop(target)
		if p.Outcome == OutcomeInserted && kind == KindContainer {
			containers = append(containers, p.Instance.ID())
		}
	}
	return tree
}

func ids(tree *Tree) []string {
	var out []string
	tree.Walk(func(inst *Instance, _ int) bool {
		out = append(out, inst.ID())
		return true
	})
	return out
}

func snapshot(tree *Tree) string {
	data, _ := json.Marshal(tree)
	return string(data)
}

func treeProperties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return gopter.NewProperties(parameters)
}

var (
	genKinds   = gen.SliceOfN(24, gen.IntRange(0, 4))
	genParents = gen.SliceOfN(24, gen.IntRange(0, 8))
)

func TestRemoveThenFindProperty(t *testing.T) {
	properties := treeProperties(t)

	properties.Property("find after remove yields nothing, at any depth", prop.ForAll(
		func(kinds, parents []int) bool {
			base := randomTree(kinds, parents)
			for _, id := range ids(base) {
				tree := base.Clone()
				if !tree.Remove(id) {
					return false
				}
				if tree.Find(id) != nil {
					return false
				}
			}
			return true
		},
		genKinds, genParents,
	))

	properties.TestingRun(t)
}

func TestRemoveIdempotentProperty(t *testing.T) {
	properties := treeProperties(t)

	properties.Property("remove twice equals remove once", prop.ForAll(
		func(kinds, parents []int, pick int) bool {
			base := randomTree(kinds, parents)
			all := ids(base)
			if len(all) == 0 {
				return true
			}
			id := all[pick%len(all)]

			once := base.Clone()
			once.Remove(id)
			twice := base.Clone()
			twice.Remove(id)
			twice.Remove(id)

			return snapshot(once) == snapshot(twice)
		},
		genKinds, genParents, gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}

func TestTreeInvariantsProperty(t *testing.T) {
	properties := treeProperties(t)

	properties.Property("ids unique, only containers nest, parent ids consistent", prop.ForAll(
		func(kinds, parents []int) bool {
			tree := randomTree(kinds, parents)
			seen := map[string]bool{}
			ok := true
			var check func(inst *Instance, parent string)
			check = func(inst *Instance, parent string) {
				if seen[inst.ID()] || inst.ParentID() != parent {
					ok = false
				}
				seen[inst.ID()] = true
				if !inst.IsContainer() && len(inst.Children()) > 0 {
					ok = false
				}
				for _, c := range inst.Children() {
					check(c, inst.ID())
				}
			}
			for _, root := range tree.Roots() {
				check(root, "")
			}
			return ok && len(seen) == len(kinds)
		},
		genKinds, genParents,
	))

	properties.TestingRun(t)
}

func TestRejectedInsertLeavesTreeProperty(t *testing.T) {
	properties := treeProperties(t)

	properties.Property("insert into a non-container never mutates", prop.ForAll(
		func(kinds, parents []int, pick int) bool {
			tree := randomTree(kinds, parents)
			var leaves []string
			tree.Walk(func(inst *Instance, _ int) bool {
				if !inst.IsContainer() {
					leaves = append(leaves, inst.ID())
				}
				return true
			})
			if len(leaves) == 0 {
				return true
			}

			before := snapshot(tree)
			inst, _ := tree.NewInstance(KindText)
			err := tree.InsertIntoContainer(leaves[pick%len(leaves)], inst)
			return IsNotAContainer(err) && snapshot(tree) == before
		},
		genKinds, genParents, gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
