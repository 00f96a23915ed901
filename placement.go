package pagecraft

import "fmt"

// SourceType tags where a drag started.
type SourceType uint8

const (
	// SourcePalette is a new component dragged out of the palette.
	SourcePalette SourceType = iota + 1
	// SourceCanvas is an instance already placed on the canvas.
	SourceCanvas
)

func (s SourceType) String() string {
	switch s {
	case SourcePalette:
		return "palette"
	case SourceCanvas:
		return "canvas"
	}
	return "none"
}

// DragSource identifies what is being dragged. Build it with FromPalette or
// FromCanvas at the point the drag starts; it is never inferred later from
// the shape of a payload.
type DragSource struct {
	Type SourceType
	Kind Kind   // set for SourcePalette
	ID   string // set for SourceCanvas
}

// FromPalette creates a source for dragging a new component of kind.
func FromPalette(kind Kind) DragSource {
	return DragSource{Type: SourcePalette, Kind: kind}
}

// FromCanvas creates a source for dragging the placed instance id.
func FromCanvas(id string) DragSource {
	return DragSource{Type: SourceCanvas, ID: id}
}

func (s DragSource) String() string {
	switch s.Type {
	case SourcePalette:
		return "palette:" + s.Kind.String()
	case SourceCanvas:
		return "canvas:" + s.ID
	}
	return "none"
}

// TargetType tags where a drag ended.
type TargetType uint8

const (
	// TargetNone means the drop landed outside every droppable region.
	TargetNone TargetType = iota
	// TargetRoot is the canvas background.
	TargetRoot
	// TargetContainer is a placed container instance.
	TargetContainer
)

// DropTarget identifies where a drag ended.
type DropTarget struct {
	Type TargetType
	ID   string // set for TargetContainer
}

// NoTarget is a drop outside any droppable region.
func NoTarget() DropTarget { return DropTarget{Type: TargetNone} }

// RootTarget is a drop onto the canvas background.
func RootTarget() DropTarget { return DropTarget{Type: TargetRoot} }

// ContainerTarget is a drop onto the instance id.
func ContainerTarget(id string) DropTarget {
	return DropTarget{Type: TargetContainer, ID: id}
}

func (d DropTarget) String() string {
	switch d.Type {
	case TargetRoot:
		return "root"
	case TargetContainer:
		return "container:" + d.ID
	}
	return "none"
}

// Outcome is the result category of a drop.
type Outcome uint8

const (
	// OutcomeCancelled means no mutation happened: no target, no active
	// source, or the insertion failed.
	OutcomeCancelled Outcome = iota
	// OutcomeInserted means a new instance was placed in the tree.
	OutcomeInserted
	// OutcomeIgnored means the source was a canvas instance. Moving placed
	// instances is not supported, so the drop does nothing.
	OutcomeIgnored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeIgnored:
		return "ignored"
	}
	return "cancelled"
}

// MarshalText encodes the outcome name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Placement reports what a drop did. Err is set when the drop was cancelled
// because an insertion failed; the tree is unchanged in that case.
type Placement struct {
	Outcome  Outcome
	Instance *Instance
	Err      error
}

// Resolve applies a single drop of src onto target to tree.
func Resolve(tree *Tree, src DragSource, target DropTarget) Placement {
	if target.Type == TargetNone {
		return Placement{Outcome: OutcomeCancelled}
	}

	switch src.Type {
	case SourceCanvas:
		return Placement{Outcome: OutcomeIgnored}
	case SourcePalette:
	default:
		return Placement{Outcome: OutcomeCancelled}
	}

	inst, err := tree.NewInstance(src.Kind)
	if err != nil {
		return Placement{Outcome: OutcomeCancelled, Err: err}
	}

	switch target.Type {
	case TargetRoot:
		err = tree.InsertAtRoot(inst)
	case TargetContainer:
		err = tree.InsertIntoContainer(target.ID, inst)
	default:
		err = fmt.Errorf("drop target %d: %w", target.Type, ErrNotFound)
	}
	if err != nil {
		return Placement{Outcome: OutcomeCancelled, Err: err}
	}
	return Placement{Outcome: OutcomeInserted, Instance: inst}
}

// Resolver tracks the active drag and turns drops into tree mutations.
type Resolver struct {
	tree   *Tree
	active *DragSource
}

// NewResolver creates a resolver that mutates tree.
func NewResolver(tree *Tree) *Resolver {
	return &Resolver{tree: tree}
}

// Start records src as the active drag, replacing any previous one.
func (r *Resolver) Start(src DragSource) {
	r.active = &src
}

// Active returns the current drag source, if a drag is in progress.
func (r *Resolver) Active() (DragSource, bool) {
	if r.active == nil {
		return DragSource{}, false
	}
	return *r.active, true
}

// Cancel abandons the active drag without touching the tree.
func (r *Resolver) Cancel() {
	r.active = nil
}

// Drop ends the active drag on target. The active source is cleared whatever
// the outcome.
func (r *Resolver) Drop(target DropTarget) Placement {
	defer r.Cancel()

	if r.active == nil {
		return Placement{Outcome: OutcomeCancelled}
	}
	return Resolve(r.tree, *r.active, target)
}
