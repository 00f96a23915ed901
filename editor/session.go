// Package editor hosts an interactive page-building session behind an HTTP
// surface.
//
// A Session owns one component tree and serializes every operation on it:
//
//	s := editor.NewSession(editor.Options{})
//	s.StartDrag(pagecraft.FromPalette(pagecraft.KindButton))
//	p := s.Drop(pagecraft.RootTarget())
//
// Handler exposes the session as JSON and HTML endpoints.
package editor

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/a-h/templ"
	"github.com/pthm/pagecraft"
	"github.com/pthm/pagecraft/lib/generator"
)

// Options configures a Session.
type Options struct {
	// Logger receives one record per mutation. Defaults to slog.Default().
	Logger *slog.Logger

	// Title is the generated page title.
	Title string

	// TreeOptions are passed to pagecraft.NewTree.
	TreeOptions []pagecraft.TreeOption
}

// State is a point-in-time copy of a session.
type State struct {
	Tree       *pagecraft.Tree `json:"tree"`
	Selected   string          `json:"selected,omitempty"`
	Dragging   bool            `json:"dragging"`
	DragSource string          `json:"dragSource,omitempty"`
}

// Session is a single editing session. It is safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	tree      *pagecraft.Tree
	resolver  *pagecraft.Resolver
	selection pagecraft.Selection
	gen       *generator.Generator
	log       *slog.Logger
}

// NewSession creates a session with an empty tree.
func NewSession(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	tree := pagecraft.NewTree(opts.TreeOptions...)
	return &Session{
		tree:     tree,
		resolver: pagecraft.NewResolver(tree),
		gen:      generator.New(generator.Options{Title: opts.Title}),
		log:      log,
	}
}

// StartDrag begins a drag from src, replacing any drag in progress.
func (s *Session) StartDrag(src pagecraft.DragSource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolver.Start(src)
	s.log.Debug("drag started", "source", src.String())
}

// CancelDrag abandons the active drag.
func (s *Session) CancelDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolver.Cancel()
	s.log.Debug("drag cancelled")
}

// Drop ends the active drag on target. An inserted instance becomes the
// selection.
func (s *Session) Drop(target pagecraft.DropTarget) pagecraft.Placement {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, _ := s.resolver.Active()
	p := s.resolver.Drop(target)

	switch {
	case p.Err != nil:
		s.log.Warn("drop rejected", "source", src.String(), "target", target.String(), "error", p.Err)
	case p.Outcome == pagecraft.OutcomeInserted:
		// Callers get a copy detached from the live tree.
		p.Instance = s.tree.Clone().Find(p.Instance.ID())
		s.selection.Select(p.Instance.ID())
		s.log.Info("component inserted",
			"id", p.Instance.ID(),
			"kind", p.Instance.Kind().String(),
			"target", target.String())
	default:
		s.log.Debug("drop", "outcome", p.Outcome.String(), "target", target.String())
	}
	return p
}

// Select marks id as the selected instance.
func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tree.Contains(id) {
		return fmt.Errorf("select %q: %w", id, pagecraft.ErrNotFound)
	}
	s.selection.Select(id)
	s.log.Debug("selected", "id", id)
	return nil
}

// ClearSelection deselects everything.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Clear()
}

// UpdateProperties merges patch into the instance's properties.
func (s *Session) UpdateProperties(id string, patch pagecraft.Props) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tree.UpdateProperties(id, patch); err != nil {
		return err
	}
	s.log.Info("properties updated", "id", id, "keys", patch.Keys())
	return nil
}

// Delete removes id and its subtree. It reports whether anything was removed.
func (s *Session) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tree.Remove(id) {
		return false
	}
	s.selection.Prune(s.tree)
	s.log.Info("component deleted", "id", id)
	return true
}

// Contains reports whether id is in the tree.
func (s *Session) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.Contains(id)
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{Tree: s.tree.Clone()}
	st.Selected, _ = s.selection.ID()
	if src, ok := s.resolver.Active(); ok {
		st.Dragging = true
		st.DragSource = src.String()
	}
	return st
}

// Export generates the static site for the current tree.
func (s *Session) Export() generator.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.gen.Generate(s.tree)
	s.log.Info("site generated", "components", s.tree.Len())
	return b
}

// Fragment renders one instance and its subtree. The markup is produced
// under the lock, so the component stays valid after later mutations.
func (s *Session) Fragment(id string) (templ.Component, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst := s.tree.Find(id)
	if inst == nil {
		return nil, fmt.Errorf("fragment %q: %w", id, pagecraft.ErrNotFound)
	}
	return generator.FragmentComponent(inst), nil
}
