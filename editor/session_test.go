package editor

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/pthm/pagecraft"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		TreeOptions: []pagecraft.TreeOption{pagecraft.WithIDSource(pagecraft.SequentialIDs("c"))},
	})
}

func drop(s *Session, kind pagecraft.Kind, target pagecraft.DropTarget) pagecraft.Placement {
	s.StartDrag(pagecraft.FromPalette(kind))
	return s.Drop(target)
}

func TestSessionDropSelectsInserted(t *testing.T) {
	s := newTestSession(t)

	p := drop(s, pagecraft.KindButton, pagecraft.RootTarget())
	if p.Outcome != pagecraft.OutcomeInserted {
		t.Fatalf("Outcome = %v, want inserted", p.Outcome)
	}

	st := s.Snapshot()
	if st.Selected != p.Instance.ID() {
		t.Errorf("Selected = %q, want %q", st.Selected, p.Instance.ID())
	}
	if st.Dragging {
		t.Error("drag should end on drop")
	}
	if st.Tree.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Tree.Len())
	}
}

func TestSessionDropRejected(t *testing.T) {
	s := newTestSession(t)
	drop(s, pagecraft.KindText, pagecraft.RootTarget())

	p := drop(s, pagecraft.KindButton, pagecraft.ContainerTarget("c-1"))
	if p.Outcome != pagecraft.OutcomeCancelled || !pagecraft.IsNotAContainer(p.Err) {
		t.Fatalf("Drop() = %v, %v; want cancelled with ErrNotAContainer", p.Outcome, p.Err)
	}
	if st := s.Snapshot(); st.Selected != "c-1" || st.Tree.Len() != 1 {
		t.Errorf("rejected drop changed state: selected=%q len=%d", st.Selected, st.Tree.Len())
	}
}

func TestSessionCancelDrag(t *testing.T) {
	s := newTestSession(t)
	s.StartDrag(pagecraft.FromPalette(pagecraft.KindImage))

	if st := s.Snapshot(); !st.Dragging || st.DragSource != "palette:image" {
		t.Fatalf("Snapshot() = %+v, want active palette:image drag", st)
	}

	s.CancelDrag()
	if p := s.Drop(pagecraft.RootTarget()); p.Outcome != pagecraft.OutcomeCancelled {
		t.Errorf("drop after cancel = %v, want cancelled", p.Outcome)
	}
	if s.Snapshot().Tree.Len() != 0 {
		t.Error("cancelled drag inserted an instance")
	}
}

func TestSessionSelect(t *testing.T) {
	s := newTestSession(t)
	drop(s, pagecraft.KindText, pagecraft.RootTarget())
	drop(s, pagecraft.KindText, pagecraft.RootTarget())

	if err := s.Select("c-1"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got := s.Snapshot().Selected; got != "c-1" {
		t.Errorf("Selected = %q, want c-1", got)
	}

	if err := s.Select("missing"); !pagecraft.IsNotFound(err) {
		t.Errorf("Select(missing) error = %v, want ErrNotFound", err)
	}
	if got := s.Snapshot().Selected; got != "c-1" {
		t.Errorf("failed select changed selection to %q", got)
	}

	s.ClearSelection()
	if got := s.Snapshot().Selected; got != "" {
		t.Errorf("Selected = %q after clear", got)
	}
}

func TestSessionUpdateProperties(t *testing.T) {
	s := newTestSession(t)
	drop(s, pagecraft.KindButton, pagecraft.RootTarget())

	if err := s.UpdateProperties("c-1", pagecraft.Props{"text": pagecraft.String("Buy")}); err != nil {
		t.Fatalf("UpdateProperties() error = %v", err)
	}

	inst := s.Snapshot().Tree.Find("c-1")
	if v, _ := inst.Prop("text"); !v.Equal(pagecraft.String("Buy")) {
		t.Errorf("text = %#v, want Buy", v)
	}
	if v, _ := inst.Prop("backgroundColor"); !v.Equal(pagecraft.String("#6366f1")) {
		t.Errorf("untouched key changed: %#v", v)
	}

	if err := s.UpdateProperties("nope", pagecraft.Props{}); !pagecraft.IsNotFound(err) {
		t.Errorf("UpdateProperties(nope) error = %v, want ErrNotFound", err)
	}
}

func TestSessionDeletePrunesSelection(t *testing.T) {
	s := newTestSession(t)
	drop(s, pagecraft.KindContainer, pagecraft.RootTarget())
	drop(s, pagecraft.KindImage, pagecraft.ContainerTarget("c-1"))

	if got := s.Snapshot().Selected; got != "c-2" {
		t.Fatalf("Selected = %q, want c-2", got)
	}

	if !s.Delete("c-1") {
		t.Fatal("Delete(c-1) = false")
	}
	st := s.Snapshot()
	if st.Selected != "" {
		t.Errorf("selection inside removed subtree survived: %q", st.Selected)
	}
	if st.Tree.Len() != 0 {
		t.Errorf("Len() = %d, want 0", st.Tree.Len())
	}
	if s.Delete("c-1") {
		t.Error("second Delete should report nothing removed")
	}
}

func TestSessionSnapshotIsCopy(t *testing.T) {
	s := newTestSession(t)
	drop(s, pagecraft.KindText, pagecraft.RootTarget())

	st := s.Snapshot()
	s.Delete("c-1")

	if st.Tree.Find("c-1") == nil {
		t.Error("snapshot observed a later delete")
	}
}

func TestSessionExport(t *testing.T) {
	s := NewSession(Options{
		Title:  "Shop",
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	drop(s, pagecraft.KindButton, pagecraft.RootTarget())

	b := s.Export()
	if !strings.Contains(b.HTML, "<title>Shop</title>") {
		t.Error("title option not applied")
	}
	if !strings.Contains(b.HTML, ">Button</button>") {
		t.Error("dropped button missing from export")
	}
}

func TestSessionLogsMutations(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(Options{
		Logger:      slog.New(slog.NewTextHandler(&buf, nil)),
		TreeOptions: []pagecraft.TreeOption{pagecraft.WithIDSource(pagecraft.SequentialIDs("c"))},
	})

	drop(s, pagecraft.KindSlider, pagecraft.RootTarget())
	s.Delete("c-1")

	out := buf.String()
	for _, want := range []string{`msg="component inserted"`, "kind=slider", `msg="component deleted"`, "id=c-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestSessionConcurrentUse(t *testing.T) {
	s := newTestSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s.StartDrag(pagecraft.FromPalette(pagecraft.KindText))
				s.Drop(pagecraft.RootTarget())
				s.Snapshot()
				s.Export()
			}
		}()
	}
	wg.Wait()

	// Another goroutine may replace or consume the drag between StartDrag
	// and Drop, so only an upper bound holds.
	if n := s.Snapshot().Tree.Len(); n == 0 || n > 160 {
		t.Errorf("Len() = %d, want 1..160", n)
	}
}
