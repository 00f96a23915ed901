package editor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pthm/pagecraft"
	"github.com/pthm/pagecraft/lib/bundle"
)

// errBadRequest marks malformed forms and bodies.
var errBadRequest = errors.New("bad request")

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithArchiveName sets the file name offered by GET /export.
func WithArchiveName(name string) HandlerOption {
	return func(h *Handler) {
		if name != "" {
			h.archiveName = name
		}
	}
}

// Handler serves a Session over HTTP.
//
// Mutating requests must carry HX-Request: true. Mount the handler with its
// prefix stripped:
//
//	mux.Handle("/api/", http.StripPrefix("/api", h))
type Handler struct {
	session     *Session
	encoder     *pagecraft.Encoder
	mux         *http.ServeMux
	archiveName string

	// OnError is called when an operation fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewHandler creates a handler for s. key signs drag tokens.
func NewHandler(s *Session, key []byte, opts ...HandlerOption) (*Handler, error) {
	enc, err := pagecraft.NewEncoder(key)
	if err != nil {
		return nil, fmt.Errorf("editor: create encoder: %w", err)
	}

	h := &Handler{
		session:     s,
		encoder:     enc,
		mux:         http.NewServeMux(),
		archiveName: bundle.ArchiveName,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		if pagecraft.IsNotFound(err) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		if pagecraft.IsInvalidToken(err) || errors.Is(err, errBadRequest) {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}

	h.routes()
	return h, nil
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /palette", h.handlePalette)
	h.mux.HandleFunc("GET /state", h.handleState)
	h.mux.HandleFunc("POST /drag", h.handleDrag)
	h.mux.HandleFunc("DELETE /drag", h.handleCancel)
	h.mux.HandleFunc("POST /drop", h.handleDrop)
	h.mux.HandleFunc("POST /select", h.handleSelect)
	h.mux.HandleFunc("PATCH /components/{id}", h.handleUpdate)
	h.mux.HandleFunc("DELETE /components/{id}", h.handleDelete)
	h.mux.HandleFunc("GET /components/{id}/fragment", h.handleFragment)
	h.mux.HandleFunc("GET /components/{id}/token", h.handleToken)
	h.mux.HandleFunc("GET /preview/{$}", h.handlePreview)
	h.mux.HandleFunc("GET /preview/styles.css", h.handlePreviewCSS)
	h.mux.HandleFunc("GET /preview/script.js", h.handlePreviewJS)
	h.mux.HandleFunc("GET /export", h.handleExport)
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// CSRF protection: mutating methods require HX-Request header
	if r.Method != http.MethodGet && r.Method != http.MethodHead && !IsHTMX(r) {
		http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
		return
	}
	h.mux.ServeHTTP(w, r)
}

// Session returns the session the handler serves.
func (h *Handler) Session() *Session {
	return h.session
}

// PaletteEntry is one draggable palette item.
type PaletteEntry struct {
	Kind        pagecraft.Kind `json:"kind"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Token       string         `json:"token"`
}

// PlacementResponse is the JSON body of POST /drop.
type PlacementResponse struct {
	Outcome  pagecraft.Outcome   `json:"outcome"`
	Instance *pagecraft.Instance `json:"instance,omitempty"`
	Error    string              `json:"error,omitempty"`
	Selected string              `json:"selected,omitempty"`
}

func (h *Handler) handlePalette(w http.ResponseWriter, r *http.Request) {
	palette := pagecraft.Palette()
	entries := make([]PaletteEntry, 0, len(palette))
	for _, spec := range palette {
		token, err := pagecraft.EncodeSource(h.encoder, pagecraft.FromPalette(spec.Kind))
		if err != nil {
			h.OnError(w, r, err)
			return
		}
		entries = append(entries, PaletteEntry{
			Kind:        spec.Kind,
			Label:       spec.Label,
			Description: spec.Description,
			Token:       token,
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) handleDrag(w http.ResponseWriter, r *http.Request) {
	token, err := formValue(r, "token")
	if err != nil {
		h.OnError(w, r, err)
		return
	}
	src, err := pagecraft.DecodeSource(h.encoder, token)
	if err != nil {
		h.OnError(w, r, err)
		return
	}
	h.session.StartDrag(src)
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	h.session.CancelDrag()
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) handleDrop(w http.ResponseWriter, r *http.Request) {
	raw, err := formValue(r, "target")
	if err != nil {
		h.OnError(w, r, err)
		return
	}

	p := h.session.Drop(parseTarget(raw))
	resp := PlacementResponse{Outcome: p.Outcome, Instance: p.Instance}
	if p.Err != nil {
		resp.Error = p.Err.Error()
	}
	if p.Outcome == pagecraft.OutcomeInserted {
		resp.Selected = p.Instance.ID()
		w.Header().Set("HX-Trigger", triggerHeader(EventChanged, map[string]any{"id": p.Instance.ID()}))
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseTarget maps the drop form value to a target: "" is outside any
// droppable region, "canvas" is the root, anything else a container id.
func parseTarget(raw string) pagecraft.DropTarget {
	switch raw {
	case "":
		return pagecraft.NoTarget()
	case "canvas":
		return pagecraft.RootTarget()
	}
	return pagecraft.ContainerTarget(raw)
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	id, err := formValue(r, "id")
	if err != nil {
		h.OnError(w, r, err)
		return
	}
	if id == "" {
		h.session.ClearSelection()
	} else if err := h.session.Select(id); err != nil {
		h.OnError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch pagecraft.Props
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.OnError(w, r, fmt.Errorf("%w: patch body: %w", errBadRequest, err))
		return
	}
	if err := h.session.UpdateProperties(id, patch); err != nil {
		h.OnError(w, r, err)
		return
	}
	w.Header().Set("HX-Trigger", triggerHeader(EventChanged, map[string]any{"id": id}))
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	// Deleting an absent id is a no-op: the state is returned unchanged and
	// no change event fires.
	if h.session.Delete(r.PathValue("id")) {
		w.Header().Set("HX-Trigger", triggerHeader(EventChanged, nil))
	}
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) handleFragment(w http.ResponseWriter, r *http.Request) {
	c, err := h.session.Fragment(r.PathValue("id"))
	if err != nil {
		h.OnError(w, r, err)
		return
	}
	if err := Render(w, r, c); err != nil {
		h.session.log.Error("render fragment", "error", err)
	}
}

func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.session.Contains(id) {
		h.OnError(w, r, fmt.Errorf("token %q: %w", id, pagecraft.ErrNotFound))
		return
	}
	token, err := pagecraft.EncodeSource(h.encoder, pagecraft.FromCanvas(id))
	if err != nil {
		h.OnError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	if err := Render(w, r, h.session.Export().Page()); err != nil {
		h.session.log.Error("render preview", "error", err)
	}
}

func (h *Handler) handlePreviewCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	fmt.Fprint(w, h.session.Export().CSS)
}

func (h *Handler) handlePreviewJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	fmt.Fprint(w, h.session.Export().JS)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := bundle.WriteZip(&buf, h.session.Export()); err != nil {
		h.OnError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.archiveName))
	w.Write(buf.Bytes())
}

func formValue(r *http.Request, key string) (string, error) {
	if err := r.ParseForm(); err != nil {
		return "", fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return r.PostForm.Get(key), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
