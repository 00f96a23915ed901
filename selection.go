package pagecraft

// Selection is the editor's pointer to at most one selected instance. It is
// owned by the editor, not by the Tree.
type Selection struct {
	id string
}

// Select points the selection at id.
func (s *Selection) Select(id string) {
	s.id = id
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.id = ""
}

// ID returns the selected id and whether anything is selected.
func (s *Selection) ID() (string, bool) {
	return s.id, s.id != ""
}

// Is reports whether id is the selected instance.
func (s *Selection) Is(id string) bool {
	return s.id != "" && s.id == id
}

// Prune clears the selection if it no longer names an instance in tree.
// Call it after a delete so removing an ancestor also drops the selection.
func (s *Selection) Prune(tree *Tree) {
	if s.id != "" && !tree.Contains(s.id) {
		s.id = ""
	}
}
