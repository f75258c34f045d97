package wizard

import "slices"

// FieldListEditor edits the Fields answer of one question. The list itself
// lives only in the session's answer store; the editor keeps a transient
// draft and the index being edited (-1 in add mode).
type FieldListEditor struct {
	session *Session
	id      string
	draft   Field
	editing int
}

// Entries returns the current list.
func (e *FieldListEditor) Entries() []Field {
	return e.session.answers.Fields(e.id)
}

// Draft returns the pending name/value pair.
func (e *FieldListEditor) Draft() Field {
	return e.draft
}

// Editing returns the index being edited, false in add mode.
func (e *FieldListEditor) Editing() (int, bool) {
	return e.editing, e.editing >= 0
}

// SetDraft replaces the pending name/value pair.
func (e *FieldListEditor) SetDraft(name, value string) {
	e.draft = Field{Name: name, Value: value}
}

// Add appends an entry and clears the draft. Empty names or values are
// rejected as-is; no trimming happens.
func (e *FieldListEditor) Add(name, value string) bool {
	if name == "" || value == "" {
		return false
	}
	entries := append(e.Entries(), Field{Name: name, Value: value})
	e.store(entries)
	e.ResetDraft()
	return true
}

// StartEdit loads entry i into the draft and switches to edit mode.
func (e *FieldListEditor) StartEdit(i int) bool {
	entries := e.Entries()
	if i < 0 || i >= len(entries) {
		return false
	}
	e.draft = entries[i]
	e.editing = i
	return true
}

// CommitEdit overwrites the edited entry with the draft and leaves edit mode.
func (e *FieldListEditor) CommitEdit() bool {
	if e.editing < 0 {
		return false
	}
	entries := e.Entries()
	if e.editing >= len(entries) {
		e.ResetDraft()
		return false
	}
	entries[e.editing] = e.draft
	e.store(entries)
	e.ResetDraft()
	return true
}

// Remove deletes entry i, shifting later entries down.
func (e *FieldListEditor) Remove(i int) bool {
	entries := e.Entries()
	if i < 0 || i >= len(entries) {
		return false
	}
	e.store(slices.Delete(entries, i, i+1))

	switch {
	case e.editing == i:
		e.ResetDraft()
	case e.editing > i:
		e.editing--
	}
	return true
}

// ResetDraft clears the draft and leaves edit mode without touching the list.
func (e *FieldListEditor) ResetDraft() {
	e.draft = Field{}
	e.editing = -1
}

func (e *FieldListEditor) store(entries []Field) {
	if entries == nil {
		entries = []Field{}
	}
	e.session.SaveAnswer(e.id, Fields(entries))
}
