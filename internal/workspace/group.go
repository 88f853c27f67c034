package workspace

import (
	"time"

	"github.com/google/uuid"
)

// AddGroup creates a named group and returns its id.
func (w *Workspace) AddGroup(name string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := uuid.NewString()
	now := time.Now()
	w.groups[id] = &Group{
		ID:        id,
		Name:      name,
		Documents: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	w.persist()
	return id
}

// DeleteGroup removes a group. The reserved main group and unknown ids are
// left alone. If the deleted group was the active selection, the selection
// resets to the main group. Member documents are never deleted.
func (w *Workspace) DeleteGroup(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if id == MainGroupID {
		return
	}
	if _, ok := w.groups[id]; !ok {
		return
	}
	delete(w.groups, id)
	if w.ui.ActiveGroup == id {
		w.ui.ActiveGroup = MainGroupID
	}
	w.persist()
}

// AddDocumentToGroup records a document id in a group. Adding an id that is
// already a member is a no-op.
func (w *Workspace) AddDocumentToGroup(groupID, documentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.addToGroupLocked(groupID, documentID) {
		w.persist()
	}
}

// RemoveDocumentFromGroup drops a document id from a group's membership.
func (w *Workspace) RemoveDocumentFromGroup(groupID, documentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	g, ok := w.groups[groupID]
	if !ok {
		return
	}
	for i, id := range g.Documents {
		if id == documentID {
			g.Documents = append(g.Documents[:i], g.Documents[i+1:]...)
			g.UpdatedAt = time.Now()
			w.persist()
			return
		}
	}
}

// SetActiveGroup selects the group newly opened documents join. Unknown ids
// fall back to the main group.
func (w *Workspace) SetActiveGroup(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.groups[id]; !ok {
		id = MainGroupID
	}
	w.ui.ActiveGroup = id
	w.persist()
}

// addToGroupLocked reports whether the membership actually changed. Callers
// hold w.mu.
func (w *Workspace) addToGroupLocked(groupID, documentID string) bool {
	g, ok := w.groups[groupID]
	if !ok {
		return false
	}
	for _, id := range g.Documents {
		if id == documentID {
			return false
		}
	}
	g.Documents = append(g.Documents, documentID)
	g.UpdatedAt = time.Now()
	return true
}

// removeFromAllGroupsLocked strips a destroyed document's id from every
// group. Callers hold w.mu.
func (w *Workspace) removeFromAllGroupsLocked(documentID string) {
	for _, g := range w.groups {
		for i, id := range g.Documents {
			if id == documentID {
				g.Documents = append(g.Documents[:i], g.Documents[i+1:]...)
				g.UpdatedAt = time.Now()
				break
			}
		}
	}
}
