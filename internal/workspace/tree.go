package workspace

import (
	"time"

	"github.com/google/uuid"
)

// AddFolder creates a folder under parentID (empty string for root) and
// returns its id. A parentID that resolves to nothing places the folder at
// the root so the tree invariant holds regardless of caller bookkeeping.
func (w *Workspace) AddFolder(name, parentID string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	parentID = w.resolveParent(parentID)
	id := uuid.NewString()
	now := time.Now()
	w.folders[id] = &Folder{
		ID:        id,
		Name:      name,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	w.persist()
	return id
}

// FileMeta describes an uploaded file before its bytes arrive.
type FileMeta struct {
	Name      string
	MediaType string
	Size      int64
}

// AddFile registers a file under parentID and returns its id. Content may be
// attached later via AttachFileContent once ingestion completes.
func (w *Workspace) AddFile(meta FileMeta, parentID string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	parentID = w.resolveParent(parentID)
	id := uuid.NewString()
	now := time.Now()
	w.files[id] = &File{
		ID:        id,
		Name:      meta.Name,
		MediaType: meta.MediaType,
		Size:      meta.Size,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	w.persist()
	return id
}

// AttachFileContent delivers the ingested bytes for a file. It is the
// completion half of the asynchronous ingestion boundary. Content is write-
// once: a file that already has content, or an unknown id, is left untouched.
func (w *Workspace) AttachFileContent(id string, content []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f, ok := w.files[id]
	if !ok || f.Content != nil {
		return
	}
	f.Content = content
	f.Size = int64(len(content))
	f.UpdatedAt = time.Now()
	w.log.Debug().Str("file", id).Int("bytes", len(content)).Msg("content attached")
	w.persist()
}

// RenameFile updates a file's display name.
func (w *Workspace) RenameFile(id, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f, ok := w.files[id]
	if !ok {
		return
	}
	f.Name = name
	f.UpdatedAt = time.Now()
	w.persist()
}

// RenameFolder updates a folder's name.
func (w *Workspace) RenameFolder(id, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f, ok := w.folders[id]
	if !ok {
		return
	}
	f.Name = name
	f.UpdatedAt = time.Now()
	w.persist()
}

// MoveFile reparents a file. Unknown file or target ids are a no-op.
func (w *Workspace) MoveFile(id, newParentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f, ok := w.files[id]
	if !ok {
		return
	}
	if newParentID != "" {
		if _, ok := w.folders[newParentID]; !ok {
			return
		}
	}
	f.ParentID = newParentID
	f.UpdatedAt = time.Now()
	w.persist()
}

// MoveFolder reparents a folder. Moves that would make a folder its own
// ancestor are silently ignored, as are unknown ids.
func (w *Workspace) MoveFolder(id, newParentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f, ok := w.folders[id]
	if !ok {
		return
	}
	if newParentID == id {
		return
	}
	if newParentID != "" {
		if _, ok := w.folders[newParentID]; !ok {
			return
		}
		if w.isDescendant(newParentID, id) {
			return
		}
	}
	f.ParentID = newParentID
	f.UpdatedAt = time.Now()
	w.persist()
}

// DeleteFile removes a file, cascading over any live document bound to it.
// Unknown ids are a no-op.
func (w *Workspace) DeleteFile(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.files[id]; !ok {
		return
	}
	w.deleteFileLocked(id)
	w.persist()
}

// DeleteFolder removes a folder and everything transitively inside it. The
// cascade collects the full deletion set first, then applies it, so the tree
// invariant holds at every intermediate step.
func (w *Workspace) DeleteFolder(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.folders[id]; !ok {
		return
	}
	folderSet, fileSet := w.collectCascade(id)
	for _, fid := range fileSet {
		w.deleteFileLocked(fid)
	}
	for _, fid := range folderSet {
		delete(w.folders, fid)
	}
	w.log.Debug().Str("folder", id).
		Int("folders", len(folderSet)).Int("files", len(fileSet)).
		Msg("folder cascade deleted")
	w.persist()
}

// ChildFolders lists the folders directly under parentID, sorted by name.
func (w *Workspace) ChildFolders(parentID string) []*Folder {
	var out []*Folder
	for _, f := range w.Folders() {
		if f.ParentID == parentID {
			out = append(out, f)
		}
	}
	return out
}

// ChildFiles lists the files directly under parentID, sorted by name.
func (w *Workspace) ChildFiles(parentID string) []*File {
	var out []*File
	for _, f := range w.Files() {
		if f.ParentID == parentID {
			out = append(out, f)
		}
	}
	return out
}

// resolveParent maps unknown parent ids to the root.
func (w *Workspace) resolveParent(parentID string) string {
	if parentID == "" {
		return ""
	}
	if _, ok := w.folders[parentID]; !ok {
		return ""
	}
	return parentID
}

// isDescendant reports whether folder id sits below ancestor in the tree,
// walking the parent chain of id.
func (w *Workspace) isDescendant(id, ancestor string) bool {
	for cur := w.folders[id]; cur != nil; cur = w.folders[cur.ParentID] {
		if cur.ID == ancestor {
			return true
		}
		if cur.ParentID == "" {
			return false
		}
	}
	return false
}

// collectCascade gathers, depth-first, every folder and file transitively
// contained in root (root itself included in the folder set).
func (w *Workspace) collectCascade(root string) (folders, files []string) {
	stack := []string{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		folders = append(folders, cur)
		for id, f := range w.folders {
			if f.ParentID == cur {
				stack = append(stack, id)
			}
		}
		for id, f := range w.files {
			if f.ParentID == cur {
				files = append(files, id)
			}
		}
	}
	return folders, files
}

// deleteFileLocked removes the file and destroys any document bound to it,
// auto-saving and closing first. Callers hold w.mu.
func (w *Workspace) deleteFileLocked(id string) {
	if docID, ok := w.docByFile[id]; ok {
		w.closeDocumentLocked(docID)
		w.removeFromAllGroupsLocked(docID)
		delete(w.documents, docID)
		delete(w.docByFile, id)
	}
	delete(w.files, id)
}
