package workspace

import "time"

// MainGroupID is the reserved id of the group that always exists and can
// never be deleted.
const MainGroupID = "main"

// File is an uploaded document source stored in the content tree. Content may
// be nil until ingestion completes; once set it is never rewritten.
type File struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MediaType string    `json:"type"`
	Size      int64     `json:"size"`
	Content   []byte    `json:"content,omitempty"`
	ParentID  string    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Folder is a node in the content tree. An empty ParentID means the folder
// sits at the root. The parent chain is always acyclic.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Group is a named, ordered collection of document ids. Membership is
// advisory: deleting a group never deletes its documents, and a closed
// document keeps its group memberships.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Documents []string  `json:"documents"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Document is a live viewing/editing session bound to one File. At most one
// Document exists per File at any time.
type Document struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	FileID      string       `json:"file_id"`
	Annotations []Annotation `json:"annotations"`
	CurrentPage int          `json:"current_page"`
	// TotalPages is 0 until the rendering collaborator reports a count.
	TotalPages int       `json:"total_pages"`
	Zoom       float64   `json:"zoom"`
	Rotation   int       `json:"rotation"`
	Dirty      bool      `json:"dirty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Annotation kinds.
const (
	KindHighlight = "highlight"
	KindPencil    = "pencil"
	KindText      = "text"
	KindEraser    = "eraser"
)

// Point is a coordinate in unrotated page-local document space (screen
// coordinates with the zoom factor divided out).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Annotation is a mark on one page of a Document. Stroke kinds (pencil,
// highlight) carry Points; text annotations carry Text plus a single Anchor.
type Annotation struct {
	ID        string    `json:"id"`
	Kind      string    `json:"type"`
	Color     string    `json:"color"`
	Thickness float64   `json:"thickness"`
	Points    []Point   `json:"points,omitempty"`
	Text      string    `json:"text,omitempty"`
	Anchor    *Point    `json:"position,omitempty"`
	Page      int       `json:"page"`
	CreatedAt time.Time `json:"created_at"`
}

// Zoom and rotation bounds applied by the session manager.
const (
	MinZoom = 0.5
	MaxZoom = 3.0
)
