package model

import "time"

// PDFContentType is the only media type accepted from the journal endpoint.
const PDFContentType = "application/pdf"

// Fetched is the raw result of a successful journal download.
type Fetched struct {
	Identifier  string
	URL         string
	ContentType string
	StatusCode  int
	Data        []byte
}

// CachedDocument is the local copy of a fetched journal.
// It is never persisted; a restart forgets it while the file stays on disk.
type CachedDocument struct {
	Identifier string    `json:"identifier"`
	LocalPath  string    `json:"local_path"`
	Size       int64     `json:"size"`
	Pages      int       `json:"pages,omitempty"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// Session is the state held by the top-level controller for the single screen.
type Session struct {
	Identifier string          `json:"identifier"`
	Cached     *CachedDocument `json:"cached,omitempty"`
}

// CanView reports whether the view action is available.
func (s Session) CanView() bool { return s.Cached != nil }

// CanDelete reports whether the delete action is available.
func (s Session) CanDelete() bool { return s.Cached != nil }
