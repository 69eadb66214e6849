package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"journalfetch/internal/cache"
	"journalfetch/internal/fetcher"
	"journalfetch/internal/logging"
	"journalfetch/internal/model"
	"journalfetch/internal/pdfinfo"
	"journalfetch/internal/viewer"
)

// JournalService drives the single-screen session: download, view and delete
// of at most one tracked journal.
type JournalService interface {
	// Session returns a snapshot of the current session state.
	Session() model.Session

	// Download fetches id, stores it and makes it the tracked document.
	// On failure the previously tracked document, if any, stays tracked.
	Download(ctx context.Context, id string) (*model.CachedDocument, error)

	// View hands the tracked document to the native viewer.
	View(ctx context.Context) error

	// CachedPath returns the tracked document's local path for streaming.
	CachedPath() (string, error)

	// Delete removes the tracked document and forgets it.
	Delete(ctx context.Context) error
}

// journalService is the session controller. Actions are serialised so the
// session behaves like a screen where one button is pressed at a time.
type journalService struct {
	fetcher  fetcher.Fetcher
	cache    cache.Cache
	launcher viewer.Launcher
	pages    func([]byte) (int, error)
	now      func() time.Time
	log      *slog.Logger

	mu      sync.Mutex
	session model.Session
}

// JournalOption customises NewJournalService.
type JournalOption func(*journalService)

func WithLogger(l *slog.Logger) JournalOption {
	return func(s *journalService) { s.log = l }
}

// WithPageCounter overrides the PDF page counter.
func WithPageCounter(f func([]byte) (int, error)) JournalOption {
	return func(s *journalService) { s.pages = f }
}

// NewJournalService constructs the session controller.
func NewJournalService(f fetcher.Fetcher, c cache.Cache, l viewer.Launcher, opts ...JournalOption) JournalService {
	s := &journalService{
		fetcher:  f,
		cache:    c,
		launcher: l,
		pages:    pdfinfo.PageCount,
		now:      time.Now,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *journalService) Session() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot copies the session so callers never share the tracked document.
func (s *journalService) snapshot() model.Session {
	out := model.Session{Identifier: s.session.Identifier}
	if s.session.Cached != nil {
		doc := *s.session.Cached
		out.Cached = &doc
	}
	return out
}

func (s *journalService) Download(ctx context.Context, id string) (*model.CachedDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Identifier = id

	fetched, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := s.cache.Store(ctx, id, fetched.Data)
	if err != nil {
		return nil, err
	}

	doc := &model.CachedDocument{
		Identifier: id,
		LocalPath:  path,
		Size:       int64(len(fetched.Data)),
		FetchedAt:  s.now().UTC(),
	}
	if n, err := s.pages(fetched.Data); err != nil {
		s.log.WarnContext(ctx, "journal_page_count_failed", slog.String("identifier", id), slog.String("error", err.Error()))
	} else {
		doc.Pages = n
	}

	s.session.Cached = doc
	s.log.InfoContext(ctx, "journal_cached",
		slog.String("identifier", id),
		slog.String("path", path),
		slog.Int("pages", doc.Pages),
	)

	out := *doc
	return &out, nil
}

func (s *journalService) View(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Cached == nil {
		return ErrNoCachedDocument
	}
	if !s.launcher.Available() {
		return ErrUnsupportedViewer
	}
	if err := s.launcher.Open(ctx, s.session.Cached.LocalPath); err != nil {
		s.log.WarnContext(ctx, "journal_view_failed", slog.String("path", s.session.Cached.LocalPath), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (s *journalService) CachedPath() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Cached == nil {
		return "", ErrNoCachedDocument
	}
	return s.session.Cached.LocalPath, nil
}

func (s *journalService) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Cached == nil {
		return ErrNoCachedDocument
	}
	// The path stays tracked when removal fails so the user can retry.
	if err := s.cache.Remove(ctx, s.session.Cached.LocalPath); err != nil {
		return err
	}
	s.session.Cached = nil
	return nil
}
