package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"journalfetch/internal/logging"
	"journalfetch/internal/metrics"
	"journalfetch/internal/model"
	"journalfetch/internal/storage"
)

var (
	ErrWriteFailure  = errors.New("failed to store document")
	ErrDeleteFailure = errors.New("failed to delete document")
)

// Cache persists fetched journals in the app-private documents directory.
// It keeps no notion of a "current" document; callers track that.
type Cache interface {
	// Store writes data to the path derived from id, overwriting any previous file.
	Store(ctx context.Context, id string, data []byte) (string, error)
	// Remove deletes the file at localPath. A missing file is a failure.
	Remove(ctx context.Context, localPath string) error
}

type fileCache struct {
	dir     string
	local   storage.Storage
	mirror  storage.Storage
	log     *slog.Logger
	metrics *metrics.Journal
}

// Option customises the cache.
type Option func(*fileCache)

// WithMirror copies every stored journal to a secondary storage. Mirror
// failures are logged and never fail the caller.
func WithMirror(s storage.Storage) Option {
	return func(c *fileCache) { c.mirror = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *fileCache) { c.log = l }
}

func WithMetrics(m *metrics.Journal) Option {
	return func(c *fileCache) { c.metrics = m }
}

// New opens (creating if needed) the documents directory dir.
func New(dir string, opts ...Option) (Cache, error) {
	local, err := storage.NewLocal(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	c := &fileCache{dir: abs, local: local, log: logging.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Key is the storage key for a journal identifier.
func Key(id string) string {
	return id + ".pdf"
}

func (c *fileCache) Store(ctx context.Context, id string, data []byte) (string, error) {
	key := Key(id)
	info, err := c.local.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: model.PDFContentType,
	})
	c.metrics.CacheOp("store", err)
	if err != nil {
		c.log.ErrorContext(ctx, "journal_store_failed", slog.String("identifier", id), slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	c.log.InfoContext(ctx, "journal_stored",
		slog.String("identifier", id),
		slog.String("path", info.Location),
		slog.Int64("size", info.Size),
	)

	if c.mirror != nil {
		_, mErr := c.mirror.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
			Size:        int64(len(data)),
			ContentType: model.PDFContentType,
			Metadata:    map[string]string{"journal-id": id},
		})
		c.metrics.CacheOp("mirror", mErr)
		if mErr != nil {
			c.log.WarnContext(ctx, "journal_mirror_failed", slog.String("identifier", id), slog.String("error", mErr.Error()))
		}
	}
	return info.Location, nil
}

func (c *fileCache) Remove(ctx context.Context, localPath string) error {
	err := c.remove(ctx, localPath)
	c.metrics.CacheOp("remove", err)
	if err != nil {
		c.log.WarnContext(ctx, "journal_remove_failed", slog.String("path", localPath), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", ErrDeleteFailure, err)
	}
	c.log.InfoContext(ctx, "journal_removed", slog.String("path", localPath))
	return nil
}

func (c *fileCache) remove(ctx context.Context, localPath string) error {
	key, err := c.key(localPath)
	if err != nil {
		return err
	}
	if err := c.local.Delete(ctx, key); err != nil {
		return err
	}
	if c.mirror != nil {
		if mErr := c.mirror.Delete(ctx, key); mErr != nil && !errors.Is(mErr, storage.ErrNotExist) {
			c.log.WarnContext(ctx, "journal_mirror_delete_failed", slog.String("key", key), slog.String("error", mErr.Error()))
		}
	}
	return nil
}

// key maps an absolute path inside the documents directory back to its storage key.
func (c *fileCache) key(localPath string) (string, error) {
	abs, err := filepath.Abs(localPath)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(c.dir, abs)
	if err != nil || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %s is outside %s", storage.ErrInvalidKey, localPath, c.dir)
	}
	return rel, nil
}
