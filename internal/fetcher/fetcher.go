package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html/charset"

	"journalfetch/internal/config"
	"journalfetch/internal/logging"
	"journalfetch/internal/metrics"
	"journalfetch/internal/model"
)

// Every fetch failure is a "not found" for the user; the wrapped causes keep
// them apart in logs and metrics.
var (
	ErrNotFound        = errors.New("journal not found")
	ErrEmptyIdentifier = fmt.Errorf("%w: empty identifier", ErrNotFound)
	ErrTransport       = fmt.Errorf("%w: transport failure", ErrNotFound)
	ErrContentType     = fmt.Errorf("%w: unexpected content type", ErrNotFound)
	ErrBadStatus       = fmt.Errorf("%w: unexpected status", ErrNotFound)
	ErrTooLarge        = fmt.Errorf("%w: document too large", ErrNotFound)
)

// htmlSniffLimit bounds how much of a non-PDF body is parsed for its title.
const htmlSniffLimit = 64 << 10

// Fetcher retrieves a journal document by identifier.
type Fetcher interface {
	// Fetch performs a single GET of <base-url>/<id>.pdf and returns the body
	// only when the response declares application/pdf.
	Fetch(ctx context.Context, id string) (*model.Fetched, error)
}

type httpFetcher struct {
	client   *http.Client
	baseURL  string
	maxBytes int64
	ua       string
	log      *slog.Logger
	metrics  *metrics.Journal
}

// Option customises the HTTP fetcher.
type Option func(*httpFetcher)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *httpFetcher) { f.client = c }
}

// WithLogger sets the logger used to report failure causes.
func WithLogger(l *slog.Logger) Option {
	return func(f *httpFetcher) { f.log = l }
}

// WithMetrics records each outcome on m.
func WithMetrics(m *metrics.Journal) Option {
	return func(f *httpFetcher) { f.metrics = m }
}

// New builds a Fetcher for the configured journal endpoint.
// No retries are performed; a zero timeout leaves the transport default.
func New(cfg config.JournalConfig, opts ...Option) Fetcher {
	f := &httpFetcher{
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   time.Duration(cfg.TimeoutSec) * time.Second,
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		maxBytes: cfg.MaxBytes,
		ua:       cfg.UserAgent,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the remote location for id. The identifier is interpolated as-is.
func URL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/" + id + ".pdf"
}

func (f *httpFetcher) Fetch(ctx context.Context, id string) (*model.Fetched, error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("journal.id", id))

	if id == "" {
		f.fail(ctx, "empty_id", id, "", ErrEmptyIdentifier)
		return nil, ErrEmptyIdentifier
	}
	url := URL(f.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTransport, err)
		f.fail(ctx, "transport", id, url, err)
		return nil, err
	}
	if f.ua != "" {
		req.Header.Set("User-Agent", f.ua)
	}
	req.Header.Set("Accept", model.PDFContentType)

	resp, err := f.client.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTransport, err)
		f.fail(ctx, "transport", id, url, err)
		return nil, err
	}
	defer resp.Body.Close()

	ct := resp.Header.Get("Content-Type")
	if !isPDF(ct) {
		attrs := []any{slog.Int("status", resp.StatusCode), slog.String("content_type", ct)}
		if title := pageTitle(resp.Body, ct); title != "" {
			attrs = append(attrs, slog.String("page_title", title))
		}
		err := fmt.Errorf("%w: %q", ErrContentType, ct)
		f.fail(ctx, "content_type", id, url, err, attrs...)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
		f.fail(ctx, "status", id, url, err, slog.Int("status", resp.StatusCode))
		return nil, err
	}

	var body io.Reader = resp.Body
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		err = fmt.Errorf("%w: read body: %w", ErrTransport, err)
		f.fail(ctx, "transport", id, url, err)
		return nil, err
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		err := fmt.Errorf("%w: over %d bytes", ErrTooLarge, f.maxBytes)
		f.fail(ctx, "too_large", id, url, err)
		return nil, err
	}

	f.metrics.Fetch("ok")
	span.SetAttributes(attribute.Int("journal.bytes", len(data)))
	f.log.InfoContext(ctx, "journal_fetched",
		slog.String("identifier", id),
		slog.String("url", url),
		slog.Int("bytes", len(data)),
	)

	return &model.Fetched{
		Identifier:  id,
		URL:         url,
		ContentType: ct,
		StatusCode:  resp.StatusCode,
		Data:        data,
	}, nil
}

func (f *httpFetcher) fail(ctx context.Context, result, id, url string, err error, attrs ...any) {
	f.metrics.Fetch(result)
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, result)
	attrs = append([]any{
		slog.String("identifier", id),
		slog.String("url", url),
		slog.String("cause", result),
		slog.String("error", err.Error()),
	}, attrs...)
	f.log.WarnContext(ctx, "journal_fetch_failed", attrs...)
}

// isPDF compares the media type only, so "application/pdf; charset=binary" passes.
func isPDF(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.EqualFold(mt, model.PDFContentType)
}

// pageTitle returns the <title> of an HTML body, or "" for anything else.
func pageTitle(body io.Reader, contentType string) string {
	mt, _, _ := mime.ParseMediaType(contentType)
	if mt != "text/html" && mt != "application/xhtml+xml" {
		return ""
	}
	r, err := charset.NewReader(io.LimitReader(body, htmlSniffLimit), contentType)
	if err != nil {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
