package gitmoji

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/commitwiz/commitwiz/internal/log"
	"github.com/commitwiz/commitwiz/pkg/convcommit"
)

const (
	catalogURL   = "https://gitmoji.dev/api/gitmojis"
	fetchTimeout = 10 * time.Second
)

// ErrCatalogUnavailable means the catalog could not be fetched or parsed.
// The wizard stays usable without emojis when it sees this error.
var ErrCatalogUnavailable = errors.New("gitmoji catalog unavailable")

// Record is one catalog entry
type Record struct {
	Emoji       string `json:"emoji"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Marker returns the header token for the configured format
func (r Record) Marker(format convcommit.EmojiFormat) string {
	if format == convcommit.EmojiFormatCode {
		return r.Code
	}
	return r.Emoji
}

// HTTPClient is the subset of http.Client the loader needs
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Loader loads the catalog from a local cache file, fetching and persisting
// it on first use. An existing cache is never re-fetched.
type Loader struct {
	cachePath string
	client    HTTPClient
}

// Option configures a Loader
type Option func(*Loader)

// WithCachePath overrides the cache file location
func WithCachePath(path string) Option {
	return func(l *Loader) {
		l.cachePath = path
	}
}

// WithHTTPClient overrides the HTTP client used for the first fetch
func WithHTTPClient(client HTTPClient) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// NewLoader creates a Loader caching under the user cache directory
func NewLoader(opts ...Option) (*Loader, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate user cache directory: %w", err)
	}

	l := &Loader{
		cachePath: filepath.Join(cacheDir, "commitwiz", "gitmojis.json"),
		client:    &http.Client{Timeout: fetchTimeout},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Load returns the catalog records, fetching the catalog once when no cache
// exists. Any fetch or parse problem is reported as ErrCatalogUnavailable.
func (l *Loader) Load(ctx context.Context) ([]Record, error) {
	data, err := os.ReadFile(l.cachePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
		data, err = l.fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
	}

	records, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return records, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, catalogURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}
	log.DebugDuration("catalog fetch", time.Since(start))

	// A failed write only costs a re-fetch on the next run
	if err := l.persist(data); err != nil {
		log.Warn("failed to cache catalog: %v", err)
	}
	return data, nil
}

func (l *Loader) persist(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(l.cachePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(l.cachePath, data, 0644)
}

// parseCatalog accepts both the wrapped API document and a bare array
func parseCatalog(data []byte) ([]Record, error) {
	var doc struct {
		Gitmojis *[]Record `json:"gitmojis"`
	}
	if err := json.Unmarshal(data, &doc); err == nil && doc.Gitmojis != nil {
		return *doc.Gitmojis, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return records, nil
}
