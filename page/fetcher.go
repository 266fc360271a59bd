package page

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"lukechampine.com/blake3"
)

// Recorder receives cache hit and miss notifications.
type Recorder interface {
	RecordFetch(hit bool)
}

// Options configures a Fetcher.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	CacheTTL     time.Duration
	MaxCacheSize int
	MaxBodyBytes int64
	Format       Format
}

// DefaultOptions returns the settings used when a field is left zero.
func DefaultOptions() Options {
	return Options{
		Timeout:      15 * time.Second,
		UserAgent:    "SEOAnalyzer/1.0",
		CacheTTL:     10 * time.Minute,
		MaxCacheSize: 1000,
		MaxBodyBytes: 5 << 20,
		Format:       FormatHTML,
	}
}

type cacheEntry struct {
	page      Page
	timestamp time.Time
}

// Fetcher downloads pages and keeps parsed results in a TTL cache.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	format       Format
	maxBodyBytes int64

	cache        map[string]cacheEntry
	cacheMutex   sync.RWMutex
	cacheTTL     time.Duration
	maxCacheSize int

	recorders       []Recorder
	observeDuration func(time.Duration)
	logger          *zap.Logger
	now             func() time.Time
}

// Option configures optional Fetcher collaborators.
type Option func(*Fetcher)

// WithRecorder adds r to the receivers of cache hit and miss reports.
func WithRecorder(r Recorder) Option {
	return func(f *Fetcher) {
		if r != nil {
			f.recorders = append(f.recorders, r)
		}
	}
}

// WithDurationObserver is called with the duration of every network fetch.
func WithDurationObserver(fn func(time.Duration)) Option {
	return func(f *Fetcher) { f.observeDuration = fn }
}

// WithLogger sets the fetcher's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// NewFetcher creates a Fetcher. Zero option fields take their defaults.
func NewFetcher(opts Options, options ...Option) *Fetcher {
	def := DefaultOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = def.CacheTTL
	}
	if opts.MaxCacheSize <= 0 {
		opts.MaxCacheSize = def.MaxCacheSize
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = def.MaxBodyBytes
	}
	if opts.Format == "" {
		opts.Format = def.Format
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	f := &Fetcher{
		client:       &http.Client{Timeout: opts.Timeout, Transport: transport},
		userAgent:    opts.UserAgent,
		format:       opts.Format,
		maxBodyBytes: opts.MaxBodyBytes,
		cache:        make(map[string]cacheEntry),
		cacheTTL:     opts.CacheTTL,
		maxCacheSize: opts.MaxCacheSize,
		logger:       zap.NewNop(),
		now:          time.Now,
	}
	for _, o := range options {
		o(f)
	}
	return f
}

// generateCacheKey hashes the normalized URL
func generateCacheKey(u string) string {
	sum := blake3.Sum256([]byte(u))
	return hex.EncodeToString(sum[:])
}

// ValidateURL parses raw and checks that it is an absolute http(s) URL.
func ValidateURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	u.Fragment = ""
	return u, nil
}

// Fetch returns the page at rawURL, from cache when a fresh copy exists.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	key := generateCacheKey(u.String())

	if p, ok := f.lookup(key); ok {
		f.record(true)
		return p, nil
	}
	f.record(false)

	p, err := f.download(ctx, u)
	if err != nil {
		return nil, err
	}
	f.store(key, *p)
	return p, nil
}

func (f *Fetcher) record(hit bool) {
	for _, r := range f.recorders {
		r.RecordFetch(hit)
	}
}

func (f *Fetcher) download(ctx context.Context, u *url.URL) (*Page, error) {
	start := f.now()
	defer func() {
		if f.observeDuration != nil {
			f.observeDuration(f.now().Sub(start))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &FetchError{URL: u.String(), Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: u.String(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: u.String(), StatusCode: resp.StatusCode, Cause: ErrBadStatus}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(resp.Body, f.maxBodyBytes)); err != nil {
		return nil, &FetchError{URL: u.String(), Cause: err}
	}

	p, err := Parse(resp.Request.URL, &buf, f.format)
	if err != nil {
		return nil, &FetchError{URL: u.String(), Cause: err}
	}
	p.FetchedAt = f.now()

	f.logger.Debug("fetched page",
		zap.String("url", u.String()),
		zap.Int("bytes", buf.Len()),
		zap.Duration("elapsed", f.now().Sub(start)),
	)
	return p, nil
}

func (f *Fetcher) lookup(key string) (*Page, bool) {
	f.cacheMutex.RLock()
	defer f.cacheMutex.RUnlock()

	entry, found := f.cache[key]
	if !found || f.now().Sub(entry.timestamp) >= f.cacheTTL {
		return nil, false
	}
	p := entry.page
	return &p, true
}

func (f *Fetcher) store(key string, p Page) {
	f.cacheMutex.Lock()
	defer f.cacheMutex.Unlock()

	f.cache[key] = cacheEntry{page: p, timestamp: f.now()}
	if len(f.cache) > f.maxCacheSize {
		f.cleanupLocked()
	}
}

// cleanupLocked removes expired entries, then the oldest ones until the
// cache fits its size limit. The caller holds cacheMutex.
func (f *Fetcher) cleanupLocked() {
	now := f.now()
	for key, entry := range f.cache {
		if now.Sub(entry.timestamp) >= f.cacheTTL {
			delete(f.cache, key)
		}
	}
	if len(f.cache) <= f.maxCacheSize {
		return
	}

	type aged struct {
		key       string
		timestamp time.Time
	}
	entries := make([]aged, 0, len(f.cache))
	for key, entry := range f.cache {
		entries = append(entries, aged{key, entry.timestamp})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].timestamp.Before(entries[j].timestamp)
	})
	for i := 0; i < len(entries)-f.maxCacheSize; i++ {
		delete(f.cache, entries[i].key)
	}
}

// Cleanup drops expired entries and enforces the size limit.
func (f *Fetcher) Cleanup() {
	f.cacheMutex.Lock()
	defer f.cacheMutex.Unlock()
	f.cleanupLocked()
}

// IsCached reports whether a fresh copy of rawURL is cached.
func (f *Fetcher) IsCached(rawURL string) bool {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return false
	}
	_, ok := f.lookup(generateCacheKey(u.String()))
	return ok
}

// CacheLen returns the number of cached entries, fresh or not.
func (f *Fetcher) CacheLen() int {
	f.cacheMutex.RLock()
	defer f.cacheMutex.RUnlock()
	return len(f.cache)
}

// ClearCache empties the cache.
func (f *Fetcher) ClearCache() {
	f.cacheMutex.Lock()
	defer f.cacheMutex.Unlock()
	f.cache = make(map[string]cacheEntry)
}
