package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const statisticsFile = "statistics.json"

// Statistics collects request level counters for the HTTP API.
type Statistics struct {
	// UniqueVisitors maps client IP to last visit.
	UniqueVisitors   map[string]time.Time `json:"uniqueVisitors"`
	AnalysisRequests int                  `json:"analysisRequests"`
	TotalRequests    int                  `json:"totalRequests"`
	ErrorCount       int                  `json:"errorCount"`
	PopularHosts     map[string]int       `json:"popularHosts"`
	AverageLoadTime  float64              `json:"averageLoadTime"` // milliseconds
	TotalLoadTime    float64              `json:"totalLoadTime"`
	LastPersisted    time.Time            `json:"lastPersisted"`

	path    string
	devMode bool
	logger  *zap.Logger
	now     func() time.Time
	mutex   sync.RWMutex
	saveMu  sync.Mutex
}

// NewStatistics creates statistics persisted under dataDir and loads any
// previous snapshot. devMode exposes popular hosts in Snapshot.
func NewStatistics(dataDir string, devMode bool, logger *zap.Logger) *Statistics {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Statistics{
		UniqueVisitors: make(map[string]time.Time),
		PopularHosts:   make(map[string]int),
		devMode:        devMode,
		logger:         logger,
		now:            time.Now,
	}
	if dataDir != "" {
		s.path = filepath.Join(dataDir, statisticsFile)
	}
	if err := s.Load(); err != nil {
		logger.Warn("could not load existing statistics", zap.Error(err))
	}
	return s
}

// TrackVisitor records a request from ip.
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueVisitors[ip] = s.now()
	s.TotalRequests++
}

// cleanHost reduces an analyzed page URL to its host. Local and API
// addresses are not tracked.
func cleanHost(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host == "localhost" || host == "127.0.0.1" || strings.Contains(strings.ToLower(u.Path), "/api/") {
		return ""
	}
	return host
}

// TrackAnalysis records an analysis request. pageURL is empty for
// analyses of submitted content.
func (s *Statistics) TrackAnalysis(pageURL string, loadTime time.Duration, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.AnalysisRequests++
	if host := cleanHost(pageURL); host != "" {
		s.PopularHosts[host]++
	}
	if hasError {
		s.ErrorCount++
	}

	s.TotalLoadTime += float64(loadTime) / float64(time.Millisecond)
	s.AverageLoadTime = s.TotalLoadTime / float64(s.AnalysisRequests)
}

// GetUniqueVisitorsCount returns the number of clients seen in the last 24 hours.
func (s *Statistics) GetUniqueVisitorsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.uniqueVisitorsLocked()
}

func (s *Statistics) uniqueVisitorsLocked() int {
	count := 0
	cutoff := s.now().Add(-24 * time.Hour)
	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}
	return count
}

// HostCount is one entry of GetPopularHosts.
type HostCount struct {
	Host  string `json:"host"`
	Count int    `json:"count"`
}

// GetPopularHosts returns the n most analyzed hosts, most frequent first.
func (s *Statistics) GetPopularHosts(n int) []HostCount {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.popularHostsLocked(n)
}

func (s *Statistics) popularHostsLocked(n int) []HostCount {
	out := make([]HostCount, 0, len(s.PopularHosts))
	for host, count := range s.PopularHosts {
		out = append(out, HostCount{host, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Host < out[j].Host
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// GetErrorRate returns the share of failed analyses as a percentage.
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.errorRateLocked()
}

func (s *Statistics) errorRateLocked() float64 {
	if s.AnalysisRequests == 0 {
		return 0
	}
	return float64(s.ErrorCount) / float64(s.AnalysisRequests) * 100
}

// Save persists the statistics. It is a no-op without a data directory.
func (s *Statistics) Save() error {
	if s.path == "" {
		return nil
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mutex.Lock()
	s.LastPersisted = s.now()
	data, err := json.Marshal(s)
	s.mutex.Unlock()
	if err != nil {
		return fmt.Errorf("could not encode statistics: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("could not create statistics directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("could not write statistics file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("could not replace statistics file: %w", err)
	}
	return nil
}

// SaveAsync saves in the background and logs failures.
func (s *Statistics) SaveAsync() {
	go func() {
		if err := s.Save(); err != nil {
			s.logger.Error("failed to save statistics", zap.Error(err))
		}
	}()
}

// Load reads a previous snapshot. A missing file is not an error.
func (s *Statistics) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not open statistics file: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("could not decode statistics: %w", err)
	}
	if s.UniqueVisitors == nil {
		s.UniqueVisitors = make(map[string]time.Time)
	}
	if s.PopularHosts == nil {
		s.PopularHosts = make(map[string]int)
	}
	return nil
}

// Snapshot returns the public view of the statistics. Popular hosts are
// only included in development mode.
func (s *Statistics) Snapshot() map[string]any {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := map[string]any{
		"uniqueVisitors24h": s.uniqueVisitorsLocked(),
		"totalRequests":     s.TotalRequests,
		"analysisRequests":  s.AnalysisRequests,
		"errorRate":         s.errorRateLocked(),
		"averageLoadTime":   s.AverageLoadTime,
	}
	if s.devMode {
		out["popularHosts"] = s.popularHostsLocked(5)
	}
	return out
}

// Requests returns the number of tracked requests.
func (s *Statistics) Requests() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.TotalRequests
}
