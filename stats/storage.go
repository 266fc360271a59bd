// Package stats persists monthly usage counters for the analysis service.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seo-optimizer/contentseo/rules"
)

const (
	monthLayout   = "2006-01"
	fileName      = "stats.json"
	flushInterval = 5 * time.Minute
	writeDebounce = time.Minute
)

// MonthlyStats represents statistics for a specific month
type MonthlyStats struct {
	Analyses         int       `json:"analyses"`
	Keyphrases       int       `json:"keyphrases"`
	FetchCacheHits   int       `json:"fetch_hits"`
	FetchCacheMisses int       `json:"fetch_misses"`
	RulePanics       int       `json:"rule_panics"`
	LastUpdated      time.Time `json:"last_updated"`
}

// Storage handles persistent storage of statistics
type Storage struct {
	mutex       sync.RWMutex
	writeMutex  sync.Mutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	stop        chan struct{}
	done        chan struct{}
	stopOnce    sync.Once
	logger      *zap.Logger
	now         func() time.Time
}

// NewStorage creates a new statistics storage instance rooted at dataDir
func NewStorage(dataDir string, logger *zap.Logger) (*Storage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filepath.Join(dataDir, fileName),
		writeBuffer: make(chan struct{}, 1),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		logger:      logger.Named("stats"),
		now:         time.Now,
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	go s.backgroundWriter()

	return s, nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.stats)
}

// Flush writes the statistics to disk, replacing the file atomically
func (s *Storage) Flush() error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

func (s *Storage) flushAndLog() {
	if err := s.Flush(); err != nil {
		s.logger.Error("failed to persist statistics", zap.String("path", s.filePath), zap.Error(err))
	}
}

func (s *Storage) backgroundWriter() {
	defer close(s.done)
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			s.flushAndLog()
		case <-ticker.C:
			s.flushAndLog()
		case <-s.stop:
			s.flushAndLog()
			return
		}
	}
}

// Shutdown stops the background writer after a final flush. It is safe to
// call more than once.
func (s *Storage) Shutdown() error {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
	return nil
}

func (s *Storage) month() string {
	return s.now().Format(monthLayout)
}

func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
	}
}

func (s *Storage) increment(update func(*MonthlyStats)) {
	month := s.month()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	stats, exists := s.stats[month]
	if !exists {
		stats = &MonthlyStats{}
		s.stats[month] = stats
	}
	update(stats)
	stats.LastUpdated = s.now()

	if s.now().Sub(s.lastWrite) > writeDebounce {
		s.requestWrite()
		s.lastWrite = s.now()
	}
}

// RecordFetch counts a page fetch cache hit or miss
func (s *Storage) RecordFetch(hit bool) {
	s.increment(func(m *MonthlyStats) {
		if hit {
			m.FetchCacheHits++
		} else {
			m.FetchCacheMisses++
		}
	})
}

// AnalysisCompleted counts one multi-keyphrase analysis
func (s *Storage) AnalysisCompleted(keyphrases int, _ time.Duration) {
	s.increment(func(m *MonthlyStats) {
		m.Analyses++
		m.Keyphrases += keyphrases
	})
}

// RulePanicked counts a rule check that had to be recovered
func (s *Storage) RulePanicked(string) {
	s.increment(func(m *MonthlyStats) { m.RulePanics++ })
}

// RuleEvaluated is a no-op; per-rule counts live in the metrics registry
func (s *Storage) RuleEvaluated(string, rules.Status) {}

// GetCurrentStats returns statistics for the current month
func (s *Storage) GetCurrentStats() MonthlyStats {
	month := s.month()

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if stats, exists := s.stats[month]; exists {
		return *stats
	}
	return MonthlyStats{}
}

// Cleanup removes statistics older than retainMonths months, counting the
// current month as the first. A value below one keeps only the current month.
func (s *Storage) Cleanup(retainMonths int) {
	if retainMonths < 1 {
		retainMonths = 1
	}
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	keep := make(map[string]bool, retainMonths)
	for i := 0; i < retainMonths; i++ {
		keep[first.AddDate(0, -i, 0).Format(monthLayout)] = true
	}

	s.mutex.Lock()
	removed := 0
	for key := range s.stats {
		if !keep[key] {
			delete(s.stats, key)
			removed++
		}
	}
	s.mutex.Unlock()

	s.requestWrite()
	s.logger.Debug("cleaned up statistics", zap.Int("retainMonths", retainMonths), zap.Int("removed", removed))
}

// GetMonthlyStats returns statistics for a specific month
func (s *Storage) GetMonthlyStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if stats, exists := s.stats[yearMonth]; exists {
		return *stats, true
	}
	return MonthlyStats{}, false
}

// GetAllMonths returns all months that have statistics, newest first
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}
