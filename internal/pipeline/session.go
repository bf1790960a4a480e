package pipeline

import (
	"sync"

	"github.com/zxfpro/expenditure-analyse/internal/models"
)

// Session holds the classified transactions and analysis result of the most
// recent successful load. Callers create one explicitly and pass it to the
// pipeline; there is no shared global state. Safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	loaded bool
	txs    []models.Transaction
	result models.AnalysisResult
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Set replaces the session contents atomically. The transaction slice is
// copied so later mutation by the caller cannot leak in.
func (s *Session) Set(txs []models.Transaction, result models.AnalysisResult) {
	copied := make([]models.Transaction, len(txs))
	copy(copied, txs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = copied
	s.result = result
	s.loaded = true
}

// Snapshot returns a copy of the session contents. The boolean reports
// whether a load has completed; when false the other values are zero.
func (s *Session) Snapshot() ([]models.Transaction, models.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, models.AnalysisResult{}, false
	}
	copied := make([]models.Transaction, len(s.txs))
	copy(copied, s.txs)
	return copied, s.result, true
}

// Loaded reports whether the session holds analyzed data.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Clear empties the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = nil
	s.result = models.AnalysisResult{}
	s.loaded = false
}
