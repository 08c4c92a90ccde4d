package pipeline

import (
	"sync"

	"canonqa/internal/model"
)

// Metrics accumulates verification outcomes across queries, for evaluation
// runs and audit logging.
type Metrics struct {
	mu               sync.Mutex
	total            int
	rejected         int
	hallucinationSum float64
	groundingRateSum float64
}

// NewMetrics creates an empty accumulator.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Record folds one verification result into the aggregates.
func (m *Metrics) Record(vr model.VerificationResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total++
	if vr.Rejected {
		m.rejected++
	}
	m.hallucinationSum += vr.HallucinationScore
	m.groundingRateSum += vr.GroundingRate()
}

// MetricsSnapshot is a point-in-time view of the aggregates.
type MetricsSnapshot struct {
	TotalQueries          int     `json:"total_queries"`
	RejectedCount         int     `json:"rejected_count"`
	RejectionRate         float64 `json:"rejection_rate"`
	AvgHallucinationScore float64 `json:"avg_hallucination_score"`
	AvgGroundingRate      float64 `json:"avg_grounding_rate"`
}

// Snapshot returns the current aggregates.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := MetricsSnapshot{
		TotalQueries:  m.total,
		RejectedCount: m.rejected,
	}
	if m.total > 0 {
		snap.RejectionRate = float64(m.rejected) / float64(m.total)
		snap.AvgHallucinationScore = m.hallucinationSum / float64(m.total)
		snap.AvgGroundingRate = m.groundingRateSum / float64(m.total)
	}
	return snap
}
