package qshor

import "sync"

// Stats accumulates outcomes across repeated injection trials. Safe for
// concurrent use by RunMany workers.
type Stats struct {
	mu          sync.RWMutex
	Trials      int64
	Matches     int64
	Mismatches  int64
	CleanTrials int64
	FaultCounts map[byte]int64
}

func NewStats() *Stats {
	return &Stats{
		FaultCounts: make(map[byte]int64),
	}
}

func (s *Stats) record(label ErrorLabel, matched bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Trials++
	if matched {
		s.Matches++
	} else {
		s.Mismatches++
	}
	if label.Clean() {
		s.CleanTrials++
		return
	}
	for i := 0; i < len(label); i++ {
		if label[i] != 'I' {
			s.FaultCounts[label[i]]++
		}
	}
}

// MatchRate is the fraction of trials whose observed syndrome agreed with
// the expected one.
func (s *Stats) MatchRate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Trials == 0 {
		return 0
	}
	return float64(s.Matches) / float64(s.Trials)
}

// Export snapshots the counters for logging or display.
func (s *Stats) Export() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	faults := make(map[string]int64, len(s.FaultCounts))
	for op, count := range s.FaultCounts {
		faults[string(op)] = count
	}

	rate := 0.0
	if s.Trials > 0 {
		rate = float64(s.Matches) / float64(s.Trials)
	}
	return map[string]any{
		"trials":       s.Trials,
		"matches":      s.Matches,
		"mismatches":   s.Mismatches,
		"clean_trials": s.CleanTrials,
		"match_rate":   rate,
		"fault_counts": faults,
	}
}
