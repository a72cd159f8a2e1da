package qshor

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one full injection trial.
type Result struct {
	ID         string
	Label      ErrorLabel
	Report     Report
	Amplitudes []Amplitude
	// Corrected reports whether every surviving basis state carried zeros
	// on the data positions. Only meaningful when correction ran.
	Corrected bool
}

/*
Runner wires the whole cycle together: encode the logical qubit, inject a
random fault, extract the syndrome onto the ancillas, optionally correct
and unencode, simulate, and decode the lowest-index surviving basis state
against the injected label.
*/
type Runner struct {
	config   *Config
	layout   Layout
	injector *FaultInjector
}

func NewRunner(config *Config) (*Runner, error) {
	if config == nil {
		config = NewConfig()
	}

	layout := DefaultLayout()
	if config.Layout != nil {
		layout = *config.Layout
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	injector := NewFaultInjector(rand.New(rand.NewSource(seed)))
	injector.Reveal = config.Reveal

	return &Runner{
		config:   config,
		layout:   layout,
		injector: injector,
	}, nil
}

// Run executes one trial and returns the decoded comparison.
func (r *Runner) Run() (Result, error) {
	circuit := BuildEncoder(r.layout)
	noise, label := r.injector.Inject(r.layout)
	circuit.Append(noise)
	circuit.Compose(BuildSyndrome(r.layout))
	if r.config.Correct {
		circuit.Compose(BuildCorrection(r.layout))
		circuit.Compose(BuildUnencoder(r.layout))
	}

	state, err := circuit.Run()
	if err != nil {
		return Result{}, err
	}

	amplitudes := SignificantAmplitudes(state.Vector, r.config.Precision)
	if len(amplitudes) == 0 {
		return Result{}, fmt.Errorf("no amplitudes survived rounding at precision %d", r.config.Precision)
	}

	report, err := DecodeBitstring(label, amplitudes[0].Bitstring, r.layout)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		ID:         uuid.New().String(),
		Label:      label,
		Report:     report,
		Amplitudes: amplitudes,
	}
	if r.config.Correct {
		result.Corrected = dataPositionsClean(amplitudes, r.layout)
	}
	log.Printf("trial %s: label %s, matched=%v", result.ID, label, report.Matched)
	return result, nil
}

// dataPositionsClean reports whether every surviving basis state holds 0 at
// every data position, i.e. the corrected register unencoded back to the
// logical zero it started from.
func dataPositionsClean(amplitudes []Amplitude, l Layout) bool {
	for _, amplitude := range amplitudes {
		for _, q := range l.DataQubits {
			if amplitude.Bitstring[q] == '1' {
				return false
			}
		}
	}
	return true
}

// RunMany executes n trials across the given number of workers and
// aggregates the outcomes. Each worker gets its own runner and its own
// seed, derived from the configured one, so runs stay reproducible.
func RunMany(config *Config, n, workers int) (*Stats, error) {
	if config == nil {
		config = NewConfig()
	}
	if workers < 1 {
		workers = 1
	}

	baseSeed := config.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	runners := make([]*Runner, workers)
	for w := range runners {
		workerConfig := *config
		workerConfig.Seed = baseSeed + int64(w) + 1
		runner, err := NewRunner(&workerConfig)
		if err != nil {
			return nil, err
		}
		runners[w] = runner
	}

	stats := NewStats()
	jobs := make(chan int)
	var wg sync.WaitGroup
	for _, runner := range runners {
		wg.Add(1)
		go func(runner *Runner) {
			defer wg.Done()
			for range jobs {
				result, err := runner.Run()
				if err != nil {
					log.Printf("trial failed: %v", err)
					continue
				}
				stats.record(result.Label, result.Report.Matched)
			}
		}(runner)
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return stats, nil
}
