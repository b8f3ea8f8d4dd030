// Package automation runs scripted batches of sorts and size sweeps.
package automation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/san-kum/beadsim/internal/beads"
	"github.com/san-kum/beadsim/internal/config"
	"github.com/san-kum/beadsim/internal/trace"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of sorts
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep sorts one input, given inline or by preset name
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Values    []int  `yaml:"values"`
	Preset    string `yaml:"preset"`
	Save      bool   `yaml:"save"`
}

// Saver persists a finished trace and returns its run id.
type Saver interface {
	Save(tr *trace.Trace) (string, error)
}

// StepResult pairs a recorded trace with the id it was saved under, if any.
type StepResult struct {
	Trace *trace.Trace
	RunID string
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

func (s ScenarioStep) input() ([]int, error) {
	if s.Preset == "" {
		return s.Values, nil
	}
	values := config.GetPreset(s.Preset)
	if values == nil {
		return nil, fmt.Errorf("unknown preset: %s", s.Preset)
	}
	return values, nil
}

// RunScenario executes all steps in order and stops at the first failure.
// saver may be nil when no step asks to be saved.
func RunScenario(ctx context.Context, scenario *Scenario, registry *beads.Registry, saver Saver) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Algorithm
		if name == "" {
			name = config.DefaultAlgorithm
		}
		slog.Info("running step", "step", i+1, "of", len(scenario.Steps), "algorithm", name)

		algo, err := registry.Get(name)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		values, err := step.input()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		tr, err := trace.Record(ctx, name, algo, values)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		if err := tr.Verify(); err != nil {
			return results, fmt.Errorf("step %d verify: %w", i+1, err)
		}

		res := StepResult{Trace: tr}
		if step.Save {
			if saver == nil {
				return results, fmt.Errorf("step %d: no store configured", i+1)
			}
			if res.RunID, err = saver.Save(tr); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}

		results = append(results, res)
	}

	return results, nil
}

// SizeSweep sorts random inputs of growing length.
type SizeSweep struct {
	Algorithm string
	MinN      int
	MaxN      int
	NumSteps  int
	MaxValue  int
	Seed      int64
}

// SweepResult holds the outcome of one sweep point
type SweepResult struct {
	N       int
	Sum     int
	MaxVal  int
	Events  int
	Elapsed time.Duration
}

// RunSweep executes a size sweep. Inputs are drawn from a source seeded with
// sweep.Seed, so repeated sweeps see identical inputs.
func RunSweep(ctx context.Context, sweep *SizeSweep, registry *beads.Registry) ([]SweepResult, error) {
	if sweep.NumSteps < 1 || sweep.MinN < 0 || sweep.MaxN < sweep.MinN || sweep.MaxValue < 0 {
		return nil, fmt.Errorf("invalid sweep: n=[%d,%d] steps=%d max=%d", sweep.MinN, sweep.MaxN, sweep.NumSteps, sweep.MaxValue)
	}

	algo, err := registry.Get(sweep.Algorithm)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(sweep.Seed))
	results := make([]SweepResult, 0, sweep.NumSteps)

	nStep := 0
	if sweep.NumSteps > 1 {
		nStep = (sweep.MaxN - sweep.MinN) / (sweep.NumSteps - 1)
	}

	for i := 0; i < sweep.NumSteps; i++ {
		n := sweep.MinN + i*nStep
		if i == sweep.NumSteps-1 {
			n = sweep.MaxN
		}

		values := make([]int, n)
		for j := range values {
			values[j] = rng.Intn(sweep.MaxValue + 1)
		}

		start := time.Now()
		tr, err := trace.Record(ctx, sweep.Algorithm, algo, values)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)

		if err := tr.Verify(); err != nil {
			return nil, err
		}

		sum := 0
		for _, v := range values {
			sum += v
		}

		results = append(results, SweepResult{
			N:       n,
			Sum:     sum,
			MaxVal:  tr.Stats.MaxVal,
			Events:  tr.Stats.Total,
			Elapsed: elapsed,
		})

		slog.Debug("sweep point", "step", i+1, "n", n, "events", tr.Stats.Total)
	}

	return results, nil
}
