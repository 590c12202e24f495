// Package runplan loads the YAML run plan that drives a sweep:
// modulation orders, SNR grid, trial sizes and the knobs governing how
// many cells run concurrently. Structure and loading follow
// cmd/project3/config/config.go's LoadConfig, adapted from a single
// physical-layer device/MAC config to a grid of BER trials.
package runplan

import (
	"os"

	"gopkg.in/yaml.v3"

	"berchain/pkg/bercore"
)

// Uncoded and Coded describe one transmission path's trial parameters.
type Uncoded struct {
	NumBits int64 `yaml:"num_bits"`
}

type Coded struct {
	InfoBits int64 `yaml:"info_bits"`
}

// SNRGrid is the inclusive [Start, Stop] sweep in StepDB increments.
type SNRGrid struct {
	StartDB float64 `yaml:"start_db"`
	StopDB  float64 `yaml:"stop_db"`
	StepDB  float64 `yaml:"step_db"`
}

// Values enumerates the grid's SNR points in dB.
func (g SNRGrid) Values() []float64 {
	if g.StepDB <= 0 {
		return nil
	}
	var values []float64
	for snr := g.StartDB; snr <= g.StopDB+1e-9; snr += g.StepDB {
		values = append(values, snr)
	}
	return values
}

// RunPlan is the top-level shape of a sweep's YAML config file.
type RunPlan struct {
	ModOrders   []int   `yaml:"mod_orders"`
	SNR         SNRGrid `yaml:"snr"`
	Uncoded     Uncoded `yaml:"uncoded"`
	Coded       Coded   `yaml:"coded"`
	RunUncoded  bool    `yaml:"run_uncoded"`
	RunCoded    bool    `yaml:"run_coded"`
	BaseSeed    uint64  `yaml:"base_seed"`
	Concurrency int     `yaml:"concurrency"`
}

const (
	defaultConcurrency = 1
	defaultBaseSeed    = 0x2545f4914f6cdd1d
)

// LoadRunPlan reads and validates a run plan from a YAML file,
// filling in defaults for concurrency and seed when the file omits
// them, matching LoadConfig's read-unmarshal-return shape.
func LoadRunPlan(filename string) (*RunPlan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var plan RunPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, err
	}

	if plan.Concurrency <= 0 {
		plan.Concurrency = defaultConcurrency
	}
	if plan.BaseSeed == 0 {
		plan.BaseSeed = defaultBaseSeed
	}
	if len(plan.ModOrders) == 0 {
		return nil, bercore.New(bercore.ReasonInvalidInput, "run plan %s lists no modulation orders", filename)
	}
	if plan.SNR.StepDB <= 0 || plan.SNR.StopDB < plan.SNR.StartDB {
		return nil, bercore.New(bercore.ReasonInvalidRange, "run plan %s has an invalid snr grid %+v", filename, plan.SNR)
	}
	if !plan.RunUncoded && !plan.RunCoded {
		return nil, bercore.New(bercore.ReasonInvalidInput, "run plan %s selects neither uncoded nor coded paths", filename)
	}

	return &plan, nil
}
