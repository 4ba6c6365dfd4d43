package matching

import (
	"math"

	"github.com/pkg/errors"
)

// Weights is the injected weighting of the four sub-scores. A single
// immutable structure rather than scattered literals, so weight changes
// stay auditable and testable in isolation.
type Weights struct {
	Skills       float64 `mapstructure:"skills"`
	Schedule     float64 `mapstructure:"schedule"`
	Location     float64 `mapstructure:"location"`
	Compensation float64 `mapstructure:"compensation"`
}

func DefaultWeights() Weights {
	return Weights{
		Skills:       0.35,
		Schedule:     0.25,
		Location:     0.20,
		Compensation: 0.20,
	}
}

const weightSumTolerance = 1e-9

func (w Weights) Validate() error {
	for _, weight := range []float64{w.Skills, w.Schedule, w.Location, w.Compensation} {
		if weight < 0 {
			return errors.Errorf("matcher weights must be non-negative, got %v", weight)
		}
	}
	sum := w.Skills + w.Schedule + w.Location + w.Compensation
	if math.Abs(sum-1) > weightSumTolerance {
		return errors.Errorf("matcher weights must sum to 1, got %v", sum)
	}
	return nil
}
