// Package matching scores how well a worker profile fits a job
// listing. Four independent matchers produce sub-scores for skills,
// schedule, location and compensation; the aggregator combines them
// into one weighted fit with display-ready explanations. Everything
// here is pure and deterministic, so callers may score any number of
// profile/listing pairs concurrently without coordination.
package matching

import (
	"github.com/gigmatch/match-engine/internal/domain/models"
	"github.com/pkg/errors"
)

// Analysis bundles the four sub-results and the combined fit for one
// profile/listing pair.
type Analysis struct {
	Skills       MatchResult
	Schedule     MatchResult
	Location     MatchResult
	Compensation MatchResult
	Overall      OverallFit
}

// Engine is a reusable scoring pipeline with fixed weights and a
// market rate table.
type Engine struct {
	weights Weights
	rates   RateTable
}

func NewEngine(weights Weights, rates RateTable) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if rates == nil {
		rates = BuiltinRates()
	}
	return &Engine{weights: weights, rates: rates}, nil
}

// Score checks the pair's invariants up front and then runs every
// matcher. Degenerate but valid inputs (no required skills, no salary
// preference) produce a valid analysis, never an error.
func (e *Engine) Score(job models.JobListing, profile models.UserProfile) (*Analysis, error) {
	if !job.SalaryRange.Valid() {
		return nil, errors.Wrapf(ErrInvalidInput, "listing %v: salary range min > max", job.ID)
	}
	if profile.SalaryPrefs != nil && !profile.SalaryPrefs.Valid() {
		return nil, errors.Wrapf(ErrInvalidInput, "profile %v: salary preference min > max", profile.ID)
	}

	analysis := Analysis{
		Skills:   ScoreSkills(job.RequiredSkills, profile.Skills),
		Schedule: ScoreSchedule(job.Availability, profile.Availability),
	}

	var err error
	analysis.Location, err = ScoreLocation(job.Location, profile.Location, profile.MaxDistanceOrDefault())
	if err != nil {
		return nil, err
	}

	analysis.Compensation, err = ScoreCompensation(job.SalaryRange, profile.SalaryPrefs,
		job.Category, job.WeeklyHours, e.rates)
	if err != nil {
		return nil, err
	}

	analysis.Overall = Aggregate(e.weights, analysis.Skills, analysis.Schedule,
		analysis.Location, analysis.Compensation)
	return &analysis, nil
}
