// Package narrative provides a pluggable interface for the external
// advice-text generator. Generation is strictly optional: the disabled
// generator and every failure path yield no narrative, never an aborted
// run.
package narrative

import (
	"context"
	"math"
	"sort"

	"github.com/tmori/gutcheck/internal/config"
	"github.com/tmori/gutcheck/internal/model"
	"github.com/tmori/gutcheck/internal/score"
)

// DaySummary is one window day as handed to the generator.
type DaySummary struct {
	Date       string   `json:"date"`
	Kcal       float64  `json:"kcal"`
	Protein    float64  `json:"protein"`
	Fiber      float64  `json:"fiber"`
	Plants     []string `json:"plants,omitempty"`
	SleepHours float64  `json:"sleep_hours"`
	Steps      int      `json:"steps"`
	Water      float64  `json:"water"`
	Bowel      string   `json:"bowel,omitempty"`
	Supps      []string `json:"supplements,omitempty"`
}

// Input is the full generation contract.
type Input struct {
	Date          string               `json:"date"`
	Overall       int                  `json:"overall"`
	Gut           model.GutScoreResult `json:"gut"`
	Days          []DaySummary         `json:"days"`
	WeightKg      float64              `json:"weight_kg,omitempty"`
	BodyFatPct    float64              `json:"body_fat_pct,omitempty"`
	SleepTotal    float64              `json:"sleep_total"`
	StagePercents map[string]int       `json:"stage_percents,omitempty"`
	HintFlags     map[string]bool      `json:"hint_flags,omitempty"`
	HasRebound    bool                 `json:"has_rebound"`
}

// Generator produces a narrative from the score context.
type Generator interface {
	Generate(ctx context.Context, in Input) (*model.Narrative, error)
}

// Disabled is the generator used when no credential is configured.
type Disabled struct{}

// Generate returns no narrative.
func (Disabled) Generate(context.Context, Input) (*model.Narrative, error) {
	return nil, nil
}

// NewFromConfig builds the configured generator, or Disabled when no API
// key exists.
func NewFromConfig(cfg config.NarrativeConfig) Generator {
	if cfg.APIKey == "" {
		return Disabled{}
	}
	return NewOpenAIGenerator(cfg)
}

// BuildInput assembles the generation contract from the scored window.
func BuildInput(window []model.DayData, gut model.GutScoreResult, overall int,
	hints model.StageHints, rebound *model.ReboundAlert) Input {

	in := Input{
		Overall:    overall,
		Gut:        gut,
		HasRebound: rebound != nil,
		HintFlags: map[string]bool{
			"deep":  hints.Deep != nil,
			"rem":   hints.REM != nil,
			"core":  hints.Core != nil,
			"awake": hints.Awake != nil,
		},
	}

	for _, day := range window {
		totals := score.AggregateDay(day.Meals)
		ds := DaySummary{
			Date:       day.Date.Format(model.DateKey),
			Kcal:       totals.Kcal,
			Protein:    totals.Protein,
			Fiber:      totals.Fiber,
			Plants:     sortedKeys(totals.Plants),
			SleepHours: score.SleepHours(day.Sleep),
		}
		if day.Health != nil {
			if day.Health.Steps != nil {
				ds.Steps = *day.Health.Steps
			}
			if day.Health.WaterLiters != nil {
				ds.Water = *day.Health.WaterLiters
			}
			if day.Health.Bowel != nil {
				ds.Bowel = string(day.Health.Bowel.Status)
			}
		}
		if day.Supps != nil {
			for code, taken := range day.Supps.Checks {
				if taken {
					ds.Supps = append(ds.Supps, code)
				}
			}
			sort.Strings(ds.Supps)
		}
		in.Days = append(in.Days, ds)
	}

	if len(window) > 0 {
		target := window[len(window)-1]
		in.Date = target.Date.Format(model.DateKey)
		if target.Weight != nil {
			in.WeightKg = target.Weight.Kg
			if target.Weight.BodyFatPct != nil {
				in.BodyFatPct = *target.Weight.BodyFatPct
			}
		}
		in.SleepTotal = score.SleepHours(target.Sleep)
		if target.Sleep != nil && target.Sleep.TotalHours > 0 && target.Sleep.HasStageData() {
			st := target.Sleep.StageTotals()
			in.StagePercents = map[string]int{
				"deep":  roundPct(st.Deep, target.Sleep.TotalHours),
				"rem":   roundPct(st.REM, target.Sleep.TotalHours),
				"core":  roundPct(st.Core, target.Sleep.TotalHours),
				"awake": roundPct(st.Awake, target.Sleep.TotalHours),
			}
		}
	}
	return in
}

func roundPct(part, total float64) int {
	return int(math.Round(part / total * 100))
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
