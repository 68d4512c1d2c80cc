// Package model defines the journal record and score data types.
package model

import "time"

// DateKey is the canonical layout for journal date keys.
const DateKey = "2006-01-02"

// MealEntry is a single logged meal. Missing macro fields stay zero.
type MealEntry struct {
	Name    string   `json:"name"`
	Kcal    float64  `json:"kcal,omitempty"`
	Protein float64  `json:"protein,omitempty"`
	Fat     float64  `json:"fat,omitempty"`
	Carbs   float64  `json:"carbs,omitempty"`
	Fiber   float64  `json:"fiber,omitempty"`
	Plants  []string `json:"plants,omitempty"`
	Time    string   `json:"time,omitempty"` // "HH:MM", empty when not logged
}

// Hour returns the entry's hour of day (0-23).
// ok is false when no time was logged or it does not parse.
func (m MealEntry) Hour() (int, bool) {
	if m.Time == "" {
		return 0, false
	}
	t, err := time.Parse("15:04", m.Time)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

// DailyMealRecord is the ordered list of meals for one date.
type DailyMealRecord struct {
	Entries []MealEntry `json:"entries"`
}

// DailySupplementRecord holds per-code checkmarks for one date.
type DailySupplementRecord struct {
	Checks map[string]bool `json:"checks"`
}

// Taken reports whether the given supplement code was checked.
func (r *DailySupplementRecord) Taken(code string) bool {
	if r == nil {
		return false
	}
	return r.Checks[code]
}

// CountTaken counts how many of the given codes were checked.
func (r *DailySupplementRecord) CountTaken(codes []string) int {
	n := 0
	for _, c := range codes {
		if r.Taken(c) {
			n++
		}
	}
	return n
}

// BowelStatus classifies a bowel observation.
type BowelStatus string

const (
	BowelGood  BowelStatus = "good"
	BowelHard  BowelStatus = "hard"
	BowelLoose BowelStatus = "loose"
)

// BowelObservation records one day's observation. Presence of the struct
// is the presence flag.
type BowelObservation struct {
	Status BowelStatus `json:"status"`
}

// DailyHealthRecord holds the optional water/step/bowel log for one date.
type DailyHealthRecord struct {
	WaterLiters *float64          `json:"water_liters,omitempty"`
	Steps       *int              `json:"steps,omitempty"`
	Bowel       *BowelObservation `json:"bowel,omitempty"`
}

// WeightRecord is a per-date weight measurement.
type WeightRecord struct {
	Kg         float64  `json:"kg"`
	BodyFatPct *float64 `json:"body_fat_pct,omitempty"`
}

// DayData bundles everything the journal holds for one date. Any field may
// be nil when that date has no record of that kind.
type DayData struct {
	Date   time.Time
	Meals  *DailyMealRecord
	Supps  *DailySupplementRecord
	Health *DailyHealthRecord
	Sleep  *SleepRecord
	Weight *WeightRecord
}

// WindowDays is the rolling window length, target date inclusive.
const WindowDays = 7
