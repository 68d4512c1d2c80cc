package score

import (
	"math"
	"strings"

	"github.com/tmori/gutcheck/internal/model"
)

// SleepHours returns a day's total sleep, 0 when no record exists.
func SleepHours(rec *model.SleepRecord) float64 {
	if rec == nil {
		return 0
	}
	return rec.TotalHours
}

// SleepDeepHours returns a day's deep-sleep hours after normalizing the
// explicit-fields / timeline duality, 0 when no record exists.
func SleepDeepHours(rec *model.SleepRecord) float64 {
	if rec == nil {
		return 0
	}
	return rec.StageTotals().Deep
}

// HitsCategory reports whether any meal name contains any of the
// category's keywords.
func HitsCategory(rec *model.DailyMealRecord, category string) bool {
	if rec == nil {
		return false
	}
	terms := Keywords[category]
	for _, m := range rec.Entries {
		for _, term := range terms {
			if strings.Contains(m.Name, term) {
				return true
			}
		}
	}
	return false
}

// DinnerHour returns the hour of the last timed meal in the day's ordered
// list. ok is false when no meal carries a time.
func DinnerHour(rec *model.DailyMealRecord) (int, bool) {
	if rec == nil {
		return 0, false
	}
	hour, found := 0, false
	for _, m := range rec.Entries {
		if h, ok := m.Hour(); ok {
			hour, found = h, true
		}
	}
	return hour, found
}

// MealHours returns the hour of every timed meal in order.
func MealHours(rec *model.DailyMealRecord) []float64 {
	if rec == nil {
		return nil
	}
	var hours []float64
	for _, m := range rec.Entries {
		if h, ok := m.Hour(); ok {
			hours = append(hours, float64(h))
		}
	}
	return hours
}

// PrebioAchieved reports whether a day met its prebiotic goal: trivially
// when fiber reached the target, otherwise when enough designated checks
// were taken to compensate the shortfall at ~2.75 g per dose.
func PrebioAchieved(fiber float64, supps *model.DailySupplementRecord) bool {
	if fiber >= FiberTargetGrams {
		return true
	}
	need := int(math.Ceil((FiberTargetGrams - fiber) / fiberPerPrebioticDose))
	return supps.CountTaken(PrebioticCodes) >= need
}
