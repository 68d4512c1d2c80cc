package score

import (
	"testing"
	"time"

	"github.com/tmori/gutcheck/internal/model"
)

func supps(codes ...string) *model.DailySupplementRecord {
	r := &model.DailySupplementRecord{Checks: map[string]bool{}}
	for _, c := range codes {
		r.Checks[c] = true
	}
	return r
}

func TestPrebioAchieved_FiberAtTarget(t *testing.T) {
	for _, fiber := range []float64{21, 25, 100} {
		if !PrebioAchieved(fiber, nil) {
			t.Errorf("fiber %.0f should achieve regardless of checks", fiber)
		}
	}
}

func TestPrebioAchieved_ZeroFiberNeedsEightChecks(t *testing.T) {
	// ceil(21/2.75) = 8, so even all three designated checks fall short
	if PrebioAchieved(0, supps(PrebioticCodes...)) {
		t.Error("3 checks must not achieve at fiber 0")
	}
}

func TestPrebioAchieved_PartialFiber(t *testing.T) {
	// shortfall 5g -> ceil(5/2.75) = 2 checks needed
	if PrebioAchieved(16, supps("inulin")) {
		t.Error("1 check should not cover a 5g shortfall")
	}
	if !PrebioAchieved(16, supps("inulin", "psyllium")) {
		t.Error("2 checks should cover a 5g shortfall")
	}
}

func TestHitsCategory(t *testing.T) {
	meals := &model.DailyMealRecord{Entries: []model.MealEntry{
		{Name: "oatmeal with blueberry"},
		{Name: "chicken salad"},
	}}
	if !HitsCategory(meals, CategoryPolyphenol) {
		t.Error("blueberry should hit polyphenol")
	}
	if HitsCategory(meals, CategoryFermented) {
		t.Error("no fermented keyword present")
	}
	// substring match is case-sensitive
	caps := &model.DailyMealRecord{Entries: []model.MealEntry{{Name: "KIMCHI bowl"}}}
	if HitsCategory(caps, CategoryFermented) {
		t.Error("match must be case-sensitive")
	}
	if HitsCategory(nil, CategoryFermented) {
		t.Error("nil record never hits")
	}
}

func TestDinnerHour(t *testing.T) {
	meals := &model.DailyMealRecord{Entries: []model.MealEntry{
		{Name: "breakfast", Time: "07:30"},
		{Name: "snack"}, // untimed
		{Name: "dinner", Time: "19:45"},
	}}
	h, ok := DinnerHour(meals)
	if !ok || h != 19 {
		t.Errorf("DinnerHour = %d, %v; want 19, true", h, ok)
	}

	if _, ok := DinnerHour(&model.DailyMealRecord{Entries: []model.MealEntry{{Name: "snack"}}}); ok {
		t.Error("no timed meal should report ok=false")
	}
	if _, ok := DinnerHour(nil); ok {
		t.Error("nil record should report ok=false")
	}
}

func TestSleepDeepHours_Timeline(t *testing.T) {
	base := time.Date(2026, 8, 26, 23, 0, 0, 0, time.UTC)
	rec := &model.SleepRecord{
		TotalHours: 8,
		Timeline: []model.SleepInterval{
			{Stage: model.StageDeep, Start: base, End: base.Add(45 * time.Minute)},
			{Stage: model.StageCore, Start: base.Add(45 * time.Minute), End: base.Add(5 * time.Hour)},
			{Stage: model.StageDeep, Start: base.Add(5 * time.Hour), End: base.Add(5*time.Hour + 30*time.Minute)},
		},
	}
	if got := SleepDeepHours(rec); got != 1.25 {
		t.Errorf("deep hours = %f, want 1.25", got)
	}
}

func TestSleepDeepHours_ExplicitWinsOverTimeline(t *testing.T) {
	base := time.Date(2026, 8, 26, 23, 0, 0, 0, time.UTC)
	rec := &model.SleepRecord{
		TotalHours: 7,
		Stages:     &model.StageDurations{Deep: 2},
		Timeline: []model.SleepInterval{
			{Stage: model.StageDeep, Start: base, End: base.Add(time.Hour)},
		},
	}
	if got := SleepDeepHours(rec); got != 2 {
		t.Errorf("deep hours = %f, want explicit 2", got)
	}
}

func TestSleepHours_Absent(t *testing.T) {
	if SleepHours(nil) != 0 {
		t.Error("absent record should read as 0 hours")
	}
	if SleepDeepHours(nil) != 0 {
		t.Error("absent record should read as 0 deep hours")
	}
}
