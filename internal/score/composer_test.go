package score

import (
	"fmt"
	"testing"
	"time"

	"github.com/tmori/gutcheck/internal/model"
)

func emptyWindow() []model.DayData {
	window := make([]model.DayData, model.WindowDays)
	start := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)
	for i := range window {
		window[i] = model.DayData{Date: start.AddDate(0, 0, i)}
	}
	return window
}

// maximalWindow saturates every factor.
func maximalWindow() []model.DayData {
	window := emptyWindow()
	water := 2.5
	steps := 10000
	for i := range window {
		plants := make([]string, 3)
		for j := range plants {
			plants[j] = fmt.Sprintf("plant-%d-%d", i, j)
		}
		window[i].Meals = &model.DailyMealRecord{Entries: []model.MealEntry{
			{Name: "kimchi bowl with blueberry", Fiber: 30, Kcal: 600, Plants: plants, Time: "19:00"},
		}}
		window[i].Supps = supps(ProbioticCodes...)
		window[i].Health = &model.DailyHealthRecord{
			WaterLiters: &water,
			Steps:       &steps,
			Bowel:       &model.BowelObservation{Status: model.BowelGood},
		}
		window[i].Sleep = &model.SleepRecord{
			TotalHours: 8,
			Stages:     &model.StageDurations{Deep: 1.2, REM: 1.8, Core: 4.8, Awake: 0.2},
		}
	}
	return window
}

func TestCompose_MaximalInputHitsCaps(t *testing.T) {
	gut := Compose(maximalWindow())
	if gut.Score != 100 {
		t.Fatalf("score = %d, want 100", gut.Score)
	}
	f := gut.Factors

	nutrition := f.Fiber.Points + f.Diversity.Points + f.Fermented.Points +
		f.Polyphenol.Points + f.Regularity.Points
	if nutrition != 55 {
		t.Errorf("nutrition = %f, want 55", nutrition)
	}
	supplementation := f.Probiotic.Points + f.Prebiotic.Points
	if supplementation != 15 {
		t.Errorf("supplementation = %f, want 15", supplementation)
	}
	elimination := f.BowelFrequency.Points + f.BowelQuality.Points + f.BowelRegularity.Points
	if elimination != 15 {
		t.Errorf("elimination = %f, want 15", elimination)
	}
	lifestyle := f.Water.Points + f.Sleep.Points + f.Steps.Points
	if lifestyle != 15 {
		t.Errorf("lifestyle = %f, want 15", lifestyle)
	}
}

func TestCompose_EmptyWindow(t *testing.T) {
	gut := Compose(emptyWindow())

	// diversity floor 2, regularity neutral 2+3, sleep floor 1
	if gut.Score != 8 {
		t.Errorf("score = %d, want 8", gut.Score)
	}
	forEachFactor(gut.Factors, func(name string, f model.Factor) {
		if f.Points < 0 {
			t.Errorf("%s points negative: %f", name, f.Points)
		}
	})
}

func forEachFactor(f model.GutFactors, fn func(string, model.Factor)) {
	fn("fiber", f.Fiber)
	fn("diversity", f.Diversity)
	fn("fermented", f.Fermented)
	fn("polyphenol", f.Polyphenol)
	fn("regularity", f.Regularity)
	fn("probiotic", f.Probiotic)
	fn("prebiotic", f.Prebiotic)
	fn("bowel_frequency", f.BowelFrequency)
	fn("bowel_quality", f.BowelQuality)
	fn("bowel_regularity", f.BowelRegularity)
	fn("water", f.Water)
	fn("sleep", f.Sleep)
	fn("steps", f.Steps)
}

func TestCompose_ProbioticRate(t *testing.T) {
	window := emptyWindow()
	for i := range window {
		window[i].Supps = supps("probiotic_morning", "lactoferrin")
	}
	gut := Compose(window)
	// 2 checks x 2 pts x 7 days = 28 of 56 -> half of 8
	if gut.Factors.Probiotic.Points != 4 {
		t.Errorf("probiotic points = %f, want 4", gut.Factors.Probiotic.Points)
	}
}

func TestCompose_DiversityBands(t *testing.T) {
	tests := []struct {
		plants int
		pts    float64
	}{
		{0, 2}, {9, 2}, {10, 5}, {15, 7}, {20, 10}, {30, 10},
	}
	for _, tt := range tests {
		window := emptyWindow()
		plants := make([]string, tt.plants)
		for i := range plants {
			plants[i] = fmt.Sprintf("plant-%d", i)
		}
		window[0].Meals = &model.DailyMealRecord{Entries: []model.MealEntry{
			{Name: "salad", Plants: plants},
		}}
		gut := Compose(window)
		if gut.Factors.Diversity.Points != tt.pts {
			t.Errorf("%d plants: diversity = %f, want %f", tt.plants, gut.Factors.Diversity.Points, tt.pts)
		}
	}
}

func TestCompose_RegularityFallback(t *testing.T) {
	window := emptyWindow()
	// exactly one timed meal in the window: still below the 2-meal minimum
	window[3].Meals = &model.DailyMealRecord{Entries: []model.MealEntry{
		{Name: "dinner", Time: "22:00"},
	}}
	gut := Compose(window)
	if gut.Factors.Regularity.Points != 5 {
		t.Errorf("regularity = %f, want neutral 5", gut.Factors.Regularity.Points)
	}
	if gut.Factors.Regularity.Score != 0.5 {
		t.Errorf("reported regularity score = %f, want 0.5", gut.Factors.Regularity.Score)
	}
}

func TestCompose_LateDinnersLoseTimingPoints(t *testing.T) {
	window := emptyWindow()
	for i := range window {
		window[i].Meals = &model.DailyMealRecord{Entries: []model.MealEntry{
			{Name: "dinner", Time: "22:00"},
		}}
	}
	gut := Compose(window)
	// every dinner after 21:00 -> timing term 0, identical hours -> spread 6
	if gut.Factors.Regularity.Points != 6 {
		t.Errorf("regularity = %f, want 6", gut.Factors.Regularity.Points)
	}
}

func TestCompose_BowelRegularityReportedScale(t *testing.T) {
	window := emptyWindow()
	for i := 0; i < 5; i++ {
		window[i].Health = &model.DailyHealthRecord{
			Bowel: &model.BowelObservation{Status: model.BowelHard},
		}
	}
	gut := Compose(window)
	if gut.Factors.BowelRegularity.Points != 2 {
		t.Errorf("bowel regularity points = %f, want 2", gut.Factors.BowelRegularity.Points)
	}
	// reported score divides the 0-3 points by 3
	if got := gut.Factors.BowelRegularity.Score; got != 2.0/3.0 {
		t.Errorf("bowel regularity score = %f, want 2/3", got)
	}
	if gut.Factors.BowelQuality.Points != 2 {
		t.Errorf("bowel quality = %f, want 2 for hard", gut.Factors.BowelQuality.Points)
	}
}

func TestOverallScore_SleepBonusSteps(t *testing.T) {
	mkWindow := func(targetSleep float64) []model.DayData {
		window := emptyWindow()
		window[len(window)-1].Sleep = &model.SleepRecord{TotalHours: targetSleep}
		return window
	}

	// empty steps -> -3 step bonus; the gut score moves with the sleep
	// band too, so compare the bonus delta, not the absolute value
	var prev int = -1
	wantDiff := map[float64]int{5.5: -5, 6.5: 0, 7.5: 5}
	for _, sleep := range []float64{5.5, 6.5, 7.5} {
		window := mkWindow(sleep)
		gut := Compose(window)
		overall := OverallScore(window, gut)
		if diff := overall - (gut.Score - 3); diff != wantDiff[sleep] {
			t.Errorf("sleep %.1f: bonus = %d, want %d", sleep, diff, wantDiff[sleep])
		}
		if overall < prev {
			t.Errorf("overall decreased at sleep %.1f", sleep)
		}
		prev = overall
	}
}

func TestOverallScore_StepBonusBands(t *testing.T) {
	tests := []struct {
		steps int
		bonus int
	}{
		{10000, 5}, {7000, 2}, {5000, 0}, {1000, -3},
	}
	for _, tt := range tests {
		window := emptyWindow()
		for i := range window {
			steps := tt.steps
			window[i].Health = &model.DailyHealthRecord{Steps: &steps}
		}
		// target sleep 6.5h neutralizes the sleep bonus
		window[len(window)-1].Sleep = &model.SleepRecord{TotalHours: 6.5}
		gut := Compose(window)
		overall := OverallScore(window, gut)
		if got := overall - gut.Score; got != tt.bonus {
			t.Errorf("steps %d: bonus = %d, want %d", tt.steps, got, tt.bonus)
		}
	}
}

func TestOverallScore_ClampsToZero(t *testing.T) {
	window := emptyWindow()
	// gut 8, sleep bonus -5, step bonus -3 -> exactly 0
	gut := Compose(window)
	if got := OverallScore(window, gut); got != 0 {
		t.Errorf("overall = %d, want clamp at 0", got)
	}
}
