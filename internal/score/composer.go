package score

import (
	"math"

	"github.com/tmori/gutcheck/internal/model"
)

// Point caps for the four groups: nutrition 55, supplementation 15,
// elimination 15, lifestyle 15.
const (
	fiberMaxPts   = 15.0
	probioMaxDay  = 8.0
	waterMaxPts   = 6.0
	qualityMaxPts = 4.0
	sleepMaxPts   = 6.0
)

// neutral fallbacks when the window holds fewer than two timed meals
const (
	dinnerNeutralPts = 2.0
	spreadNeutralPts = 3.0
)

// Compose reduces the 7-day window into the gut score. The window must be
// chronological and end at the target date; iteration order is fixed so
// floating-point accumulation reproduces bit-for-bit.
func Compose(window []model.DayData) model.GutScoreResult {
	var (
		fiberVals   []float64
		mealHours   []float64
		dinnerHours []int
		plants      = map[string]bool{}

		fermentedDays, polyphenolDays int
		probioSum                     float64
		prebioDays                    int
		qualityVals                   []float64
		obsDays                       int
		waterVals                     []float64
		sleepVals                     []float64
		stepVals                      []float64
	)

	for _, day := range window {
		totals := AggregateDay(day.Meals)
		if day.Meals != nil && len(day.Meals.Entries) > 0 {
			fiberVals = append(fiberVals, totals.Fiber)
		}
		for p := range totals.Plants {
			plants[p] = true
		}
		if HitsCategory(day.Meals, CategoryFermented) {
			fermentedDays++
		}
		if HitsCategory(day.Meals, CategoryPolyphenol) {
			polyphenolDays++
		}
		mealHours = append(mealHours, MealHours(day.Meals)...)
		if h, ok := DinnerHour(day.Meals); ok {
			dinnerHours = append(dinnerHours, h)
		}

		probioSum += math.Min(probioMaxDay, 2*float64(day.Supps.CountTaken(ProbioticCodes)))
		if PrebioAchieved(totals.Fiber, day.Supps) {
			prebioDays++
		}

		if day.Health != nil {
			if day.Health.Bowel != nil {
				obsDays++
				qualityVals = append(qualityVals, bowelQualityPoints(day.Health.Bowel.Status))
			}
			if day.Health.WaterLiters != nil {
				waterVals = append(waterVals, *day.Health.WaterLiters)
			}
			if day.Health.Steps != nil {
				stepVals = append(stepVals, float64(*day.Health.Steps))
			}
		}
		if day.Sleep != nil {
			sleepVals = append(sleepVals, day.Sleep.TotalHours)
		}
	}

	target := model.DayData{}
	if len(window) > 0 {
		target = window[len(window)-1]
	}

	// nutrition (55)
	avgFiber := Mean(fiberVals)
	fiberPts := math.Min(fiberMaxPts, avgFiber/FiberTargetGrams*fiberMaxPts)
	diversityPts := diversityPoints(len(plants))
	fermentedPts := float64(fermentedDays) / model.WindowDays * 12
	polyphenolPts := float64(polyphenolDays) / model.WindowDays * 8

	var dinnerPts, spreadPts, dinnerRatio float64
	if len(mealHours) < 2 {
		dinnerPts, spreadPts = dinnerNeutralPts, spreadNeutralPts
	} else {
		before := 0
		for _, h := range dinnerHours {
			if h < 21 {
				before++
			}
		}
		if len(dinnerHours) > 0 {
			dinnerRatio = float64(before) / float64(len(dinnerHours))
		}
		dinnerPts = dinnerRatio * 4
		spreadPts = math.Max(0, 6-StdDev(mealHours))
	}
	regularityPts := dinnerPts + spreadPts

	// supplementation (15)
	probioRate := probioSum / (probioMaxDay * model.WindowDays)
	probioPts := probioRate * 8
	prebioRate := float64(prebioDays) / model.WindowDays
	prebioPts := prebioRate * 7

	// elimination (15)
	freqPts := float64(obsDays) / model.WindowDays * 8
	qualityPts := math.Min(qualityMaxPts, Mean(qualityVals))
	bowelRegPt := bowelRegularityPoints(obsDays)

	// lifestyle (15)
	avgWater := Mean(waterVals)
	waterPts := math.Min(waterMaxPts, avgWater/2.0*waterMaxPts)
	avgSleep := Mean(sleepVals)
	sleepPts := sleepPoints(avgSleep)
	if deepFraction(target.Sleep) >= 0.10 {
		sleepPts = math.Min(sleepMaxPts, sleepPts+1)
	}
	avgSteps := Mean(stepVals)
	stepPts := stepPoints(avgSteps)

	total := fiberPts + diversityPts + fermentedPts + polyphenolPts + regularityPts +
		probioPts + prebioPts +
		freqPts + qualityPts + bowelRegPt +
		waterPts + sleepPts + stepPts

	return model.GutScoreResult{
		Score: clamp100(math.Round(total)),
		Factors: model.GutFactors{
			Fiber:      model.Factor{Value: avgFiber, Points: fiberPts, Score: fiberPts / fiberMaxPts},
			Diversity:  model.Factor{Value: float64(len(plants)), Points: diversityPts, Score: diversityPts / 10},
			Fermented:  model.Factor{Value: float64(fermentedDays), Points: fermentedPts, Score: float64(fermentedDays) / model.WindowDays},
			Polyphenol: model.Factor{Value: float64(polyphenolDays), Points: polyphenolPts, Score: float64(polyphenolDays) / model.WindowDays},
			// the reported regularity score divides by 10; the points feed
			// the total unscaled
			Regularity:      model.Factor{Value: dinnerRatio, Points: regularityPts, Score: regularityPts / 10},
			Probiotic:       model.Factor{Value: probioRate, Points: probioPts, Score: probioPts / 8},
			Prebiotic:       model.Factor{Value: prebioRate, Points: prebioPts, Score: prebioPts / 7},
			BowelFrequency:  model.Factor{Value: float64(obsDays), Points: freqPts, Score: freqPts / 8},
			BowelQuality:    model.Factor{Value: Mean(qualityVals), Points: qualityPts, Score: qualityPts / qualityMaxPts},
			BowelRegularity: model.Factor{Value: float64(obsDays), Points: bowelRegPt, Score: bowelRegPt / 3},
			Water:           model.Factor{Value: avgWater, Points: waterPts, Score: waterPts / waterMaxPts},
			Sleep:           model.Factor{Value: avgSleep, Points: sleepPts, Score: sleepPts / sleepMaxPts},
			Steps:           model.Factor{Value: avgSteps, Points: stepPts, Score: stepPts / 3},
		},
	}
}

// OverallScore layers the target-day sleep bonus and the window step bonus
// on top of the gut score, clamped to [0,100].
func OverallScore(window []model.DayData, gut model.GutScoreResult) int {
	var targetSleep float64
	var stepVals []float64
	for _, day := range window {
		if day.Health != nil && day.Health.Steps != nil {
			stepVals = append(stepVals, float64(*day.Health.Steps))
		}
	}
	if len(window) > 0 {
		targetSleep = SleepHours(window[len(window)-1].Sleep)
	}

	bonus := 0
	switch {
	case targetSleep >= 7:
		bonus += 5
	case targetSleep >= 6:
		// neutral
	default:
		bonus -= 5
	}

	avgSteps := Mean(stepVals)
	switch {
	case avgSteps >= 8000:
		bonus += 5
	case avgSteps >= 6000:
		bonus += 2
	case avgSteps >= 4000:
		// neutral
	default:
		bonus -= 3
	}

	return clamp100(float64(gut.Score + bonus))
}

func diversityPoints(plantCount int) float64 {
	switch {
	case plantCount >= 20:
		return 10
	case plantCount >= 15:
		return 7
	case plantCount >= 10:
		return 5
	default:
		return 2
	}
}

func bowelQualityPoints(s model.BowelStatus) float64 {
	switch s {
	case model.BowelGood:
		return 4
	case model.BowelHard, model.BowelLoose:
		return 2
	default:
		return 0
	}
}

func bowelRegularityPoints(obsDays int) float64 {
	switch {
	case obsDays >= 7:
		return 3
	case obsDays >= 5:
		return 2
	case obsDays >= 3:
		return 1
	default:
		return 0
	}
}

func sleepPoints(avg float64) float64 {
	switch {
	case avg >= 7:
		return 6
	case avg >= 6:
		return 4
	case avg >= 5:
		return 2
	default:
		return 1
	}
}

func stepPoints(avg float64) float64 {
	switch {
	case avg >= 8000:
		return 3
	case avg >= 6000:
		return 2
	case avg >= 4000:
		return 1
	default:
		return 0
	}
}

func deepFraction(rec *model.SleepRecord) float64 {
	if rec == nil || rec.TotalHours <= 0 {
		return 0
	}
	return SleepDeepHours(rec) / rec.TotalHours
}

func clamp100(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
