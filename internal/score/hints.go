package score

import (
	"math"

	"github.com/tmori/gutcheck/internal/model"
)

// Ideal stage bands, in percent of total sleep.
const (
	deepLowPct   = 10
	deepHighPct  = 20
	remLowPct    = 20
	coreLowPct   = 45
	coreHighPct  = 55
	awakeHighPct = 5
)

// walkThresholdSteps selects the walk branch for low deep sleep.
const walkThresholdSteps = 5000

// Rebound thresholds, hours of target-day sleep.
const (
	reboundWatchHours = 6.5
	reboundHighHours  = 7.0
)

// HintInput is everything the hint generator looks at: the target day's
// sleep record plus the auxiliary signals that pick the template branch.
type HintInput struct {
	Sleep *model.SleepRecord
	Steps int
	Supps *model.DailySupplementRecord
}

// Hint templates. The narrative generator may replace the text; the
// triggering condition and branch choice live here.
const (
	hintDeepWalk = "Deep sleep ran low today. Your step count was under 5,000 - a brisk walk " +
		"during the day tends to deepen the following night."
	hintDeepMagnesium = "Deep sleep ran low today. Consider taking your magnesium before bed; " +
		"it was not checked off."
	hintDeepOff  = "Deep sleep sat outside the ideal 10-20% band today."
	hintREMLow   = "REM came in under 20% of total sleep. Late meals and alcohol are common culprits."
	hintCoreOff  = "Core sleep sat outside the ideal 45-55% band."
	hintAwakeOff = "Awake time reached 5% or more of the night. Worth watching if it repeats."
)

// GenerateStageHints derives per-stage deviation hints from the target
// day's sleep alone. Absent record or zero total means no data and no
// hints. Percentages are rounded to the nearest integer before the band
// check.
func GenerateStageHints(in HintInput) model.StageHints {
	var hints model.StageHints
	rec := in.Sleep
	if rec == nil || rec.TotalHours <= 0 || !rec.HasStageData() {
		return hints
	}

	stages := rec.StageTotals()
	pct := func(h float64) int {
		return int(math.Round(h / rec.TotalHours * 100))
	}

	if deep := pct(stages.Deep); deep < deepLowPct || deep > deepHighPct {
		switch {
		case deep < deepLowPct && in.Steps < walkThresholdSteps:
			hints.Deep = strPtr(hintDeepWalk)
		case deep < deepLowPct && !in.Supps.Taken(MagnesiumCode):
			hints.Deep = strPtr(hintDeepMagnesium)
		default:
			hints.Deep = strPtr(hintDeepOff)
		}
	}
	// the REM check only looks at the lower band edge
	if pct(stages.REM) < remLowPct {
		hints.REM = strPtr(hintREMLow)
	}
	if core := pct(stages.Core); core < coreLowPct || core > coreHighPct {
		hints.Core = strPtr(hintCoreOff)
	}
	if pct(stages.Awake) >= awakeHighPct {
		hints.Awake = strPtr(hintAwakeOff)
	}
	return hints
}

func strPtr(s string) *string { return &s }

// GenerateRebound flags rebound risk after a long target-day sleep. The
// message stays empty until the narrative generator fills it.
func GenerateRebound(rec *model.SleepRecord) *model.ReboundAlert {
	total := SleepHours(rec)
	if total < reboundWatchHours {
		return nil
	}
	risk := model.ReboundMedium
	if total >= reboundHighHours {
		risk = model.ReboundHigh
	}
	return &model.ReboundAlert{Risk: risk}
}
