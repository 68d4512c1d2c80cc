// Package advice assembles the persisted advice entry from the score
// breakdown and an optional externally generated narrative.
package advice

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tmori/gutcheck/internal/model"
)

// Assemble merges the day's score results with the narrative. A nil
// narrative leaves every textual field as an empty string or empty list;
// the gut breakdown passes through untouched.
func Assemble(date time.Time, overall int, gut model.GutScoreResult,
	hints model.StageHints, rebound *model.ReboundAlert,
	nar *model.Narrative, now time.Time) model.AdviceEntry {

	entry := model.AdviceEntry{
		ID:            ulid.Make().String(),
		Date:          date.Format(model.DateKey),
		GeneratedAt:   now,
		Overall:       overall,
		Gut:           gut,
		StageHints:    hints,
		CrossInsights: []string{},
	}

	if nar != nil {
		entry.Headline = nar.Headline
		entry.TopAction = nar.TopAction
		entry.Domains = nar.Domains
		if nar.CrossInsights != nil {
			entry.CrossInsights = nar.CrossInsights
		}
		entry.StageHints = fillHints(hints, nar.StageHints)
	}
	entry.Domains = normalizeDomains(entry.Domains)

	if rebound != nil {
		r := *rebound
		if nar != nil {
			r.Message = nar.ReboundMessage
		}
		entry.Rebound = &r
	}

	return entry
}

// fillHints swaps triggered hint templates for narrative text when the
// generator supplied some. Hints that never triggered stay nil no matter
// what the narrative returned.
func fillHints(hints model.StageHints, texts model.StageHintTexts) model.StageHints {
	replace := func(hint *string, text string) *string {
		if hint == nil || text == "" {
			return hint
		}
		return &text
	}
	hints.Deep = replace(hints.Deep, texts.Deep)
	hints.REM = replace(hints.REM, texts.REM)
	hints.Core = replace(hints.Core, texts.Core)
	hints.Awake = replace(hints.Awake, texts.Awake)
	return hints
}

func normalizeDomains(d model.NarrativeDomains) model.NarrativeDomains {
	d.Nutrition = normalizeDomain(d.Nutrition)
	d.Supplementation = normalizeDomain(d.Supplementation)
	d.Elimination = normalizeDomain(d.Elimination)
	d.Lifestyle = normalizeDomain(d.Lifestyle)
	return d
}

func normalizeDomain(a model.DomainAdvice) model.DomainAdvice {
	if a.Tips == nil {
		a.Tips = []string{}
	}
	return a
}
