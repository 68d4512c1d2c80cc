package model

import "time"

// DomainAdvice is the narrative block for one score domain.
type DomainAdvice struct {
	Insight     string   `json:"insight"`
	Tips        []string `json:"tips"`
	Correlation string   `json:"correlation"`
}

// NarrativeDomains groups advice by the four score domains.
type NarrativeDomains struct {
	Nutrition       DomainAdvice `json:"nutrition"`
	Supplementation DomainAdvice `json:"supplementation"`
	Elimination     DomainAdvice `json:"elimination"`
	Lifestyle       DomainAdvice `json:"lifestyle"`
}

// StageHintTexts carries narrative replacements for triggered stage hints.
type StageHintTexts struct {
	Deep  string `json:"deep,omitempty"`
	REM   string `json:"rem,omitempty"`
	Core  string `json:"core,omitempty"`
	Awake string `json:"awake,omitempty"`
}

// Narrative is the structured output of the external text generator.
type Narrative struct {
	Headline       string           `json:"headline"`
	TopAction      string           `json:"top_action"`
	Domains        NarrativeDomains `json:"domains"`
	StageHints     StageHintTexts   `json:"stage_hints"`
	ReboundMessage string           `json:"rebound_message,omitempty"`
	CrossInsights  []string         `json:"cross_insights"`
}

// AdviceEntry is the persisted per-date advice document: the score
// breakdown merged with whatever narrative was available at generation
// time. Textual fields default to empty when no narrative exists.
type AdviceEntry struct {
	ID            string           `json:"id"`
	Date          string           `json:"date"`
	GeneratedAt   time.Time        `json:"generated_at"`
	Overall       int              `json:"overall"`
	Headline      string           `json:"headline"`
	TopAction     string           `json:"top_action"`
	Domains       NarrativeDomains `json:"domains"`
	StageHints    StageHints       `json:"stage_hints"`
	Rebound       *ReboundAlert    `json:"rebound,omitempty"`
	CrossInsights []string         `json:"cross_insights"`
	Gut           GutScoreResult   `json:"gut"`
}
