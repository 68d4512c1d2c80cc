package model

// Factor is one named contributor to the gut score: the raw metric it was
// computed from, the points it earned, and the normalized score reported
// alongside (reporting only, the points feed the total).
type Factor struct {
	Value  float64 `json:"value"`
	Points float64 `json:"points"`
	Score  float64 `json:"score"`
}

// GutFactors is the full factor breakdown.
type GutFactors struct {
	Fiber           Factor `json:"fiber"`
	Diversity       Factor `json:"diversity"`
	Fermented       Factor `json:"fermented"`
	Polyphenol      Factor `json:"polyphenol"`
	Regularity      Factor `json:"regularity"`
	Probiotic       Factor `json:"probiotic"`
	Prebiotic       Factor `json:"prebiotic"`
	BowelFrequency  Factor `json:"bowel_frequency"`
	BowelQuality    Factor `json:"bowel_quality"`
	BowelRegularity Factor `json:"bowel_regularity"`
	Water           Factor `json:"water"`
	Sleep           Factor `json:"sleep"`
	Steps           Factor `json:"steps"`
}

// GutScoreResult is the composite 7-day gut score in [0,100] with its
// breakdown. Never mutated after construction.
type GutScoreResult struct {
	Score   int        `json:"score"`
	Factors GutFactors `json:"factors"`
}

// StageHints carries up to four sleep-stage deviation hints. A nil field
// means that stage sat inside its ideal band (or no data existed).
type StageHints struct {
	Deep  *string `json:"deep,omitempty"`
	REM   *string `json:"rem,omitempty"`
	Core  *string `json:"core,omitempty"`
	Awake *string `json:"awake,omitempty"`
}

// Any reports whether at least one hint triggered.
func (h StageHints) Any() bool {
	return h.Deep != nil || h.REM != nil || h.Core != nil || h.Awake != nil
}

// Rebound risk levels.
const (
	ReboundHigh   = "high"
	ReboundMedium = "medium"
)

// ReboundAlert flags elevated rebound risk after a long sleep. Message is
// filled by the narrative generator and stays empty until then.
type ReboundAlert struct {
	Risk    string `json:"risk"`
	Message string `json:"message,omitempty"`
}

// ScoreRecord is the compact per-date score document kept under rolling
// retention.
type ScoreRecord struct {
	Overall    int     `json:"overall"`
	Gut        int     `json:"gut"`
	SleepHours float64 `json:"sleep_hours"`
	Weight     float64 `json:"weight,omitempty"`
	BodyFat    float64 `json:"body_fat,omitempty"`
	Steps      int     `json:"steps"`
	Water      float64 `json:"water"`
	Fiber      float64 `json:"fiber"`
	Kcal       float64 `json:"kcal"`
}

// DatedScore pairs a score record with its journal date key.
type DatedScore struct {
	Date string `json:"date"`
	ScoreRecord
}
