package model

import "time"

// SleepStage labels a sleep timeline interval.
type SleepStage string

const (
	StageDeep  SleepStage = "deep"
	StageREM   SleepStage = "rem"
	StageCore  SleepStage = "core"
	StageAwake SleepStage = "awake"
)

// SleepInterval is one labeled span of a sleep timeline.
type SleepInterval struct {
	Stage SleepStage `json:"stage"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
}

// StageDurations holds per-stage sleep hours.
type StageDurations struct {
	Deep  float64 `json:"deep"`
	REM   float64 `json:"rem"`
	Core  float64 `json:"core"`
	Awake float64 `json:"awake"`
}

// SleepRecord is one night's sleep. Stage data arrives either as explicit
// per-stage totals or as a timeline of labeled intervals; StageTotals
// normalizes the two forms.
type SleepRecord struct {
	TotalHours float64         `json:"total_hours"`
	Stages     *StageDurations `json:"stages,omitempty"`
	Timeline   []SleepInterval `json:"timeline,omitempty"`
}

// StageTotals returns per-stage hours: the explicit totals when present,
// otherwise sums derived from the timeline, otherwise all zero.
func (r *SleepRecord) StageTotals() StageDurations {
	if r == nil {
		return StageDurations{}
	}
	if r.Stages != nil {
		return *r.Stages
	}
	var d StageDurations
	for _, iv := range r.Timeline {
		h := iv.End.Sub(iv.Start).Hours()
		if h <= 0 {
			continue
		}
		switch iv.Stage {
		case StageDeep:
			d.Deep += h
		case StageREM:
			d.REM += h
		case StageCore:
			d.Core += h
		case StageAwake:
			d.Awake += h
		}
	}
	return d
}

// HasStageData reports whether any stage signal exists. Records without it
// produce no stage hints.
func (r *SleepRecord) HasStageData() bool {
	if r == nil {
		return false
	}
	if r.Stages != nil {
		return true
	}
	return len(r.Timeline) > 0
}
