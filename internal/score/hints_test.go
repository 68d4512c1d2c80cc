package score

import (
	"strings"
	"testing"

	"github.com/tmori/gutcheck/internal/model"
)

func TestGenerateStageHints_LowDeepLowSteps(t *testing.T) {
	// 0.5h of 8h = 6.25% -> rounds to 6, below the 10% floor
	hints := GenerateStageHints(HintInput{
		Sleep: &model.SleepRecord{TotalHours: 8, Stages: &model.StageDurations{Deep: 0.5}},
		Steps: 3000,
	})
	if hints.Deep == nil {
		t.Fatal("expected deep hint")
	}
	if !strings.Contains(*hints.Deep, "walk") {
		t.Errorf("steps under 5000 should select the walk branch, got %q", *hints.Deep)
	}
}

func TestGenerateStageHints_LowDeepBranches(t *testing.T) {
	rec := &model.SleepRecord{TotalHours: 8, Stages: &model.StageDurations{Deep: 0.5}}

	// enough steps, magnesium unchecked -> supplement branch
	hints := GenerateStageHints(HintInput{Sleep: rec, Steps: 9000})
	if hints.Deep == nil || !strings.Contains(*hints.Deep, "magnesium") {
		t.Errorf("expected magnesium branch, got %v", hints.Deep)
	}

	// enough steps, magnesium checked -> plain deviation
	hints = GenerateStageHints(HintInput{Sleep: rec, Steps: 9000, Supps: supps(MagnesiumCode)})
	if hints.Deep == nil || strings.Contains(*hints.Deep, "magnesium") || strings.Contains(*hints.Deep, "walk") {
		t.Errorf("expected plain deviation branch, got %v", hints.Deep)
	}
}

func TestGenerateStageHints_HighDeepIsPlain(t *testing.T) {
	hints := GenerateStageHints(HintInput{
		Sleep: &model.SleepRecord{TotalHours: 8, Stages: &model.StageDurations{Deep: 2.4}}, // 30%
		Steps: 1000,
	})
	if hints.Deep == nil {
		t.Fatal("expected deep hint above the band")
	}
	if strings.Contains(*hints.Deep, "walk") {
		t.Error("walk branch applies only below the band")
	}
}

func TestGenerateStageHints_InBandStaysNil(t *testing.T) {
	hints := GenerateStageHints(HintInput{
		Sleep: &model.SleepRecord{
			TotalHours: 8,
			Stages:     &model.StageDurations{Deep: 1.2, REM: 1.8, Core: 4, Awake: 0.2},
		},
		Steps: 9000,
	})
	// deep 15%, rem 22.5%->23, core 50%, awake 2.5%->3
	if hints.Any() {
		t.Errorf("all stages in band, got %+v", hints)
	}
}

func TestGenerateStageHints_REMUpperBoundIgnored(t *testing.T) {
	hints := GenerateStageHints(HintInput{
		Sleep: &model.SleepRecord{
			TotalHours: 8,
			Stages:     &model.StageDurations{Deep: 1.2, REM: 3.2, Core: 3.6, Awake: 0},
		},
		Steps: 9000,
	})
	// rem 40% is above the ideal band but the check only looks down
	if hints.REM != nil {
		t.Errorf("rem above band must not trigger, got %q", *hints.REM)
	}
	// core 45% sits on the lower edge, still in band
	if hints.Core != nil {
		t.Errorf("core at 45%% must not trigger, got %q", *hints.Core)
	}
}

func TestGenerateStageHints_CoreAndAwake(t *testing.T) {
	hints := GenerateStageHints(HintInput{
		Sleep: &model.SleepRecord{
			TotalHours: 8,
			Stages:     &model.StageDurations{Deep: 1.2, REM: 1.8, Core: 2, Awake: 0.8},
		},
		Steps: 9000,
	})
	if hints.Core == nil {
		t.Error("core at 25% should trigger")
	}
	if hints.Awake == nil {
		t.Error("awake at 10% should trigger")
	}
}

func TestGenerateStageHints_NoData(t *testing.T) {
	if GenerateStageHints(HintInput{}).Any() {
		t.Error("absent record must produce no hints")
	}
	if GenerateStageHints(HintInput{Sleep: &model.SleepRecord{TotalHours: 0}}).Any() {
		t.Error("zero total must produce no hints")
	}
	if GenerateStageHints(HintInput{Sleep: &model.SleepRecord{TotalHours: 8}}).Any() {
		t.Error("record without stage data must produce no hints")
	}
}

func TestGenerateRebound(t *testing.T) {
	tests := []struct {
		total float64
		risk  string // "" means no alert
	}{
		{6.4, ""},
		{6.8, model.ReboundMedium},
		{7.2, model.ReboundHigh},
		{6.5, model.ReboundMedium},
		{7.0, model.ReboundHigh},
	}
	for _, tt := range tests {
		alert := GenerateRebound(&model.SleepRecord{TotalHours: tt.total})
		if tt.risk == "" {
			if alert != nil {
				t.Errorf("total %.1f: expected no alert, got %+v", tt.total, alert)
			}
			continue
		}
		if alert == nil || alert.Risk != tt.risk {
			t.Errorf("total %.1f: alert = %+v, want risk %q", tt.total, alert, tt.risk)
		}
		if alert != nil && alert.Message != "" {
			t.Errorf("message must stay empty until the narrative fills it")
		}
	}

	if GenerateRebound(nil) != nil {
		t.Error("absent record must produce no alert")
	}
}
