package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmori/gutcheck/internal/advice"
	"github.com/tmori/gutcheck/internal/model"
	"github.com/tmori/gutcheck/internal/narrative"
	"github.com/tmori/gutcheck/internal/score"
)

func init() {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute and persist the day's score and advice",
		Long: "Compute the 7-day gut score for the target date, ask the narrative service\n" +
			"for advice text when configured, and persist both documents.",
		Run: runScore,
	}
	addDateFlag(cmd)
	cmd.Flags().Bool("no-narrative", false, "Skip the narrative service call")
	RootCmd.AddCommand(cmd)
}

func runScore(cmd *cobra.Command, args []string) {
	date := resolveDate(cmd)
	noNarrative, _ := cmd.Flags().GetBool("no-narrative")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	window, err := s.LoadWindow(cmd.Context(), date)
	if err != nil {
		exitErr("load window", err)
	}
	target := window[len(window)-1]

	gut := score.Compose(window)
	overall := score.OverallScore(window, gut)

	steps := 0
	if target.Health != nil && target.Health.Steps != nil {
		steps = *target.Health.Steps
	}
	hints := score.GenerateStageHints(score.HintInput{
		Sleep: target.Sleep,
		Steps: steps,
		Supps: target.Supps,
	})
	rebound := score.GenerateRebound(target.Sleep)

	var nar *model.Narrative
	if !noNarrative {
		gen := narrative.NewFromConfig(cfg.Narrative)
		in := narrative.BuildInput(window, gut, overall, hints, rebound)
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Narrative.Timeout())
		nar, err = gen.Generate(ctx, in)
		cancel()
		if err != nil {
			// degraded run, not a failed one
			log.Warnw("narrative generation failed, continuing without", "err", err)
			nar = nil
		}
	}

	entry := advice.Assemble(date, overall, gut, hints, rebound, nar, time.Now().UTC())
	rec := buildScoreRecord(target, gut, overall)

	if err := s.PutScore(cmd.Context(), date, rec); err != nil {
		exitErr("save score", err)
	}
	if err := s.PutAdvice(cmd.Context(), entry); err != nil {
		exitErr("save advice", err)
	}

	b, _ := json.MarshalIndent(entry, "", "  ")
	fmt.Println(string(b))
}

// buildScoreRecord flattens the target day into the compact score document.
func buildScoreRecord(target model.DayData, gut model.GutScoreResult, overall int) model.ScoreRecord {
	totals := score.AggregateDay(target.Meals)
	rec := model.ScoreRecord{
		Overall:    overall,
		Gut:        gut.Score,
		SleepHours: score.SleepHours(target.Sleep),
		Fiber:      totals.Fiber,
		Kcal:       totals.Kcal,
	}
	if target.Weight != nil {
		rec.Weight = target.Weight.Kg
		if target.Weight.BodyFatPct != nil {
			rec.BodyFat = *target.Weight.BodyFatPct
		}
	}
	if target.Health != nil {
		if target.Health.Steps != nil {
			rec.Steps = *target.Health.Steps
		}
		if target.Health.WaterLiters != nil {
			rec.Water = *target.Health.WaterLiters
		}
	}
	return rec
}
