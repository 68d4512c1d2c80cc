package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmori/gutcheck/internal/model"
	"github.com/tmori/gutcheck/internal/store"
)

func init() {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Record journal entries for a date",
	}
	logCmd.AddCommand(logMealCmd(), logSleepCmd(), logSuppsCmd(), logHealthCmd(), logWeightCmd())
	RootCmd.AddCommand(logCmd)
}

func logMealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meal",
		Short: "Append a meal to the day's list",
		Run:   runLogMeal,
	}
	addDateFlag(cmd)
	cmd.Flags().String("name", "", "Meal name (required)")
	cmd.Flags().Float64("kcal", 0, "Calories")
	cmd.Flags().Float64("protein", 0, "Protein grams")
	cmd.Flags().Float64("fat", 0, "Fat grams")
	cmd.Flags().Float64("carbs", 0, "Carbohydrate grams")
	cmd.Flags().Float64("fiber", 0, "Fiber grams")
	cmd.Flags().String("plants", "", "Comma-separated plant foods")
	cmd.Flags().String("time", "", "Time of day HH:MM")
	cmd.MarkFlagRequired("name")
	return cmd
}

func runLogMeal(cmd *cobra.Command, args []string) {
	date := resolveDate(cmd)
	name, _ := cmd.Flags().GetString("name")
	kcal, _ := cmd.Flags().GetFloat64("kcal")
	protein, _ := cmd.Flags().GetFloat64("protein")
	fat, _ := cmd.Flags().GetFloat64("fat")
	carbs, _ := cmd.Flags().GetFloat64("carbs")
	fiber, _ := cmd.Flags().GetFloat64("fiber")
	plantsStr, _ := cmd.Flags().GetString("plants")
	timeStr, _ := cmd.Flags().GetString("time")

	entry := model.MealEntry{
		Name:    name,
		Kcal:    kcal,
		Protein: protein,
		Fat:     fat,
		Carbs:   carbs,
		Fiber:   fiber,
		Plants:  splitCSV(plantsStr),
		Time:    timeStr,
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.AppendMeal(cmd.Context(), date, entry); err != nil {
		exitErr("log meal", err)
	}
	printOK(date.Format(model.DateKey))
}

func logSleepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "Record the night's sleep",
		Long:  "Record total sleep hours with either explicit stage hours or a JSON timeline of labeled intervals.",
		Run:   runLogSleep,
	}
	addDateFlag(cmd)
	cmd.Flags().Float64("total", 0, "Total sleep hours (required)")
	cmd.Flags().Float64("deep", -1, "Deep hours")
	cmd.Flags().Float64("rem", -1, "REM hours")
	cmd.Flags().Float64("core", -1, "Core hours")
	cmd.Flags().Float64("awake", -1, "Awake hours")
	cmd.Flags().String("timeline", "", `Timeline JSON: [{"stage":"deep","start":"...","end":"..."}]`)
	cmd.MarkFlagRequired("total")
	return cmd
}

func runLogSleep(cmd *cobra.Command, args []string) {
	date := resolveDate(cmd)
	total, _ := cmd.Flags().GetFloat64("total")
	rec := model.SleepRecord{TotalHours: total}

	if tl, _ := cmd.Flags().GetString("timeline"); tl != "" {
		if err := json.Unmarshal([]byte(tl), &rec.Timeline); err != nil {
			exitErr("parse timeline", err)
		}
	} else if anyStageFlagSet(cmd) {
		stages := model.StageDurations{}
		if v, _ := cmd.Flags().GetFloat64("deep"); v >= 0 {
			stages.Deep = v
		}
		if v, _ := cmd.Flags().GetFloat64("rem"); v >= 0 {
			stages.REM = v
		}
		if v, _ := cmd.Flags().GetFloat64("core"); v >= 0 {
			stages.Core = v
		}
		if v, _ := cmd.Flags().GetFloat64("awake"); v >= 0 {
			stages.Awake = v
		}
		rec.Stages = &stages
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.PutDoc(cmd.Context(), store.KindSleep, date, rec); err != nil {
		exitErr("log sleep", err)
	}
	printOK(date.Format(model.DateKey))
}

func anyStageFlagSet(cmd *cobra.Command) bool {
	for _, f := range []string{"deep", "rem", "core", "awake"} {
		if cmd.Flags().Changed(f) {
			return true
		}
	}
	return false
}

func logSuppsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supps",
		Short: "Check or uncheck supplement codes",
		Run:   runLogSupps,
	}
	addDateFlag(cmd)
	cmd.Flags().String("check", "", "Comma-separated codes to mark taken")
	cmd.Flags().String("uncheck", "", "Comma-separated codes to clear")
	return cmd
}

func runLogSupps(cmd *cobra.Command, args []string) {
	date := resolveDate(cmd)
	check, _ := cmd.Flags().GetString("check")
	uncheck, _ := cmd.Flags().GetString("uncheck")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	day, err := s.Day(cmd.Context(), date)
	if err != nil {
		exitErr("read day", err)
	}
	rec := model.DailySupplementRecord{Checks: map[string]bool{}}
	if day.Supps != nil && day.Supps.Checks != nil {
		rec = *day.Supps
	}
	for _, code := range splitCSV(check) {
		rec.Checks[code] = true
	}
	for _, code := range splitCSV(uncheck) {
		delete(rec.Checks, code)
	}

	if err := s.PutDoc(cmd.Context(), store.KindSupps, date, rec); err != nil {
		exitErr("log supps", err)
	}
	printOK(date.Format(model.DateKey))
}

func logHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Record water, steps and bowel observation",
		Run:   runLogHealth,
	}
	addDateFlag(cmd)
	cmd.Flags().Float64("water", 0, "Water liters")
	cmd.Flags().Int("steps", 0, "Step count")
	cmd.Flags().String("bowel", "", "Bowel status: good, hard or loose")
	return cmd
}

func runLogHealth(cmd *cobra.Command, args []string) {
	date := resolveDate(cmd)

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	day, err := s.Day(cmd.Context(), date)
	if err != nil {
		exitErr("read day", err)
	}
	rec := model.DailyHealthRecord{}
	if day.Health != nil {
		rec = *day.Health
	}

	if cmd.Flags().Changed("water") {
		v, _ := cmd.Flags().GetFloat64("water")
		rec.WaterLiters = &v
	}
	if cmd.Flags().Changed("steps") {
		v, _ := cmd.Flags().GetInt("steps")
		rec.Steps = &v
	}
	if cmd.Flags().Changed("bowel") {
		v, _ := cmd.Flags().GetString("bowel")
		switch status := model.BowelStatus(v); status {
		case model.BowelGood, model.BowelHard, model.BowelLoose:
			rec.Bowel = &model.BowelObservation{Status: status}
		default:
			exitErr("log health", fmt.Errorf("bad bowel status %q", v))
		}
	}

	if err := s.PutDoc(cmd.Context(), store.KindHealth, date, rec); err != nil {
		exitErr("log health", err)
	}
	printOK(date.Format(model.DateKey))
}

func logWeightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weight",
		Short: "Record weight and body fat",
		Run:   runLogWeight,
	}
	addDateFlag(cmd)
	cmd.Flags().Float64("kg", 0, "Weight in kilograms (required)")
	cmd.Flags().Float64("fat", 0, "Body fat percent")
	cmd.MarkFlagRequired("kg")
	return cmd
}

func runLogWeight(cmd *cobra.Command, args []string) {
	date := resolveDate(cmd)
	kg, _ := cmd.Flags().GetFloat64("kg")
	rec := model.WeightRecord{Kg: kg}
	if cmd.Flags().Changed("fat") {
		v, _ := cmd.Flags().GetFloat64("fat")
		rec.BodyFatPct = &v
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.PutDoc(cmd.Context(), store.KindWeight, date, rec); err != nil {
		exitErr("log weight", err)
	}
	printOK(date.Format(model.DateKey))
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printOK(date string) {
	fmt.Printf(`{"ok":true,"date":%q}`+"\n", date)
}
