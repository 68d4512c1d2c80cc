package score

import "github.com/tmori/gutcheck/internal/model"

// DayTotals is one day's reduced meal list.
type DayTotals struct {
	Kcal    float64
	Protein float64
	Fat     float64
	Carbs   float64
	Fiber   float64
	Plants  map[string]bool // distinct plant-food identifiers
}

// AggregateDay reduces a day's meals into macro totals and the union of
// plant identifiers. A nil record behaves like an empty one; nothing here
// can fail.
func AggregateDay(rec *model.DailyMealRecord) DayTotals {
	t := DayTotals{Plants: map[string]bool{}}
	if rec == nil {
		return t
	}
	for _, m := range rec.Entries {
		t.Kcal += m.Kcal
		t.Protein += m.Protein
		t.Fat += m.Fat
		t.Carbs += m.Carbs
		t.Fiber += m.Fiber
		for _, p := range m.Plants {
			if p != "" {
				t.Plants[p] = true
			}
		}
	}
	return t
}
