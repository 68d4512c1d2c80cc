// Package store provides the journal storage interface and SQLite
// implementation: per-date JSON documents for raw inputs, plus score and
// advice documents kept under rolling 7-day retention.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tmori/gutcheck/internal/model"
)

// Journal document kinds.
const (
	KindMeals  = "meals"
	KindSupps  = "supps"
	KindHealth = "health"
	KindSleep  = "sleep"
	KindWeight = "weight"
)

// Kinds lists every journal document kind.
var Kinds = []string{KindMeals, KindSupps, KindHealth, KindSleep, KindWeight}

// JournalDoc is one raw input document, as exported/imported.
type JournalDoc struct {
	Kind string          `json:"kind"`
	Date string          `json:"date"`
	Doc  json.RawMessage `json:"doc"`
}

// Dump is the whole-journal export format.
type Dump struct {
	Journal []JournalDoc        `json:"journal"`
	Scores  []model.DatedScore  `json:"scores"`
	Advice  []model.AdviceEntry `json:"advice"`
}

// Store is the journal storage interface.
type Store interface {
	// PutDoc upserts one raw document for a kind and date.
	PutDoc(ctx context.Context, kind string, date time.Time, doc any) error

	// AppendMeal appends one entry to the date's meal list.
	AppendMeal(ctx context.Context, date time.Time, entry model.MealEntry) error

	// Day loads everything stored for one date. Missing or unparseable
	// documents come back nil, never as an error.
	Day(ctx context.Context, date time.Time) (model.DayData, error)

	// LoadWindow returns the 7 days ending at target, chronological.
	LoadWindow(ctx context.Context, target time.Time) ([]model.DayData, error)

	// PutScore writes the date's score record and evicts records older
	// than the date's window, atomically.
	PutScore(ctx context.Context, date time.Time, rec model.ScoreRecord) error

	// ListScores returns up to limit score records, newest first.
	ListScores(ctx context.Context, limit int) ([]model.DatedScore, error)

	// PutAdvice writes the advice entry under its date with the same
	// retention rule as PutScore.
	PutAdvice(ctx context.Context, entry model.AdviceEntry) error

	// GetAdvice returns the date's advice entry, nil when absent.
	GetAdvice(ctx context.Context, date time.Time) (*model.AdviceEntry, error)

	// ExportAll dumps the whole journal.
	ExportAll(ctx context.Context) (*Dump, error)

	// Import replays a dump. Returns the number of documents written.
	Import(ctx context.Context, d *Dump) (int, error)

	// Close closes the store.
	Close() error
}
