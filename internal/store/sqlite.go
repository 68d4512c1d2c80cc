package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/tmori/gutcheck/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string, log *zap.SugaredLogger) (*SQLiteStore, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{db: db, log: log}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS journal (
		kind       TEXT NOT NULL,
		date       TEXT NOT NULL,
		doc        TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (kind, date)
	);
	CREATE INDEX IF NOT EXISTS idx_journal_date ON journal(date);

	CREATE TABLE IF NOT EXISTS scores (
		date       TEXT PRIMARY KEY,
		doc        TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS advice (
		date       TEXT PRIMARY KEY,
		id         TEXT NOT NULL,
		doc        TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func dateKey(date time.Time) string { return date.Format(model.DateKey) }

// windowStartKey is the oldest date key the retention policy keeps for a
// write dated at date.
func windowStartKey(date time.Time) string {
	return dateKey(date.AddDate(0, 0, -(model.WindowDays - 1)))
}

// PutDoc upserts one journal document.
func (s *SQLiteStore) PutDoc(ctx context.Context, kind string, date time.Time, doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s doc: %w", kind, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO journal (kind, date, doc, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(kind, date) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		kind, dateKey(date), string(b), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("put %s doc: %w", kind, err)
	}
	return nil
}

// AppendMeal appends one entry to the date's meal list, read-modify-write
// in a single transaction.
func (s *SQLiteStore) AppendMeal(ctx context.Context, date time.Time, entry model.MealEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var rec model.DailyMealRecord
	var raw string
	err = tx.QueryRowContext(ctx,
		`SELECT doc FROM journal WHERE kind = ? AND date = ?`,
		KindMeals, dateKey(date)).Scan(&raw)
	if err == nil {
		if uerr := json.Unmarshal([]byte(raw), &rec); uerr != nil {
			// malformed stored doc behaves like a missing one
			s.log.Debugw("malformed meal doc replaced", "date", dateKey(date), "err", uerr)
			rec = model.DailyMealRecord{}
		}
	} else if err != sql.ErrNoRows {
		return fmt.Errorf("read meal doc: %w", err)
	}

	rec.Entries = append(rec.Entries, entry)
	b, _ := json.Marshal(rec)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO journal (kind, date, doc, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(kind, date) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		KindMeals, dateKey(date), string(b), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append meal: %w", err)
	}
	return tx.Commit()
}

// getDoc unmarshals one journal document into dest. Missing rows and
// unparseable docs both report found=false; only real query failures
// return an error.
func (s *SQLiteStore) getDoc(ctx context.Context, kind, key string, dest any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM journal WHERE kind = ? AND date = ?`, kind, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s doc: %w", kind, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Debugw("malformed journal doc treated as missing", "kind", kind, "date", key, "err", err)
		return false, nil
	}
	return true, nil
}

// Day loads one date's records. Absent kinds stay nil.
func (s *SQLiteStore) Day(ctx context.Context, date time.Time) (model.DayData, error) {
	day := model.DayData{Date: date}
	key := dateKey(date)

	var meals model.DailyMealRecord
	if ok, err := s.getDoc(ctx, KindMeals, key, &meals); err != nil {
		return day, err
	} else if ok {
		day.Meals = &meals
	}
	var supps model.DailySupplementRecord
	if ok, err := s.getDoc(ctx, KindSupps, key, &supps); err != nil {
		return day, err
	} else if ok {
		day.Supps = &supps
	}
	var health model.DailyHealthRecord
	if ok, err := s.getDoc(ctx, KindHealth, key, &health); err != nil {
		return day, err
	} else if ok {
		day.Health = &health
	}
	var sleep model.SleepRecord
	if ok, err := s.getDoc(ctx, KindSleep, key, &sleep); err != nil {
		return day, err
	} else if ok {
		day.Sleep = &sleep
	}
	var weight model.WeightRecord
	if ok, err := s.getDoc(ctx, KindWeight, key, &weight); err != nil {
		return day, err
	} else if ok {
		day.Weight = &weight
	}
	return day, nil
}

// LoadWindow returns the 7 days ending at target in chronological order.
func (s *SQLiteStore) LoadWindow(ctx context.Context, target time.Time) ([]model.DayData, error) {
	window := make([]model.DayData, 0, model.WindowDays)
	for i := model.WindowDays - 1; i >= 0; i-- {
		day, err := s.Day(ctx, target.AddDate(0, 0, -i))
		if err != nil {
			return nil, err
		}
		window = append(window, day)
	}
	return window, nil
}

// PutScore writes the date's score record and applies retention in the
// same transaction.
func (s *SQLiteStore) PutScore(ctx context.Context, date time.Time, rec model.ScoreRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal score: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scores (date, doc, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET doc = excluded.doc, created_at = excluded.created_at`,
		dateKey(date), string(b), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("put score: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM scores WHERE date < ?`, windowStartKey(date)); err != nil {
		return fmt.Errorf("evict scores: %w", err)
	}
	return tx.Commit()
}

// GetScore returns the date's score record, nil when absent.
func (s *SQLiteStore) GetScore(ctx context.Context, date time.Time) (*model.ScoreRecord, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM scores WHERE date = ?`, dateKey(date)).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get score: %w", err)
	}
	var rec model.ScoreRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.log.Debugw("malformed score doc treated as missing", "date", dateKey(date), "err", err)
		return nil, nil
	}
	return &rec, nil
}

// ListScores returns up to limit score records, newest first.
func (s *SQLiteStore) ListScores(ctx context.Context, limit int) ([]model.DatedScore, error) {
	if limit <= 0 {
		limit = model.WindowDays
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, doc FROM scores ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()

	var out []model.DatedScore
	for rows.Next() {
		var ds model.DatedScore
		var raw string
		if err := rows.Scan(&ds.Date, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(raw), &ds.ScoreRecord); err != nil {
			s.log.Debugw("malformed score doc skipped", "date", ds.Date, "err", err)
			continue
		}
		out = append(out, ds)
	}
	return out, rows.Err()
}

// PutAdvice writes the advice entry under its date, same retention rule as
// PutScore.
func (s *SQLiteStore) PutAdvice(ctx context.Context, entry model.AdviceEntry) error {
	date, err := time.Parse(model.DateKey, entry.Date)
	if err != nil {
		return fmt.Errorf("bad advice date %q: %w", entry.Date, err)
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal advice: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO advice (date, id, doc, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET id = excluded.id, doc = excluded.doc, created_at = excluded.created_at`,
		entry.Date, entry.ID, string(b), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("put advice: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM advice WHERE date < ?`, windowStartKey(date)); err != nil {
		return fmt.Errorf("evict advice: %w", err)
	}
	return tx.Commit()
}

// GetAdvice returns the date's advice entry, nil when absent.
func (s *SQLiteStore) GetAdvice(ctx context.Context, date time.Time) (*model.AdviceEntry, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM advice WHERE date = ?`, dateKey(date)).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get advice: %w", err)
	}
	var entry model.AdviceEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		s.log.Debugw("malformed advice doc treated as missing", "date", dateKey(date), "err", err)
		return nil, nil
	}
	return &entry, nil
}
