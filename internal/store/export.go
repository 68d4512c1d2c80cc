package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tmori/gutcheck/internal/model"
)

// ExportAll dumps every journal, score and advice document.
func (s *SQLiteStore) ExportAll(ctx context.Context) (*Dump, error) {
	d := &Dump{}

	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, date, doc FROM journal ORDER BY date, kind`)
	if err != nil {
		return nil, fmt.Errorf("export journal: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var jd JournalDoc
		var raw string
		if err := rows.Scan(&jd.Kind, &jd.Date, &raw); err != nil {
			return nil, err
		}
		jd.Doc = json.RawMessage(raw)
		d.Journal = append(d.Journal, jd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	scores, err := s.ListScores(ctx, 100000)
	if err != nil {
		return nil, err
	}
	d.Scores = scores

	arows, err := s.db.QueryContext(ctx, `SELECT doc FROM advice ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("export advice: %w", err)
	}
	defer arows.Close()
	for arows.Next() {
		var raw string
		if err := arows.Scan(&raw); err != nil {
			return nil, err
		}
		var entry model.AdviceEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			s.log.Debugw("malformed advice doc skipped on export", "err", err)
			continue
		}
		d.Advice = append(d.Advice, entry)
	}
	return d, arows.Err()
}

// Import replays a dump into the store. Journal docs upsert; scores and
// advice re-run the normal write path, retention included.
func (s *SQLiteStore) Import(ctx context.Context, d *Dump) (int, error) {
	n := 0
	for _, jd := range d.Journal {
		date, err := time.Parse(model.DateKey, jd.Date)
		if err != nil {
			return n, fmt.Errorf("bad journal date %q: %w", jd.Date, err)
		}
		var doc json.RawMessage = jd.Doc
		if err := s.PutDoc(ctx, jd.Kind, date, doc); err != nil {
			return n, err
		}
		n++
	}
	for _, ds := range d.Scores {
		date, err := time.Parse(model.DateKey, ds.Date)
		if err != nil {
			return n, fmt.Errorf("bad score date %q: %w", ds.Date, err)
		}
		if err := s.PutScore(ctx, date, ds.ScoreRecord); err != nil {
			return n, err
		}
		n++
	}
	for _, entry := range d.Advice {
		if err := s.PutAdvice(ctx, entry); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
