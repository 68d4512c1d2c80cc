package store

import (
	"context"
	"os"
)

// Stats holds journal statistics.
type Stats struct {
	DBPath      string      `json:"db_path"`
	DBSizeBytes int64       `json:"db_size_bytes"`
	Kinds       []KindStats `json:"kinds"`
	ScoreDays   int         `json:"score_days"`
	AdviceDays  int         `json:"advice_days"`
	FirstDate   string      `json:"first_date,omitempty"`
	LastDate    string      `json:"last_date,omitempty"`
}

// KindStats holds per-kind document counts.
type KindStats struct {
	Kind string `json:"kind"`
	Days int    `json:"days"`
}

// Stats returns journal statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) FROM journal GROUP BY kind ORDER BY kind`)
	if err != nil {
		return st, err
	}
	defer rows.Close()
	for rows.Next() {
		var ks KindStats
		rows.Scan(&ks.Kind, &ks.Days)
		st.Kinds = append(st.Kinds, ks)
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores`).Scan(&st.ScoreDays)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM advice`).Scan(&st.AdviceDays)
	s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MIN(date), ''), COALESCE(MAX(date), '') FROM journal`).
		Scan(&st.FirstDate, &st.LastDate)

	return st, nil
}
