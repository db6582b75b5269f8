package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
	"resumatch/internal/errors"
	"resumatch/internal/types"
)

// defaultHistoryLimit bounds History when the caller passes no limit.
const defaultHistoryLimit = 10

const schema = `
CREATE TABLE IF NOT EXISTS scoring_results (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp       TEXT NOT NULL,
	resume_data     TEXT NOT NULL,
	jd_data         TEXT NOT NULL,
	score_data      TEXT NOT NULL,
	recommendations TEXT NOT NULL,
	overall_score   REAL NOT NULL,
	user_session    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_scoring_results_session
	ON scoring_results(user_session);
`

// SQLite is the Store implementation backed by a SQLite database file.
// ":memory:" gives an ephemeral store.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the
// schema.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStoreUnavailable,
			fmt.Sprintf("Failed to open database: %s", path), err)
	}

	// modernc sqlite serializes writes itself; a single connection avoids
	// SQLITE_BUSY under concurrent use.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.NewStorageError(errors.ErrCodeStoreUnavailable,
			"Failed to apply database schema", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Save(ctx context.Context, result types.AnalysisResult, userSession string) (int64, error) {
	resumeData, err := json.Marshal(result.Resume)
	if err != nil {
		return 0, errors.NewStorageError(errors.ErrCodeInvalidFormat, "Failed to encode resume", err)
	}
	jdData, err := json.Marshal(result.JobDescription)
	if err != nil {
		return 0, errors.NewStorageError(errors.ErrCodeInvalidFormat, "Failed to encode job description", err)
	}
	scoreData, err := json.Marshal(result.Scores)
	if err != nil {
		return 0, errors.NewStorageError(errors.ErrCodeInvalidFormat, "Failed to encode scores", err)
	}
	recs, err := json.Marshal(result.Recommendations)
	if err != nil {
		return 0, errors.NewStorageError(errors.ErrCodeInvalidFormat, "Failed to encode recommendations", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO scoring_results
			(timestamp, resume_data, jd_data, score_data, recommendations, overall_score, user_session)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		string(resumeData), string(jdData), string(scoreData), string(recs),
		result.Scores.OverallScore, userSession)
	if err != nil {
		return 0, errors.NewStorageError(errors.ErrCodeStoreUnavailable, "Failed to save result", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.NewStorageError(errors.ErrCodeStoreUnavailable, "Failed to read inserted id", err)
	}
	return id, nil
}

func (s *SQLite) Get(ctx context.Context, id int64) (*Record, error) {
	var (
		rec       Record
		timestamp string
		resume    string
		jd        string
		scores    string
		recs      string
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, timestamp, resume_data, jd_data, score_data, recommendations, user_session
		FROM scoring_results WHERE id = ?`, id).
		Scan(&rec.ID, &timestamp, &resume, &jd, &scores, &recs, &rec.UserSession)
	if err == sql.ErrNoRows {
		return nil, errors.NewStorageError(errors.ErrCodeResultNotFound,
			fmt.Sprintf("No result with id %d", id), nil)
	}
	if err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStoreUnavailable, "Failed to load result", err)
	}

	if rec.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp); err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeInvalidFormat, "Invalid stored timestamp", err)
	}
	if err := json.Unmarshal([]byte(resume), &rec.Result.Resume); err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeInvalidFormat, "Invalid stored resume", err)
	}
	if err := json.Unmarshal([]byte(jd), &rec.Result.JobDescription); err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeInvalidFormat, "Invalid stored job description", err)
	}
	if err := json.Unmarshal([]byte(scores), &rec.Result.Scores); err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeInvalidFormat, "Invalid stored scores", err)
	}
	if err := json.Unmarshal([]byte(recs), &rec.Result.Recommendations); err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeInvalidFormat, "Invalid stored recommendations", err)
	}

	return &rec, nil
}

func (s *SQLite) History(ctx context.Context, userSession string, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query := `SELECT id, timestamp, user_session, overall_score, jd_data
		FROM scoring_results`
	args := []any{}
	if userSession != "" {
		query += ` WHERE user_session = ?`
		args = append(args, userSession)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStoreUnavailable, "Failed to list results", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Summary
	for rows.Next() {
		var (
			sum       Summary
			timestamp string
			jdData    string
		)
		if err := rows.Scan(&sum.ID, &timestamp, &sum.UserSession, &sum.OverallScore, &jdData); err != nil {
			return nil, errors.NewStorageError(errors.ErrCodeStoreUnavailable, "Failed to scan result row", err)
		}
		if sum.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp); err != nil {
			return nil, errors.NewStorageError(errors.ErrCodeInvalidFormat, "Invalid stored timestamp", err)
		}

		// Only the title is needed from the stored job description.
		var jd struct {
			JobTitle string `json:"jobTitle"`
		}
		if err := json.Unmarshal([]byte(jdData), &jd); err == nil {
			sum.JobTitle = jd.JobTitle
		}

		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStoreUnavailable, "Failed to iterate results", err)
	}

	return out, nil
}

func (s *SQLite) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(AVG(overall_score), 0),
			COALESCE(MAX(overall_score), 0)
		FROM scoring_results`).
		Scan(&stats.TotalResults, &stats.AverageScore, &stats.BestScore)
	if err != nil {
		return Stats{}, errors.NewStorageError(errors.ErrCodeStoreUnavailable, "Failed to aggregate results", err)
	}
	return stats, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
