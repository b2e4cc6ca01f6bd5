package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fieldcoach/coach-server/internal/repository/models"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// EnsureSchema creates the session tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario TEXT NOT NULL,
			created_at TEXT NOT NULL,
			ended_at TEXT
		);
		CREATE TABLE IF NOT EXISTS session_turns (
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			idx INTEGER NOT NULL,
			speaker TEXT NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (session_id, idx)
		);
		CREATE TABLE IF NOT EXISTS metric_results (
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			metric_id TEXT NOT NULL,
			overall_score REAL,
			not_applicable INTEGER NOT NULL,
			components TEXT NOT NULL,
			PRIMARY KEY (session_id, metric_id)
		);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// CreateSession inserts a new session and returns its id.
func (r *SessionRepository) CreateSession(ctx context.Context, scenario string, createdAt time.Time) (int64, error) {
	const query = `INSERT INTO sessions (scenario, created_at) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, query, scenario, createdAt.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session id: %w", err)
	}
	return id, nil
}

// GetSession fetches one session by id. Returns sql.ErrNoRows when the
// session does not exist.
func (r *SessionRepository) GetSession(ctx context.Context, id int64) (models.Session, error) {
	const query = `SELECT id, scenario, created_at, ended_at FROM sessions WHERE id = ?`

	var s models.Session
	var createdAt string
	var endedAt sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Scenario, &createdAt, &endedAt)
	if err != nil {
		return models.Session{}, err
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.Session{}, fmt.Errorf("parse created_at: %w", err)
	}
	if endedAt.Valid {
		t, err := time.Parse(time.RFC3339, endedAt.String)
		if err != nil {
			return models.Session{}, fmt.Errorf("parse ended_at: %w", err)
		}
		s.EndedAt = &t
	}
	return s, nil
}

// EndSession stamps the session's end time.
func (r *SessionRepository) EndSession(ctx context.Context, id int64, endedAt time.Time) error {
	const query = `UPDATE sessions SET ended_at = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, endedAt.UTC().Format(time.RFC3339), id); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// AppendTurn stores the next turn for a session and returns its index. The
// insert and the index read run in one transaction so concurrent appends to
// the same session cannot observe each other's index.
func (r *SessionRepository) AppendTurn(ctx context.Context, sessionID int64, speaker, text string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin append turn: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO session_turns (session_id, idx, speaker, text)
		SELECT ?, COALESCE(MAX(idx) + 1, 0), ?, ?
		FROM session_turns WHERE session_id = ?
	`
	if _, err := tx.ExecContext(ctx, query, sessionID, speaker, text, sessionID); err != nil {
		return 0, fmt.Errorf("insert turn: %w", err)
	}

	var idx int
	const idxQuery = `SELECT MAX(idx) FROM session_turns WHERE session_id = ?`
	if err := tx.QueryRowContext(ctx, idxQuery, sessionID).Scan(&idx); err != nil {
		return 0, fmt.Errorf("turn index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit turn: %w", err)
	}
	return idx, nil
}

// GetTurns returns a session's turns in order.
func (r *SessionRepository) GetTurns(ctx context.Context, sessionID int64) ([]models.StoredTurn, error) {
	const query = `
		SELECT session_id, idx, speaker, text
		FROM session_turns
		WHERE session_id = ?
		ORDER BY idx
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var turns []models.StoredTurn
	for rows.Next() {
		var t models.StoredTurn
		if err := rows.Scan(&t.SessionID, &t.Index, &t.Speaker, &t.Text); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}
	return turns, nil
}

// SaveMetricResults replaces any previously stored results for the session.
// Rescoring is idempotent: the same transcript always produces the same rows.
func (r *SessionRepository) SaveMetricResults(ctx context.Context, sessionID int64, results []models.MetricResultRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save results: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM metric_results WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}

	const insert = `
		INSERT INTO metric_results (session_id, metric_id, overall_score, not_applicable, components)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, res := range results {
		var score any
		if res.OverallScore != nil {
			score = *res.OverallScore
		}
		if _, err := tx.ExecContext(ctx, insert, sessionID, res.MetricID, score, res.NotApplicable, res.Components); err != nil {
			return fmt.Errorf("insert result %s: %w", res.MetricID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit results: %w", err)
	}
	return nil
}

// GetMetricResults returns the stored results for a session in insertion
// order, which is the canonical metric order.
func (r *SessionRepository) GetMetricResults(ctx context.Context, sessionID int64) ([]models.MetricResultRow, error) {
	const query = `
		SELECT session_id, metric_id, overall_score, not_applicable, components
		FROM metric_results
		WHERE session_id = ?
		ORDER BY rowid
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []models.MetricResultRow
	for rows.Next() {
		var res models.MetricResultRow
		var score sql.NullFloat64
		if err := rows.Scan(&res.SessionID, &res.MetricID, &score, &res.NotApplicable, &res.Components); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if score.Valid {
			v := score.Float64
			res.OverallScore = &v
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return results, nil
}
