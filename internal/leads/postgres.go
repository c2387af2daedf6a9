package leads

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// PostgresSink archives lead rows in Postgres. Optional: wired only when
// DATABASE_URL is set. Schema:
//
//	CREATE TABLE leads (
//	    id           uuid PRIMARY KEY,
//	    captured_at  timestamptz NOT NULL,
//	    name         text NOT NULL,
//	    phone        text NOT NULL,
//	    project_type text NOT NULL,
//	    budget       text NOT NULL,
//	    notes        text NOT NULL
//	);
type PostgresSink struct {
	db *sql.DB
}

// NewPostgresSink wraps an open database handle.
func NewPostgresSink(db *sql.DB) *PostgresSink {
	return &PostgresSink{db: db}
}

func (s *PostgresSink) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leads (id, captured_at, name, phone, project_type, budget, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		uuid.New().String(),
		rec.CapturedAt,
		rec.Name,
		rec.Phone,
		rec.ProjectType,
		rec.Budget,
		rec.Notes,
	)
	if err != nil {
		return fmt.Errorf("leads: postgres insert failed: %w", err)
	}
	return nil
}
