package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"mergingtonactivities/internal/domain"
)

// pq error codes handled by the repository.
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

const schema = `
CREATE TABLE IF NOT EXISTS activities (
	name             TEXT PRIMARY KEY,
	description      TEXT NOT NULL,
	schedule         TEXT NOT NULL,
	max_participants INTEGER NOT NULL CHECK (max_participants > 0)
);
CREATE TABLE IF NOT EXISTS activity_participants (
	activity_name TEXT NOT NULL REFERENCES activities (name) ON DELETE CASCADE,
	email         TEXT NOT NULL,
	position      BIGSERIAL,
	signed_up_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (activity_name, email)
);
`

// ActivityRepository is a domain.ActivityRepository backed by Postgres.
type ActivityRepository struct {
	DB *sql.DB
}

var _ domain.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// EnsureSchema creates the roster tables if they do not exist.
func (r *ActivityRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Seed inserts the given roster. Activities and participants that already
// exist are left untouched, so seeding an existing database is a no-op.
func (r *ActivityRepository) Seed(ctx context.Context, roster domain.Roster) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range roster.Names() {
		a := roster[name]
		_, err := tx.ExecContext(ctx, `
			INSERT INTO activities (name, description, schedule, max_participants)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING
		`, name, a.Description, a.Schedule, a.MaxParticipants)
		if err != nil {
			return fmt.Errorf("seed activity %q: %w", name, err)
		}
		for _, email := range a.Participants {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO activity_participants (activity_name, email)
				VALUES ($1, $2)
				ON CONFLICT (activity_name, email) DO NOTHING
			`, name, email)
			if err != nil {
				return fmt.Errorf("seed participant %q: %w", name, err)
			}
		}
	}
	return tx.Commit()
}

func (r *ActivityRepository) List(ctx context.Context) (domain.Roster, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, description, schedule, max_participants
		FROM activities
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := domain.Roster{}
	for rows.Next() {
		var (
			name string
			a    domain.Activity
		)
		if err := rows.Scan(&name, &a.Description, &a.Schedule, &a.MaxParticipants); err != nil {
			return nil, err
		}
		a.Participants = []string{}
		roster[name] = &a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prows, err := r.DB.QueryContext(ctx, `
		SELECT activity_name, email
		FROM activity_participants
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer prows.Close()

	for prows.Next() {
		var name, email string
		if err := prows.Scan(&name, &email); err != nil {
			return nil, err
		}
		if a, ok := roster[name]; ok {
			a.Participants = append(a.Participants, email)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, err
	}
	return roster, nil
}

func (r *ActivityRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	a := &domain.Activity{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT description, schedule, max_participants
		FROM activities
		WHERE name = $1
	`, name).Scan(&a.Description, &a.Schedule, &a.MaxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT email
		FROM activity_participants
		WHERE activity_name = $1
		ORDER BY position
	`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	a.Participants = []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		a.Participants = append(a.Participants, email)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	if err := r.ensureActivity(ctx, name); err != nil {
		return err
	}
	result, err := r.DB.ExecContext(ctx, `
		INSERT INTO activity_participants (activity_name, email)
		VALUES ($1, $2)
		ON CONFLICT (activity_name, email) DO NOTHING
	`, name, email)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) {
			switch perr.Code {
			case pqForeignKeyViolation:
				// Activity removed between the existence check and the insert.
				return domain.ErrNotFound
			case pqUniqueViolation:
				return domain.ErrAlreadySignedUp
			}
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAlreadySignedUp
	}
	return nil
}

func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	if err := r.ensureActivity(ctx, name); err != nil {
		return err
	}
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM activity_participants
		WHERE activity_name = $1 AND email = $2
	`, name, email)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotRegistered
	}
	return nil
}

func (r *ActivityRepository) ensureActivity(ctx context.Context, name string) error {
	var exists int
	err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM activities WHERE name = $1`, name).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}
