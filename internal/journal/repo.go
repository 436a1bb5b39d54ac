package journal

import (
	"context"
	"time"

	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID uuid.UUID, e Entry) (*Entry, error) {
	err := r.db.QueryRow(
		ctx,
		`
			INSERT INTO journal_entry (user_id, written_on, technique, content, mood, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		userID, e.WrittenOn.Time(), e.Technique, e.Content, e.Mood, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT count(*) FROM journal_entry WHERE user_id = $1;`,
		userID,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Page returns entries newest first; page is 1-based.
func (r *Repo) Page(ctx context.Context, userID uuid.UUID, page, size int) ([]Entry, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.page")
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))
	defer span.End()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, written_on, technique, content, mood, created_at
			FROM journal_entry
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
			OFFSET $3;`,
		userID, size, (page-1)*size,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var writtenOn time.Time
		if err := rows.Scan(&e.ID, &writtenOn, &e.Technique, &e.Content, &e.Mood, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.WrittenOn = program.FromDB(writtenOn)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM journal_entry WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}
