package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/internal/usecase"
)

// queryJSON runs a SQL that returns a single json value and unmarshals it
// into out.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, out interface{}, sql string, args ...interface{}) error {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// PGResumeRepo keeps one JSONB document per user in the resumes table.
type PGResumeRepo struct {
	pool *pgxpool.Pool
}

var _ usecase.ResumeRepository = (*PGResumeRepo)(nil)

func NewPGResumeRepo(pool *pgxpool.Pool) *PGResumeRepo {
	return &PGResumeRepo{pool: pool}
}

func (r *PGResumeRepo) Get(ctx context.Context, userID string) (model.Resume, error) {
	var doc model.Resume
	err := queryJSON(ctx, r.pool, &doc, `SELECT document FROM resumes WHERE user_id = $1`, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Resume{}, domain.ErrNotFound
	}
	if err != nil {
		return model.Resume{}, errors.Wrapf(err, "load resume %s", userID)
	}
	doc.UserID = userID
	return doc, nil
}

func (r *PGResumeRepo) Upsert(ctx context.Context, doc model.Resume) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (user_id, document, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (user_id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`,
		doc.UserID, b)
	return errors.Wrapf(err, "store resume %s", doc.UserID)
}

func (r *PGResumeRepo) Delete(ctx context.Context, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE user_id = $1`, userID)
	if err != nil {
		return errors.Wrapf(err, "delete resume %s", userID)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
