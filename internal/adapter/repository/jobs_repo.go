package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/xkiven/ResumeBuilder/internal/domain"
)

// JobsRepo records PDF exports. A nil pool turns it into a no-op so the
// service can run without a database.
type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

func (r *JobsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		return nil
	}

	metaB, err := json.Marshal(j.Metadata)
	if err != nil {
		return err
	}

	fileName := ""
	if p, ok := j.Metadata["generated_pdf"].(string); ok && p != "" {
		fileName = filepath.Base(p)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO export_jobs (id, user_id, variant, status, file_name, metadata, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, file_name = EXCLUDED.file_name, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at`,
		j.ID, j.UserID, j.Variant, j.Status, fileName, metaB, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return err
	}
	slog.Debug("jobs_repo: export recorded", "job_id", j.ID, "status", j.Status)
	return nil
}

// ListForUser returns the most recent export records of a user.
func (r *JobsRepo) ListForUser(ctx context.Context, userID string, limit int) ([]domain.ExportJob, error) {
	if r.pool == nil {
		return nil, nil
	}
	var jobs []domain.ExportJob
	err := queryJSON(ctx, r.pool, &jobs, `SELECT coalesce(json_agg(row_to_json(j) ORDER BY j.created_at DESC), '[]')
		FROM (SELECT id, user_id, variant, status, metadata, created_at, updated_at
			FROM export_jobs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2) j`, userID, limit)
	return jobs, err
}
