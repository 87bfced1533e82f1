package usecase

import (
	"context"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/pkg/gitrepo"
)

//go:generate mockgen -source=./ports.go -package=mocks -destination=./mocks/ports.mock.go

// ResumeStore is the storage side of the résumé service.
type ResumeStore interface {
	Get(ctx context.Context, userID string) (model.Resume, error)
	Save(ctx context.Context, doc model.Resume) error
}

// Generator is the generation side of the résumé service. Both calls return
// the user's full document; GenerateFromRepository appends exactly one
// project to it.
type Generator interface {
	Generate(ctx context.Context, userID, raw string) (model.Resume, error)
	GenerateFromRepository(ctx context.Context, userID, repoURL string) (model.Resume, error)
}

// Renderer turns a standalone HTML page into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type JobsRepo interface {
	Save(ctx context.Context, j *domain.ExportJob) error
}

// ResumeRepository persists whole documents keyed by user id. Get returns
// domain.ErrNotFound when nothing is stored.
type ResumeRepository interface {
	Get(ctx context.Context, userID string) (model.Resume, error)
	Upsert(ctx context.Context, doc model.Resume) error
	Delete(ctx context.Context, userID string) error
}

// ResumeAI extracts structured data with the upstream language model.
type ResumeAI interface {
	ParseResume(ctx context.Context, raw string) (model.Resume, error)
	AnalyzeRepository(ctx context.Context, snap gitrepo.Snapshot) (model.Project, error)
}

// RepoFetcher collects README and metadata for a repository.
type RepoFetcher interface {
	Fetch(ctx context.Context, info gitrepo.Info) gitrepo.Snapshot
}
