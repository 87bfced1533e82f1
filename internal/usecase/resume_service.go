package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/pkg/gitrepo"
)

// ResumeService is the storage and generation service. It satisfies
// ResumeStore and Generator, so an editing session can use it in-process
// instead of over HTTP.
type ResumeService struct {
	repo    ResumeRepository
	ai      ResumeAI
	fetcher RepoFetcher
}

func NewResumeService(repo ResumeRepository, ai ResumeAI, fetcher RepoFetcher) *ResumeService {
	return &ResumeService{repo: repo, ai: ai, fetcher: fetcher}
}

var (
	_ ResumeStore = (*ResumeService)(nil)
	_ Generator   = (*ResumeService)(nil)
)

func (s *ResumeService) Get(ctx context.Context, userID string) (model.Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Resume{}, domain.Required("user_id")
	}
	return s.repo.Get(ctx, userID)
}

// Save stores doc as given, replacing any previous document of the user.
func (s *ResumeService) Save(ctx context.Context, doc model.Resume) error {
	if strings.TrimSpace(doc.UserID) == "" {
		return domain.Required("user_id")
	}
	if err := model.Validate(doc); err != nil {
		return &domain.ValidationError{Field: "document", Msg: err.Error()}
	}
	return s.repo.Upsert(ctx, doc)
}

func (s *ResumeService) Delete(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.Required("user_id")
	}
	return s.repo.Delete(ctx, userID)
}

// Generate parses raw text into a document and stores it as the user's
// résumé.
func (s *ResumeService) Generate(ctx context.Context, userID, raw string) (model.Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Resume{}, domain.Required("user_id")
	}
	if strings.TrimSpace(raw) == "" {
		return model.Resume{}, domain.Required("raw")
	}
	doc, err := s.ai.ParseResume(ctx, raw)
	if err != nil {
		return model.Resume{}, errors.Wrap(err, "generate resume")
	}
	doc = model.Sanitize(doc)
	doc.UserID = userID
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return model.Resume{}, errors.Wrap(err, "store generated resume")
	}
	slog.Info("resume generated", "user_id", userID)
	return doc, nil
}

// GenerateFromRepository describes a repository as a project and appends it
// to the user's stored résumé, creating one if needed.
func (s *ResumeService) GenerateFromRepository(ctx context.Context, userID, repoURL string) (model.Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Resume{}, domain.Required("user_id")
	}
	if strings.TrimSpace(repoURL) == "" {
		return model.Resume{}, domain.Required("repo_url")
	}
	info, err := gitrepo.Parse(repoURL)
	if err != nil {
		return model.Resume{}, &domain.FormatError{Value: repoURL, Msg: "invalid repository URL"}
	}

	snap := s.fetcher.Fetch(ctx, info)
	project, err := s.ai.AnalyzeRepository(ctx, snap)
	if err != nil {
		return model.Resume{}, errors.Wrap(err, "analyze repository")
	}
	project = model.Sanitize(model.Resume{Projects: []model.Project{project}}).Projects[0]

	doc, err := s.repo.Get(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		doc = model.Resume{UserID: userID}
	case err != nil:
		return model.Resume{}, err
	}
	doc.Projects = append(doc.Projects, project)
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return model.Resume{}, errors.Wrap(err, "store resume")
	}
	slog.Info("repository project added", "user_id", userID, "repo", info.URL())
	return doc, nil
}
