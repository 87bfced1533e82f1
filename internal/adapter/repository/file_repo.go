package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/internal/usecase"
)

// FileResumeRepo stores each document as {dir}/{user_id}.json.
type FileResumeRepo struct {
	dir string
	mu  sync.RWMutex
}

var _ usecase.ResumeRepository = (*FileResumeRepo)(nil)

func NewFileResumeRepo(dir string) (*FileResumeRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	return &FileResumeRepo{dir: dir}, nil
}

// path rejects ids that would escape the data directory.
func (r *FileResumeRepo) path(userID string) (string, error) {
	if userID == "" || userID != filepath.Base(userID) || userID == "." || userID == ".." {
		return "", &domain.FormatError{Value: userID, Msg: "invalid user id"}
	}
	return filepath.Join(r.dir, userID+".json"), nil
}

func (r *FileResumeRepo) Get(ctx context.Context, userID string) (model.Resume, error) {
	p, err := r.path(userID)
	if err != nil {
		return model.Resume{}, err
	}
	r.mu.RLock()
	b, err := os.ReadFile(p)
	r.mu.RUnlock()
	if errors.Is(err, os.ErrNotExist) {
		return model.Resume{}, domain.ErrNotFound
	}
	if err != nil {
		return model.Resume{}, err
	}
	var doc model.Resume
	if err := json.Unmarshal(b, &doc); err != nil {
		return model.Resume{}, errors.Wrapf(err, "decode %s", p)
	}
	return doc, nil
}

func (r *FileResumeRepo) Upsert(ctx context.Context, doc model.Resume) error {
	p, err := r.path(doc.UserID)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

func (r *FileResumeRepo) Delete(ctx context.Context, userID string) error {
	p, err := r.path(userID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return domain.ErrNotFound
	}
	return err
}
