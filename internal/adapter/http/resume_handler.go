package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/internal/usecase"
)

// ResumeService is the storage and generation service behind /api/resume.
type ResumeService interface {
	usecase.ResumeStore
	usecase.Generator
	Delete(ctx context.Context, userID string) error
}

// ExportLister returns recorded PDF exports of a user.
type ExportLister interface {
	ListForUser(ctx context.Context, userID string, limit int) ([]domain.ExportJob, error)
}

type ResumeHandler struct {
	svc     ResumeService
	exports ExportLister
}

func NewResumeHandler(svc ResumeService, exports ExportLister) *ResumeHandler {
	return &ResumeHandler{svc: svc, exports: exports}
}

func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	doc, err := h.svc.Get(c.UserContext(), c.Params("userID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

func (h *ResumeHandler) Save(c *fiber.Ctx) error {
	var doc model.Resume
	if err := c.BodyParser(&doc); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.svc.Save(c.UserContext(), doc); err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("userID")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type generateReq struct {
	Raw string `json:"raw"`
}

func (h *ResumeHandler) Generate(c *fiber.Ctx) error {
	var req generateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	doc, err := h.svc.Generate(c.UserContext(), c.Params("userID"), req.Raw)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

type repositoryReq struct {
	RepoURL string `json:"repo_url"`
}

func (h *ResumeHandler) GenerateFromRepository(c *fiber.Ctx) error {
	var req repositoryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	doc, err := h.svc.GenerateFromRepository(c.UserContext(), c.Params("userID"), req.RepoURL)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

func (h *ResumeHandler) Exports(c *fiber.Ctx) error {
	if h.exports == nil {
		return c.JSON([]domain.ExportJob{})
	}
	jobs, err := h.exports.ListForUser(c.UserContext(), c.Params("userID"), c.QueryInt("limit", 20))
	if err != nil {
		return writeError(c, err)
	}
	if jobs == nil {
		jobs = []domain.ExportJob{}
	}
	return c.JSON(jobs)
}
