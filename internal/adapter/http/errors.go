package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/editor"
	"github.com/xkiven/ResumeBuilder/internal/render"
)

// statusOf maps domain errors onto HTTP statuses.
func statusOf(err error) int {
	switch {
	case domain.IsValidation(err),
		errors.Is(err, render.ErrUnknownVariant),
		errors.Is(err, editor.ErrUnknownSection),
		errors.Is(err, editor.ErrUnknownField):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, editor.ErrEntryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrBusy), errors.Is(err, editor.ErrEntryRemoving):
		return fiber.StatusConflict
	case domain.IsUpstream(err):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func writeError(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "status", status, "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
