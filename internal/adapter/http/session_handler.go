package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/xkiven/ResumeBuilder/internal/editor"
	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/internal/render"
	"github.com/xkiven/ResumeBuilder/internal/usecase"
)

// SessionHandler exposes editing sessions: entry mutations, live preview and
// the boundary actions of the processor.
type SessionHandler struct {
	reg     *editor.Registry
	proc    *usecase.Processor
	variant render.Variant
}

func NewSessionHandler(reg *editor.Registry, proc *usecase.Processor, defaultVariant render.Variant) *SessionHandler {
	return &SessionHandler{reg: reg, proc: proc, variant: defaultVariant}
}

type sessionView struct {
	ID       string                            `json:"session_id"`
	UserID   string                            `json:"user_id"`
	Basic    editor.Fields                     `json:"basic_info"`
	Sections map[editor.Section][]editor.Entry `json:"sections"`
	Document model.Resume                      `json:"document"`
}

func viewOf(id string, s *editor.Session) sessionView {
	v := sessionView{
		ID:       id,
		UserID:   s.UserID(),
		Basic:    s.Basic(),
		Sections: map[editor.Section][]editor.Entry{},
		Document: s.CollectDocument(),
	}
	for _, sec := range editor.Sections() {
		v.Sections[sec] = s.Entries(sec)
	}
	return v
}

func (h *SessionHandler) session(c *fiber.Ctx) (*editor.Session, bool) {
	s, ok := h.reg.Get(c.Params("sid"))
	if !ok {
		_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
	}
	return s, ok
}

func entryID(c *fiber.Ctx) (editor.EntryID, bool) {
	n, err := strconv.ParseUint(c.Params("eid"), 10, 64)
	if err != nil {
		_ = badRequest(c, "invalid entry id")
		return 0, false
	}
	return editor.EntryID(n), true
}

func (h *SessionHandler) variantOf(c *fiber.Ctx) (render.Variant, error) {
	q := c.Query("variant")
	if q == "" {
		return h.variant, nil
	}
	return render.ParseVariant(q)
}

type createReq struct {
	UserID string `json:"user_id"`
}

func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var req createReq
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid payload")
		}
	}
	id, s := h.reg.Create(req.UserID)
	h.proc.Watch(s, h.variant)
	return c.Status(fiber.StatusCreated).JSON(viewOf(id, s))
}

func (h *SessionHandler) Get(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	return c.JSON(viewOf(c.Params("sid"), s))
}

func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	h.reg.Delete(c.Params("sid"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SessionHandler) SetUser(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	var req createReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	s.SetUserID(req.UserID)
	return c.JSON(viewOf(c.Params("sid"), s))
}

type addEntryReq struct {
	Section editor.Section `json:"section"`
	Fields  editor.Fields  `json:"fields"`
}

func (h *SessionHandler) AddEntry(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	var req addEntryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	id, err := s.AddEntry(req.Section, req.Fields)
	if err != nil {
		return writeError(c, err)
	}
	e, _ := s.Entry(id)
	return c.Status(fiber.StatusCreated).JSON(e)
}

type fieldsReq struct {
	Fields editor.Fields `json:"fields"`
}

func (h *SessionHandler) UpdateEntry(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	id, ok := entryID(c)
	if !ok {
		return nil
	}
	var req fieldsReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := s.SetFields(id, req.Fields); err != nil {
		return writeError(c, err)
	}
	e, _ := s.Entry(id)
	return c.JSON(e)
}

// RemoveEntry detaches an entry. With ?deferred=true it only marks the entry
// as leaving and the session completes the removal after its delay; a second
// DELETE completes it early.
func (h *SessionHandler) RemoveEntry(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	id, ok := entryID(c)
	if !ok {
		return nil
	}
	if c.QueryBool("deferred") {
		if err := s.BeginRemove(id); err != nil {
			return writeError(c, err)
		}
		return c.SendStatus(fiber.StatusAccepted)
	}
	if e, found := s.Entry(id); found && e.Leaving {
		if err := s.FinishRemove(id); err != nil {
			return writeError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err := s.RemoveEntry(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SessionHandler) SetBasic(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	var req fieldsReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	for k, v := range req.Fields {
		if err := s.SetBasic(k, v); err != nil {
			return writeError(c, err)
		}
	}
	return c.JSON(s.Basic())
}

func (h *SessionHandler) Preview(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	v, err := h.variantOf(c)
	if err != nil {
		return writeError(c, err)
	}
	html, err := h.proc.Preview(s, v)
	if err != nil {
		return writeError(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(html)
}

func (h *SessionHandler) Load(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	if err := h.proc.Load(c.UserContext(), s); err != nil {
		return writeError(c, err)
	}
	return c.JSON(viewOf(c.Params("sid"), s))
}

func (h *SessionHandler) Save(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	if err := h.proc.Save(c.UserContext(), s); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

func (h *SessionHandler) Generate(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	var req generateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.proc.GenerateFromText(c.UserContext(), s, req.Raw); err != nil {
		return writeError(c, err)
	}
	return c.JSON(viewOf(c.Params("sid"), s))
}

func (h *SessionHandler) AddRepository(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	var req repositoryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	id, err := h.proc.AddRepositoryProject(c.UserContext(), s, req.RepoURL)
	if err != nil {
		return writeError(c, err)
	}
	e, _ := s.Entry(id)
	return c.Status(fiber.StatusCreated).JSON(e)
}

func attachment(c *fiber.Ctx, name string) {
	c.Set(fiber.HeaderContentDisposition, "attachment; filename*=UTF-8''"+url.PathEscape(name))
}

func (h *SessionHandler) ExportJSON(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	b, name, err := h.proc.ExportJSON(s)
	if err != nil {
		return writeError(c, err)
	}
	attachment(c, name)
	c.Type("json", "utf-8")
	return c.Send(b)
}

func (h *SessionHandler) ExportPDF(c *fiber.Ctx) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	v, err := h.variantOf(c)
	if err != nil {
		return writeError(c, err)
	}
	exp, err := h.proc.ExportPDF(c.UserContext(), s, v)
	if err != nil {
		return writeError(c, err)
	}
	attachment(c, exp.FileName)
	c.Set("X-Export-Job", exp.Job.ID.String())
	c.Type("pdf")
	return c.Send(exp.PDF)
}
