package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/editor"
	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/internal/render"
	"github.com/xkiven/ResumeBuilder/pkg/gitrepo"
)

// In-flight guard names, one per externally triggered action.
const (
	ActionLoad       = "load"
	ActionSave       = "save"
	ActionGenerate   = "generate"
	ActionRepository = "repository"
	ActionExportPDF  = "export_pdf"
)

// Processor runs the boundary operations of an editing session: it talks to
// the résumé service and the PDF renderer and feeds results back into the
// session. Failures never modify the session.
type Processor struct {
	store    ResumeStore
	gen      Generator
	renderer Renderer
	repo     JobsRepo
	pages    *render.Renderer
	preview  *render.Cache
	outDir   string

	pdfAttempts int
	now         func() time.Time
}

func NewProcessor(store ResumeStore, gen Generator, r Renderer, repo JobsRepo, pages *render.Renderer, outDir string) *Processor {
	if pages == nil {
		pages = render.NewRenderer()
	}
	return &Processor{
		store:       store,
		gen:         gen,
		renderer:    r,
		repo:        repo,
		pages:       pages,
		preview:     render.NewCache(pages, 10*time.Minute),
		outDir:      outDir,
		pdfAttempts: 3,
		now:         time.Now,
	}
}

func requireUser(s *editor.Session) (string, error) {
	uid := s.UserID()
	if uid == "" {
		return "", domain.Required("user_id")
	}
	return uid, nil
}

// Load fetches the stored document and seeds the session with it.
func (p *Processor) Load(ctx context.Context, s *editor.Session) error {
	uid, err := requireUser(s)
	if err != nil {
		return err
	}
	done, err := s.Begin(ActionLoad)
	if err != nil {
		return err
	}
	defer done()

	doc, err := p.store.Get(ctx, uid)
	if err != nil {
		return err
	}
	doc = model.Sanitize(doc)
	doc.UserID = uid
	s.Seed(doc)
	slog.Info("session loaded", "user_id", uid)
	return nil
}

// GenerateFromText replaces the session contents with a document generated
// from free text.
func (p *Processor) GenerateFromText(ctx context.Context, s *editor.Session, raw string) error {
	uid, err := requireUser(s)
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		return domain.Required("raw")
	}
	done, err := s.Begin(ActionGenerate)
	if err != nil {
		return err
	}
	defer done()

	doc, err := p.gen.Generate(ctx, uid, raw)
	if err != nil {
		return err
	}
	doc = model.Sanitize(doc)
	doc.UserID = uid
	s.Seed(doc)
	return nil
}

// AddRepositoryProject asks the service to analyze a repository and appends
// only the new project to the session, leaving local edits alone.
func (p *Processor) AddRepositoryProject(ctx context.Context, s *editor.Session, repoURL string) (editor.EntryID, error) {
	uid, err := requireUser(s)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(repoURL) == "" {
		return 0, domain.Required("repo_url")
	}
	if err := gitrepo.Validate(repoURL); err != nil {
		return 0, &domain.FormatError{Value: repoURL, Msg: "invalid repository URL"}
	}
	done, err := s.Begin(ActionRepository)
	if err != nil {
		return 0, err
	}
	defer done()

	doc, err := p.gen.GenerateFromRepository(ctx, uid, repoURL)
	if err != nil {
		return 0, err
	}
	if len(doc.Projects) == 0 {
		return 0, &domain.ParseError{Err: errors.New("response has no projects")}
	}
	project := model.Sanitize(model.Resume{Projects: doc.Projects[len(doc.Projects)-1:]}).Projects[0]
	return s.AppendProject(project)
}

// Save submits the collected document verbatim.
func (p *Processor) Save(ctx context.Context, s *editor.Session) error {
	doc := s.CollectDocument()
	if doc.UserID == "" {
		return domain.Required("user_id")
	}
	basic := doc.Basic()
	if basic.Name == "" {
		return domain.Required("name")
	}
	if basic.Email == "" {
		return domain.Required("email")
	}
	if err := model.Validate(doc); err != nil {
		return &domain.ValidationError{Field: "document", Msg: err.Error()}
	}
	done, err := s.Begin(ActionSave)
	if err != nil {
		return err
	}
	defer done()

	if err := p.store.Save(ctx, doc); err != nil {
		return err
	}
	slog.Info("resume saved", "user_id", doc.UserID)
	return nil
}

// ExportJSON serializes the collected document and names the snapshot file.
func (p *Processor) ExportJSON(s *editor.Session) ([]byte, string, error) {
	doc := s.CollectDocument()
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("resume_%s_%d.json", doc.UserID, p.now().UnixMilli())
	return b, name, nil
}

// Preview renders the collected document as HTML.
func (p *Processor) Preview(s *editor.Session, v render.Variant) ([]byte, error) {
	return p.preview.HTML(s.CollectDocument(), v)
}

// Watch keeps the preview of variant v current: every mutation of s renders
// the new document into the preview cache, so Preview answers from it.
func (p *Processor) Watch(s *editor.Session, v render.Variant) {
	s.OnChange(func(doc model.Resume) {
		if _, err := p.preview.HTML(doc, v); err != nil {
			slog.Warn("processor: live preview failed", "variant", v, "error", err)
		}
	})
}

// PreviewCached reports how many rendered previews are held.
func (p *Processor) PreviewCached() int { return p.preview.Len() }

// Export is the outcome of a PDF export.
type Export struct {
	PDF      []byte
	FileName string
	Job      *domain.ExportJob
}

// ExportPDF renders the session to HTML, converts it with the external
// renderer and keeps both artifacts under outDir/generated.
func (p *Processor) ExportPDF(ctx context.Context, s *editor.Session, v render.Variant) (*Export, error) {
	doc := s.CollectDocument()
	name := doc.Basic().Name
	if name == "" {
		return nil, domain.Required("name")
	}
	html, err := p.pages.RenderHTML(doc, v)
	if err != nil {
		return nil, err
	}
	done, err := s.Begin(ActionExportPDF)
	if err != nil {
		return nil, err
	}
	defer done()

	now := p.now()
	ts := now.Format("20060102_150405")
	genDir := filepath.Join(p.outDir, "generated")
	if err := os.MkdirAll(genDir, 0o755); err != nil {
		return nil, err
	}
	jobID := uuid.New()
	htmlName := fmt.Sprintf("resume_%s_%s_%s.html", ts, jobID, v)
	pdfName := fmt.Sprintf("resume_%s_%s_%s.pdf", ts, jobID, v)
	if err := os.WriteFile(filepath.Join(genDir, htmlName), html, 0o644); err != nil {
		return nil, err
	}

	job := &domain.ExportJob{
		ID:        jobID,
		UserID:    doc.UserID,
		Variant:   v.String(),
		Status:    domain.JobCompleted,
		Metadata:  map[string]interface{}{"generated_html": filepath.Join(genDir, htmlName)},
		CreatedAt: now,
		UpdatedAt: now,
	}

	pdf, renderErr := p.renderPDF(ctx, string(html))
	if renderErr == nil {
		renderErr = os.WriteFile(filepath.Join(genDir, pdfName), pdf, 0o644)
	}
	if renderErr != nil {
		job.Status = domain.JobFailed
		job.Metadata["generated_pdf"] = ""
		job.Metadata["pdf_render_error"] = renderErr.Error()
	} else {
		job.Metadata["generated_pdf"] = filepath.Join(genDir, pdfName)
	}
	job.UpdatedAt = p.now()

	if p.repo != nil {
		if err := p.repo.Save(ctx, job); err != nil {
			slog.Warn("processor: unable to record export job (non-fatal)", "job_id", job.ID, "error", err)
		}
	}
	if renderErr != nil {
		return nil, errors.Wrap(renderErr, "render pdf")
	}
	return &Export{
		PDF:      pdf,
		FileName: fmt.Sprintf("resume_%s_%d.pdf", name, now.UnixMilli()),
		Job:      job,
	}, nil
}

// renderPDF retries with exponential backoff and checks the PDF signature.
func (p *Processor) renderPDF(ctx context.Context, html string) ([]byte, error) {
	var pdf []byte
	var err error
	for i := 0; i < p.pdfAttempts; i++ {
		pdf, err = p.renderer.RenderHTMLToPDF(ctx, html)
		if err == nil {
			if len(pdf) > 0 && strings.HasPrefix(string(pdf), "%PDF") {
				return pdf, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		slog.Warn("processor: render attempt failed", "attempt", i+1, "error", err)
		if i < p.pdfAttempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("rendering failed after %d attempts: %w", p.pdfAttempts, err)
}
