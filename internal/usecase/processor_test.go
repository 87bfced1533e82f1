package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/editor"
	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/internal/render"
	"github.com/xkiven/ResumeBuilder/internal/usecase/mocks"
)

type processorMocks struct {
	store    *mocks.MockResumeStore
	gen      *mocks.MockGenerator
	renderer *mocks.MockRenderer
	jobs     *mocks.MockJobsRepo
}

func newTestProcessor(t *testing.T, ctrl *gomock.Controller) (*Processor, processorMocks) {
	m := processorMocks{
		store:    mocks.NewMockResumeStore(ctrl),
		gen:      mocks.NewMockGenerator(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		jobs:     mocks.NewMockJobsRepo(ctrl),
	}
	p := NewProcessor(m.store, m.gen, m.renderer, m.jobs, render.NewRenderer(), t.TempDir())
	p.pdfAttempts = 1
	p.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return p, m
}

func TestProcessor_Load(t *testing.T) {
	testCases := []struct {
		name    string
		userID  string
		before  func(m processorMocks)
		wantErr error
		after   func(t *testing.T, s *editor.Session)
	}{
		{
			name:   "sanitizes and seeds",
			userID: "u1",
			before: func(m processorMocks) {
				m.store.EXPECT().Get(gomock.Any(), "u1").Return(model.Resume{
					UserID:    "u1",
					BasicInfo: []model.BasicInfo{{Name: "Ann", Email: "未提供"}},
					Skills:    []string{"Go", "暂无"},
				}, nil)
			},
			after: func(t *testing.T, s *editor.Session) {
				doc := s.CollectDocument()
				assert.Equal(t, []model.BasicInfo{{Name: "Ann"}}, doc.BasicInfo)
				assert.Equal(t, []string{"Go"}, doc.Skills)
			},
		},
		{
			name:    "missing user id",
			userID:  "",
			before:  func(m processorMocks) {},
			wantErr: &domain.ValidationError{Field: "user_id"},
		},
		{
			name:   "request error leaves session alone",
			userID: "u1",
			before: func(m processorMocks) {
				m.store.EXPECT().Get(gomock.Any(), "u1").Return(model.Resume{}, &domain.RequestError{Status: 500})
			},
			wantErr: &domain.RequestError{Status: 500},
			after: func(t *testing.T, s *editor.Session) {
				assert.Equal(t, []string{"kept"}, s.CollectSkills())
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			p, m := newTestProcessor(t, ctrl)
			tc.before(m)

			s := editor.NewSession(tc.userID)
			_, _ = s.AddEntry(editor.Skills, editor.SkillFields("kept"))
			err := p.Load(context.Background(), s)
			assert.Equal(t, tc.wantErr, err)
			if tc.after != nil {
				tc.after(t, s)
			}
		})
	}
}

func TestProcessor_GenerateFromText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p, m := newTestProcessor(t, ctrl)

	s := editor.NewSession("u1")
	assert.Equal(t, domain.Required("raw"), p.GenerateFromText(context.Background(), s, "  "))

	m.gen.EXPECT().Generate(gomock.Any(), "u1", "raw text").Return(model.Resume{
		Experience: []model.Experience{{Company: "Acme", Position: "无"}},
	}, nil)
	require.NoError(t, p.GenerateFromText(context.Background(), s, "raw text"))
	assert.Equal(t, []model.Experience{{Company: "Acme"}}, s.CollectExperience())
	assert.Equal(t, "u1", s.CollectDocument().UserID)
}

func TestProcessor_AddRepositoryProject(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		before   func(m processorMocks)
		wantErr  bool
		errCheck func(t *testing.T, err error)
		names    []string
	}{
		{
			name: "appends only the last project",
			url:  "https://github.com/a/b",
			before: func(m processorMocks) {
				m.gen.EXPECT().GenerateFromRepository(gomock.Any(), "u1", "https://github.com/a/b").Return(model.Resume{
					Projects: []model.Project{{Name: "server copy"}, {Name: "b", TechStack: []string{"Go", "N/A"}}},
				}, nil)
			},
			names: []string{"local", "b"},
		},
		{
			name:    "malformed url never dispatched",
			url:     "https://github.com/a",
			before:  func(m processorMocks) {},
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				var fe *domain.FormatError
				assert.True(t, errors.As(err, &fe))
			},
			names: []string{"local"},
		},
		{
			name: "empty project list",
			url:  "github.com/a/b",
			before: func(m processorMocks) {
				m.gen.EXPECT().GenerateFromRepository(gomock.Any(), "u1", "github.com/a/b").Return(model.Resume{}, nil)
			},
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				var pe *domain.ParseError
				assert.True(t, errors.As(err, &pe))
			},
			names: []string{"local"},
		},
		{
			name: "service failure",
			url:  "github.com/a/b",
			before: func(m processorMocks) {
				m.gen.EXPECT().GenerateFromRepository(gomock.Any(), "u1", "github.com/a/b").
					Return(model.Resume{}, &domain.RequestError{Status: 502, Message: "upstream down"})
			},
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				assert.EqualError(t, err, "upstream down")
			},
			names: []string{"local"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			p, m := newTestProcessor(t, ctrl)
			tc.before(m)

			s := editor.NewSession("u1")
			_, _ = s.AddEntry(editor.Projects, editor.Fields{"name": "local"})
			_, err := p.AddRepositoryProject(context.Background(), s, tc.url)
			if tc.wantErr {
				require.Error(t, err)
				tc.errCheck(t, err)
			} else {
				require.NoError(t, err)
			}
			var names []string
			for _, pr := range s.CollectProjects() {
				names = append(names, pr.Name)
			}
			assert.Equal(t, tc.names, names)
		})
	}
}

func TestProcessor_AddRepositoryProjectStack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p, m := newTestProcessor(t, ctrl)
	m.gen.EXPECT().GenerateFromRepository(gomock.Any(), "u1", gomock.Any()).Return(model.Resume{
		Projects: []model.Project{{Name: "b", TechStack: []string{"Go", "N/A"}}},
	}, nil)

	s := editor.NewSession("u1")
	_, err := p.AddRepositoryProject(context.Background(), s, "github.com/a/b")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, s.CollectProjects()[0].TechStack)
}

func TestProcessor_Save(t *testing.T) {
	filled := func(s *editor.Session) {
		_ = s.SetBasic("name", "Ann")
		_ = s.SetBasic("email", "ann@example.com")
	}
	testCases := []struct {
		name    string
		userID  string
		setup   func(s *editor.Session)
		before  func(m processorMocks)
		wantErr error
	}{
		{
			name:   "saves collected document",
			userID: "u1",
			setup:  filled,
			before: func(m processorMocks) {
				m.store.EXPECT().Save(gomock.Any(), model.Resume{
					UserID:    "u1",
					BasicInfo: []model.BasicInfo{{Name: "Ann", Email: "ann@example.com"}},
				}).Return(nil)
			},
		},
		{
			name:    "missing user",
			setup:   filled,
			before:  func(m processorMocks) {},
			wantErr: domain.Required("user_id"),
		},
		{
			name:    "missing name",
			userID:  "u1",
			setup:   func(s *editor.Session) { _ = s.SetBasic("email", "ann@example.com") },
			before:  func(m processorMocks) {},
			wantErr: domain.Required("name"),
		},
		{
			name:    "missing email",
			userID:  "u1",
			setup:   func(s *editor.Session) { _ = s.SetBasic("name", "Ann") },
			before:  func(m processorMocks) {},
			wantErr: domain.Required("email"),
		},
		{
			name:   "store failure",
			userID: "u1",
			setup:  filled,
			before: func(m processorMocks) {
				m.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&domain.RequestError{Status: 503})
			},
			wantErr: &domain.RequestError{Status: 503},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			p, m := newTestProcessor(t, ctrl)
			tc.before(m)
			s := editor.NewSession(tc.userID)
			tc.setup(s)
			assert.Equal(t, tc.wantErr, p.Save(context.Background(), s))
		})
	}
}

func TestProcessor_SaveBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p, _ := newTestProcessor(t, ctrl)
	s := editor.NewSession("u1")
	_ = s.SetBasic("name", "Ann")
	_ = s.SetBasic("email", "ann@example.com")

	done, err := s.Begin(ActionSave)
	require.NoError(t, err)
	defer done()
	assert.ErrorIs(t, p.Save(context.Background(), s), domain.ErrBusy)
}

func TestProcessor_ExportJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p, _ := newTestProcessor(t, ctrl)
	s := editor.NewSession("u1")
	_, _ = s.AddEntry(editor.Skills, editor.SkillFields("Go"))

	b, name, err := p.ExportJSON(s)
	require.NoError(t, err)
	assert.Equal(t, "resume_u1_1700000000000.json", name)
	var doc model.Resume
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, s.CollectDocument(), doc)
}

func TestProcessor_ExportPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p, m := newTestProcessor(t, ctrl)
	s := editor.NewSession("u1")

	_, err := p.ExportPDF(context.Background(), s, render.Classic)
	assert.Equal(t, domain.Required("name"), err)

	_ = s.SetBasic("name", "Ann")
	_, err = p.ExportPDF(context.Background(), s, render.Variant("fancy"))
	assert.ErrorIs(t, err, render.ErrUnknownVariant)

	m.renderer.EXPECT().RenderHTMLToPDF(gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.7 test"), nil)
	var saved *domain.ExportJob
	m.jobs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, j *domain.ExportJob) error {
		saved = j
		return errors.New("db down")
	})

	exp, err := p.ExportPDF(context.Background(), s, render.Modern)
	require.NoError(t, err)
	assert.Equal(t, "resume_Ann_1700000000000.pdf", exp.FileName)
	assert.Equal(t, []byte("%PDF-1.7 test"), exp.PDF)
	require.NotNil(t, saved)
	assert.Equal(t, domain.JobCompleted, saved.Status)
	assert.Equal(t, "modern", saved.Variant)

	pdfPath, _ := saved.Metadata["generated_pdf"].(string)
	b, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, exp.PDF, b)
	htmlPath, _ := saved.Metadata["generated_html"].(string)
	assert.Equal(t, filepath.Join(p.outDir, "generated"), filepath.Dir(htmlPath))
}

func TestProcessor_ExportPDFArtifactsPerJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p, m := newTestProcessor(t, ctrl)
	alice := editor.NewSession("alice")
	_ = alice.SetBasic("name", "Alice")
	bob := editor.NewSession("bob")
	_ = bob.SetBasic("name", "Bob")

	gomock.InOrder(
		m.renderer.EXPECT().RenderHTMLToPDF(gomock.Any(), gomock.Any()).Return([]byte("%PDF alice"), nil),
		m.renderer.EXPECT().RenderHTMLToPDF(gomock.Any(), gomock.Any()).Return([]byte("%PDF bob"), nil),
	)
	var jobs []*domain.ExportJob
	m.jobs.EXPECT().Save(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(func(ctx context.Context, j *domain.ExportJob) error {
		jobs = append(jobs, j)
		return nil
	})

	_, err := p.ExportPDF(context.Background(), alice, render.Classic)
	require.NoError(t, err)
	_, err = p.ExportPDF(context.Background(), bob, render.Classic)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	alicePDF, _ := jobs[0].Metadata["generated_pdf"].(string)
	bobPDF, _ := jobs[1].Metadata["generated_pdf"].(string)
	assert.NotEqual(t, alicePDF, bobPDF)
	assert.NotEqual(t, jobs[0].Metadata["generated_html"], jobs[1].Metadata["generated_html"])
	assert.Contains(t, filepath.Base(alicePDF), jobs[0].ID.String())

	b, err := os.ReadFile(alicePDF)
	require.NoError(t, err)
	assert.Equal(t, "%PDF alice", string(b))
}

func TestProcessor_ExportPDFInvalidOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p, m := newTestProcessor(t, ctrl)
	s := editor.NewSession("u1")
	_ = s.SetBasic("name", "Ann")

	m.renderer.EXPECT().RenderHTMLToPDF(gomock.Any(), gomock.Any()).Return([]byte("<html>"), nil)
	m.jobs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, j *domain.ExportJob) error {
		assert.Equal(t, domain.JobFailed, j.Status)
		assert.Contains(t, j.Metadata["pdf_render_error"], "invalid PDF output")
		return nil
	})
	_, err := p.ExportPDF(context.Background(), s, render.Classic)
	assert.ErrorContains(t, err, "invalid PDF output")
}

func TestProcessor_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p, _ := newTestProcessor(t, ctrl)
	s := editor.NewSession("u1")
	_, _ = s.AddEntry(editor.Education, editor.Fields{"school": "A", "major": "B", "start_date": "2019-09", "end_date": "2023-06"})

	html, err := p.Preview(s, render.Classic)
	require.NoError(t, err)
	assert.Contains(t, string(html), "2019.09 – 2023.06")
	again, err := p.Preview(s, render.Classic)
	require.NoError(t, err)
	assert.Equal(t, html, again)
}

func TestProcessor_WatchRendersAfterEveryMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p, _ := newTestProcessor(t, ctrl)
	s := editor.NewSession("u1")
	p.Watch(s, render.Minimal)

	assert.Equal(t, 0, p.PreviewCached())
	id, err := s.AddEntry(editor.Skills, editor.SkillFields("Go"))
	require.NoError(t, err)
	assert.Equal(t, 1, p.PreviewCached())
	require.NoError(t, s.SetField(id, editor.SkillField, "Rust"))
	assert.Equal(t, 2, p.PreviewCached())

	_, err = p.Preview(s, render.Minimal)
	require.NoError(t, err)
	assert.Equal(t, 2, p.PreviewCached())
}
