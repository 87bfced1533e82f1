package render

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"

	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/pkg/enhance"
)

// layout assembles a tree for one variant from the shared section builders.
type layout func(b builder) *Tree

var layouts = map[Variant]layout{
	Classic: func(b builder) *Tree {
		return &Tree{
			Variant:  Classic,
			Header:   b.header(),
			Sections: b.sections(SectionEducation, SectionSkills, SectionExperience, SectionProjects),
		}
	},
	Modern: func(b builder) *Tree {
		return &Tree{
			Variant:  Modern,
			Sidebar:  b.sidebar(),
			Sections: b.sections(SectionEducation, SectionExperience, SectionProjects),
		}
	},
	Minimal: func(b builder) *Tree {
		return &Tree{
			Variant:  Minimal,
			Dense:    true,
			Header:   b.header(),
			Sections: b.sections(SectionEducation, SectionSkills, SectionExperience, SectionProjects),
		}
	},
}

type Option func(r *Renderer)

// WithLabels overrides the default English labels.
func WithLabels(l Labels) Option {
	return func(r *Renderer) { r.labels = l }
}

// WithSkillExpansion expands bare skill keywords into sentences before
// rendering them.
func WithSkillExpansion() Option {
	return func(r *Renderer) { r.expandSkills = true }
}

// Renderer turns documents into presentation trees and HTML. It holds no
// per-render state and is safe for concurrent use.
type Renderer struct {
	labels       Labels
	expandSkills bool
	pages        *pages
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{labels: EnglishLabels, pages: defaultPages}
	for _, o := range opts {
		o(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// Render builds the presentation tree of doc with the default renderer.
func Render(doc model.Resume, v Variant) (*Tree, error) {
	return defaultRenderer.Render(doc, v)
}

// Render builds the presentation tree of doc for variant v.
func (r *Renderer) Render(doc model.Resume, v Variant) (*Tree, error) {
	l, ok := layouts[v]
	if !ok {
		return nil, ErrUnknownVariant
	}
	return l(builder{doc: doc, labels: r.labels, expandSkills: r.expandSkills}), nil
}

type builder struct {
	doc          model.Resume
	labels       Labels
	expandSkills bool
}

func (b builder) sections(kinds ...SectionKind) []Section {
	out := make([]Section, 0, len(kinds))
	for _, k := range kinds {
		var s Section
		switch k {
		case SectionEducation:
			s = b.education()
		case SectionSkills:
			s = b.skills()
		case SectionExperience:
			s = b.experience()
		case SectionProjects:
			s = b.projects()
		}
		if len(s.Items) == 0 && len(s.Skills) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (b builder) header() *Header {
	info := b.doc.Basic()
	h := &Header{
		Name:    info.Name,
		Title:   info.Title,
		Contact: nonEmpty(info.Email, info.Phone, info.Location),
	}
	if h.Name == "" && h.Title == "" && len(h.Contact) == 0 {
		return nil
	}
	return h
}

func (b builder) sidebar() *Sidebar {
	sb := &Sidebar{Skills: b.skillTexts()}
	if h := b.header(); h != nil {
		sb.Header = *h
	}
	if len(sb.Contact) > 0 {
		sb.ContactHeading = b.labels.Contact
	}
	if len(sb.Skills) > 0 {
		sb.SkillsHeading = b.labels.Skills
	}
	if sb.Name == "" && sb.Title == "" && len(sb.Contact) == 0 && len(sb.Skills) == 0 {
		return nil
	}
	return sb
}

// education groups degree entries and campus activities under one heading.
func (b builder) education() Section {
	s := Section{Kind: SectionEducation, Heading: b.labels.Education}
	for _, e := range b.doc.Education {
		if !e.Valid() {
			continue
		}
		s.Items = append(s.Items, Item{
			Title:     e.School,
			Subtitle:  strings.Join(nonEmpty(e.Major, e.Degree), " · "),
			DateRange: DateRange(b.labels, e.StartDate, e.EndDate),
		})
	}
	for _, c := range b.doc.CampusExperience {
		if !c.Valid() {
			continue
		}
		s.Items = append(s.Items, Item{
			Title:     c.Title,
			Subtitle:  c.Organization,
			DateRange: FormatDate(c.Date),
			Body:      paragraphs(c.Description),
		})
	}
	return s
}

func (b builder) skills() Section {
	return Section{Kind: SectionSkills, Heading: b.labels.Skills, Skills: b.skillTexts()}
}

func (b builder) skillTexts() []enhance.Text {
	var out []enhance.Text
	for _, s := range b.doc.Skills {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if b.expandSkills {
			s = enhance.Expand(s)
		}
		out = append(out, enhance.Enhance(s))
	}
	return out
}

func (b builder) experience() Section {
	s := Section{Kind: SectionExperience, Heading: b.labels.Experience}
	for _, e := range b.doc.Experience {
		if !e.Valid() {
			continue
		}
		s.Items = append(s.Items, Item{
			Title:     e.Company,
			Subtitle:  e.Position,
			DateRange: DateRange(b.labels, e.StartDate, e.EndDate),
			Body:      paragraphs(e.Description),
			Bullets:   bullets(e.Achievements),
		})
	}
	return s
}

func (b builder) projects() Section {
	s := Section{Kind: SectionProjects, Heading: b.labels.Projects}
	for _, p := range b.doc.Projects {
		if !p.Valid() {
			continue
		}
		it := Item{
			Title:    p.Name,
			Subtitle: p.Role,
			Link:     p.URL,
			Body:     paragraphs(p.Description),
			Tags:     nonEmpty(p.TechStack...),
			Bullets:  bullets(p.Highlights),
		}
		if len(it.Tags) > 0 {
			it.TagsLabel = b.labels.TechStack
		}
		s.Items = append(s.Items, it)
	}
	return s
}

func paragraphs(s string) []enhance.Text {
	return bullets(model.SplitLines(s))
}

func bullets(lines []string) []enhance.Text {
	lines = nonEmpty(lines...)
	if len(lines) == 0 {
		return nil
	}
	return slice.Map(lines, func(idx int, src string) enhance.Text {
		return enhance.Enhance(src)
	})
}

func nonEmpty(vals ...string) []string {
	var out []string
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
