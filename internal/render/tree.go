package render

import "github.com/xkiven/ResumeBuilder/pkg/enhance"

// Tree is the variant-independent presentation of a document. It is what the
// HTML templates consume and what tests assert on.
type Tree struct {
	Variant  Variant   `json:"variant"`
	Dense    bool      `json:"dense,omitempty"`
	Header   *Header   `json:"header,omitempty"`
	Sidebar  *Sidebar  `json:"sidebar,omitempty"`
	Sections []Section `json:"sections"`
}

type Header struct {
	Name    string   `json:"name"`
	Title   string   `json:"title,omitempty"`
	Contact []string `json:"contact,omitempty"`
}

// Sidebar is the modern layout's side column.
type Sidebar struct {
	Header
	ContactHeading string         `json:"contact_heading,omitempty"`
	SkillsHeading  string         `json:"skills_heading,omitempty"`
	Skills         []enhance.Text `json:"skills,omitempty"`
}

type SectionKind string

const (
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionExperience SectionKind = "experience"
	SectionProjects   SectionKind = "projects"
)

type Section struct {
	Kind    SectionKind    `json:"kind"`
	Heading string         `json:"heading"`
	Items   []Item         `json:"items,omitempty"`
	Skills  []enhance.Text `json:"skills,omitempty"`
}

type Item struct {
	Title     string         `json:"title,omitempty"`
	Subtitle  string         `json:"subtitle,omitempty"`
	DateRange string         `json:"date_range,omitempty"`
	Link      string         `json:"link,omitempty"`
	Body      []enhance.Text `json:"body,omitempty"`
	TagsLabel string         `json:"tags_label,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	Bullets   []enhance.Text `json:"bullets,omitempty"`
}

// Headings returns the section headings in order.
func (t *Tree) Headings() []string {
	out := make([]string, 0, len(t.Sections))
	for _, s := range t.Sections {
		out = append(out, s.Heading)
	}
	return out
}

// Section returns the first section of the given kind.
func (t *Tree) Section(k SectionKind) (Section, bool) {
	for _, s := range t.Sections {
		if s.Kind == k {
			return s, true
		}
	}
	return Section{}, false
}
