package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/pkg/enhance"
)

func fullDoc() model.Resume {
	return model.Resume{
		UserID:    "u1",
		BasicInfo: []model.BasicInfo{{Name: "Ann Lee", Email: "ann@example.com", Location: "Berlin", Title: "Backend Engineer"}},
		Education: []model.Education{
			{School: "TU Berlin", Major: "CS", Degree: "MSc", StartDate: "2019-09", EndDate: "2021-06"},
			{Degree: "BSc"},
		},
		CampusExperience: []model.CampusExperience{{Title: "Chair", Organization: "ACM", Date: "2020-03", Description: "Ran meetups"}},
		Experience: []model.Experience{
			{Company: "Acme", Position: "Engineer", StartDate: "2021-07", Description: "Payments team", Achievements: model.Achievements{"Latency: cut by 40%"}},
			{Description: "no company or position"},
		},
		Projects: []model.Project{{
			Name:       "cache",
			Role:       "author",
			URL:        "https://github.com/ann/cache",
			TechStack:  []string{"Go", "Redis"},
			Highlights: []string{"熟悉分布式缓存"},
		}},
		Skills: []string{"Go", " "},
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(" " + strings.ToUpper(string(v)) + " ")
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := ParseVariant("fancy")
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = Render(fullDoc(), Variant("fancy"))
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestDateRange(t *testing.T) {
	testCases := []struct {
		name       string
		start, end string
		want       string
	}{
		{name: "both", start: "2023-05", end: "2024-01", want: "2023.05 – 2024.01"},
		{name: "start only", start: "2023-05", want: "2023.05 – present"},
		{name: "end only", end: "2024-01", want: "through 2024.01"},
		{name: "neither", want: ""},
		{name: "full date", start: "2023-5-17", end: "now", want: "2023.05 – now"},
		{name: "free text", start: "Spring 2020", end: "2021", want: "Spring 2020 – 2021"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DateRange(EnglishLabels, tc.start, tc.end))
		})
	}
	assert.Equal(t, "2023.05 至今", DateRange(ChineseLabels, "2023-05", ""))
}

func TestRender_EducationOnly(t *testing.T) {
	doc := model.Resume{Education: []model.Education{
		{School: "A", Major: "B", Degree: "", StartDate: "2019-09", EndDate: "2023-06"},
	}}
	tree, err := Render(doc, Classic)
	require.NoError(t, err)

	assert.Nil(t, tree.Header)
	assert.Equal(t, []string{"Education"}, tree.Headings())
	require.Len(t, tree.Sections[0].Items, 1)
	item := tree.Sections[0].Items[0]
	assert.Equal(t, "A", item.Title)
	assert.Equal(t, "B", item.Subtitle)
	assert.Equal(t, "2019.09 – 2023.06", item.DateRange)
}

func TestRender_Layouts(t *testing.T) {
	doc := fullDoc()

	classic, err := Render(doc, Classic)
	require.NoError(t, err)
	assert.Equal(t, []string{"Education", "Skills", "Experience", "Projects"}, classic.Headings())
	require.NotNil(t, classic.Header)
	assert.Equal(t, []string{"ann@example.com", "Berlin"}, classic.Header.Contact)
	assert.Nil(t, classic.Sidebar)
	assert.False(t, classic.Dense)

	modern, err := Render(doc, Modern)
	require.NoError(t, err)
	assert.Nil(t, modern.Header)
	require.NotNil(t, modern.Sidebar)
	assert.Equal(t, "Ann Lee", modern.Sidebar.Name)
	assert.Equal(t, "Contact", modern.Sidebar.ContactHeading)
	assert.Equal(t, []enhance.Text{{{Text: "Go"}}}, modern.Sidebar.Skills)
	assert.Equal(t, []string{"Education", "Experience", "Projects"}, modern.Headings())

	minimal, err := Render(doc, Minimal)
	require.NoError(t, err)
	assert.True(t, minimal.Dense)
	assert.Equal(t, classic.Headings(), minimal.Headings())
}

func TestRender_SectionContent(t *testing.T) {
	tree, err := Render(fullDoc(), Classic)
	require.NoError(t, err)

	edu, ok := tree.Section(SectionEducation)
	require.True(t, ok)
	require.Len(t, edu.Items, 2)
	assert.Equal(t, "CS · MSc", edu.Items[0].Subtitle)
	assert.Equal(t, "Chair", edu.Items[1].Title)
	assert.Equal(t, "2020.03", edu.Items[1].DateRange)

	exp, ok := tree.Section(SectionExperience)
	require.True(t, ok)
	require.Len(t, exp.Items, 1)
	assert.Equal(t, "2021.07 – present", exp.Items[0].DateRange)
	assert.Equal(t, []enhance.Text{{{Text: "Latency", Bold: true}, {Text: ": cut by 40%"}}}, exp.Items[0].Bullets)

	proj, ok := tree.Section(SectionProjects)
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "Redis"}, proj.Items[0].Tags)
	assert.Equal(t, "Tech stack", proj.Items[0].TagsLabel)
	assert.Equal(t, []enhance.Text{{{Text: "熟悉", Bold: true}, {Text: "分布式缓存"}}}, proj.Items[0].Bullets)
}

func TestRender_OmitsInvalidOnlySections(t *testing.T) {
	doc := model.Resume{
		Experience: []model.Experience{{Company: "Acme"}, {}},
		Projects:   []model.Project{{Role: "lead"}},
		Skills:     []string{""},
	}
	tree, err := Render(doc, Classic)
	require.NoError(t, err)
	assert.Equal(t, []string{"Experience"}, tree.Headings())
	assert.Len(t, tree.Sections[0].Items, 1)
}

func TestRender_SkillExpansion(t *testing.T) {
	r := NewRenderer(WithSkillExpansion(), WithLabels(ChineseLabels))
	tree, err := r.Render(model.Resume{Skills: []string{"Go"}}, Classic)
	require.NoError(t, err)
	assert.Equal(t, []string{"技能特长"}, tree.Headings())
	assert.Equal(t, "familiar with using Go for development", tree.Sections[0].Skills[0].Plain())
}

func TestRenderHTML_Deterministic(t *testing.T) {
	r := NewRenderer()
	doc := fullDoc()
	for _, v := range Variants() {
		a, err := r.RenderHTML(doc, v)
		require.NoError(t, err)
		b, err := r.RenderHTML(doc, v)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Contains(t, string(a), "resume-"+string(v))
		assert.Contains(t, string(a), "Ann Lee")
	}

	html, err := r.RenderHTML(doc, Classic)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<strong>Latency</strong>: cut by 40%")
	assert.Contains(t, string(html), "<title>Ann Lee</title>")
}

func TestRenderHTML_Escapes(t *testing.T) {
	doc := model.Resume{Projects: []model.Project{{Name: "<script>x</script>", URL: "javascript:alert(1)"}}}
	html, err := NewRenderer().RenderHTML(doc, Minimal)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>x")
	assert.NotContains(t, string(html), `href="javascript:`)
}

func TestHTML_RejectsMissingTree(t *testing.T) {
	r := NewRenderer()
	_, err := r.HTML(nil)
	assert.ErrorIs(t, err, ErrUnknownVariant)
	_, err = r.HTML(&Tree{Variant: "fancy"})
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestCache(t *testing.T) {
	c := NewCache(NewRenderer(), time.Minute)
	doc := fullDoc()

	a, err := c.HTML(doc, Classic)
	require.NoError(t, err)
	b, err := c.HTML(doc, Classic)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, c.Len())

	_, err = c.HTML(doc, Modern)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	doc.Skills = append(doc.Skills, "Rust")
	_, err = c.HTML(doc, Classic)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = c.HTML(doc, Variant("fancy"))
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
