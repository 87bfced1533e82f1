package formatters

import (
	"fmt"
	"strings"
)

// RepositoryInput is what we know about a repository when asking for a
// project entry.
type RepositoryInput struct {
	URL         string   `json:"url"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Language    string   `json:"language,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	README      string   `json:"readme,omitempty"`
}

// ProjectFormatter builds the prompt that describes a repository as one
// résumé project.
type ProjectFormatter struct {
	language string
}

func NewProjectFormatter(language string) *ProjectFormatter {
	return &ProjectFormatter{language: language}
}

func (f *ProjectFormatter) Prompt(in RepositoryInput) string {
	example := map[string]interface{}{
		"name":        "project name",
		"role":        "",
		"url":         in.URL,
		"description": "what the project does and how, in professional language",
		"tech_stack":  []string{"Go", "Gin", "MySQL"},
		"highlights":  []string{"highlight 1", "highlight 2", "highlight 3"},
	}

	var b strings.Builder
	b.WriteString("Analyze the source repository below and return EXACTLY one JSON object describing it as a resume project, and NOTHING ELSE.\n\n")
	b.WriteString("FIELDS:\n")
	b.WriteString("- name: project name, taken from the repository when nothing better is available\n")
	b.WriteString("- role: leave empty unless the README states the author's role\n")
	b.WriteString("- url: the repository URL\n")
	b.WriteString("- description: the technical character of the project\n")
	b.WriteString("- tech_stack: core languages, frameworks and tools\n")
	b.WriteString("- highlights: 3-5 technical highlights, each following situation, task, action and result without naming those words\n\n")
	b.WriteString("NEVER use placeholder text such as \"not provided\", \"N/A\" or \"暂无\"; use \"\" or [] instead.\n")
	fmt.Fprintf(&b, "%s\n\n", languageRule(f.language))
	b.WriteString("EXAMPLE:\n")
	b.WriteString(mustMarshal(example))
	b.WriteString("\n\nREPOSITORY:\n")
	b.WriteString(mustMarshal(in))
	return b.String()
}
