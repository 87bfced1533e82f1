package formatters

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResumeFormatter builds the prompt that turns free text into a résumé
// document.
type ResumeFormatter struct {
	language string
	schema   []byte
}

func NewResumeFormatter(language string, schema []byte) *ResumeFormatter {
	return &ResumeFormatter{language: language, schema: schema}
}

func (f *ResumeFormatter) Prompt(raw string) string {
	skeleton := map[string]interface{}{
		"basic_info":        []interface{}{map[string]string{"name": "", "email": "", "phone": "", "location": "", "title": ""}},
		"education":         []interface{}{map[string]string{"school": "", "major": "", "degree": "", "start_date": "YYYY-MM", "end_date": "YYYY-MM"}},
		"campus_experience": []interface{}{map[string]string{"title": "", "date": "YYYY-MM", "organization": "", "description": ""}},
		"experience":        []interface{}{map[string]interface{}{"company": "", "position": "", "start_date": "YYYY-MM", "end_date": "YYYY-MM", "description": "", "achievements": []string{}}},
		"projects":          []interface{}{map[string]interface{}{"name": "", "role": "", "url": "", "description": "", "tech_stack": []string{}, "highlights": []string{}}},
		"skills":            []string{},
	}

	var b strings.Builder
	b.WriteString("You are a resume parser. Produce EXACTLY one JSON object describing the resume text below and NOTHING ELSE. No markdown, no code fences, no commentary.\n\n")
	b.WriteString("RULES:\n")
	b.WriteString("1. Only extract information that is actually present in the text.\n")
	b.WriteString("2. A field with no information MUST be an empty string \"\" or an empty array [].\n")
	b.WriteString("3. NEVER use placeholder text such as \"not provided\", \"N/A\", \"none\", \"未提供\", \"未填写\" or \"暂无\".\n")
	b.WriteString("4. Do not invent or pad any content.\n")
	b.WriteString("5. Dates use YYYY-MM when the month is known.\n")
	b.WriteString("6. basic_info has at most one element.\n")
	fmt.Fprintf(&b, "7. %s\n\n", languageRule(f.language))
	b.WriteString("OUTPUT SKELETON:\n")
	b.WriteString(mustMarshal(skeleton))
	if len(f.schema) > 0 {
		b.WriteString("\n\nJSON-SCHEMA:\n")
		b.Write(f.schema)
	}
	b.WriteString("\n\nRESUME TEXT:\n")
	b.WriteString(raw)
	return b.String()
}

func languageRule(language string) string {
	if language == "" {
		return "Keep every value in the language of the input text."
	}
	return fmt.Sprintf("Write every value in %s.", language)
}

// mustMarshal is a tiny helper for embedding example payloads in prompts.
func mustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
