package editor

import (
	"strings"

	"github.com/xkiven/ResumeBuilder/internal/model"
)

// Section names a repeatable group of entries.
type Section string

const (
	Education  Section = "education"
	Campus     Section = "campus_experience"
	Experience Section = "experience"
	Projects   Section = "projects"
	Skills     Section = "skills"
)

// Sections lists every repeatable section in document order.
func Sections() []Section {
	return []Section{Education, Campus, Experience, Projects, Skills}
}

// Fields holds the raw, untrimmed values of one editable entry.
type Fields map[string]string

func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func (f Fields) get(k string) string {
	return strings.TrimSpace(f[k])
}

const SkillField = "skill"

var sectionFields = map[Section][]string{
	Education:  {"school", "major", "degree", "start_date", "end_date"},
	Campus:     {"title", "date", "organization", "description"},
	Experience: {"company", "position", "start_date", "end_date", "description", "achievements"},
	Projects:   {"name", "role", "url", "description", "tech_stack", "highlights"},
	Skills:     {SkillField},
}

var basicFields = []string{"name", "email", "phone", "location", "title"}

func knownField(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func EducationFields(e model.Education) Fields {
	return Fields{
		"school":     e.School,
		"major":      e.Major,
		"degree":     e.Degree,
		"start_date": e.StartDate,
		"end_date":   e.EndDate,
	}
}

func CampusFields(c model.CampusExperience) Fields {
	return Fields{
		"title":        c.Title,
		"date":         c.Date,
		"organization": c.Organization,
		"description":  c.Description,
	}
}

func ExperienceFields(e model.Experience) Fields {
	return Fields{
		"company":      e.Company,
		"position":     e.Position,
		"start_date":   e.StartDate,
		"end_date":     e.EndDate,
		"description":  e.Description,
		"achievements": model.JoinLines(e.Achievements),
	}
}

func ProjectFields(p model.Project) Fields {
	return Fields{
		"name":        p.Name,
		"role":        p.Role,
		"url":         p.URL,
		"description": p.Description,
		"tech_stack":  model.JoinList(p.TechStack),
		"highlights":  model.JoinLines(p.Highlights),
	}
}

func SkillFields(s string) Fields {
	return Fields{SkillField: s}
}

func BasicFields(b model.BasicInfo) Fields {
	return Fields{
		"name":     b.Name,
		"email":    b.Email,
		"phone":    b.Phone,
		"location": b.Location,
		"title":    b.Title,
	}
}

func toEducation(f Fields) model.Education {
	return model.Education{
		School:    f.get("school"),
		Major:     f.get("major"),
		Degree:    f.get("degree"),
		StartDate: f.get("start_date"),
		EndDate:   f.get("end_date"),
	}
}

func toCampus(f Fields) model.CampusExperience {
	return model.CampusExperience{
		Title:        f.get("title"),
		Date:         f.get("date"),
		Organization: f.get("organization"),
		Description:  f.get("description"),
	}
}

func toExperience(f Fields) model.Experience {
	return model.Experience{
		Company:      f.get("company"),
		Position:     f.get("position"),
		StartDate:    f.get("start_date"),
		EndDate:      f.get("end_date"),
		Description:  f.get("description"),
		Achievements: model.SplitLines(f["achievements"]),
	}
}

func toProject(f Fields) model.Project {
	return model.Project{
		Name:        f.get("name"),
		Role:        f.get("role"),
		URL:         f.get("url"),
		Description: f.get("description"),
		TechStack:   model.SplitList(f["tech_stack"]),
		Highlights:  model.SplitLines(f["highlights"]),
	}
}

func toBasic(f Fields) model.BasicInfo {
	return model.BasicInfo{
		Name:     f.get("name"),
		Email:    f.get("email"),
		Phone:    f.get("phone"),
		Location: f.get("location"),
		Title:    f.get("title"),
	}
}
