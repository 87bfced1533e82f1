package model

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// placeholders are the "no data" strings upstream generators emit instead of
// leaving a field empty. Matching is on the trimmed value, case-insensitive.
var placeholders = map[string]struct{}{
	"未提供":           {},
	"未填写":           {},
	"暂无":            {},
	"无":             {},
	"not provided":  {},
	"not filled in": {},
	"none":          {},
	"n/a":           {},
}

// IsPlaceholder reports whether s is one of the sentinel strings.
func IsPlaceholder(s string) bool {
	_, ok := placeholders[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func clean(s string) string {
	if IsPlaceholder(s) {
		return ""
	}
	return s
}

func cleanList(items []string) []string {
	var out []string
	for _, s := range items {
		if s = clean(s); strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Sanitize returns a copy of r with every placeholder value cleared and
// placeholder list items dropped. The input is left untouched and the
// result shares no slices with it. Sanitize(Sanitize(r)) == Sanitize(r).
func Sanitize(r Resume) Resume {
	out := Resume{UserID: r.UserID}
	if len(r.BasicInfo) > 0 {
		b := r.BasicInfo[0]
		out.BasicInfo = []BasicInfo{{
			Name:     clean(b.Name),
			Email:    clean(b.Email),
			Phone:    clean(b.Phone),
			Location: clean(b.Location),
			Title:    clean(b.Title),
		}}
	}
	out.Education = slice.Map(r.Education, func(idx int, src Education) Education {
		return Education{
			School:    clean(src.School),
			Major:     clean(src.Major),
			Degree:    clean(src.Degree),
			StartDate: clean(src.StartDate),
			EndDate:   clean(src.EndDate),
		}
	})
	out.CampusExperience = slice.Map(r.CampusExperience, func(idx int, src CampusExperience) CampusExperience {
		return CampusExperience{
			Title:        clean(src.Title),
			Date:         clean(src.Date),
			Organization: clean(src.Organization),
			Description:  clean(src.Description),
		}
	})
	out.Experience = slice.Map(r.Experience, func(idx int, src Experience) Experience {
		return Experience{
			Company:      clean(src.Company),
			Position:     clean(src.Position),
			StartDate:    clean(src.StartDate),
			EndDate:      clean(src.EndDate),
			Description:  clean(src.Description),
			Achievements: cleanList(src.Achievements),
		}
	})
	out.Projects = slice.Map(r.Projects, func(idx int, src Project) Project {
		return Project{
			Name:        clean(src.Name),
			Role:        clean(src.Role),
			URL:         clean(src.URL),
			Description: clean(src.Description),
			TechStack:   cleanList(src.TechStack),
			Highlights:  cleanList(src.Highlights),
		}
	})
	out.Skills = cleanList(r.Skills)
	return out
}
