package editor

import (
	"strings"

	"github.com/xkiven/ResumeBuilder/internal/model"
)

func collect[T interface{ Valid() bool }](s *Session, section Section, conv func(Fields) T) []T {
	var out []T
	for _, id := range s.order[section] {
		if r := conv(s.entries[id].fields); r.Valid() {
			out = append(out, r)
		}
	}
	return out
}

func (s *Session) CollectEducation() []model.Education {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s, Education, toEducation)
}

func (s *Session) CollectCampus() []model.CampusExperience {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s, Campus, toCampus)
}

func (s *Session) CollectExperience() []model.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s, Experience, toExperience)
}

func (s *Session) CollectProjects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s, Projects, toProject)
}

func (s *Session) CollectSkills() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collectSkills()
}

func (s *Session) collectSkills() []string {
	var out []string
	for _, id := range s.order[Skills] {
		if v := strings.TrimSpace(s.entries[id].fields[SkillField]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// CollectDocument assembles the full document from the current entries. It
// has no side effects.
func (s *Session) CollectDocument() model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collectDocument()
}

func (s *Session) collectDocument() model.Resume {
	doc := model.Resume{
		UserID:           s.userID,
		Education:        collect(s, Education, toEducation),
		CampusExperience: collect(s, Campus, toCampus),
		Experience:       collect(s, Experience, toExperience),
		Projects:         collect(s, Projects, toProject),
		Skills:           s.collectSkills(),
	}
	if b := toBasic(s.basic); b.Present() {
		doc.BasicInfo = []model.BasicInfo{b}
	}
	return doc
}
