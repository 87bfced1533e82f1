package model

import (
	"encoding/json"
	"strings"
)

// Go models that match the résumé JSON contract shared with the storage
// service and validated by schema.json.

type BasicInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Title    string `json:"title"`
}

// Present reports whether the record carries an identity.
func (b BasicInfo) Present() bool {
	return strings.TrimSpace(b.Name) != "" || strings.TrimSpace(b.Email) != ""
}

type Education struct {
	School    string `json:"school"`
	Major     string `json:"major"`
	Degree    string `json:"degree"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (e Education) Valid() bool {
	return strings.TrimSpace(e.School) != "" || strings.TrimSpace(e.Major) != ""
}

type CampusExperience struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
}

func (c CampusExperience) Valid() bool {
	return strings.TrimSpace(c.Title) != ""
}

type Experience struct {
	Company      string       `json:"company"`
	Position     string       `json:"position"`
	StartDate    string       `json:"start_date"`
	EndDate      string       `json:"end_date"`
	Description  string       `json:"description"`
	Achievements Achievements `json:"achievements"`
}

func (e Experience) Valid() bool {
	return strings.TrimSpace(e.Company) != "" || strings.TrimSpace(e.Position) != ""
}

type Project struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	URL         string   `json:"url,omitempty"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	Highlights  []string `json:"highlights"`
}

func (p Project) Valid() bool {
	return strings.TrimSpace(p.Name) != "" || strings.TrimSpace(p.Description) != ""
}

type Resume struct {
	UserID           string             `json:"user_id"`
	BasicInfo        []BasicInfo        `json:"basic_info"`
	Education        []Education        `json:"education"`
	CampusExperience []CampusExperience `json:"campus_experience"`
	Experience       []Experience       `json:"experience"`
	Projects         []Project          `json:"projects"`
	Skills           []string           `json:"skills"`
}

// Basic returns the singleton basic-info record, or the zero value.
func (r Resume) Basic() BasicInfo {
	if len(r.BasicInfo) == 0 {
		return BasicInfo{}
	}
	return r.BasicInfo[0]
}

// UnmarshalJSON keeps only the first basic_info element.
func (r *Resume) UnmarshalJSON(b []byte) error {
	type plain Resume
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if len(p.BasicInfo) > 1 {
		p.BasicInfo = p.BasicInfo[:1]
	}
	*r = Resume(p)
	return nil
}

// Achievements is always a list on the wire. Older documents stored a
// single newline separated string, which is split on decode.
type Achievements []string

func (a *Achievements) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = SplitLines(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*a = list
	return nil
}
