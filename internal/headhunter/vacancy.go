package headhunter

import (
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/cv-analyzer/internal/htmltext"
)

type Vacancy struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Area struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"area,omitempty"`
	Experience struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"experience,omitempty"`
	Employer struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"employer,omitempty"`
	AlternateURL string `json:"alternate_url,omitempty"`
	// Description is HTML.
	Description string `json:"description,omitempty"`
	KeySkills   []struct {
		Name string `json:"name,omitempty"`
	} `json:"key_skills,omitempty"`
	Archived bool `json:"archived,omitempty"`
}

func decodeVacancy(raw map[string]interface{}) (*Vacancy, error) {
	var vacancy Vacancy

	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           &vacancy,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	return &vacancy, nil
}

func (va *Vacancy) SkillNames() []string {
	names := make([]string, 0, len(va.KeySkills))
	for _, skill := range va.KeySkills {
		if name := strings.TrimSpace(skill.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Text renders the vacancy as a plain job description: title, the
// description without markup and the key skills line.
func (va *Vacancy) Text() (string, error) {
	description, err := htmltext.FromFragment(va.Description)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, 3)
	if name := strings.TrimSpace(va.Name); name != "" {
		parts = append(parts, name)
	}
	if description != "" {
		parts = append(parts, description)
	}
	if skills := va.SkillNames(); len(skills) > 0 {
		parts = append(parts, strings.Join(skills, ", "))
	}

	return strings.Join(parts, "\n\n"), nil
}
