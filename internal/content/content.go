// Package content holds the portfolio text shown in each section.
package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Portfolio is everything the sections render.
type Portfolio struct {
	Profile        Profile         `yaml:"profile"`
	About          string          `yaml:"about"`
	Education      []Education     `yaml:"education"`
	Experience     []Experience    `yaml:"experience"`
	Projects       []Project       `yaml:"projects"`
	Skills         []SkillGroup    `yaml:"skills"`
	Certifications []Certification `yaml:"certifications"`
	Leadership     []Club          `yaml:"leadership"`
	Social         []Link          `yaml:"social"`
}

// Profile is the hero block.
type Profile struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	Resume   string `yaml:"resume"`
}

// Education is one school entry.
type Education struct {
	Institution string          `yaml:"institution"`
	Degree      string          `yaml:"degree"`
	Location    string          `yaml:"location"`
	Duration    string          `yaml:"duration"`
	Grade       string          `yaml:"grade,omitempty"`
	Coursework  []string        `yaml:"coursework,omitempty"`
	Type        InstitutionType `yaml:"type"`
}

// Experience is one position.
type Experience struct {
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Location         string   `yaml:"location"`
	Duration         string   `yaml:"duration"`
	Responsibilities []string `yaml:"responsibilities"`
	Type             WorkType `yaml:"type"`
	Current          bool     `yaml:"current"`
}

// Project is one portfolio piece.
type Project struct {
	Title       string   `yaml:"title"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags"`
	URL         string   `yaml:"url,omitempty"`
}

// SkillGroup is a titled list of skills.
type SkillGroup struct {
	Title  string   `yaml:"title"`
	Skills []string `yaml:"skills"`
}

// Certification is one completed course.
type Certification struct {
	Title  string `yaml:"title"`
	Issuer string `yaml:"issuer"`
	Date   string `yaml:"date"`
	Link   string `yaml:"link,omitempty"`
}

// Club is a club membership or leadership role.
type Club struct {
	Title        string   `yaml:"title"`
	Organization string   `yaml:"organization"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements,omitempty"`
	Type         ClubType `yaml:"type"`
}

// Link is a labelled URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// InstitutionType picks the icon shown next to an education entry.
type InstitutionType int

const (
	University InstitutionType = iota
	College
	School
)

type enumInfo struct {
	name string
	icon string
}

var institutionTypes = []enumInfo{
	University: {"university", "🎓"},
	College:    {"college", "🏛"},
	School:     {"school", "🏫"},
}

func (t InstitutionType) String() string { return lookup(institutionTypes, int(t)).name }

// Icon returns the glyph for t.
func (t InstitutionType) Icon() string { return lookup(institutionTypes, int(t)).icon }

func (t InstitutionType) MarshalYAML() (interface{}, error) { return t.String(), nil }

func (t *InstitutionType) UnmarshalYAML(n *yaml.Node) error {
	i, err := parseEnum(n, "institution type", institutionTypes)
	*t = InstitutionType(i)
	return err
}

// WorkType classifies a position.
type WorkType int

const (
	Development WorkType = iota
	Design
	AI
)

var workTypes = []enumInfo{
	Development: {"development", "⌨"},
	Design:      {"design", "✎"},
	AI:          {"ai", "✦"},
}

func (t WorkType) String() string { return lookup(workTypes, int(t)).name }

// Icon returns the glyph for t.
func (t WorkType) Icon() string { return lookup(workTypes, int(t)).icon }

func (t WorkType) MarshalYAML() (interface{}, error) { return t.String(), nil }

func (t *WorkType) UnmarshalYAML(n *yaml.Node) error {
	i, err := parseEnum(n, "work type", workTypes)
	*t = WorkType(i)
	return err
}

// ClubType separates leadership roles from memberships.
type ClubType int

const (
	Membership ClubType = iota
	Leadership
)

var clubTypes = []enumInfo{
	Membership: {"membership", "☺"},
	Leadership: {"leadership", "★"},
}

func (t ClubType) String() string { return lookup(clubTypes, int(t)).name }

// Icon returns the glyph for t.
func (t ClubType) Icon() string { return lookup(clubTypes, int(t)).icon }

func (t ClubType) MarshalYAML() (interface{}, error) { return t.String(), nil }

func (t *ClubType) UnmarshalYAML(n *yaml.Node) error {
	i, err := parseEnum(n, "club type", clubTypes)
	*t = ClubType(i)
	return err
}

func lookup(table []enumInfo, i int) enumInfo {
	if i < 0 || i >= len(table) {
		return enumInfo{name: "unknown", icon: "•"}
	}
	return table[i]
}

func parseEnum(n *yaml.Node, what string, table []enumInfo) (int, error) {
	var s string
	if err := n.Decode(&s); err != nil {
		return 0, err
	}
	for i, info := range table {
		if info.name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("line %d: unknown %s %q", n.Line, what, s)
}
