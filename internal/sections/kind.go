// Package sections describes the portfolio's scrollable regions and tracks
// which one is active as the reader scrolls.
package sections

// Kind is one of the fixed portfolio sections.
type Kind int

const (
	Hero Kind = iota
	About
	Education
	Work
	Projects
	Skills
	Certifications
	Leadership
	Contact

	kindCount
)

// Info is the static description of a section.
type Info struct {
	ID       string
	Title    string
	NavLabel string // empty when the section has no header link
	Icon     string
	Shortcut rune
}

var infos = [kindCount]Info{
	Hero:           {ID: "hero", Title: "Home", Icon: "⌂", Shortcut: 'h'},
	About:          {ID: "about", Title: "About", NavLabel: "About", Icon: "☺", Shortcut: 'a'},
	Education:      {ID: "education", Title: "Education", Icon: "🎓", Shortcut: 'e'},
	Work:           {ID: "work-experience", Title: "Work Experience", NavLabel: "Work", Icon: "💼", Shortcut: 'w'},
	Projects:       {ID: "projects", Title: "Projects", NavLabel: "Portfolio", Icon: "◆", Shortcut: 'p'},
	Skills:         {ID: "skills", Title: "Skills", NavLabel: "Skills", Icon: "⚙", Shortcut: 's'},
	Certifications: {ID: "certifications", Title: "Certifications", Icon: "✓", Shortcut: 'c'},
	Leadership:     {ID: "clubs-leadership", Title: "Clubs & Leadership", Icon: "★", Shortcut: 'l'},
	Contact:        {ID: "contact", Title: "Contact", NavLabel: "Contact", Icon: "✉", Shortcut: 'm'},
}

var byID = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, info := range infos {
		m[info.ID] = Kind(k)
	}
	return m
}()

// Info returns the static description of k.
func (k Kind) Info() Info {
	if k < 0 || k >= kindCount {
		return Info{}
	}
	return infos[k]
}

// ID returns the section's element identifier.
func (k Kind) ID() string { return k.Info().ID }

func (k Kind) String() string { return k.Info().ID }

// KindFromID looks up a section by identifier.
func KindFromID(id string) (Kind, bool) {
	k, ok := byID[id]
	return k, ok
}

// All returns every section in page order.
func All() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// DefaultOrder returns the section identifiers in page order.
func DefaultOrder() []string {
	out := make([]string, kindCount)
	for i, info := range infos {
		out[i] = info.ID
	}
	return out
}

var navOrder = []Kind{About, Work, Skills, Projects, Contact}

// NavItems returns the sections linked from the header, left to right.
func NavItems() []Kind {
	return append([]Kind(nil), navOrder...)
}
