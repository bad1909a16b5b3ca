package content

import (
	"fmt"
	"strings"

	"folio/internal/sections"
)

// Markdown renders the body of section k.
func (p *Portfolio) Markdown(k sections.Kind) string {
	var b strings.Builder
	info := k.Info()
	if k != sections.Hero {
		fmt.Fprintf(&b, "# %s %s\n\n", info.Icon, info.Title)
	}

	switch k {
	case sections.Hero:
		p.hero(&b)
	case sections.About:
		b.WriteString(strings.TrimSpace(p.About))
		b.WriteString("\n")
	case sections.Education:
		for _, e := range p.Education {
			fmt.Fprintf(&b, "## %s %s\n\n", e.Type.Icon(), e.Institution)
			fmt.Fprintf(&b, "**%s**  \n%s · %s\n", e.Degree, e.Duration, e.Location)
			if e.Grade != "" {
				fmt.Fprintf(&b, "\nGrade: %s\n", e.Grade)
			}
			if len(e.Coursework) > 0 {
				fmt.Fprintf(&b, "\nCoursework: %s\n", strings.Join(e.Coursework, ", "))
			}
			b.WriteString("\n")
		}
	case sections.Work:
		for _, w := range p.Experience {
			current := ""
			if w.Current {
				current = " (current)"
			}
			fmt.Fprintf(&b, "## %s %s%s\n\n", w.Type.Icon(), w.Title, current)
			fmt.Fprintf(&b, "**%s** · %s · %s\n\n", w.Company, w.Location, w.Duration)
			bullets(&b, w.Responsibilities)
		}
	case sections.Projects:
		for _, pr := range p.Projects {
			fmt.Fprintf(&b, "## %s\n\n%s\n", pr.Title, pr.Summary)
			if pr.Description != "" {
				fmt.Fprintf(&b, "\n%s\n", pr.Description)
			}
			if len(pr.Tags) > 0 {
				fmt.Fprintf(&b, "\n`%s`\n", strings.Join(pr.Tags, "` `"))
			}
			if pr.URL != "" {
				fmt.Fprintf(&b, "\n<%s>\n", pr.URL)
			}
			b.WriteString("\n")
		}
	case sections.Skills:
		for _, g := range p.Skills {
			fmt.Fprintf(&b, "**%s:** %s\n\n", g.Title, strings.Join(g.Skills, ", "))
		}
	case sections.Certifications:
		for _, c := range p.Certifications {
			line := fmt.Sprintf("**%s** · %s · %s", c.Title, c.Issuer, c.Date)
			if c.Link != "" {
				line += fmt.Sprintf(" · <%s>", c.Link)
			}
			fmt.Fprintf(&b, "- %s\n", line)
		}
	case sections.Leadership:
		for _, c := range p.Leadership {
			fmt.Fprintf(&b, "## %s %s, %s\n\n%s\n\n", c.Type.Icon(), c.Title, c.Organization, c.Description)
			bullets(&b, c.Achievements)
		}
	case sections.Contact:
		b.WriteString("Have a question or want to work together? Press **f** to open the contact form.\n\n")
		if p.Profile.Email != "" {
			fmt.Fprintf(&b, "- Email: <%s>\n", p.Profile.Email)
		}
		if p.Profile.Location != "" {
			fmt.Fprintf(&b, "- Location: %s\n", p.Profile.Location)
		}
		for _, l := range p.Social {
			if strings.HasPrefix(l.URL, "mailto:") {
				continue
			}
			fmt.Fprintf(&b, "- %s: <%s>\n", l.Label, l.URL)
		}
	}
	return b.String()
}

func (p *Portfolio) hero(b *strings.Builder) {
	fmt.Fprintf(b, "# %s\n\n", p.Profile.Name)
	if p.Profile.Headline != "" {
		fmt.Fprintf(b, "## %s\n\n", p.Profile.Headline)
	}
	if p.Profile.Tagline != "" {
		fmt.Fprintf(b, "%s\n\n", p.Profile.Tagline)
	}
	if p.Profile.Resume != "" {
		fmt.Fprintf(b, "Resume: %s (press **r**) · Command palette: **ctrl+k**\n", p.Profile.Resume)
	}
}

func bullets(b *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	if len(items) > 0 {
		b.WriteString("\n")
	}
}
