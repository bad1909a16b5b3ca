package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"folio/internal/sections"
)

func TestDefaultContentParses(t *testing.T) {
	p := Default()
	assert.Equal(t, "Alex Rivera", p.Profile.Name)
	require.Len(t, p.Education, 3)
	assert.Equal(t, University, p.Education[0].Type)
	assert.Equal(t, College, p.Education[1].Type)
	assert.Equal(t, School, p.Education[2].Type)
	assert.Equal(t, Leadership, p.Leadership[0].Type)
	assert.Equal(t, AI, p.Experience[2].Type)
}

func TestInstitutionIcons(t *testing.T) {
	icons := map[string]bool{}
	for _, typ := range []InstitutionType{University, College, School} {
		assert.NotEmpty(t, typ.Icon())
		icons[typ.Icon()] = true
	}
	assert.Len(t, icons, 3, "each institution type has its own icon")
	assert.Equal(t, "unknown", InstitutionType(42).String())
}

func TestParseRejectsUnknownEnum(t *testing.T) {
	_, err := Parse([]byte("profile: {name: X}\neducation:\n  - institution: Y\n    type: bootcamp\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown institution type "bootcamp"`)
}

func TestParseRequiresName(t *testing.T) {
	_, err := Parse([]byte("about: hi\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("profile: [not, a, map]\n"))
	assert.Error(t, err)
}

func TestEnumsRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(out), "type: university")

	back, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, Default(), back)
}

func TestMarkdownCoversEverySection(t *testing.T) {
	p := Default()
	for _, k := range sections.All() {
		md := p.Markdown(k)
		assert.NotEmpty(t, strings.TrimSpace(md), k.ID())
		if k != sections.Hero {
			assert.True(t, strings.HasPrefix(md, "# "), "%s starts with a heading", k.ID())
		}
	}

	assert.Contains(t, p.Markdown(sections.Hero), "# Alex Rivera")
	assert.Contains(t, p.Markdown(sections.Education), "🎓 Northfield Technical University")
	assert.Contains(t, p.Markdown(sections.Work), "Developer Tools Intern (current)")
	assert.NotContains(t, p.Markdown(sections.Contact), "mailto:")
}

func TestLoad(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Sam\n"), 0644))
	p, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.Profile.Name)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Before\n"), 0644))

	got := make(chan *Portfolio, 4)
	w, err := NewWatcher(path, func(p *Portfolio, err error) {
		if err != nil {
			return
		}
		select {
		case got <- p:
		default:
		}
	})
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: After\n"), 0644))

	select {
	case p := <-got:
		assert.Equal(t, "After", p.Profile.Name)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
	assert.GreaterOrEqual(t, w.Reloads(), 1)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Same\n"), 0644))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, w.Reloads())

	w.Stop()
	w.Stop()
}

func TestWatcherStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "content.yaml"), nil)
	require.NoError(t, err)
	assert.NotPanics(t, w.Stop)
}
