package yamlprofile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mkazemie/github-profile-generator/internal/domain"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadProfile_FieldsListsFlags(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "profile.yaml")
	write(t, p, `
name: Ada Lovelace
github: https://github.com/ada/
year: 1815
skills:
  - Mathematics
  - "  "
  - Poetry
tech_stack: Go, Docker
show_stats: false
show_icons: "yes"
`)

	if _, err := NewLoader().LoadProfile(p); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig for show_icons: yes, got %v", err)
	}

	write(t, p, strings.Replace(mustRead(t, p), `show_icons: "yes"`, `show_icons: "true"`, 1))
	prof, err := NewLoader().LoadProfile(p)
	if err != nil {
		t.Fatalf("LoadProfile error: %v", err)
	}

	if prof.Fields["name"] != "Ada Lovelace" {
		t.Fatalf("expected name, got %q", prof.Fields["name"])
	}
	if prof.Fields["year"] != "1815" {
		t.Fatalf("expected numbers stringified, got %q", prof.Fields["year"])
	}
	if got := prof.List(domain.KeySkills); !reflect.DeepEqual(got, []string{"Mathematics", "  ", "Poetry"}) {
		t.Fatalf("unexpected skills %q", got)
	}
	if got := prof.List(domain.KeyTechStack); !reflect.DeepEqual(got, []string{"Go", "Docker"}) {
		t.Fatalf("unexpected tech stack %q", got)
	}
	if prof.Flag(domain.FlagShowStats, true) {
		t.Fatalf("expected show_stats=false")
	}
	if !prof.Flag(domain.FlagShowIcons, false) {
		t.Fatalf("expected show_icons=true")
	}
}

func TestLoadProfile_MergesLocalOverride(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "profile.yaml")
	write(t, p, "name: Ada\nemail: public@example.com\n")
	write(t, filepath.Join(tmp, "profile.local.yaml"), "email: private@example.com\n")

	prof, err := NewLoader().LoadProfile(p)
	if err != nil {
		t.Fatalf("LoadProfile error: %v", err)
	}
	if prof.Fields["email"] != "private@example.com" {
		t.Fatalf("expected local override, got %q", prof.Fields["email"])
	}
	if prof.Fields["name"] != "Ada" {
		t.Fatalf("expected base name kept, got %q", prof.Fields["name"])
	}

	prof, err = NewLoader(WithLocalSuffix("")).LoadProfile(p)
	if err != nil {
		t.Fatalf("LoadProfile error: %v", err)
	}
	if prof.Fields["email"] != "public@example.com" {
		t.Fatalf("expected override disabled, got %q", prof.Fields["email"])
	}
}

func TestLoadProfile_JSON(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "profile.json")
	write(t, p, `{"name": "Grace", "skills": ["COBOL"], "show_icons": false}`)

	prof, err := NewLoader().LoadProfile(p)
	if err != nil {
		t.Fatalf("LoadProfile error: %v", err)
	}
	if prof.Fields["name"] != "Grace" || len(prof.List(domain.KeySkills)) != 1 || prof.Flag(domain.FlagShowIcons, true) {
		t.Fatalf("unexpected profile %+v", prof)
	}
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := NewLoader().LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
		field   string
	}{
		{"nested map", "links:\n  a: b\n", "field links"},
		{"bad list", "skills:\n  a: b\n", "field skills"},
		{"bad flag", "show_stats: 3\n", "field show_stats"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse("p.yaml", []byte(c.content))
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), c.field) || !strings.Contains(err.Error(), "p.yaml") {
				t.Fatalf("expected field and path in error, got %v", err)
			}
		})
	}

	if _, err := Parse("p.yaml", []byte("name: [unclosed")); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected YAML error to be KindInvalidConfig, got %v", err)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	p, err := Parse("p.yaml", []byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Fields) != 0 || p.Fields == nil {
		t.Fatalf("expected empty initialized profile, got %+v", p)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList("Go, Rust,,\n Docker \n")
	if !reflect.DeepEqual(got, []string{"Go", "Rust", "Docker"}) {
		t.Fatalf("unexpected %q", got)
	}
}

func mustRead(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(b)
}

func TestLoadProfile_TOML(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "profile.toml")
	write(t, p, `
name = "Ada"
year = 1815
since = 2020-01-02
skills = ["Math", "Poetry"]
tech_stack = "Go, Docker"
show_stats = false
`)
	write(t, filepath.Join(tmp, "profile.local.toml"), `name = "Ada L."`)

	prof, err := NewLoader().LoadProfile(p)
	if err != nil {
		t.Fatalf("LoadProfile error: %v", err)
	}
	if prof.Fields["name"] != "Ada L." {
		t.Fatalf("expected local override, got %q", prof.Fields["name"])
	}
	if prof.Fields["year"] != "1815" {
		t.Fatalf("expected integer as text, got %q", prof.Fields["year"])
	}
	if prof.Fields["since"] != "2020-01-02" {
		t.Fatalf("expected local date as text, got %q", prof.Fields["since"])
	}
	if !reflect.DeepEqual(prof.Lists[domain.KeyTechStack], []string{"Go", "Docker"}) {
		t.Fatalf("unexpected tech_stack %v", prof.Lists[domain.KeyTechStack])
	}
	if prof.Flags[domain.FlagShowStats] {
		t.Fatalf("expected show_stats false")
	}
}

func TestParse_InvalidTOML(t *testing.T) {
	_, err := Parse("profile.toml", []byte("name = "))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
