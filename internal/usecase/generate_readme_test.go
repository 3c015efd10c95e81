package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mkazemie/github-profile-generator/internal/app/blocks"
	"github.com/mkazemie/github-profile-generator/internal/domain"
)

const statsTheme = `# Hi, I'm {{name}}
{{title}}

## Skills
{{skills_list}}

## Stack
{{tech_badges}}

<!-- stats:start -->
<img src="https://github-readme-stats.vercel.app/api?username=someone&show_icons=true" />
<img src="https://streak-stats.demolab.com?user=someone" />
<!-- stats:end -->
by @{{github_username}}`

func newProfile() domain.Profile {
	p := domain.NewProfile()
	p.Fields["name"] = "Ada"
	p.Fields[domain.KeyGitHubURL] = "https://github.com/octocat/"
	p.Lists[domain.KeySkills] = []string{"", "  ", "Go"}
	p.Lists[domain.KeyTechStack] = []string{"Go"}
	return p
}

func TestGenerateReadme_FullDocument(t *testing.T) {
	themes := &fakeThemes{themes: map[string]string{"default": statsTheme}}
	uc := NewGenerateReadme(themes)

	doc, err := uc.Execute(context.Background(), "default", newProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Theme != "default" || doc.Handle != "octocat" {
		t.Fatalf("unexpected document meta: %+v", doc)
	}

	c := doc.Content
	mustContain(t, c, "# Hi, I'm Ada\n \n")
	mustContain(t, c, "## Skills\n- Go\n")
	mustContain(t, c, "logo=go")
	mustContain(t, c, "api?username=octocat&show_icons=true")
	mustContain(t, c, "?user=octocat\"")
	mustContain(t, c, "by @octocat")

	if strings.Contains(c, "{{") {
		t.Fatalf("expected no unresolved placeholders, got:\n%s", c)
	}
}

func TestGenerateReadme_EmptyListsKeepAsymmetry(t *testing.T) {
	themes := &fakeThemes{themes: map[string]string{"t": "[{{skills_list}}][{{tech_badges}}]"}}
	uc := NewGenerateReadme(themes)

	doc, err := uc.Execute(context.Background(), "t", domain.NewProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Content != "[-][ ]" {
		t.Fatalf("got %q, want %q", doc.Content, "[-][ ]")
	}
}

func TestGenerateReadme_NoHandleLeavesWidgetsAlone(t *testing.T) {
	body := `<img src="https://x/api?username=someone" /> {{github_username}}`
	themes := &fakeThemes{themes: map[string]string{"t": body}}
	uc := NewGenerateReadme(themes)

	p := domain.NewProfile()
	p.Fields[domain.KeyGitHubURL] = "https://gitlab.com/octocat"

	doc, err := uc.Execute(context.Background(), "t", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Handle != "" {
		t.Fatalf("expected no handle, got %q", doc.Handle)
	}
	if doc.Content != `<img src="https://x/api?username=someone" />  ` {
		t.Fatalf("unexpected content %q", doc.Content)
	}
}

func TestGenerateReadme_ExplicitHandleWins(t *testing.T) {
	themes := &fakeThemes{themes: map[string]string{"t": `"?username=x" {{github_username}}`}}
	uc := NewGenerateReadme(themes)

	p := newProfile()
	p.Fields[domain.KeyGitHubUsername] = " explicit "

	doc, err := uc.Execute(context.Background(), "t", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Content != `"?username=explicit" explicit` {
		t.Fatalf("unexpected content %q", doc.Content)
	}
}

func TestGenerateReadme_FlagsDisableStatsAndIcons(t *testing.T) {
	themes := &fakeThemes{themes: map[string]string{"default": statsTheme}}
	uc := NewGenerateReadme(themes)

	p := newProfile()
	p.Flags[domain.FlagShowStats] = false
	p.Flags[domain.FlagShowIcons] = false

	doc, err := uc.Execute(context.Background(), "default", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(doc.Content, blocks.StatsStart) || strings.Contains(doc.Content, "streak-stats") {
		t.Fatalf("expected stats block removed, got:\n%s", doc.Content)
	}
	if strings.Contains(doc.Content, "logo=") {
		t.Fatalf("expected badges without icons, got:\n%s", doc.Content)
	}
}

func TestGenerateReadme_DoesNotMutateProfile(t *testing.T) {
	themes := &fakeThemes{themes: map[string]string{"default": statsTheme}}
	uc := NewGenerateReadme(themes)

	p := newProfile()
	if _, err := uc.Execute(context.Background(), "default", p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.Fields[domain.KeyGitHubUsername]; ok {
		t.Fatalf("expected caller profile untouched, got %v", p.Fields)
	}
	if _, ok := p.Fields[domain.KeySkillsBlock]; ok {
		t.Fatalf("expected derived keys not written to caller profile")
	}
}

func TestGenerateReadme_UnknownThemeIsNotFound(t *testing.T) {
	themes := &fakeThemes{themes: map[string]string{"default": statsTheme}}
	uc := NewGenerateReadme(themes)

	doc, err := uc.Execute(context.Background(), "nope", newProfile())
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound in chain, got %v", err)
	}
	if doc.Content != "" {
		t.Fatalf("expected no content, got %q", doc.Content)
	}
}

func TestGenerateReadme_PropagatesLoadError(t *testing.T) {
	loadErr := errors.New("disk on fire")
	uc := NewGenerateReadme(errThemes{err: loadErr})

	_, err := uc.Execute(context.Background(), "default", newProfile())
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected loadErr, got %v", err)
	}
}

func TestGenerateReadme_ContextCancelled(t *testing.T) {
	themes := &fakeThemes{themes: map[string]string{"default": statsTheme}}
	uc := NewGenerateReadme(themes)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, "default", newProfile())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if themes.loads != 0 {
		t.Fatalf("expected theme not loaded after cancel, got %d loads", themes.loads)
	}
}

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected %q in:\n%s", sub, s)
	}
}
