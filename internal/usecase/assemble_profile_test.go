package usecase

import (
	"errors"
	"testing"

	"github.com/mkazemie/github-profile-generator/internal/domain"
)

func TestAssembleProfile_Precedence(t *testing.T) {
	file := domain.NewProfile()
	file.Fields["name"] = "File Name"
	file.Fields["email"] = "file@example.com"
	file.Lists[domain.KeySkills] = []string{"Go"}
	file.Flags[domain.FlagShowStats] = false

	override := domain.NewProfile()
	override.Fields["email"] = "flag@example.com"

	uc := NewAssembleProfile(&fakeProfiles{profiles: map[string]domain.Profile{"profile.yaml": file}})
	got, results, err := uc.Execute(ProfileInput{
		Render:      domain.RenderConfig{ShowIcons: false, ShowStats: true},
		GitHubJSON:  []byte(`{"login":"octo","name":"JSON Name","bio":"from github","html_url":"https://github.com/octo"}`),
		ProfilePath: "profile.yaml",
		Overrides:   override,
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	cases := []struct {
		key  string
		want string
	}{
		{"name", "File Name"},
		{"email", "flag@example.com"},
		{"summary", "from github"},
		{domain.KeyGitHubUsername, "octo"},
	}
	for _, c := range cases {
		if got.Fields[c.key] != c.want {
			t.Errorf("field %s = %q, want %q", c.key, got.Fields[c.key], c.want)
		}
	}

	if got.Flag(domain.FlagShowStats, true) {
		t.Errorf("expected profile file to override config show_stats")
	}
	if got.Flag(domain.FlagShowIcons, true) {
		t.Errorf("expected config show_icons=false to seed the profile")
	}
	if len(got.List(domain.KeySkills)) != 1 {
		t.Errorf("expected skills from file, got %q", got.List(domain.KeySkills))
	}
	if len(results) == 0 {
		t.Fatalf("expected extract results for github json")
	}
}

func TestAssembleProfile_MissingOptionalFile(t *testing.T) {
	uc := NewAssembleProfile(&fakeProfiles{})

	got, _, err := uc.Execute(ProfileInput{ProfilePath: "profile.yaml", Render: domain.RenderConfig{ShowIcons: true, ShowStats: true}})
	if err != nil {
		t.Fatalf("expected missing optional profile to be skipped, got %v", err)
	}
	if !got.Flag(domain.FlagShowIcons, false) {
		t.Fatalf("expected render defaults kept")
	}

	_, _, err = uc.Execute(ProfileInput{ProfilePath: "profile.yaml", RequireProfile: true})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound for required profile, got %v", err)
	}
}

func TestAssembleProfile_InvalidProfilePropagates(t *testing.T) {
	bad := &domain.OpError{Op: "fake.profile", Kind: domain.KindInvalidConfig, Err: errors.New("yaml: bad")}
	uc := NewAssembleProfile(&fakeProfiles{err: bad})

	_, _, err := uc.Execute(ProfileInput{ProfilePath: "profile.yaml"})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestAssembleProfile_InvalidGitHubJSON(t *testing.T) {
	uc := NewAssembleProfile(&fakeProfiles{})

	_, _, err := uc.Execute(ProfileInput{GitHubJSON: []byte("{not json")})
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput in chain, got %v", err)
	}
}

func TestAssembleProfile_NoSources(t *testing.T) {
	got, results, err := NewAssembleProfile(nil).Execute(ProfileInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Fields) != 0 || len(results) != 0 {
		t.Fatalf("expected empty profile, got %+v", got)
	}
}
