package extract

import (
	"strings"
	"testing"

	"github.com/mkazemie/github-profile-generator/internal/domain"
)

const ghUser = `{
  "login": "octocat",
  "id": 583231,
  "html_url": "https://github.com/octocat",
  "name": "The Octocat",
  "company": "@github",
  "blog": "https://github.blog",
  "location": "San Francisco",
  "email": null,
  "bio": "  ",
  "twitter_username": null,
  "public_repos": 8
}`

func TestApply_EmptyRules(t *testing.T) {
	fields, results := Apply([]byte(`{"name":"alice"}`), domain.ExtractSpec{})
	if len(fields) != 0 {
		t.Fatalf("expected empty fields, got %v", fields)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %v", results)
	}
}

func TestApply_GitHubUser(t *testing.T) {
	fields, res := Apply([]byte(ghUser), GitHubUserRules)

	want := map[string]string{
		"name":                   "The Octocat",
		domain.KeyGitHubUsername: "octocat",
		domain.KeyGitHubURL:      "https://github.com/octocat",
		"website":                "https://github.blog",
		"location":               "San Francisco",
		"company":                "@github",
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("fields[%q] = %q, want %q", k, fields[k], v)
		}
	}

	for _, absent := range []string{"email", "summary", "twitter"} {
		if _, ok := fields[absent]; ok {
			t.Errorf("expected %q not imported, got %q", absent, fields[absent])
		}
	}

	if len(res) != len(GitHubUserRules) {
		t.Fatalf("expected one result per rule, got %d", len(res))
	}
	failed := 0
	for _, r := range res {
		if !r.Success {
			failed++
		}
	}
	if failed != 3 {
		t.Fatalf("expected 3 failed rules, got %d: %+v", failed, res)
	}
}

func TestApply_NumbersAreStringified(t *testing.T) {
	fields, _ := Apply([]byte(ghUser), domain.ExtractSpec{"repos": "$.public_repos"})
	if fields["repos"] != "8" {
		t.Fatalf("expected repos=8, got %q", fields["repos"])
	}
}

func TestApply_NonJSONBody_FailsAll(t *testing.T) {
	fields, res := Apply([]byte("hello"), domain.ExtractSpec{"name": "$.name"})
	if len(fields) != 0 {
		t.Fatalf("expected no fields, got=%v", fields)
	}
	if len(res) != 1 || res[0].Success {
		t.Fatalf("expected a single failure, got %+v", res)
	}
	if !strings.Contains(res[0].Message, "not valid JSON") {
		t.Fatalf("unexpected message %q", res[0].Message)
	}
}

func TestApply_BadExpressionDoesNotStopOthers(t *testing.T) {
	rules := domain.ExtractSpec{
		"broken": "$.nosuch",
		"empty":  "  ",
		"name":   "$.name",
	}
	fields, res := Apply([]byte(ghUser), rules)

	if fields["name"] != "The Octocat" {
		t.Fatalf("expected name imported, got %q", fields["name"])
	}
	// keys are sorted: broken, empty, name
	if res[0].Success || res[1].Success || !res[2].Success {
		t.Fatalf("unexpected results %+v", res)
	}
}

func TestApply_ValueShapes(t *testing.T) {
	body := []byte(`{"big": 1200000, "ratio": 0.5, "hireable": true, "tags": ["go", " ", "sql"], "plan": {"name": "pro"}}`)
	rules := domain.ExtractSpec{
		"big":      "$.big",
		"ratio":    "$.ratio",
		"hireable": "$.hireable",
		"tags":     "$.tags",
		"plan":     "$.plan",
	}
	fields, res := Apply(body, rules)

	want := map[string]string{
		"big":      "1200000",
		"ratio":    "0.5",
		"hireable": "true",
		"tags":     "go, sql",
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("fields[%q] = %q, want %q", k, fields[k], v)
		}
	}
	if _, ok := fields["plan"]; ok {
		t.Fatalf("expected object value rejected")
	}
	// sorted: big, hireable, plan, ratio, tags
	if res[2].Success || !strings.Contains(res[2].Message, "object") {
		t.Fatalf("unexpected plan result %+v", res[2])
	}
}

func TestImportGitHubUser_AddsSchemeToBlog(t *testing.T) {
	fields, _ := ImportGitHubUser([]byte(`{"login": "ada", "blog": "ada.dev"}`))
	if fields["website"] != "https://ada.dev" {
		t.Fatalf("expected scheme added, got %q", fields["website"])
	}

	fields, _ = ImportGitHubUser([]byte(ghUser))
	if fields["website"] != "https://github.blog" {
		t.Fatalf("expected website kept, got %q", fields["website"])
	}
}
