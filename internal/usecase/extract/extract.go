// Package extract pulls profile fields out of JSON documents with JSONPath.
package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/mkazemie/github-profile-generator/internal/domain"
)

// GitHubUserRules maps profile fields to the GitHub REST "get a user" payload
// (GET /users/{username}, or `gh api user`).
var GitHubUserRules = domain.ExtractSpec{
	"name":                   "$.name",
	domain.KeyGitHubUsername: "$.login",
	domain.KeyGitHubURL:      "$.html_url",
	"website":                "$.blog",
	"email":                  "$.email",
	"summary":                "$.bio",
	"location":               "$.location",
	"company":                "$.company",
	"twitter":                "$.twitter_username",
}

// ImportGitHubUser applies GitHubUserRules to a GitHub user payload. The blog
// field is often stored without a scheme, so website gets https:// added.
func ImportGitHubUser(body []byte) (domain.Fields, []domain.ExtractResult) {
	fields, results := Apply(body, GitHubUserRules)
	if w, ok := fields["website"]; ok && !strings.Contains(w, "://") {
		fields["website"] = "https://" + w
	}
	return fields, results
}

// Apply runs every rule (field name to JSONPath expression) against body.
//
// Results come back sorted by field name, one per rule. A failing rule does
// not stop the others. Null, blank and empty values are failures so they
// never overwrite fields coming from a profile file. A body that is not JSON
// fails every rule.
func Apply(body []byte, rules domain.ExtractSpec) (domain.Fields, []domain.ExtractResult) {
	fields := domain.Fields{}
	results := make([]domain.ExtractResult, 0, len(rules))
	if len(rules) == 0 {
		return fields, results
	}

	names := make([]string, 0, len(rules))
	for k := range rules {
		names = append(names, k)
	}
	sort.Strings(names)

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		for _, name := range names {
			results = append(results, failed(name, "document is not valid JSON"))
		}
		return fields, results
	}

	for _, name := range names {
		value, err := lookup(doc, rules[name])
		if err != nil {
			results = append(results, failed(name, err.Error()))
			continue
		}
		fields[name] = value
		results = append(results, domain.ExtractResult{Name: name, Success: true, Message: "imported"})
	}
	return fields, results
}

func lookup(doc any, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", fmt.Errorf("empty jsonpath expression")
	}

	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", fmt.Errorf("(%s) jsonpath error: %v", expr, err)
	}

	s, err := text(v)
	if err != nil {
		return "", fmt.Errorf("(%s) %v", expr, err)
	}
	if s = strings.TrimSpace(s); s == "" {
		return "", fmt.Errorf("(%s) no value", expr)
	}
	return s, nil
}

// text renders a JSON value as a profile field. Arrays of scalars become a
// comma separated list; objects are rejected.
func text(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case []any:
		parts := make([]string, 0, len(t))
		for _, it := range t {
			s, err := text(it)
			if err != nil {
				return "", err
			}
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", "), nil
	case map[string]any:
		return "", fmt.Errorf("object values are not supported")
	default:
		return fmt.Sprint(t), nil
	}
}

func failed(name, msg string) domain.ExtractResult {
	return domain.ExtractResult{
		Name:    name,
		Success: false,
		Message: fmt.Sprintf("field %q: %s", name, msg),
	}
}
