package domain

import "testing"

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"", FormatMarkdown},
		{"md", FormatMarkdown},
		{"Markdown", FormatMarkdown},
		{" HTML ", FormatHTML},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseFormat(%q)=%q, want %q", c.in, got, c.want)
		}
	}

	if _, err := ParseFormat("pdf"); !IsKind(err, KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
}
