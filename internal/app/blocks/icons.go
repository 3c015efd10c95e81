package blocks

import (
	"strings"

	"golang.org/x/text/cases"
)

// iconSlugs maps a technology label to its simple-icons slug.
// Keys are case-folded once at init; the map is never written afterwards.
var iconSlugs = foldKeys(map[string]string{
	"Go":         "go",
	"Golang":     "go",
	"Python":     "python",
	"JavaScript": "javascript",
	"TypeScript": "typescript",
	"Rust":       "rust",
	"Java":       "openjdk",
	"Kotlin":     "kotlin",
	"C":          "c",
	"C++":        "cplusplus",
	"C#":         "csharp",
	"Ruby":       "ruby",
	"PHP":        "php",
	"Swift":      "swift",
	"Node.js":    "nodedotjs",
	"React":      "react",
	"Vue.js":     "vuedotjs",
	"Django":     "django",
	"Flask":      "flask",
	"Docker":     "docker",
	"Kubernetes": "kubernetes",
	"Terraform":  "terraform",
	"AWS":        "amazonaws",
	"GCP":        "googlecloud",
	"Azure":      "microsoftazure",
	"PostgreSQL": "postgresql",
	"MySQL":      "mysql",
	"MongoDB":    "mongodb",
	"Redis":      "redis",
	"Linux":      "linux",
	"Git":        "git",
	"GitHub":     "github",
	"Bash":       "gnubash",
	"PyTorch":    "pytorch",
	"TensorFlow": "tensorflow",
})

func foldKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[fold(k)] = v
	}
	return out
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// IconFor returns the icon slug for label. Matching is exact after trimming
// and case folding; "golang " matches "Golang" but "Go lang" does not.
func IconFor(label string) (string, bool) {
	slug, ok := iconSlugs[fold(label)]
	return slug, ok
}
