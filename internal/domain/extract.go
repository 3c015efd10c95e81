package domain

// ExtractSpec maps a profile field name to a JSONPath expression.
type ExtractSpec map[string]string

// ExtractResult reports the outcome of a single extract rule.
type ExtractResult struct {
	Name    string
	Success bool
	Message string
}
