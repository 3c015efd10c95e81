// Package handle derives a GitHub handle from profile input and patches
// widget URLs embedded in generated documents to point at it.
package handle

import (
	"net/url"
	"regexp"
	"strings"
)

const githubHost = "github.com"

var (
	usernameParamRe = regexp.MustCompile(`(username=)[^&"']+`)
	userParamRe     = regexp.MustCompile(`([?&]user=)[^&"']+`)
)

// Resolve returns the explicit handle when set, otherwise the first path
// segment of a github.com profile URL. Anything unparsable yields "".
func Resolve(explicit, profileURL string) string {
	if h := strings.TrimSpace(explicit); h != "" {
		return h
	}

	raw := strings.TrimSpace(profileURL)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if !strings.Contains(u.Host, githubHost) {
		return ""
	}

	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}

// Patch rewrites username= and ?user= / &user= query values anywhere in text
// to handle. The match is textual: it does not check that it sits inside a URL.
// A value ends at the next & " or ', so Patch is idempotent only for handles
// free of those characters; "a&b" patched twice yields "a&b&b".
func Patch(text, handle string) string {
	if handle == "" {
		return text
	}

	text = replaceValue(usernameParamRe, text, handle)
	return replaceValue(userParamRe, text, handle)
}

func replaceValue(re *regexp.Regexp, text, handle string) string {
	return re.ReplaceAllStringFunc(text, func(match string) string {
		prefix := re.FindStringSubmatch(match)[1]
		return prefix + handle
	})
}
