package utils

import (
	"net/url"
	"strings"
)

func ParseHeaderArgs(headers []string) map[string]string {
	result := make(map[string]string)
	for _, header := range headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			result[key] = value
		}
	}
	return result
}

// CourseSlug derives a filesystem-friendly directory name from a course URL so
// batch runs keep each course's manifest_<n> directories apart.
func CourseSlug(courseURL string) string {
	parsed, err := url.Parse(courseURL)
	if err != nil || parsed.Path == "" || parsed.Path == "/" {
		return "course"
	}
	segments := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return "course"
	}
	slug := segments[len(segments)-1]
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, slug)
	if slug == "" {
		return "course"
	}
	return slug
}
