package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeaderArgs(t *testing.T) {
	headers := ParseHeaderArgs([]string{
		"X-Requested-With: XMLHttpRequest",
		"Referer:https://web.careerwill.com/",
		"malformed-header",
	})
	require.Equal(t, map[string]string{
		"X-Requested-With": "XMLHttpRequest",
		"Referer":          "https://web.careerwill.com/",
	}, headers)
}

func TestCourseSlug(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://web.careerwill.com/course/201", "201"},
		{"https://web.careerwill.com/learn/banking-2024", "banking-2024"},
		{"https://web.careerwill.com/course/ssc cgl!", "ssc_cgl_"},
		{"https://web.careerwill.com/", "course"},
		{"://broken", "course"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CourseSlug(tc.url), "url %q", tc.url)
	}
}
