package scrape

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fetcherFunc func(pageURL string) (string, error)

func (f fetcherFunc) FetchPage(pageURL string) (string, error) {
	return f(pageURL)
}

func TestDiscoverCourses(t *testing.T) {
	dashboard := `<html><body>
		<a href="/course/201?tab=overview">SSC Batch</a>
		<a href="/course/201?tab=schedule">SSC Batch schedule</a>
		<a href="https://web.careerwill.com/learn/banking-2024">Banking</a>
		<a href="/about">About us</a>
		<a href="/course/105">Railways</a>
		<a>no href here</a>
	</body></html>`

	fetcher := fetcherFunc(func(pageURL string) (string, error) {
		return dashboard, nil
	})
	courses := DiscoverCourses(fetcher, "https://web.careerwill.com/")
	require.Equal(t, []string{
		"https://web.careerwill.com/course/105",
		"https://web.careerwill.com/course/201",
		"https://web.careerwill.com/learn/banking-2024",
	}, courses)
}

func TestDiscoverCoursesFetchFailureIsSoft(t *testing.T) {
	fetcher := fetcherFunc(func(pageURL string) (string, error) {
		return "", fmt.Errorf("GET %s: unexpected status 403 Forbidden", pageURL)
	})
	courses := DiscoverCourses(fetcher, "https://web.careerwill.com/dashboard")
	require.Empty(t, courses)
}

func TestDiscoverCoursesDefaultsToSiteRoot(t *testing.T) {
	var fetched string
	fetcher := fetcherFunc(func(pageURL string) (string, error) {
		fetched = pageURL
		return "<html></html>", nil
	})
	DiscoverCourses(fetcher, "")
	require.Equal(t, DefaultDashboardURL, fetched)
}

func TestDiscoverCoursesEmptyDashboard(t *testing.T) {
	fetcher := fetcherFunc(func(pageURL string) (string, error) {
		return "<html><body><a href=\"/pricing\">Plans</a></body></html>", nil
	})
	courses := DiscoverCourses(fetcher, "https://web.careerwill.com/")
	require.Empty(t, courses)
}
