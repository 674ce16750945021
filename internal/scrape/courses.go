package scrape

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// DefaultDashboardURL is the site root used for course discovery when no
// dashboard URL is given.
const DefaultDashboardURL = "https://web.careerwill.com/"

// Fetcher is the slice of the session client that discovery needs.
type Fetcher interface {
	FetchPage(pageURL string) (string, error)
}

// DiscoverCourses fetches the dashboard page and returns the enrolled-course
// links found on it, query strings stripped, deduplicated, and sorted so
// batch runs are reproducible. Discovery is best-effort against whatever
// session it is given: any fetch or parse failure is logged and yields an
// empty list rather than an error.
func DiscoverCourses(f Fetcher, dashboardURL string) []string {
	if dashboardURL == "" {
		dashboardURL = DefaultDashboardURL
	}
	body, err := f.FetchPage(dashboardURL)
	if err != nil {
		log.Warn().Str("op", "scrape/courses").Err(err).Msg("Failed to fetch dashboard page")
		return nil
	}
	base, err := url.Parse(dashboardURL)
	if err != nil {
		log.Warn().Str("op", "scrape/courses").Err(err).Msg("Invalid dashboard URL")
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		log.Warn().Str("op", "scrape/courses").Err(err).Msg("Failed to parse dashboard page")
		return nil
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		if strings.HasPrefix(href, "/") {
			ref, err := url.Parse(href)
			if err != nil {
				return
			}
			href = base.ResolveReference(ref).String()
		}
		if !strings.Contains(href, "/course/") && !strings.Contains(href, "/learn/") {
			return
		}
		if i := strings.Index(href, "?"); i >= 0 {
			href = href[:i]
		}
		seen[href] = struct{}{}
	})

	courses := make([]string, 0, len(seen))
	for c := range seen {
		courses = append(courses, c)
	}
	sort.Strings(courses)
	log.Info().Str("op", "scrape/courses").Int("count", len(courses)).Msg("Discovered enrolled courses")
	return courses
}
