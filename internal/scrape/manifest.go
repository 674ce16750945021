// Package scrape finds streaming manifest URLs and enrolled-course links in
// fetched pages. Extraction is a best-effort text scan: course sites bury
// manifest URLs in JSON blobs inside script tags at least as often as in
// visible markup, so no well-formedness is assumed anywhere.
package scrape

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Matches absolute and root-relative URLs ending in a recognized manifest
// extension, with an optional query string.
var manifestRegex = regexp.MustCompile(`(?:https?://|/)[^"'\s<>]+?\.(?:m3u8|mpd)(?:\?[^"'\s<>]*)?`)

// ExtractManifests scans page text and every inline script block for HLS/DASH
// manifest URLs. Root-relative candidates are resolved against baseURL right
// away so everything handed downstream is absolute. The result is
// deduplicated and sorted, which keeps manifest_<n> directory assignment
// stable across runs on the same page.
func ExtractManifests(pageHTML, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}

	candidates := make(map[string]struct{})
	collect := func(text string) {
		for _, m := range manifestRegex.FindAllString(text, -1) {
			candidates[m] = struct{}{}
		}
	}
	collect(pageHTML)

	// Script bodies are scanned separately: html.Parse unescapes entities
	// inside scripts, so JSON-embedded URLs that the raw scan missed show up
	// here.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err == nil {
		doc.Find("script").Each(func(_ int, s *goquery.Selection) {
			if text := s.Text(); strings.TrimSpace(text) != "" {
				collect(text)
			}
		})
	}

	resolved := make(map[string]struct{}, len(candidates))
	for candidate := range candidates {
		if strings.HasPrefix(candidate, "/") {
			ref, err := url.Parse(candidate)
			if err != nil {
				continue
			}
			candidate = base.ResolveReference(ref).String()
		}
		resolved[candidate] = struct{}{}
	}

	manifests := make([]string, 0, len(resolved))
	for m := range resolved {
		manifests = append(manifests, m)
	}
	sort.Strings(manifests)
	return manifests, nil
}
