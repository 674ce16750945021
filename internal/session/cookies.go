package session

import (
	"net/http"
	"net/url"
	"os"
	"strings"
)

// ParseCookieFile reads a Netscape-format cookie export: one tab-delimited
// cookie per line as [domain, flag, path, secure, expiry, name, value].
// Comment and blank lines are ignored, as are lines with fewer than 7 fields.
func ParseCookieFile(path string) ([]*http.Cookie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cookies []*http.Cookie
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			continue
		}
		cookies = append(cookies, &http.Cookie{
			Domain: fields[0],
			Name:   fields[5],
			Value:  fields[6],
			Path:   "/",
		})
	}
	return cookies, nil
}

func registerCookies(jar http.CookieJar, cookies []*http.Cookie) {
	for _, c := range cookies {
		host := strings.TrimPrefix(c.Domain, ".")
		jar.SetCookies(&url.URL{Scheme: "https", Host: host, Path: "/"}, []*http.Cookie{c})
	}
}
