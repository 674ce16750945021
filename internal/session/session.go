// Package session builds the authenticated HTTP session shared by every fetch
// in a run. Authentication comes from at most one of a bearer token or a
// Netscape-format cookie file; with neither, requests go out unauthenticated
// and the site decides what to do with them.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/cwdl/internal/utils"
)

type Client struct {
	Http *resty.Client

	// set only when cookie auth was actually loaded, so it can be passed
	// through to yt-dlp with --cookies
	cookieFile string
}

func New(cfg utils.SessionConfig) (*Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	if cfg.Timeout == 0 {
		cfg.Timeout = 3 * time.Minute
	}
	client.SetTimeout(cfg.Timeout)
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	for k, v := range cfg.Headers {
		client.SetHeader(k, v)
	}

	c := &Client{Http: client}
	switch {
	case cfg.BearerToken != "":
		client.SetHeader("Authorization", "Bearer "+cfg.BearerToken)
	case cfg.CookieFile != "":
		cookies, err := ParseCookieFile(cfg.CookieFile)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug().Str("op", "session/new").Str("path", cfg.CookieFile).Msg("No cookie file present, continuing unauthenticated")
			} else {
				log.Warn().Str("op", "session/new").Err(err).Msg("Failed to load cookie file, continuing unauthenticated")
			}
			break
		}
		registerCookies(jar, cookies)
		c.cookieFile = cfg.CookieFile
		log.Debug().Str("op", "session/new").Int("cookies", len(cookies)).Msg("Loaded cookies into session")
	}
	return c, nil
}

// CookieFile returns the path of the cookie file loaded into the session, or
// "" when the session does not use cookie auth.
func (c *Client) CookieFile() string {
	return c.cookieFile
}

// FetchPage GETs a page with the session's auth context. Any non-2xx status
// is an error; callers decide whether that is fatal or a soft failure.
func (c *Client) FetchPage(pageURL string) (string, error) {
	res, err := c.Http.R().Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", pageURL, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("GET %s: unexpected status %s", pageURL, res.Status())
	}
	return string(res.Body()), nil
}
