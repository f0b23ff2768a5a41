package leetcode

import (
	"encoding/json"
	"net/http"
	"os"
	"time"
)

// CookieRecord is one entry of the persisted credential bundle. The
// bundle is trusted without expiry validation, stale cookies surface as
// downstream authentication failures.
type CookieRecord struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HttpOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
}

func loadCookieBundle(path string) ([]CookieRecord, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []CookieRecord
	err = json.Unmarshal(contents, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func saveCookieBundle(path string, records []CookieRecord) error {
	contents, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, contents, 0600)
}

// installCookies attaches the bundle to the http session and mirrors the
// anti-forgery token into the x-csrftoken header.
func (c *Client) installCookies(records []CookieRecord) {
	cookies := make([]*http.Cookie, 0, len(records))
	for _, r := range records {
		cookie := &http.Cookie{
			Name:     r.Name,
			Value:    r.Value,
			Domain:   r.Domain,
			Path:     r.Path,
			HttpOnly: r.HttpOnly,
			Secure:   r.Secure,
		}
		if r.Expires > 0 {
			cookie.Expires = time.Unix(int64(r.Expires), 0)
		}
		cookies = append(cookies, cookie)

		if r.Name == "csrftoken" {
			c.Http.SetHeader("x-csrftoken", r.Value)
		}
	}
	c.Http.SetCookies(cookies)
}

// InvalidateSession removes the persisted cookie bundle so the next
// ObtainSession falls back to interactive login.
func (c *Client) InvalidateSession() error {
	err := os.Remove(c.cookiePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
