package leetcode

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"
	"go.opentelemetry.io/otel/codes"
)

// how long to wait for a human to finish the login form plus any second
// factor before giving up
const loginTimeout = time.Hour * 24

// pause after the login form is gone so post-login redirects can settle
// and the remaining cookies are written
const loginSettleInterval = time.Second * 10

var ErrLoginFailed = fmt.Errorf("failed to login to your account")

// ObtainSession makes the client authenticated. A previously persisted
// cookie bundle is reused without network interaction; otherwise a
// visible browser window is opened and a human is expected to complete
// the login form, after which the browser cookies are captured and
// persisted for future runs.
func (c *Client) ObtainSession(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "client:ObtainSession")
	defer span.End()

	if _, err := os.Stat(c.cookiePath); err == nil {
		records, err := loadCookieBundle(c.cookiePath)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to load cookie bundle")
			return err
		}
		c.installCookies(records)
		slog.Info("restored session from cookie bundle", "path", c.cookiePath)
		return nil
	}

	slog.Info("starting browser login, please fill the login form")

	records, err := c.interactiveLogin(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, ErrLoginFailed.Error())
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	err = saveCookieBundle(c.cookiePath, records)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to persist cookie bundle")
		return err
	}
	c.installCookies(records)

	slog.Info("login successful", "cookies", len(records))
	return nil
}

// interactiveLogin drives a headed chrome window to the login page and
// blocks until its location no longer indicates a login in progress.
func (c *Client) interactiveLogin(ctx context.Context) ([]CookieRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	loginUrl := c.BaseUrl.JoinPath("/accounts/login/").String()
	err := chromedp.Run(browserCtx, chromedp.Navigate(loginUrl))
	if err != nil {
		return nil, err
	}

	for {
		select {
		case <-browserCtx.Done():
			return nil, browserCtx.Err()
		case <-time.After(time.Second * 2):
		}

		var location string
		err := chromedp.Run(browserCtx, chromedp.Location(&location))
		if err != nil {
			return nil, err
		}
		if !strings.Contains(location, "login") {
			break
		}
	}

	// the human is done, let redirects and late cookies settle
	select {
	case <-browserCtx.Done():
		return nil, browserCtx.Err()
	case <-time.After(loginSettleInterval):
	}

	var records []CookieRecord
	err = chromedp.Run(browserCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		cookies, err := storage.GetCookies().Do(ctx)
		if err != nil {
			return err
		}
		for _, cookie := range cookies {
			records = append(records, CookieRecord{
				Name:     cookie.Name,
				Value:    cookie.Value,
				Domain:   cookie.Domain,
				Path:     cookie.Path,
				Expires:  cookie.Expires,
				HttpOnly: cookie.HTTPOnly,
				Secure:   cookie.Secure,
			})
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return records, nil
}
