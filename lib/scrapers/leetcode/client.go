// Package leetcode implements an authenticated client for the LeetCode
// GraphQL api, with cookie-based session reuse across runs.
package leetcode

import (
	"context"
	"net/http/cookiejar"
	"net/url"
	"time"

	"leetanki/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/leetcode")

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	cookiePath string
}

type ClientOptions struct {
	// defaults to https://leetcode.com
	BaseUrl string
	// file the cookie bundle is persisted to, defaults to cookies.json
	CookiePath string
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = "https://leetcode.com"
	}
	if opts.CookiePath == "" {
		opts.CookiePath = "cookies.json"
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", userAgent)
	client.SetHeader("referer", opts.BaseUrl+"/accounts/login/")
	client.SetHeader("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/leetcode/http")

	return &Client{
		BaseUrl:    baseUrl,
		Http:       client,
		cookiePath: opts.CookiePath,
	}, nil
}
