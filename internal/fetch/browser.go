// Package fetch - browser.go renders script-heavy listing pages in a headless browser.
package fetch

import (
	"context"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"
)

// renderSettle is how long the page gets to run its scripts after the body is ready.
const renderSettle = 2 * time.Second

// render loads u in headless Chrome and returns the rendered document HTML.
// Requires Chrome/Chromium to be installed on the system.
func (s *Source) render(ctx context.Context, u *url.URL) (string, error) {
	urlStr := u.String()
	s.logger.Debug("rendering listing in headless browser", "url", urlStr)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(s.opts.UserAgent),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, s.opts.Timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{
			URL:     urlStr,
			Message: "browser rendering failed",
			Cause:   err,
		}
	}

	s.logger.Debug("rendered listing", "url", urlStr, "bytes", len(html))
	return html, nil
}
