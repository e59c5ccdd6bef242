// Package browser renders a page in headless Chromium and reduces it to
// markdown for the model.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const pageLoadTimeout = 10 * time.Second

// Fetch loads url and returns the page as markdown.
func Fetch(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("url is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), pageLoadTimeout)
	defer cancel()

	b, err := newBrowser()
	if err != nil {
		return "", err
	}
	defer b.MustClose()

	page, err := b.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("browser.Page: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("page.WaitLoad: %w", err)
	}

	title := page.MustInfo().Title
	raw, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("page.HTML: %w", err)
	}

	return extract(raw, title, url)
}

func newBrowser() (*rod.Browser, error) {
	path, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("launcher.Launch: %w", err)
	}

	b := rod.New().ControlURL(path)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("browser.Connect: %w", err)
	}
	return b, nil
}
