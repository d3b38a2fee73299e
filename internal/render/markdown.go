// ABOUTME: Markdown rendering of assistant answers for terminal output
// ABOUTME: Caches one glamour renderer per style and wrap width
package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const (
	StyleLight = "light"
	StyleDark  = "dark"
)

type Options struct {
	Style string
	Width int
}

func DefaultOptions() Options {
	return Options{Style: StyleLight, Width: 80}
}

func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// glamour.TermRenderer is not safe for concurrent Render calls, so each cached
// renderer carries its own lock.
type cached struct {
	mu sync.Mutex
	r  *glamour.TermRenderer
}

var (
	cacheMu sync.Mutex
	cache   = map[Options]*cached{}
)

func normalize(opts Options) Options {
	if opts.Style != StyleDark {
		opts.Style = StyleLight
	}
	if opts.Width < 20 {
		opts.Width = 20
	}
	return opts
}

func rendererFor(opts Options) (*cached, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if c, ok := cache[opts]; ok {
		return c, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(opts.Style),
		glamour.WithWordWrap(opts.Width),
		glamour.WithPreservedNewLines(),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}

	c := &cached{r: r}
	cache[opts] = c
	return c, nil
}

// Markdown renders text as terminal markdown. Surrounding blank lines added by
// glamour are trimmed.
func Markdown(text string, opts Options) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	c, err := rendererFor(normalize(opts))
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	out, err := c.r.Render(text)
	c.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

// MarkdownOrPlain renders text as markdown and falls back to the raw text
// when rendering fails.
func MarkdownOrPlain(text string, opts Options) string {
	out, err := Markdown(text, opts)
	if err != nil {
		return text
	}
	return out
}

// ClearCache drops all cached renderers.
func ClearCache() {
	cacheMu.Lock()
	cache = map[Options]*cached{}
	cacheMu.Unlock()
}

// CacheSize returns the number of cached renderers.
func CacheSize() int {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	return len(cache)
}
