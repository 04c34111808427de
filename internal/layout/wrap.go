package layout

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

type wrapKey struct {
	text     string
	width    float64
	fontSize float64
	style    Style
}

type wrapCache struct {
	entries *lru.Cache[wrapKey, []string]
}

func newWrapCache(size int) (*wrapCache, error) {
	if size <= 0 {
		return nil, nil
	}
	entries, err := lru.New[wrapKey, []string](size)
	if err != nil {
		return nil, err
	}
	return &wrapCache{entries: entries}, nil
}

func (c *wrapCache) get(key wrapKey) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	return c.entries.Get(key)
}

func (c *wrapCache) add(key wrapKey, lines []string) {
	if c == nil {
		return
	}
	c.entries.Add(key, lines)
}

// wrapText splits text into lines no wider than width. Explicit newlines start
// a new line. A paragraph with no words yields one empty line, so a
// whitespace-only text renders as blank space while an empty text yields nothing.
// A word wider than width occupies its own line unbroken.
func wrapText(m Measurer, text string, width, fontSize float64, style Style) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, paragraph := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if m.StringWidth(candidate, fontSize, style) <= width {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}
