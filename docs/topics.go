// Package docs embeds the user documentation topics served by `pfd topic`.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Topic returns the markdown content of one documentation topic. The
// special name "*" expands to every topic, concatenated in name order.
func Topic(name string) (string, error) {
	if name == "*" {
		all, err := Names()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, n := range all {
			content, err := Topic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
		return b.String(), nil
	}

	content, err := topics.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Names lists the available topic names, sorted. The index file readme.md
// is not itself a topic.
func Names() ([]string, error) {
	entries, err := topics.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
