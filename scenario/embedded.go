// SPDX-License-Identifier: MIT
package scenario

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Embedded returns a bundled scenario by name (file name without ".yaml").
func Embedded(name string) (*Document, error) {
	data, err := dataFS.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrNotFound, name, strings.Join(Names(), ", "))
	}
	doc, err := Load(data, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario: embedded %q: %w", name, err)
	}

	return doc, nil
}

// Names lists the bundled scenarios, sorted.
func Names() []string {
	entries, _ := dataFS.ReadDir("data")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)

	return names
}
