// SPDX-License-Identifier: MIT
// Package render formats graphs, search results and batch outcomes as
// terminal or Markdown tables.
package render

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// newWriter returns a go-pretty writer styled for m.
func newWriter(m Mode) table.Writer {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
		w.Style().Format.Header = text.FormatDefault
		w.Style().Format.Footer = text.FormatDefault
	}

	return w
}

// numeric right-aligns the given 1-based columns.
func numeric(w table.Writer, cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight}
	}
	w.SetColumnConfigs(cfgs)
}

func renderAs(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}

	return w.Render()
}
