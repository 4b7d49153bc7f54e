package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type column struct {
	title string
	align text.Align
}

// tokenColumns lays out split output: position, quoted token, table value.
var tokenColumns = []column{
	{"#", text.AlignRight},
	{"Token", text.AlignLeft},
	{"Value", text.AlignLeft},
}

// summaryColumns lays out one row per checked corpus file.
var summaryColumns = []column{
	{"Corpus", text.AlignLeft},
	{"Mode", text.AlignLeft},
	{"Passed", text.AlignRight},
	{"Failed", text.AlignRight},
	{"Rate", text.AlignRight},
}

// renderTable draws rows under columns. Missing cells render empty; a
// non-empty footer spans the last row.
func renderTable(columns []column, rows [][]string, footer string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.title
		configs[i] = table.ColumnConfig{Number: i + 1, Align: col.align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range r {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	if footer != "" {
		f := make(table.Row, len(columns))
		for i := range f {
			f[i] = footer
		}
		tw.AppendFooter(f, table.RowConfig{AutoMerge: true})
	}

	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
