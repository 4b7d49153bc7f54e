package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-datetok/internal/corpus"
)

var errCorpusFailed = errors.New("corpus check failed")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check CORPUS...",
		Short: "Run golden corpus files and report mismatches",
		Long: "Each corpus file names its own locale and settings in its header, " +
			"so --locale and --settings are ignored.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var rows [][]string
			failed := 0

			for _, path := range args {
				c, err := corpus.Load(path)
				if err != nil {
					return err
				}
				dict, err := ctx.buildDictionary(c.Header.Locale, c.Header.Settings)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				m := corpus.Run(dict, c)
				printFailures(out, path, m.Failures)
				failed += m.Failed
				rows = append(rows, []string{
					path,
					string(c.Header.Mode),
					strconv.Itoa(m.Passed),
					strconv.Itoa(m.Failed),
					fmt.Sprintf("%.1f%%", 100*m.PassRate()),
				})
			}

			printSummary(out, rows)
			if failed > 0 {
				return fmt.Errorf("%w: %d case(s)", errCorpusFailed, failed)
			}
			return nil
		},
	}
}

func printFailures(w io.Writer, path string, failures []corpus.Failure) {
	for _, f := range failures {
		fmt.Fprintf(w, "%s:%d: %q\n  got:  %q\n  want: %q\n", path, f.Case.Line, f.Case.Input, f.Got, f.Case.Want)
	}
}

func printSummary(w io.Writer, rows [][]string) {
	if isTerminal(w) {
		fmt.Fprintln(w, renderTable(summaryColumns, rows, ""))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\tpassed=%s failed=%s rate=%s\n", row[0], row[1], row[2], row[3], row[4])
	}
}
