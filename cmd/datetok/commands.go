package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jamesainslie/go-datetok"
)

var errTokensInvalid = errors.New("tokens are not valid")

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var keepFormatting bool

	cmd := &cobra.Command{
		Use:   "split TEXT...",
		Short: "Split text into recognized tokens and literal runs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := ctx.ensureDictionary()
			if err != nil {
				return err
			}
			input := dict.Normalize(strings.Join(args, " "))
			printTokens(cmd.OutOrStdout(), dict, dict.Split(input, keepFormatting))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&keepFormatting, "keep-formatting", "k", false, "Keep whitespace and punctuation runs")
	return cmd
}

func newSplitRelativeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "split-relative TEXT...",
		Short: "Split text around relative expressions such as \"yesterday\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := ctx.ensureDictionary()
			if err != nil {
				return err
			}
			input := dict.Normalize(strings.Join(args, " "))
			printTokens(cmd.OutOrStdout(), dict, dict.SplitRelative(input, false))
			return nil
		},
	}
}

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate TOKEN...",
		Short: "Check that every token is a word, a relative expression or digits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := ctx.ensureDictionary()
			if err != nil {
				return err
			}
			if !dict.AreTokensValid(args) {
				return fmt.Errorf("%w: %s", errTokensInvalid, strings.Join(quoteAll(args), " "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func newWordsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "List recognized words in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := ctx.ensureDictionary()
			if err != nil {
				return err
			}
			printTokens(cmd.OutOrStdout(), dict, dict.Words())
			return nil
		},
	}
}

func newLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup KEY",
		Short: "Show the token value stored for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := ctx.ensureDictionary()
			if err != nil {
				return err
			}
			v, err := dict.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

// printTokens renders a table on a terminal and one quoted token per line
// otherwise.
func printTokens(w io.Writer, dict *datetok.Dictionary, tokens []string) {
	if !isTerminal(w) {
		for _, tok := range tokens {
			fmt.Fprintln(w, strconv.Quote(tok))
		}
		return
	}

	footer := fmt.Sprintf("%d tokens", len(tokens))
	fmt.Fprintln(w, renderTable(tokenColumns, tokenRows(dict, tokens), footer))
}

// tokenRows describes each token by its table value. Table keys are
// lowercase, so a token that misses as written is retried lowercased.
func tokenRows(dict *datetok.Dictionary, tokens []string) [][]string {
	lower := cases.Lower(language.Und)
	rows := make([][]string, 0, len(tokens))
	for i, tok := range tokens {
		value := "unknown"
		if v, ok := dict.Lookup(tok); ok {
			value = v.String()
		} else if v, ok := dict.Lookup(lower.String(tok)); ok {
			value = v.String()
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Quote(tok), value})
	}
	return rows
}

func quoteAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strconv.Quote(s)
	}
	return out
}
