package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags
	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "datetok",
		Short:         "Split and validate date expressions against a locale vocabulary",
		Version:       version + " (" + commit + ", " + date + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setupLogger(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.locale, "locale", "l", "", "Locale definition (YAML, or .pb snapshot)")
	pf.StringVarP(&flags.settings, "settings", "s", "", "Settings profile (TOML)")
	pf.StringVar(&flags.normalize, "normalize", "none", "Normalization form: none, nfkc or fold")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (overrides the settings profile)")

	rootCmd.AddCommand(newSplitCommand(ctx))
	rootCmd.AddCommand(newSplitRelativeCommand(ctx))
	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newWordsCommand(ctx))
	rootCmd.AddCommand(newLookupCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newSnapshotCommand(ctx))

	return rootCmd
}
