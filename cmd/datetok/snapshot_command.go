package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-datetok/locale"
)

func newSnapshotCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot SRC DST",
		Short: "Convert a locale definition into a protobuf snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := locale.Load(args[0])
			if err != nil {
				return err
			}
			data, err := locale.MarshalProto(info)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			ctx.logger.Info("wrote locale snapshot", "locale", info.Name, "path", args[1], "bytes", len(data))
			return nil
		},
	}
}
