package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subtune/internal/linearize"
	"subtune/internal/srt"
)

func newLinearizeCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "linearize <subtitle.srt>",
		Short: "Collapse rolling captions into discrete utterances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read subtitle: %w", err)
			}
			captions, err := srt.Parse(data)
			if err != nil {
				return fmt.Errorf("parse subtitle: %w", err)
			}

			utterances := linearize.Linearize(captions, cfg.LinearizeOptions())
			rendered := srt.Format(utterances)

			if outputPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(rendered))
				return nil
			}
			if err := os.WriteFile(outputPath, rendered, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d captions -> %d utterances (%s)\n",
				len(captions), len(utterances), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output SRT path (default stdout)")
	return cmd
}
