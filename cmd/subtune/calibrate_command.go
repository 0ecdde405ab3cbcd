package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subtune/internal/pipeline"
	"subtune/internal/srt"
	"subtune/internal/whisper"
)

func newCalibrateCommand(ctx *commandContext) *cobra.Command {
	var subtitlePath string
	var transcriptPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Transfer machine word timing onto a reference subtitle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(subtitlePath)
			if err != nil {
				return fmt.Errorf("read subtitle: %w", err)
			}
			captions, err := srt.Parse(data)
			if err != nil {
				return fmt.Errorf("parse subtitle: %w", err)
			}

			payload, err := whisper.Load(transcriptPath)
			if err != nil {
				return fmt.Errorf("load transcript: %w", err)
			}

			opts := pipeline.DefaultOptions()
			opts.Linearize = cfg.LinearizeOptions()
			opts.Similarity = cfg.SimilarityOptions()

			result, err := pipeline.Run(captions, payload.Transcript(), opts, logger)
			if err != nil {
				return err
			}

			encoded, err := encodeResult(result)
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}

			if outputPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}
			if err := os.WriteFile(outputPath, append(encoded, '\n'), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderCalibrateSummary(result, outputPath))
			for _, warning := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&subtitlePath, "subtitle", "s", "", "Reference subtitle file (SRT)")
	cmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "Machine transcript file (WhisperX JSON)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON path (default stdout)")
	_ = cmd.MarkFlagRequired("subtitle")
	_ = cmd.MarkFlagRequired("transcript")

	return cmd
}

func renderCalibrateSummary(result *pipeline.Result, outputPath string) string {
	tokens := 0
	for _, seg := range result.Segments {
		tokens += len(seg.Tokens)
	}
	var summary summaryTable
	summary.add("Run", result.RunID)
	summary.add("Segments", fmt.Sprintf("%d", len(result.Segments)))
	summary.add("Tokens", fmt.Sprintf("%d", tokens))
	summary.add("Similarity", fmt.Sprintf("%.1f%%", result.Similarity*100))
	summary.add("Verdict", result.Verdict.String())
	summary.add("Output", outputPath)
	return summary.render()
}
