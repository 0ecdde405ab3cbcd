package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subtune/internal/linearize"
	"subtune/internal/similarity"
	"subtune/internal/srt"
	"subtune/internal/transcript"
	"subtune/internal/whisper"
)

func newSimilarityCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similarity <subtitle.srt> <transcript.json>",
		Short: "Score how well a subtitle matches a machine transcript",
		Args:  cobra.ExactArgs(2),
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

			payload, err := whisper.Load(args[1])
			if err != nil {
				return fmt.Errorf("load transcript: %w", err)
			}
			machine := payload.Transcript()

			opts := cfg.SimilarityOptions()
			utterances := linearize.Linearize(captions, cfg.LinearizeOptions())
			genTexts := make([]string, len(machine))
			for i := range machine {
				genTexts[i] = transcript.JoinText(machine[i : i+1])
			}
			refTexts := make([]string, len(utterances))
			for i, utt := range utterances {
				refTexts[i] = utt.Text
			}
			ratio := similarity.Score(
				similarity.Sample(genTexts, opts),
				similarity.Sample(refTexts, opts),
			)
			verdict := similarity.Classify(ratio, opts)

			summary := summaryTable{rightValues: true}
			summary.add("Similarity", fmt.Sprintf("%.1f%%", ratio*100))
			summary.add("Verdict", verdict.String())
			summary.add("Reference cues", fmt.Sprintf("%d", len(captions)))
			summary.add("Machine segments", fmt.Sprintf("%d", len(machine)))
			fmt.Fprintln(cmd.OutOrStdout(), summary.render())
			return nil
		},
	}
	return cmd
}
