package main

import (
	"fmt"
	"log/slog"

	"github.com/fpverif/go-fp-golden/config"
	"github.com/fpverif/go-fp-golden/parsing"
	"github.com/fpverif/go-fp-golden/vectors"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func NewComputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the expected outputs of an input vector file",
		Args:  cobra.NoArgs,
		RunE:  computeHandler,
	}
	cmd.Flags().String("in", "", "Input vector file")
	cmd.Flags().String("out", "", "Expected-output file")
	cmd.Flags().Int("workers", config.Workers, "Number of evaluation workers")
	cmd.Flags().Int("chunk", config.Chunk, "Records evaluated per batch")
	cmd.Flags().String("manifest", "", "Write a JSON run manifest to this file")
	cmd.Flags().Bool("strict", false, "Fail when any record is malformed")
	addNaNSignFlag(cmd)
	return cmd
}

func computeHandler(cmd *cobra.Command, args []string) error {
	inPath, err := requiredString(cmd, "in")
	if err != nil {
		return err
	}
	outPath, err := requiredString(cmd, "out")
	if err != nil {
		return err
	}
	workers, _ := cmd.Flags().GetInt("workers")
	chunk, _ := cmd.Flags().GetInt("chunk")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	strict, _ := cmd.Flags().GetBool("strict")
	ev, err := evaluatorFromFlags(cmd)
	if err != nil {
		return err
	}

	in, closeIn, err := openVectors(inPath)
	if err != nil {
		return err
	}
	defer closeIn()

	w, enc, err := parsing.Create(outPath)
	if err != nil {
		return err
	}
	sum, err := vectors.Process(cmd.Context(), in, parsing.NewExpectedWriter(w, enc), vectors.Options{
		Evaluator: ev,
		Workers:   workers,
		Chunk:     chunk,
		Logger:    slog.Default(),
	})
	if err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return xerrors.Errorf("closing %s: %w", outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s, skipped %d\n", sum.Stats.Records, outPath, sum.Stats.Skipped)

	if manifestPath != "" {
		m, err := vectors.NewManifest(inPath, outPath, ev, sum)
		if err != nil {
			return err
		}
		if err := m.WriteFile(manifestPath); err != nil {
			return err
		}
		slog.Debug("wrote manifest", "path", manifestPath, "run", m.RunID)
	}

	if strict {
		return sum.Skipped.ErrorOrNil()
	}
	return nil
}
