package main

import (
	"io"
	"log/slog"

	"github.com/fpverif/go-fp-golden/config"
	"github.com/fpverif/go-fp-golden/parsing"
	"github.com/fpverif/go-fp-golden/vectors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count flags and special cases over one or more input vector files",
		Args:  cobra.NoArgs,
		RunE:  statsHandler,
	}
	cmd.Flags().StringSlice("in", nil, "Input vector file, repeat or comma separate for several")
	cmd.Flags().Int("workers", config.Workers, "Number of evaluation workers")
	addNaNSignFlag(cmd)
	return cmd
}

func statsHandler(cmd *cobra.Command, args []string) error {
	inPaths, _ := cmd.Flags().GetStringSlice("in")
	if len(inPaths) == 0 {
		return xerrors.Errorf("--in is required")
	}
	workers, _ := cmd.Flags().GetInt("workers")
	ev, err := evaluatorFromFlags(cmd)
	if err != nil {
		return err
	}

	total := vectors.NewStats()
	for _, inPath := range inPaths {
		stats, err := fileStats(cmd, inPath, vectors.Options{
			Evaluator: ev,
			Workers:   workers,
			Chunk:     config.Chunk,
			Logger:    slog.Default(),
		})
		if err != nil {
			return xerrors.Errorf("%s: %w", inPath, err)
		}
		slog.Debug("file stats", "file", inPath, "records", stats.Records, "skipped", stats.Skipped)
		total.Merge(stats)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"SECTION", "NAME", "COUNT"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(total.Rows())
	table.Render()
	return nil
}

func fileStats(cmd *cobra.Command, inPath string, opts vectors.Options) (*vectors.Stats, error) {
	in, closeIn, err := openVectors(inPath)
	if err != nil {
		return nil, err
	}
	defer closeIn()

	sum, err := vectors.Process(cmd.Context(), in, parsing.NewExpectedWriter(io.Discard, parsing.Text), opts)
	if err != nil {
		return nil, err
	}
	return sum.Stats, nil
}
