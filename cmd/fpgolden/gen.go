package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fpverif/go-fp-golden/config"
	"github.com/fpverif/go-fp-golden/parsing"
	"github.com/fpverif/go-fp-golden/types"
	"github.com/fpverif/go-fp-golden/vectors"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func NewGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random input vectors",
		Args:  cobra.NoArgs,
		RunE:  genHandler,
	}
	cmd.Flags().Int("width", 16, "Operand width, 16 or 32")
	cmd.Flags().Int("count", 1000, "Number of records")
	cmd.Flags().String("out", "", "Output file (.cbor for CBOR records, .zst or .lz4 to compress)")
	cmd.Flags().Int64("seed", config.Seed, "Generator seed, 0 seeds from the clock")
	cmd.Flags().String("mix", config.Mix, "Operand mix in percent, e.g. nan=1.25,zero=1.25,tiny=5,overflow=5")
	return cmd
}

func genHandler(cmd *cobra.Command, args []string) error {
	out, err := requiredString(cmd, "out")
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetInt("width")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")
	mixFlag, _ := cmd.Flags().GetString("mix")

	if count < 0 {
		return xerrors.Errorf("--count must not be negative, got %d", count)
	}
	f, err := types.FormatForWidth(width)
	if err != nil {
		return err
	}
	mix, err := vectors.ParseMix(mixFlag)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := vectors.NewGenerator(f, mix, seed)
	if err != nil {
		return err
	}

	w, enc, err := parsing.Create(out)
	if err != nil {
		return err
	}
	if err := g.Generate(count, parsing.NewVectorWriter(w, enc)); err != nil {
		w.Close()
		return xerrors.Errorf("generating %s: %w", out, err)
	}
	if err := w.Close(); err != nil {
		return xerrors.Errorf("closing %s: %w", out, err)
	}

	slog.Debug("generated vectors", "format", f, "mix", mix, "seed", seed)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d %s records to %s (seed %d)\n", count, f, out, seed)
	return nil
}
