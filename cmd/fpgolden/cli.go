package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fpverif/go-fp-golden/config"
	"github.com/fpverif/go-fp-golden/golden"
	"github.com/fpverif/go-fp-golden/parsing"
	"github.com/fpverif/go-fp-golden/types"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"
)

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fpgolden",
		Short: "Golden reference model for a half/single precision arithmetic unit",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			setupLogging(cmd)
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug information")
	rootCmd.SetUsageTemplate(rootCmd.UsageTemplate() + envDocs())

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		NewGenCmd(),
		NewComputeCmd(),
		NewCheckCmd(),
		NewExplainCmd(),
		NewStatsCmd(),
	)
	return rootCmd
}

func setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose || config.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	slog.Debug("configuration", "env", config.Values())
}

func envDocs() string {
	env := config.AsMap()
	keys := maps.Keys(env)
	slices.Sort(keys)

	var sb strings.Builder
	sb.WriteString("\nEnvironment Variables:\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "    %-20s %s\n", k, env[k].Description)
	}
	return sb.String()
}

func addNaNSignFlag(cmd *cobra.Command) {
	cmd.Flags().String("nan-sign", config.NaNSign, "Sign of NaN results: positive or resolved")
}

func evaluatorFromFlags(cmd *cobra.Command) (golden.Evaluator, error) {
	s, _ := cmd.Flags().GetString("nan-sign")
	ns, err := golden.ParseNaNSign(s)
	if err != nil {
		return golden.Evaluator{}, err
	}
	return golden.Evaluator{NaNSign: ns}, nil
}

// openVectors opens an input vector file of any supported encoding
func openVectors(path string) (*parsing.Reader[types.Vector], func() error, error) {
	r, enc, err := parsing.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return parsing.NewVectorReader(r, enc), r.Close, nil
}

func openExpected(path string) (*parsing.Reader[types.Expected], func() error, error) {
	r, enc, err := parsing.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return parsing.NewExpectedReader(r, enc), r.Close, nil
}

func requiredString(cmd *cobra.Command, name string) (string, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return "", xerrors.Errorf("--%s is required", name)
	}
	return v, nil
}
