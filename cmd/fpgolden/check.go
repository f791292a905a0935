package main

import (
	"fmt"

	"github.com/fpverif/go-fp-golden/vectors"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare a hardware simulation output file with the expected outputs",
		Args:  cobra.NoArgs,
		RunE:  checkHandler,
	}
	cmd.Flags().String("expected", "", "Expected-output file produced by compute")
	cmd.Flags().String("actual", "", "Output file of the hardware simulation")
	cmd.Flags().Int("limit", 20, "Maximum number of mismatches to print, -1 for all")
	cmd.Flags().String("manifest", "", "Verify the expected file against this run manifest first")
	return cmd
}

func checkHandler(cmd *cobra.Command, args []string) error {
	expPath, err := requiredString(cmd, "expected")
	if err != nil {
		return err
	}
	actPath, err := requiredString(cmd, "actual")
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	if manifestPath, _ := cmd.Flags().GetString("manifest"); manifestPath != "" {
		m, err := vectors.ReadManifest(manifestPath)
		if err != nil {
			return err
		}
		if err := m.Verify(); err != nil {
			return err
		}
	}

	exp, closeExp, err := openExpected(expPath)
	if err != nil {
		return err
	}
	defer closeExp()
	act, closeAct, err := openExpected(actPath)
	if err != nil {
		return err
	}
	defer closeAct()

	rep, err := vectors.Compare(exp, act, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range rep.Mismatches {
		fmt.Fprintln(out, m)
	}
	if rep.Malformed != nil {
		for _, e := range rep.Malformed.Errors {
			fmt.Fprintf(out, "malformed: %s\n", e)
		}
	}
	fmt.Fprintf(out, "compared %d records: %d result mismatches, %d flag mismatches, %d missing, %d extra\n",
		rep.Compared, rep.ResultMismatches, rep.FlagMismatches, rep.Missing, rep.Extra)

	if !rep.Passed() {
		return xerrors.Errorf("%s does not match %s", actPath, expPath)
	}
	return nil
}
