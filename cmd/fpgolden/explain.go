package main

import (
	"fmt"

	"github.com/fpverif/go-fp-golden/types"
	"github.com/spf13/cobra"
)

func NewExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain A B OPCODE",
		Short: "Show how the expected output of one record is derived",
		Args:  cobra.ExactArgs(3),
		RunE:  explainHandler,
	}
	addNaNSignFlag(cmd)
	return cmd
}

func explainHandler(cmd *cobra.Command, args []string) error {
	ev, err := evaluatorFromFlags(cmd)
	if err != nil {
		return err
	}
	tr, err := ev.Explain(types.Vector{A: args[0], B: args[1], Opcode: args[2]})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), tr)
	return nil
}
