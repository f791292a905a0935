package golden

import (
	"fmt"
	"strings"

	"github.com/fpverif/go-fp-golden/bitcodec"
	"github.com/fpverif/go-fp-golden/types"
)

// Trace explains how a golden result was derived, for debugging mismatches
// reported against a hardware simulation
type Trace struct {
	A, B    bitcodec.Operand
	Op      types.Operation
	Class   Class
	Exact   string
	Rounded string
	Result  Result
}

// Explain decodes one input record and traces its evaluation
func (e Evaluator) Explain(v types.Vector) (Trace, error) {
	a, b, op, err := DecodeVector(v)
	if err != nil {
		return Trace{}, err
	}
	res, ar := e.evaluate(a, b, op)
	tr := Trace{A: a, B: b, Op: op, Class: Classify(a, b, op), Result: res}
	if ar != nil {
		switch {
		case ar.exact.inf && ar.exact.neg:
			tr.Exact = "-inf"
		case ar.exact.inf:
			tr.Exact = "+inf"
		case ar.exact.abs != nil:
			tr.Exact = decimal(ar.exact.abs, ar.exact.neg, a.Format)
		}
		if ar.rounded != nil {
			tr.Rounded = decimal(ar.rounded, ar.exact.neg && ar.rounded.Sign() != 0, a.Format)
		}
	}
	return tr, nil
}

func (tr Trace) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "format:   %s\n", tr.A.Format)
	fmt.Fprintf(&sb, "a:        %s\n", tr.A)
	fmt.Fprintf(&sb, "b:        %s\n", tr.B)
	fmt.Fprintf(&sb, "op:       %s (%s)\n", tr.Op, tr.Op.Code())
	fmt.Fprintf(&sb, "class:    %s\n", tr.Class)
	if tr.Exact != "" {
		fmt.Fprintf(&sb, "exact:    %s\n", tr.Exact)
	}
	if tr.Rounded != "" {
		fmt.Fprintf(&sb, "rounded:  %s\n", tr.Rounded)
	}
	fmt.Fprintf(&sb, "result:   %s\n", tr.Result.Pattern())
	fmt.Fprintf(&sb, "flags:    %s", tr.Result.Flags)
	for i, set := range tr.Result.Flags.Slice() {
		if set {
			fmt.Fprintf(&sb, " %s", types.FlagNames[i])
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
