package vectors

import (
	"context"

	"github.com/fpverif/go-fp-golden/golden"
	"github.com/fpverif/go-fp-golden/types"
	"github.com/fpverif/go-fp-golden/util"
	"golang.org/x/sync/errgroup"
)

// Record is an input record and its position in the input file
type Record struct {
	Line   int
	Vector types.Vector
}

// Outcome is the evaluation of one record. Err is set, and Result left
// empty, when the record could not be decoded.
type Outcome struct {
	Record
	Op     types.Operation
	Class  golden.Class
	Result golden.Result
	Err    error
}

// EvaluateBatch evaluates recs on at most workers goroutines. The outcomes
// are returned in input order. Malformed records do not stop the batch, they
// are reported in their Outcome.
func EvaluateBatch(ctx context.Context, ev golden.Evaluator, recs []Record, workers int) ([]Outcome, error) {
	out := make([]Outcome, len(recs))
	if len(recs) == 0 {
		return out, nil
	}
	workers = util.Max(1, util.Min(workers, len(recs)))
	perWorker := util.Ceil(len(recs), workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(recs); start += perWorker {
		start, end := start, util.Min(start+perWorker, len(recs))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[i] = evaluateRecord(ev, recs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func evaluateRecord(ev golden.Evaluator, rec Record) Outcome {
	o := Outcome{Record: rec}
	a, b, op, err := golden.DecodeVector(rec.Vector)
	if err != nil {
		o.Err = err
		return o
	}
	o.Op = op
	o.Class = golden.Classify(a, b, op)
	o.Result, o.Err = ev.Evaluate(a, b, op)
	return o
}
