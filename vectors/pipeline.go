package vectors

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/fpverif/go-fp-golden/golden"
	"github.com/fpverif/go-fp-golden/parsing"
	"github.com/fpverif/go-fp-golden/types"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// DefaultChunk is the number of records evaluated per batch
const DefaultChunk = 4096

// Options tune Process
type Options struct {
	Evaluator golden.Evaluator
	// Workers bounds the evaluation goroutines, GOMAXPROCS when zero
	Workers int
	// Chunk is the number of records read before a batch is evaluated
	Chunk  int
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Chunk <= 0 {
		o.Chunk = DefaultChunk
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Summary describes a completed run
type Summary struct {
	// Format is the format of the first valid record, empty if there was none
	Format string
	Stats  *Stats
	// Skipped aggregates the errors of every malformed record
	Skipped *multierror.Error
}

// Process reads input records from in, evaluates them and writes one
// expected-output record per valid input record to out, in input order.
// Malformed records are logged, skipped and collected in the summary.
// Only I/O failures and cancellation abort the run.
func Process(ctx context.Context, in *parsing.Reader[types.Vector], out *parsing.Writer[types.Expected], opts Options) (Summary, error) {
	opts = opts.withDefaults()
	sum := Summary{Stats: NewStats()}

	chunk := make([]Record, 0, opts.Chunk)
	flush := func() error {
		outcomes, err := EvaluateBatch(ctx, opts.Evaluator, chunk, opts.Workers)
		if err != nil {
			return err
		}
		for _, o := range outcomes {
			sum.Stats.Add(o)
			if o.Err != nil {
				sum.skip(opts.Logger, o.Line, o.Err)
				continue
			}
			if sum.Format == "" {
				sum.Format = o.Result.Format.String()
			}
			if err := out.Write(o.Result.Expected()); err != nil {
				return xerrors.Errorf("writing result of record %d: %w", o.Line, err)
			}
		}
		chunk = chunk[:0]
		return nil
	}

	for {
		line, v, err := in.Next()
		if err == io.EOF {
			break
		}
		var re *parsing.RecordError
		if xerrors.As(err, &re) {
			sum.Stats.Skipped++
			sum.skip(opts.Logger, re.Line, re.Err)
			continue
		}
		if err != nil {
			return sum, xerrors.Errorf("reading input: %w", err)
		}
		chunk = append(chunk, Record{Line: line, Vector: v})
		if len(chunk) == opts.Chunk {
			if err := flush(); err != nil {
				return sum, err
			}
			opts.Logger.Debug("evaluated chunk", "records", sum.Stats.Records, "skipped", sum.Stats.Skipped)
		}
	}
	if err := flush(); err != nil {
		return sum, err
	}
	if err := out.Flush(); err != nil {
		return sum, xerrors.Errorf("flushing output: %w", err)
	}
	return sum, nil
}

func (s *Summary) skip(logger *slog.Logger, line int, err error) {
	logger.Warn("skipping malformed record", "line", line, "error", err)
	s.Skipped = multierror.Append(s.Skipped, &parsing.RecordError{Line: line, Err: err})
}
