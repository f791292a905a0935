package vectors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fpverif/go-fp-golden/parsing"
	"github.com/fpverif/go-fp-golden/types"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// Mismatch is one record on which the hardware disagrees with the golden model
type Mismatch struct {
	// Record is the 1-based index of the record among the compared ones
	Record   int
	Expected types.Expected
	Actual   types.Expected
	// Result is set when the result patterns differ
	Result bool
	// Flags names the flags that differ, in wire order
	Flags []string
}

func (m Mismatch) String() string {
	var parts []string
	if m.Result {
		parts = append(parts, "result")
	}
	if len(m.Flags) > 0 {
		parts = append(parts, "flags "+strings.Join(m.Flags, ","))
	}
	return fmt.Sprintf("record %d: expected %s, got %s (%s)", m.Record, m.Expected, m.Actual, strings.Join(parts, "; "))
}

// Report is the outcome of comparing a hardware output file to a golden file
type Report struct {
	Compared         int
	ResultMismatches int
	FlagMismatches   int
	// Mismatches holds the first mismatches, up to the limit given to Compare
	Mismatches []Mismatch
	// Missing counts golden records the hardware output lacks, Extra the
	// hardware records past the end of the golden file
	Missing int
	Extra   int
	// Malformed aggregates unparseable records of either file
	Malformed *multierror.Error
}

// Passed reports whether both files agree on every record
func (r Report) Passed() bool {
	return r.ResultMismatches == 0 && r.FlagMismatches == 0 &&
		r.Missing == 0 && r.Extra == 0 && r.Malformed.ErrorOrNil() == nil
}

// Compare pairs the records of expected and actual in order and reports
// every difference. Result and flag mismatches are counted separately; a
// record may count as both. At most limit mismatches are kept, all when
// limit is negative.
func Compare(expected, actual *parsing.Reader[types.Expected], limit int) (Report, error) {
	var rep Report
	for {
		exp, expOK, err := nextValid(expected, "expected", &rep)
		if err != nil {
			return rep, err
		}
		act, actOK, err := nextValid(actual, "actual", &rep)
		if err != nil {
			return rep, err
		}
		switch {
		case !expOK && !actOK:
			return rep, nil
		case !actOK:
			rep.Missing++
			continue
		case !expOK:
			rep.Extra++
			continue
		}

		rep.Compared++
		m := diff(rep.Compared, exp, act)
		if m.Result {
			rep.ResultMismatches++
		}
		if len(m.Flags) > 0 {
			rep.FlagMismatches++
		}
		if (m.Result || len(m.Flags) > 0) && (limit < 0 || len(rep.Mismatches) < limit) {
			rep.Mismatches = append(rep.Mismatches, m)
		}
	}
}

// nextValid returns the next well-formed record, recording malformed ones
func nextValid(rd *parsing.Reader[types.Expected], name string, rep *Report) (types.Expected, bool, error) {
	for {
		_, rec, err := rd.Next()
		if err == io.EOF {
			return types.Expected{}, false, nil
		}
		var re *parsing.RecordError
		if xerrors.As(err, &re) {
			rep.Malformed = multierror.Append(rep.Malformed, xerrors.Errorf("%s file: %w", name, re))
			continue
		}
		if err != nil {
			return types.Expected{}, false, xerrors.Errorf("reading %s file: %w", name, err)
		}
		return rec, true, nil
	}
}

func diff(n int, exp, act types.Expected) Mismatch {
	m := Mismatch{Record: n, Expected: exp, Actual: act, Result: exp.Result != act.Result}
	ef, _ := types.ParseFlags(exp.Flags)
	af, _ := types.ParseFlags(act.Flags)
	as := af.Slice()
	for i, set := range ef.Slice() {
		if set != as[i] {
			m.Flags = append(m.Flags, types.FlagNames[i])
		}
	}
	return m
}
