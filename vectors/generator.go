package vectors

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"

	"github.com/fpverif/go-fp-golden/bitcodec"
	"github.com/fpverif/go-fp-golden/parsing"
	"github.com/fpverif/go-fp-golden/types"
	"golang.org/x/xerrors"
)

// Mix is the share of each operand category drawn by a Generator, as
// fractions of one. Whatever the four categories leave over is drawn
// uniformly from [-10, 10].
type Mix struct {
	NaN          float64
	Zero         float64
	Tiny         float64
	NearOverflow float64
}

// DefaultMix reproduces the distribution of the hardware test bench
var DefaultMix = Mix{NaN: 0.0125, Zero: 0.0125, Tiny: 0.05, NearOverflow: 0.05}

func (m Mix) Validate() error {
	sum := 0.0
	for _, v := range []float64{m.NaN, m.Zero, m.Tiny, m.NearOverflow} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return xerrors.Errorf("mix share %v outside [0, 1]", v)
		}
		sum += v
	}
	if sum > 1 {
		return xerrors.Errorf("mix shares add up to %v, more than 1", sum)
	}
	return nil
}

func (m Mix) String() string {
	return fmt.Sprintf("nan=%g,zero=%g,tiny=%g,overflow=%g", m.NaN*100, m.Zero*100, m.Tiny*100, m.NearOverflow*100)
}

// ParseMix parses a comma separated list of category=percent pairs, for
// example "nan=1.25,zero=1.25,tiny=5,overflow=5". Missing categories keep
// their DefaultMix share.
func ParseMix(s string) (Mix, error) {
	m := DefaultMix
	if strings.TrimSpace(s) == "" {
		return m, nil
	}
	for _, kv := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(kv), "=")
		if !ok {
			return Mix{}, xerrors.Errorf("mix entry %q is not category=percent", kv)
		}
		pct, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Mix{}, xerrors.Errorf("mix entry %q: %w", kv, err)
		}
		switch k {
		case "nan":
			m.NaN = pct / 100
		case "zero":
			m.Zero = pct / 100
		case "tiny":
			m.Tiny = pct / 100
		case "overflow":
			m.NearOverflow = pct / 100
		default:
			return Mix{}, xerrors.Errorf("unknown mix category %q", k)
		}
	}
	return m, m.Validate()
}

// Generator draws random input records for one format. It is not safe for
// concurrent use.
type Generator struct {
	format types.Format
	mix    Mix
	rng    *rand.Rand
}

// NewGenerator returns a generator whose output is fully determined by seed
func NewGenerator(f types.Format, mix Mix, seed int64) (*Generator, error) {
	if _, err := types.FormatForWidth(f.Width); err != nil {
		return nil, err
	}
	if err := mix.Validate(); err != nil {
		return nil, err
	}
	return &Generator{format: f, mix: mix, rng: rand.New(rand.NewSource(seed))}, nil
}

// Vector draws two operands and an opcode
func (g *Generator) Vector() types.Vector {
	op := types.Operations[g.rng.Intn(len(types.Operations))]
	return types.Vector{A: g.Operand(), B: g.Operand(), Opcode: op.Code()}
}

// Operand draws one operand pattern according to the mix
func (g *Generator) Operand() string {
	f := g.format
	p := g.rng.Float64()
	m := g.mix
	switch {
	case p < m.NaN:
		mant := 1 + uint32(g.rng.Int63n(int64(f.MantissaMask())))
		bits := f.ExponentMask()<<f.MantissaBits | mant
		if g.rng.Intn(2) == 1 {
			bits |= f.SignBit()
		}
		return bitcodec.Pattern(bits, f)
	case p < m.NaN+m.Zero:
		return bitcodec.ZeroPattern(false, f)
	case p < m.NaN+m.Zero+m.Tiny:
		return g.round(g.uniform(-1e-6, 1e-6))
	case p < m.NaN+m.Zero+m.Tiny+m.NearOverflow:
		val := math.Inf(1)
		if g.rng.Intn(2) == 1 {
			lo, hi := nearOverflow(f)
			val = g.uniform(lo, hi)
		}
		if g.rng.Intn(2) == 1 {
			val = -val
		}
		return g.round(val)
	}
	return g.round(g.uniform(-10, 10))
}

// Generate writes n records to w
func (g *Generator) Generate(n int, w *parsing.Writer[types.Vector]) error {
	for i := 0; i < n; i++ {
		if err := w.Write(g.Vector()); err != nil {
			return xerrors.Errorf("writing record %d: %w", i+1, err)
		}
	}
	return w.Flush()
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rng.Float64()
}

// round converts x to the generator's format, ties to even
func (g *Generator) round(x float64) string {
	if math.IsInf(x, 0) {
		return bitcodec.InfPattern(x < 0, g.format)
	}
	return bitcodec.Encode(math.Signbit(x), new(big.Rat).SetFloat64(math.Abs(x)), g.format)
}

func nearOverflow(f types.Format) (float64, float64) {
	if f.Width == types.Half.Width {
		return 6e4, 6.55e4
	}
	return 3e38, 3.4e38
}
