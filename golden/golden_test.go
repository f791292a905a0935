package golden

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/fpverif/go-fp-golden/bitcodec"
	"github.com/fpverif/go-fp-golden/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	halfZero    = "0000000000000000"
	halfNegZero = "1000000000000000"
	halfOne     = "0011110000000000"
	halfNegOne  = "1011110000000000"
	halfTwo     = "0100000000000000"
	halfThree   = "0100001000000000"
	halfHalf    = "0011100000000000"
	halfMax     = "0111101111111111"
	halfMinNorm = "0000010000000000"
	halfMinSub  = "0000000000000001"
	halfInf     = "0111110000000000"
	halfNegInf  = "1111110000000000"
	halfNaN     = "0111111000000000"
	halfNegNaN  = "1111111000000000"

	singleOne   = "00111111100000000000000000000000"
	singleThree = "01000000010000000000000000000000"
	singleMax   = "01111111011111111111111111111111"
	singleInf   = "01111111100000000000000000000000"
	singleNaN   = "01111111110000000000000000000000"
	singleZero  = "00000000000000000000000000000000"
)

func mustEvaluate(t *testing.T, a, b, opcode string) string {
	t.Helper()
	res, err := Evaluate(a, b, opcode)
	require.NoError(t, err)
	return res.String()
}

func mustDecode(t *testing.T, p string) bitcodec.Operand {
	t.Helper()
	o, err := bitcodec.DecodeAny(p)
	require.NoError(t, err)
	return o
}

// PUBLIC METHODS TESTS

func TestEvaluateSunshine(t *testing.T) {
	assert.Equal(t, "0100010000000000 00000", mustEvaluate(t, halfThree, halfOne, "00"))
	assert.Equal(t, "0100000000000000 00000", mustEvaluate(t, halfThree, halfOne, "01"))
	assert.Equal(t, "0100011000000000 00000", mustEvaluate(t, halfThree, halfTwo, "10"))
	assert.Equal(t, "0011100000000000 00000", mustEvaluate(t, halfOne, halfTwo, "11"))
	assert.Equal(t, "01000000100000000000000000000000 00000", mustEvaluate(t, singleThree, singleOne, "00"))
}

func TestEvaluateInexact(t *testing.T) {
	// 1/3 rounds down to 0x3555
	assert.Equal(t, "0011010101010101 00001", mustEvaluate(t, halfOne, halfThree, "11"))
	assert.Equal(t, "00111110101010101010101010101011 00001", mustEvaluate(t, singleOne, singleThree, "11"))
	// 2049 is not representable and ties to 2048
	assert.Equal(t, "0110100000000000 00001", mustEvaluate(t, "0110100000000000", halfOne, "00"))
}

func TestNaNPropagation(t *testing.T) {
	others := []string{halfZero, halfNegOne, halfMax, halfInf, halfNegInf, halfMinSub, halfNegNaN}
	for _, op := range types.Operations {
		for _, other := range others {
			for _, pair := range [][2]string{{halfNaN, other}, {other, halfNaN}, {halfNegNaN, other}} {
				res, err := Evaluate(pair[0], pair[1], op.Code())
				require.NoError(t, err)
				assert.Equal(t, halfNaN, res.Pattern())
				assert.Equal(t, types.Flags{Invalid: true}, res.Flags)
			}
		}
	}
	assert.Equal(t, singleNaN+" 10000", mustEvaluate(t, singleOne, "01111111100000000000000000000001", "10"))
}

func TestDivideByZero(t *testing.T) {
	assert.Equal(t, halfInf+" 01001", mustEvaluate(t, halfThree, halfZero, "11"))
	assert.Equal(t, halfNegInf+" 01001", mustEvaluate(t, halfNegOne, halfZero, "11"))
	assert.Equal(t, halfNegInf+" 01001", mustEvaluate(t, halfThree, halfNegZero, "11"))
	assert.Equal(t, halfInf+" 01001", mustEvaluate(t, halfNegOne, halfNegZero, "11"))
	assert.Equal(t, halfInf+" 01001", mustEvaluate(t, halfMinSub, halfZero, "11"))
	assert.Equal(t, halfInf+" 01001", mustEvaluate(t, halfInf, halfZero, "11"))
	assert.Equal(t, singleInf+" 01001", mustEvaluate(t, singleThree, singleZero, "11"))
}

func TestInvalidCombinations(t *testing.T) {
	invalid := halfNaN + " 10000"
	assert.Equal(t, invalid, mustEvaluate(t, halfZero, halfZero, "11"))
	assert.Equal(t, invalid, mustEvaluate(t, halfNegZero, halfZero, "11"))
	assert.Equal(t, invalid, mustEvaluate(t, halfInf, halfNegInf, "11"))
	assert.Equal(t, invalid, mustEvaluate(t, halfInf, halfNegInf, "00"))
	assert.Equal(t, invalid, mustEvaluate(t, halfNegInf, halfInf, "00"))
	assert.Equal(t, invalid, mustEvaluate(t, halfInf, halfInf, "01"))
	assert.Equal(t, invalid, mustEvaluate(t, halfNegInf, halfNegInf, "01"))
	assert.Equal(t, invalid, mustEvaluate(t, halfZero, halfNegInf, "10"))
	assert.Equal(t, invalid, mustEvaluate(t, halfInf, halfNegZero, "10"))
	assert.Equal(t, singleNaN+" 10000", mustEvaluate(t, singleInf, singleInf, "11"))
}

func TestOverflow(t *testing.T) {
	assert.Equal(t, halfInf+" 00101", mustEvaluate(t, halfMax, halfMax, "10"))
	assert.Equal(t, halfInf+" 00101", mustEvaluate(t, halfMax, halfMax, "00"))
	assert.Equal(t, halfNegInf+" 00101", mustEvaluate(t, "1111101111111111", halfMax, "01"))
	assert.Equal(t, halfNegInf+" 00101", mustEvaluate(t, halfMax, "1111101111111111", "10"))
	assert.Equal(t, singleInf+" 00101", mustEvaluate(t, singleMax, singleMax, "10"))
	// max / 0.5 overflows
	assert.Equal(t, halfInf+" 00101", mustEvaluate(t, halfMax, halfHalf, "11"))
}

func TestInfiniteOperands(t *testing.T) {
	assert.Equal(t, halfInf+" 00101", mustEvaluate(t, halfInf, halfOne, "00"))
	assert.Equal(t, halfNegInf+" 00101", mustEvaluate(t, halfOne, halfInf, "01"))
	assert.Equal(t, halfInf+" 00101", mustEvaluate(t, halfOne, halfNegInf, "01"))
	assert.Equal(t, halfInf+" 00101", mustEvaluate(t, halfInf, halfInf, "00"))
	assert.Equal(t, halfNegInf+" 00101", mustEvaluate(t, halfInf, halfNegOne, "10"))
	assert.Equal(t, halfNegInf+" 00101", mustEvaluate(t, halfNegInf, halfTwo, "11"))
	assert.Equal(t, halfZero+" 00000", mustEvaluate(t, halfOne, halfInf, "11"))
	assert.Equal(t, halfNegZero+" 00000", mustEvaluate(t, halfNegOne, halfInf, "11"))
}

func TestUnderflow(t *testing.T) {
	// 2^-24 * 2^-24 rounds to zero
	assert.Equal(t, halfZero+" 00011", mustEvaluate(t, halfMinSub, halfMinSub, "10"))
	assert.Equal(t, halfNegZero+" 00011", mustEvaluate(t, "1000000000000001", halfMinSub, "10"))
	assert.Equal(t, halfNegZero+" 00011", mustEvaluate(t, halfMinSub, "1100000000000000", "11"))
	// 2^-25 ties to the even zero
	assert.Equal(t, halfZero+" 00011", mustEvaluate(t, halfMinSub, halfHalf, "10"))
	// 2^-15 is an exact subnormal
	assert.Equal(t, "0000001000000000 00010", mustEvaluate(t, halfMinNorm, halfHalf, "10"))
	// 0.75 * 2^-24 rounds up to the smallest subnormal
	assert.Equal(t, halfMinSub+" 00011", mustEvaluate(t, halfMinSub, "0011101000000000", "10"))
	// subnormal sums are exact
	assert.Equal(t, "0000000000000010 00010", mustEvaluate(t, halfMinSub, halfMinSub, "00"))
	assert.Equal(t, "00000000000000000000000000000000 00011",
		mustEvaluate(t, "00000000000000000000000000000001", "00111111000000000000000000000000", "10"))
}

func TestSignedZeroResults(t *testing.T) {
	assert.Equal(t, halfZero+" 00000", mustEvaluate(t, halfOne, halfNegOne, "00"))
	assert.Equal(t, halfZero+" 00000", mustEvaluate(t, halfNegOne, halfOne, "00"))
	assert.Equal(t, halfZero+" 00000", mustEvaluate(t, halfNegOne, halfNegOne, "01"))
	assert.Equal(t, halfNegZero+" 00000", mustEvaluate(t, halfNegZero, halfNegZero, "00"))
	assert.Equal(t, halfNegZero+" 00000", mustEvaluate(t, halfNegOne, halfZero, "10"))
	assert.Equal(t, halfNegZero+" 00000", mustEvaluate(t, halfNegZero, halfThree, "11"))
}

func TestNaNSignResolved(t *testing.T) {
	e := Evaluator{NaNSign: NaNSignResolved}
	res, err := e.EvaluateVector(types.Vector{A: halfNegNaN, B: halfOne, Opcode: "00"})
	require.NoError(t, err)
	assert.Equal(t, halfNegNaN+" 10000", res.String())

	res, err = e.EvaluateVector(types.Vector{A: halfNegZero, B: halfZero, Opcode: "11"})
	require.NoError(t, err)
	assert.Equal(t, halfNegNaN+" 10000", res.String())

	res, err = e.EvaluateVector(types.Vector{A: halfInf, B: halfInf, Opcode: "01"})
	require.NoError(t, err)
	assert.Equal(t, halfNaN+" 10000", res.String())

	p, err := ParseNaNSign("resolved")
	assert.NoError(t, err)
	assert.Equal(t, NaNSignResolved, p)
	p, err = ParseNaNSign("")
	assert.NoError(t, err)
	assert.Equal(t, NaNSignPositive, p)
	_, err = ParseNaNSign("negative")
	assert.Error(t, err)
}

func TestNegativeEvaluate(t *testing.T) {
	_, err := Evaluate("010000100000000", halfOne, "00")
	assert.True(t, errors.Is(err, types.ErrFormat))
	_, err = Evaluate(halfThree, singleOne, "00")
	assert.True(t, errors.Is(err, types.ErrFormat))
	_, err = Evaluate(halfThree, halfOne, "100")
	assert.True(t, errors.Is(err, types.ErrFormat))
	_, err = Evaluate(halfThree, "00111100000000z0", "00")
	assert.True(t, errors.Is(err, types.ErrFormat))

	_, err = Evaluator{}.Evaluate(mustDecode(t, halfOne), mustDecode(t, singleOne), types.Add)
	assert.True(t, errors.Is(err, types.ErrFormat))
}

func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		a := bitcodec.FromBits(rng.Uint32(), types.Single)
		b := bitcodec.FromBits(rng.Uint32(), types.Single)
		op := types.Operations[rng.Intn(4)]
		first, err := Evaluator{}.Evaluate(a, b, op)
		require.NoError(t, err)
		second, err := Evaluator{}.Evaluate(a, b, op)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestMulDivSignLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, f := range []types.Format{types.Half, types.Single} {
		for i := 0; i < 5000; i++ {
			a := bitcodec.FromBits(rng.Uint32(), f)
			b := bitcodec.FromBits(rng.Uint32(), f)
			op := types.Mul
			if i%2 == 1 {
				op = types.Div
			}
			res, err := Evaluator{}.Evaluate(a, b, op)
			require.NoError(t, err)
			r := bitcodec.FromBits(res.Bits, f)
			if r.IsFinite() && !r.IsZero() {
				assert.Equal(t, a.Negative() != b.Negative(), r.Negative(), "%s %s %s", a.Pattern, op, b.Pattern)
			}
		}
	}
}

// PRIVATE METHOD TESTS

func TestClassifyPrecedence(t *testing.T) {
	nan, zero, inf := mustDecode(t, halfNaN), mustDecode(t, halfZero), mustDecode(t, halfInf)
	one := mustDecode(t, halfOne)
	assert.Equal(t, ClassNaNPropagate, Classify(nan, zero, types.Div))
	assert.Equal(t, ClassZeroOverZero, Classify(zero, zero, types.Div))
	assert.Equal(t, ClassDivByZero, Classify(inf, zero, types.Div))
	assert.Equal(t, ClassInvalidInfCombo, Classify(inf, inf, types.Div))
	assert.Equal(t, ClassNormal, Classify(inf, inf, types.Add))
	assert.Equal(t, ClassNormal, Classify(inf, inf, types.Mul))
	assert.Equal(t, ClassNormal, Classify(one, inf, types.Div))
	assert.Equal(t, ClassNormal, Classify(zero, one, types.Mul))
	assert.Equal(t, ClassInvalidInfCombo, Classify(zero, inf, types.Mul))

	for _, c := range Classes {
		assert.Equal(t, c != ClassNormal, c.Terminal())
	}
	assert.Equal(t, types.Flags{DivByZero: true, Inexact: true}, ClassDivByZero.Flags())
	assert.Equal(t, types.Flags{}, ClassNormal.Flags())
}

func TestResolveSign(t *testing.T) {
	one, negOne := mustDecode(t, halfOne), mustDecode(t, halfNegOne)
	two, negTwo := mustDecode(t, halfTwo), mustDecode(t, "1100000000000000")

	assert.False(t, ResolveSign(one, two, types.Add))
	assert.True(t, ResolveSign(negOne, negTwo, types.Add))
	assert.True(t, ResolveSign(one, negTwo, types.Add))
	assert.False(t, ResolveSign(negOne, two, types.Add))
	// ties go to a
	assert.False(t, ResolveSign(one, negOne, types.Add))
	assert.True(t, ResolveSign(negOne, one, types.Add))

	assert.False(t, ResolveSign(two, one, types.Sub))
	assert.True(t, ResolveSign(one, two, types.Sub))
	assert.False(t, ResolveSign(negOne, negTwo, types.Sub))
	assert.True(t, ResolveSign(negTwo, negOne, types.Sub))
	assert.False(t, ResolveSign(one, negTwo, types.Sub))
	assert.True(t, ResolveSign(negOne, two, types.Sub))

	assert.True(t, ResolveSign(one, negTwo, types.Mul))
	assert.False(t, ResolveSign(negOne, negTwo, types.Div))
}

func TestGuardBits(t *testing.T) {
	third := mustDecode(t, halfOne).Abs()
	third.Quo(third, mustDecode(t, halfThree).Abs())
	assert.True(t, guardBitsSet(third, types.Half))
	assert.False(t, guardBitsSet(mustDecode(t, halfThree).Abs(), types.Half))
	assert.False(t, guardBitsSet(mustDecode(t, halfMinSub).Abs(), types.Half))

	// 1 + 2^-11 sets the first bit beyond the half mantissa
	assert.True(t, guardBitsSet(big.NewRat(2049, 2048), types.Half))
	// 1 + 2^-20 only sets a bit past the guard window
	assert.False(t, guardBitsSet(big.NewRat(1<<20+1, 1<<20), types.Half))
}

func TestComputeFaultIsInvalid(t *testing.T) {
	// the classifier never lets a zero divisor through; force one
	ar := compute(mustDecode(t, halfOne), mustDecode(t, halfZero), types.Div)
	assert.Equal(t, outcomeFault, ar.outcome)
	assert.Equal(t, types.Flags{Invalid: true}, ar.flags)
	bits := selectBits(types.Half, ar.flags, false, false, false, ar.bits)
	assert.Equal(t, bitcodec.NaNBits(false, types.Half), bits)
}

func TestSelectBitsOrder(t *testing.T) {
	f := types.Half
	all := types.Flags{Invalid: true, DivByZero: true, Overflow: true, Underflow: true, Inexact: true}
	assert.Equal(t, bitcodec.NaNBits(false, f), selectBits(f, all, true, true, false, 0x1234))
	assert.Equal(t, bitcodec.InfBits(true, f), selectBits(f, types.Flags{Overflow: true, Underflow: true}, true, true, false, 0x1234))
	assert.Equal(t, bitcodec.ZeroBits(true, f), selectBits(f, types.Flags{Underflow: true}, true, true, false, 0x1234))
	assert.Equal(t, uint32(0x1234), selectBits(f, types.Flags{Underflow: true}, false, true, false, 0x1234))
}

// Native rounding must agree with the exact value rounded to nearest even.
func TestNativeMatchesExactRounding(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, f := range []types.Format{types.Half, types.Single} {
		for i := 0; i < 20000; i++ {
			a := bitcodec.FromBits(rng.Uint32(), f)
			b := bitcodec.FromBits(rng.Uint32(), f)
			op := types.Operations[rng.Intn(4)]
			if Classify(a, b, op) != ClassNormal {
				continue
			}
			ar := compute(a, b, op)
			if ar.outcome != outcomeValue || ar.exact.abs.Sign() == 0 {
				continue
			}
			want := bitcodec.EncodeBits(ar.exact.neg, ar.exact.abs, f)
			if want != ar.bits {
				t.Fatalf("%s %s %s: native %x, exact rounding %x", a.Pattern, op, b.Pattern, ar.bits, want)
			}
			assert.Equal(t, ar.exact.abs.Cmp(ar.rounded) != 0, ar.flags.Inexact)
		}
	}
}

func TestExplain(t *testing.T) {
	tr, err := Evaluator{}.Explain(types.Vector{A: halfOne, B: halfThree, Opcode: "11"})
	require.NoError(t, err)
	assert.Equal(t, ClassNormal, tr.Class)
	assert.Contains(t, tr.Exact, "0.3333333333")
	assert.Contains(t, tr.Rounded, "0.333251953125")
	assert.Contains(t, tr.String(), "inexact")

	tr, err = Evaluator{}.Explain(types.Vector{A: halfInf, B: halfOne, Opcode: "00"})
	require.NoError(t, err)
	assert.Equal(t, "+inf", tr.Exact)
	assert.Empty(t, tr.Rounded)

	tr, err = Evaluator{}.Explain(types.Vector{A: halfNaN, B: halfOne, Opcode: "00"})
	require.NoError(t, err)
	assert.Equal(t, ClassNaNPropagate, tr.Class)
	assert.Empty(t, tr.Exact)
	assert.Contains(t, tr.String(), "invalid")
}
