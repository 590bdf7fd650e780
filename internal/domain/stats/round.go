package stats

import (
	"math"
	"math/big"
)

// Round2 rounds x to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	return RoundTo(x, 2)
}

// RoundTo rounds x to the given number of decimal places, halves away from
// zero. Negative places round to tens, hundreds and so on.
func RoundTo(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// roundRatio returns num/den rounded to two decimals, halves away from zero.
// The quotient is rounded in integer arithmetic, so 23/40 yields 0.58 even
// though 0.575 has no exact float64 form. A zero denominator yields 0.
func roundRatio(num, den *big.Int) float64 {
	if den.Sign() == 0 {
		return 0
	}
	n := new(big.Int).Abs(num)
	d := new(big.Int).Abs(den)

	// round(100n/d) == (200n + d) / 2d for non-negative n.
	n.Mul(n, big.NewInt(200))
	n.Add(n, d)
	d.Lsh(d, 1)
	n.Quo(n, d)

	hundredths, _ := new(big.Float).SetInt(n).Float64()
	v := hundredths / 100
	if num.Sign()*den.Sign() < 0 {
		v = -v
	}
	return v
}

func bigInt(v int) *big.Int { return big.NewInt(int64(v)) }

// scaled multiplies x by k in place and returns it.
func scaled(x *big.Int, k int64) *big.Int { return x.Mul(x, big.NewInt(k)) }
