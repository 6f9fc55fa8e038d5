// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package series

import (
	"math"
	"strconv"

	"github.com/ericlagergren/decimal"
)

const NearZero = 0.000001

// The builtin decimal.Big conversion from float64 is an "exact" conversion of the binary value.
// Convert using string conversion instead, so that 0.1 stays 0.1 when summing up.
func ConvertFloatToDecimal(v float64) *decimal.Big {
	d, _ := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	return d
}

// Sum adds up all values using decimal arithmetic.
func Sum(values []float64) float64 {
	sum := new(decimal.Big)
	for _, v := range values {
		sum.Add(sum, ConvertFloatToDecimal(v))
	}
	f, _ := sum.Float64()
	return f
}

func IsNearZero(v float64) bool {
	return math.Abs(v) < NearZero
}
