package domain

import (
	"math"
	"strconv"
)

// Money is an amount in minor units: 1 unit = 0.0001 EUR.
// Keeping four decimal places as integers removes rounding drift from
// repeated balance mutations; floats appear only at DTO boundaries.
type Money int64

// MoneyScale is the number of minor units per EUR.
const MoneyScale = 10000

// MoneyFromEUR converts a decimal EUR amount, rounding half away from
// zero to the nearest minor unit.
func MoneyFromEUR(eur float64) Money {
	return Money(math.Round(eur * MoneyScale))
}

// EUR returns the amount as decimal EUR.
func (m Money) EUR() float64 {
	return float64(m) / MoneyScale
}

// String formats the amount as a plain decimal, e.g. "1.2500".
func (m Money) String() string {
	return strconv.FormatFloat(m.EUR(), 'f', 4, 64)
}

// Epsilon is the tolerance used for floating kWh comparisons.
const Epsilon = 1e-9

// RoundKWh rounds an energy quantity to 4 decimal places.
func RoundKWh(kwh float64) float64 {
	return math.Round(kwh*10000) / 10000
}

// MulKWh computes the cost of kwh energy at unitPrice per kWh, rounded
// to the nearest minor unit. Equivalent to round(kwh*price, 4) in EUR.
func MulKWh(kwh float64, unitPrice Money) Money {
	return Money(math.Round(kwh * float64(unitPrice)))
}

// ApplyRate multiplies an amount by a rate (e.g. a fee fraction),
// rounding to the nearest minor unit.
func (m Money) ApplyRate(rate float64) Money {
	return Money(math.Round(float64(m) * rate))
}
