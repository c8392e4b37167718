// Package fix implements Q16.15 fixed point arithmetic: signed 32-bit
// values with one sign bit, 16 integer bits and 15 fractional bits.
// It is the numeric kernel shared by the tone synthesizer and the FFT;
// everything on the sample path stays in integers.
package fix

// Q15 is a Q16.15 fixed point number. The distinct type keeps raw
// integers from leaking into fixed point expressions unnoticed.
type Q15 int32

// One is 1.0 in Q16.15.
const One Q15 = 1 << fracBits

const fracBits = 15

// Mul multiplies two fixed point values. The product is formed in 64
// bits before shifting back down, so the intermediate cannot overflow;
// results outside the Q16.15 range wrap silently and callers are
// expected to keep operands in range.
func Mul(a, b Q15) Q15 {
	return Q15((int64(a) * int64(b)) >> fracBits)
}

// Div divides a by b. Passing b == 0 panics like any integer division.
func Div(a, b Q15) Q15 {
	return Q15((int64(a) << fracBits) / int64(b))
}

// FromFloat converts a float64 to fixed point, truncating toward zero.
// Intended for table construction at startup, not for the sample path.
func FromFloat(f float64) Q15 {
	return Q15(f * 32768.0)
}

// ToFloat converts a fixed point value to float64.
func ToFloat(x Q15) float64 {
	return float64(x) / 32768.0
}

// FromInt converts an integer to fixed point. Values outside the
// 16-bit integer range of Q16.15 wrap.
func FromInt(i int32) Q15 {
	return Q15(i << fracBits)
}

// ToInt converts a fixed point value to an integer. The arithmetic
// shift rounds toward negative infinity.
func ToInt(x Q15) int32 {
	return int32(x >> fracBits)
}

// Abs returns the absolute value of x.
func Abs(x Q15) Q15 {
	if x < 0 {
		return -x
	}
	return x
}
