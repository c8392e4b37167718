package core

// Integer formatting helpers used for the telemetry lines and the
// display readout. They avoid fmt so the same code runs lean under
// TinyGo.

// itoa converts a signed integer to its decimal string.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	v := int64(n)
	negative := v < 0
	if negative {
		v = -v
	}

	var buf [20]byte
	pos := len(buf)
	for v > 0 {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	if negative {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// utoa converts an unsigned integer to its decimal string.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// pad left-pads s with spaces to at least width characters, matching
// the fixed-width columns of the report line.
func pad(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}
