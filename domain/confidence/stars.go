package confidence

import "strings"

const (
	starOn  = "★"
	starOff = "☆"
)

// Stars renders an n-of-5 star string, clamping n into [0,5].
func Stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat(starOn, n) + strings.Repeat(starOff, 5-n)
}
