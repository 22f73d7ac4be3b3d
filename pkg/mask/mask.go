// Package mask formats user input against fixed digit patterns, the way a
// masked text input does while the user types.
package mask

import "strings"

// Slot is the placeholder for one digit in a pattern.
const Slot = '#'

const (
	Phone   = "(##) #####-####"
	CPF     = "###.###.###-##"
	Zipcode = "#####-###"
)

// Apply fills the slots of pattern with the digits found in input, in order.
// Literal separators are emitted only while more digits follow, so partial
// input never ends with a dangling separator. Extra digits are dropped.
func Apply(pattern string, input string) string {
	digits := Digits(input)
	if digits == "" {
		return ""
	}

	var (
		b       strings.Builder
		pending strings.Builder
		next    int
	)
	for _, r := range pattern {
		if next >= len(digits) {
			break
		}
		if r != Slot {
			pending.WriteRune(r)
			continue
		}
		b.WriteString(pending.String())
		pending.Reset()
		b.WriteByte(digits[next])
		next++
	}

	return b.String()
}

// Digits returns the ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
