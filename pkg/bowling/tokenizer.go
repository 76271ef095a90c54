package bowling

const allPins = 10

// Tokenize converts notation into per-throw pin counts, in throw order.
// A digit contributes its value, 'X' contributes all ten pins and '/'
// contributes whatever the previous throw left standing. Every other
// character separates frames and contributes nothing.
//
// Spare resolution uses the previous resolved value rather than the
// previous character, so "X/" tokenizes to [10 0] and a game that opens
// with '/' tokenizes the spare as a full rack. Tokenize never rejects
// input.
func Tokenize(data string) []int {
	var throws []int
	prev := 0
	for _, r := range data {
		var pins int
		switch {
		case r >= '0' && r <= '9':
			pins = int(r - '0')
		case r == 'X':
			pins = allPins
		case r == '/':
			pins = allPins - prev
		default:
			continue
		}
		throws = append(throws, pins)
		prev = pins
	}
	return throws
}
