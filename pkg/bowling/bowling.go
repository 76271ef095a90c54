// Package bowling scores ten-pin bowling games written in compact throw
// notation: digits for pin counts, 'X' for a strike, '/' for a spare and
// any other character as a frame separator.
package bowling

// TotalScore parses game notation and returns its total score.
// It accepts any string and never fails; unknown characters are
// treated as separators and an empty game scores zero.
func TotalScore(data string) int {
	return Score(Tokenize(data))
}
