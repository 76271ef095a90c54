package bowling

const maxFrames = 10

// Score folds per-throw pin counts into a total game score. Frames are
// consumed left to right: a strike takes one throw and adds the next
// two as bonus, a spare takes two throws and adds the next one, an open
// frame takes two throws at face value. Bonus throws are read ahead
// without being consumed, so they still start their own frame.
//
// Scoring stops after the tenth frame, which keeps tenth-frame bonus
// throws from opening an eleventh. Incomplete games score what is on
// the sheet: missing bonuses count as zero and a dangling last throw is
// added as-is. Score never fails.
func Score(throws []int) int {
	total := 0
	i := 0
	for frame := 0; frame < maxFrames && i < len(throws); frame++ {
		switch {
		case throws[i] == allPins:
			total += allPins + strikeBonus(throws, i)
			i++
		case i+1 < len(throws) && throws[i]+throws[i+1] == allPins:
			total += allPins + spareBonus(throws, i)
			i += 2
		case i+1 < len(throws):
			total += throws[i] + throws[i+1]
			i += 2
		default:
			total += throws[i]
			i++
		}
	}
	return total
}

// strikeBonus sums up to two throws following the strike at i.
func strikeBonus(throws []int, i int) int {
	switch {
	case i+2 < len(throws):
		return throws[i+1] + throws[i+2]
	case i+1 < len(throws):
		return throws[i+1]
	default:
		return 0
	}
}

// spareBonus is the single throw following the spare at i, if thrown.
func spareBonus(throws []int, i int) int {
	if i+2 < len(throws) {
		return throws[i+2]
	}
	return 0
}
