package suite

// Default returns the classic fixed check table: a perfect game, all
// open frames, all spares and a mixed game of closed frames and bonus
// throws.
//
// The mixed case expects 167, the total a score sheet reader would get
// when '-' counts as a missed throw. Separator-blind parsing scores
// the same sheet as 168, so a default run reports that row as FAIL.
func Default() *Suite {
	return &Suite{
		Name:        "classic",
		Description: "Classic scoring checks",
		Version:     "1",
		Cases: []Case{
			{ID: "perfect-game", Input: "X-X-X-X-X-X-X-X-X-X-XX", Expected: 300},
			{ID: "all-open-frames", Input: "9-9-9-9-9-9-9-9-9-9-", Expected: 90},
			{ID: "all-spares", Input: "5/5/5/5/5/5/5/5/5/5/5", Expected: 150},
			{ID: "mixed-marks", Input: "X7/9-X-88/-6XXX81", Expected: 167},
		},
	}
}
