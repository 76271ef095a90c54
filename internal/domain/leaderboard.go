package domain

import "math"

const AvgScoreDecimalPlaces = 2

// LeaderboardEntry aggregates one player's games for ranking.
type LeaderboardEntry struct {
	Player    string  `json:"player"`
	Games     int     `json:"games"`
	BestScore int     `json:"bestScore"`
	AvgScore  float64 `json:"avgScore"`
}

// RoundAvg rounds a leaderboard average so every backend reports the
// same value regardless of where the aggregation ran.
func RoundAvg(v float64) float64 {
	pow := math.Pow(10, AvgScoreDecimalPlaces)
	return math.Round(v*pow) / pow
}
