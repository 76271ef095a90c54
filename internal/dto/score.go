package dto

// ScoreRequest carries the notation of a single game to score.
type ScoreRequest struct {
	Notation string `json:"notation" example:"X7/9-X-88/-6XXX81"`
}

// ScoreResponse echoes the notation together with the tokenized throws
// and the computed total.
type ScoreResponse struct {
	Notation string `json:"notation"`
	Throws   []int  `json:"throws"`
	Total    int    `json:"total"`
}
