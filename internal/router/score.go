package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kegelbahn/tenpin/internal/apperr"
	"github.com/kegelbahn/tenpin/internal/dto"
	"github.com/kegelbahn/tenpin/internal/server"
	"github.com/kegelbahn/tenpin/pkg/bowling"
)

// ScoreRouter exposes the pure scoring endpoint. Nothing is persisted.
type ScoreRouter struct {
	e       *echo.Echo
	metrics *server.Metrics
}

// NewScoreRouter builds the router. metrics may be nil.
func NewScoreRouter(e *echo.Echo, metrics *server.Metrics) *ScoreRouter {
	return &ScoreRouter{e: e, metrics: metrics}
}

func (r *ScoreRouter) Bind() {
	r.e.POST("/api/v1/score", r.scoreHandler)
}

// scoreHandler godoc
//
//	@Summary		Score a game notation
//	@Description	Tokenizes the notation and computes the total score. Any string is accepted; characters outside the notation grammar count as frame separators.
//	@Tags			score
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ScoreRequest	true	"Game notation"
//	@Success		200		{object}	dto.ScoreResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/api/v1/score [post]
func (r *ScoreRouter) scoreHandler(c echo.Context) error {
	var req dto.ScoreRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Notation == "" {
		return apperr.NewValidation("notation is required")
	}

	start := time.Now()
	throws := bowling.Tokenize(req.Notation)
	total := bowling.Score(throws)
	r.metrics.ObserveScoreDuration(time.Since(start))
	r.metrics.AddGameScored()

	return c.JSON(http.StatusOK, dto.ScoreResponse{
		Notation: req.Notation,
		Throws:   throws,
		Total:    total,
	})
}
