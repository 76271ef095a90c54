package router

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kegelbahn/tenpin/internal/apperr"
	"github.com/kegelbahn/tenpin/internal/dto"
	"github.com/kegelbahn/tenpin/internal/server"
	"github.com/kegelbahn/tenpin/internal/storage"
	"github.com/kegelbahn/tenpin/pkg/pagination"
)

const defaultLeaderboardSize = 10

// GamesRouter exposes game recording, listing and the leaderboard on
// top of a storage backend.
type GamesRouter struct {
	e       *echo.Echo
	storer  storage.Storer
	reader  storage.Reader
	metrics *server.Metrics
}

// NewGamesRouter builds the router. metrics may be nil.
func NewGamesRouter(e *echo.Echo, storer storage.Storer, reader storage.Reader, metrics *server.Metrics) *GamesRouter {
	return &GamesRouter{
		e:       e,
		storer:  storer,
		reader:  reader,
		metrics: metrics,
	}
}

func (r *GamesRouter) Bind() {
	g := r.e.Group("/api/v1/games")
	g.POST("", r.createHandler)
	g.GET("", r.listHandler)
	g.GET("/leaderboard", r.leaderboardHandler)
	g.GET("/:id", r.getHandler)
}

// createHandler godoc
//
//	@Summary		Record a played game
//	@Description	Scores the notation and persists the game. The total is always computed server side; totals in the request are ignored.
//	@Tags			games
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateGameRequest	true	"Game to record"
//	@Success		201		{object}	dto.Game
//	@Failure		400		{object}	map[string]string
//	@Router			/api/v1/games [post]
func (r *GamesRouter) createHandler(c echo.Context) error {
	var req dto.CreateGameRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Notation == "" {
		return apperr.NewValidation("notation is required")
	}

	ctx := c.Request().Context()
	id, err := r.storer.Save(ctx, req.ToDomain())
	if err != nil {
		return err
	}
	r.metrics.AddGameScored()

	stored, err := r.reader.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.GameFromDomain(*stored))
}

// listHandler godoc
//
//	@Summary		List recorded games
//	@Description	Games ordered newest first. Pages by offset (page/size) or by keyset when a cursor from a previous page is passed.
//	@Tags			games
//	@Produce		json
//	@Param			player	query		string	false	"Filter by player"
//	@Param			league	query		string	false	"Filter by league"
//	@Param			page	query		int		false	"Page number (offset mode)"
//	@Param			size	query		int		false	"Page size"
//	@Param			cursor	query		string	false	"Cursor from a previous page (keyset mode)"
//	@Success		200		{object}	pagination.OffsetResult[dto.Game]
//	@Failure		400		{object}	map[string]string
//	@Router			/api/v1/games [get]
func (r *GamesRouter) listHandler(c echo.Context) error {
	opts := storage.ListOptions{
		Player: c.QueryParam("player"),
		League: c.QueryParam("league"),
	}

	var curReq pagination.CursorRequest
	if err := c.Bind(&curReq); err != nil {
		return apperr.NewValidationWrap("invalid query parameters", err)
	}

	if curReq.Cursor != nil && *curReq.Cursor != "" {
		if err := curReq.Validate(); err != nil {
			return apperr.NewValidationWrap("invalid query parameters", err)
		}
		cursor, err := dto.DecodeCursor(*curReq.Cursor)
		if err != nil {
			return apperr.NewValidationWrap("invalid cursor", err)
		}
		opts.Cursor = cursor
		opts.Size = curReq.Size

		res, err := r.reader.List(c.Request().Context(), opts)
		if err != nil {
			return err
		}
		next, err := encodeNextCursor(res)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, pagination.NewCursorResult(dto.GamesFromDomain(res.Games), next, res.HasMore))
	}

	var pageReq pagination.OffsetRequest
	if err := c.Bind(&pageReq); err != nil {
		return apperr.NewValidationWrap("invalid query parameters", err)
	}
	if err := pageReq.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid query parameters", err)
	}
	opts.Page = pageReq.Page
	opts.Size = pageReq.Size

	res, err := r.reader.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	next, err := encodeNextCursor(res)
	if err != nil {
		return err
	}

	out := pagination.NewOffsetResult(dto.GamesFromDomain(res.Games), res.Total, pageReq.Page, pageReq.Size)
	out.NextCursor = next
	return c.JSON(http.StatusOK, out)
}

// getHandler godoc
//
//	@Summary		Fetch a game by ID
//	@Tags			games
//	@Produce		json
//	@Param			id	path		string	true	"Game ID"
//	@Success		200	{object}	dto.Game
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/api/v1/games/{id} [get]
func (r *GamesRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid game id", err)
	}

	game, err := r.reader.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.GameFromDomain(*game))
}

// leaderboardHandler godoc
//
//	@Summary		Player leaderboard
//	@Description	Players ranked by best total, then average total, then name. Games without a player are left out.
//	@Tags			games
//	@Produce		json
//	@Param			limit	query		int	false	"Number of entries (default 10)"
//	@Success		200		{array}		domain.LeaderboardEntry
//	@Failure		400		{object}	map[string]string
//	@Router			/api/v1/games/leaderboard [get]
func (r *GamesRouter) leaderboardHandler(c echo.Context) error {
	limit := defaultLeaderboardSize
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return apperr.NewValidation("limit must be a positive integer")
		}
		limit = n
	}
	if limit > pagination.PageMaxSize {
		limit = pagination.PageMaxSize
	}

	entries, err := r.reader.Leaderboard(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func encodeNextCursor(res *storage.ListResult) (*string, error) {
	if res.NextCursor == nil {
		return nil, nil
	}
	encoded, err := dto.EncodeCursor(res.NextCursor.CreatedAt, res.NextCursor.ID)
	if err != nil {
		return nil, err
	}
	return &encoded, nil
}
