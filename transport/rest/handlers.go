package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/ai"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/service"
)

type gameService interface {
	ParsePosition(notation string) (*entity.Game, error)
	LegalMoves(game *entity.Game) []entity.Move
	ApplyMove(game *entity.Game, sub, cell int) (*entity.Game, error)
	ChooseAIMove(game *entity.Game, level ai.Level) (*entity.Game, error)
}

type arenaService interface {
	GetResult(ctx context.Context, id string) (*entity.ArenaResult, error)
	DeleteResult(ctx context.Context, id string) error
}

type aiMoveRequest struct {
	Position string   `json:"position"`
	Level    ai.Level `json:"level"`
}

type moveRequest struct {
	Position string `json:"position"`
	Sub      int    `json:"sub"`
	Cell     int    `json:"cell"`
}

type positionResponse struct {
	Position string `json:"position"`
	Board    string `json:"board"`
	State    string `json:"state"`
}

type movesResponse struct {
	Position string        `json:"position"`
	Moves    []entity.Move `json:"moves"`
}

type arenaResponse struct {
	*entity.ArenaResult
	XWinRate float64 `json:"x_win_rate"`
	OWinRate float64 `json:"o_win_rate"`
	TieRate  float64 `json:"tie_rate"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger       *slog.Logger
	gameService  gameService
	arenaService arenaService

	// one search at a time; concurrent AI requests are turned away
	worker *ai.Worker
}

func newHandlers(logger *slog.Logger, gameService gameService, arenaService arenaService) *handlers {
	return &handlers{
		logger:       logger.With("component", "rest"),
		gameService:  gameService,
		arenaService: arenaService,
		worker:       ai.NewWorker(ai.ChooserFunc(gameService.ChooseAIMove)),
	}
}

func (that *handlers) legalMoves(w http.ResponseWriter, r *http.Request) {
	game, err := that.parsePosition(r.URL.Query().Get("position"))
	if err != nil {
		that.writeError(w, "legalMoves", err)
		return
	}

	that.writeJSON(w, http.StatusOK, movesResponse{
		Position: game.Notation(),
		Moves:    that.gameService.LegalMoves(game),
	})
}

func (that *handlers) playMove(w http.ResponseWriter, r *http.Request) {
	var request moveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		that.writeError(w, "playMove", fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	game, err := that.parsePosition(request.Position)
	if err != nil {
		that.writeError(w, "playMove", err)
		return
	}

	next, err := that.gameService.ApplyMove(game, request.Sub, request.Cell)
	if err != nil {
		that.writeError(w, "playMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newPositionResponse(next))
}

func (that *handlers) aiMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "aiMove")

	var request aiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		that.writeError(w, "aiMove", fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	game, err := that.parsePosition(request.Position)
	if err != nil {
		that.writeError(w, "aiMove", err)
		return
	}

	select {
	case result := <-that.worker.Submit(*game, request.Level):
		if result.Err != nil {
			that.writeError(w, "aiMove", result.Err)
			return
		}

		that.writeJSON(w, http.StatusOK, newPositionResponse(result.Game))
	case <-r.Context().Done():
		log.Info("client went away during search", "position", game.Notation())
	}
}

func (that *handlers) arenaResult(w http.ResponseWriter, r *http.Request) {
	result, err := that.arenaService.GetResult(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "arenaResult", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newArenaResponse(result))
}

func (that *handlers) deleteArenaResult(w http.ResponseWriter, r *http.Request) {
	if err := that.arenaService.DeleteResult(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "deleteArenaResult", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parsePosition treats an empty position as the start of a game.
func (that *handlers) parsePosition(position string) (*entity.Game, error) {
	if position == "" {
		return entity.NewGame(), nil
	}

	return that.gameService.ParsePosition(position)
}

var errBadRequest = errors.New("malformed request body")

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, apperror.ErrInvalidNotation),
		errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrUnknownLevel),
		errors.Is(err, entity.ErrInvalidCell):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, service.ErrNoAvailableMoves):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrSearchInFlight):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}

	that.logger.Debug("request rejected", "method", method, "status", status, "error", err)
	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func newPositionResponse(game *entity.Game) positionResponse {
	return positionResponse{
		Position: game.Notation(),
		Board:    game.String(),
		State:    game.State.String(),
	}
}

func newArenaResponse(result *entity.ArenaResult) arenaResponse {
	return arenaResponse{
		ArenaResult: result,
		XWinRate:    result.XWinRate(),
		OWinRate:    result.OWinRate(),
		TieRate:     result.TieRate(),
	}
}
