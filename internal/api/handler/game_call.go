package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/machgame/internal/api/apierr"
	"github.com/mcoot/machgame/internal/api/request"
	"github.com/mcoot/machgame/internal/api/response"
	"github.com/mcoot/machgame/internal/model"
)

// MaxBodyBytes caps the size of a /game_call body
const MaxBodyBytes = 1 << 20

// Dispatcher applies a decoded client action
type Dispatcher interface {
	Dispatch(ctx context.Context, action model.ClientAction) (model.ServerAction, error)
}

// GameCallHandler handles the single action endpoint
type GameCallHandler struct {
	dispatcher Dispatcher
	logger     *slog.Logger
}

// NewGameCallHandler creates a new game call handler
func NewGameCallHandler(dispatcher Dispatcher, logger *slog.Logger) *GameCallHandler {
	return &GameCallHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Call handles POST /game_call. Any well-formed action gets a 200, including
// failed joins and state checks for unknown players.
func (h *GameCallHandler) Call(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			err = apierr.NewBadRequestError()
		}
		h.logger.Debug("could not read request body", slog.String("error", err.Error()))
		WriteError(w, err)
		return
	}

	action, err := request.DecodeClientAction(body)
	if err != nil {
		h.logger.Debug("rejected malformed action", slog.String("error", err.Error()))
		WriteError(w, err)
		return
	}

	reply, err := h.dispatcher.Dispatch(r.Context(), action)
	if err != nil {
		h.logger.Error("dispatch failed",
			slog.String("action", actionName(action)),
			slog.String("error", err.Error()),
		)
		WriteError(w, err)
		return
	}

	wire, err := response.ServerActionFromModel(reply)
	if err != nil {
		h.logger.Error("could not encode reply", slog.String("error", err.Error()))
		WriteError(w, apierr.NewInternalError())
		return
	}

	response.JSON(w, http.StatusOK, wire)
}

func actionName(action model.ClientAction) string {
	switch action.(type) {
	case model.Register:
		return request.VariantRegister
	case model.HostGame:
		return request.VariantHostGame
	case model.JoinGame:
		return request.VariantJoinGame
	case model.IncreaseScore:
		return request.VariantIncreaseScore
	case model.StateCheck:
		return request.VariantStateCheck
	default:
		return "unknown"
	}
}
