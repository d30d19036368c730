package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"deals-service/internal/contextkeys"
	"deals-service/internal/core/domain"
	"deals-service/internal/core/port"
	"deals-service/internal/core/port/usecases_port"
)

type WorkshopHandler struct {
	echoUC usecases_port.WorkshopEchoUseCase
}

func NewWorkshopHandler(echoUC usecases_port.WorkshopEchoUseCase) *WorkshopHandler {
	return &WorkshopHandler{echoUC: echoUC}
}

// PostMessage обрабатывает POST /api/v1/workshop/messages
func (h *WorkshopHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var request PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "PostMessage",
	})
	handlerLogger.Debug("Processing workshop message", nil)

	exchange, err := h.echoUC.Execute(r.Context(), request.Text)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMessage) {
			WriteJSONError(w, http.StatusBadRequest, "Message text must not be empty")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	response := ChatExchangeResponse{
		Message: toChatMessageResponse(exchange.UserMessage),
		Reply:   toChatMessageResponse(exchange.Reply),
	}

	RespondWithJSON(w, http.StatusCreated, response)
}
