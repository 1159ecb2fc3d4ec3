package ping_get

import (
	"net/http"

	"food-delivery/internal/generated/dto"
	"food-delivery/internal/pkg/httpio"

	"github.com/AlekSi/pointer"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpio.WriteJSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: pointer.ToString("pong"),
	})
}
