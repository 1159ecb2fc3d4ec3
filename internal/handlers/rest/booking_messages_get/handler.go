package booking_messages_get

import (
	"net/http"

	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/bookingerr"
	"food-delivery/internal/handlers/rest/presenter"
	"food-delivery/internal/pkg/httpio"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpio.Actor(r)
	if !ok {
		httpio.WriteError(w, h.log, http.StatusUnauthorized, httpio.ErrUnauthorized)
		return
	}

	bookingID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	b, err := h.service.Authorize(r.Context(), actor, bookingID)
	if err != nil {
		httpio.WriteError(w, h.log, bookingerr.Status(err), err)
		return
	}

	messages, err := h.service.History(r.Context(), actor, bookingID)
	if err != nil {
		httpio.WriteError(w, h.log, bookingerr.Status(err), err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, dto.ChatHistory{
		Messages: presenter.ChatMessages(messages),
		CanChat:  b.CanChat(),
	})
}
