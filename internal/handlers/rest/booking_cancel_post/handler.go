package booking_cancel_post

import (
	"net/http"

	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/bookingerr"
	"food-delivery/internal/handlers/rest/presenter"
	"food-delivery/internal/pkg/httpio"

	"github.com/AlekSi/pointer"
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

	// Тело необязательно: причина отмены может быть не указана.
	var req dto.CancelRequest
	if err := httpio.DecodeJSON(r, &req, true); err != nil {
		httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	cancelled, err := h.service.Cancel(r.Context(), actor, bookingID, pointer.GetString(req.CancellationReason))
	if err != nil {
		httpio.WriteError(w, h.log, bookingerr.Status(err), err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, presenter.Booking(*cancelled))
}
