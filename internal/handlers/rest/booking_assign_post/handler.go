package booking_assign_post

import (
	"net/http"

	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/bookingerr"
	"food-delivery/internal/handlers/rest/presenter"
	"food-delivery/internal/pkg/httpio"
	"food-delivery/pkg/logger"
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

	var req dto.AssignRequest
	if err := httpio.DecodeJSON(r, &req, false); err != nil {
		httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	assigned, err := h.service.Assign(r.Context(), actor, bookingID, req.DeliveryPartnerID)
	if err != nil {
		status := bookingerr.Status(err)
		if status == http.StatusConflict {
			h.log.Warn("booking assign rejected",
				logger.NewField("booking_id", bookingID),
				logger.NewField("error", err),
			)
		}
		httpio.WriteError(w, h.log, status, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, presenter.Booking(*assigned))
}
