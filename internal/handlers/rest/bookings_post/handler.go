package bookings_post

import (
	"net/http"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/bookingerr"
	"food-delivery/internal/handlers/rest/presenter"
	"food-delivery/internal/pkg/httpio"
	"food-delivery/pkg/logger"

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

	var req dto.BookingCreate
	if err := httpio.DecodeJSON(r, &req, false); err != nil {
		httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	created, err := h.service.Create(r.Context(), actor, entities.BookingCreate{
		CustomerID:      actor.UserID,
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		CustomerNotes:   pointer.GetString(req.CustomerNotes),
	})
	if err != nil {
		httpio.WriteError(w, h.log, bookingerr.Status(err), err)
		return
	}

	h.log.Info("booking created",
		logger.NewField("booking_id", created.ID),
		logger.NewField("customer_id", created.CustomerID),
	)

	httpio.WriteJSON(w, h.log, http.StatusCreated, presenter.Booking(*created))
}
