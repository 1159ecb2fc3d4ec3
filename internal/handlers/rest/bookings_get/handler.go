package bookings_get

import (
	"net/http"
	"strings"

	"food-delivery/internal/entities"
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

	query := entities.BookingQuery{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Page:   httpio.QueryPage(r),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entities.BookingStatus(raw)
		query.Status = &status
	}

	page, err := h.service.List(r.Context(), actor, query)
	if err != nil {
		httpio.WriteError(w, h.log, bookingerr.Status(err), err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, presenter.BookingPage(page))
}
