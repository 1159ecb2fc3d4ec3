package activity_get

import (
	"net/http"

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

	activities, err := h.service.Recent(r.Context(), actor.UserID)
	if err != nil {
		httpio.WriteError(w, h.log, http.StatusInternalServerError, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, presenter.Activities(activities))
}
