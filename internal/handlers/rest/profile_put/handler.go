package profile_put

import (
	"errors"
	"net/http"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/presenter"
	"food-delivery/internal/pkg/httpio"
	"food-delivery/internal/service/user"

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

	var req dto.ProfileUpdate
	if err := httpio.DecodeJSON(r, &req, false); err != nil {
		httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), actor, entities.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     pointer.GetString(req.Email),
		Address:   pointer.GetString(req.Address),
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidName),
			errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrInvalidAddress):
			httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, user.ErrUserNotFound):
			httpio.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, user.ErrConflict):
			httpio.WriteError(w, h.log, http.StatusConflict, err)
		default:
			httpio.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, presenter.User(*updated))
}
