package users_get

import (
	"errors"
	"net/http"
	"strings"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/presenter"
	"food-delivery/internal/pkg/httpio"
	"food-delivery/internal/service/user"
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

	query := entities.UserQuery{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Page:   httpio.QueryPage(r),
	}
	if raw := r.URL.Query().Get("role"); raw != "" {
		role := entities.Role(raw)
		query.Role = &role
	}

	page, err := h.service.List(r.Context(), actor, query)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidRole):
			httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, user.ErrAccessDenied):
			httpio.WriteError(w, h.log, http.StatusForbidden, err)
		default:
			httpio.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, dto.UserPage{
		Users:    presenter.Users(page.Users),
		Total:    page.Total,
		Page:     int(page.Page),     //nolint:gosec // номер страницы из запроса
		PageSize: int(page.PageSize), //nolint:gosec // из конфига
	})
}
