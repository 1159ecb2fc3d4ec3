package reports_get

import (
	"errors"
	"fmt"
	"net/http"

	"food-delivery/internal/handlers/rest/presenter"
	"food-delivery/internal/pkg/httpio"
	"food-delivery/internal/service/report"
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

	from, err := presenter.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		httpio.WriteError(w, h.log, http.StatusBadRequest, fmt.Errorf("%w: from", report.ErrInvalidDateRange))
		return
	}
	to, err := presenter.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		httpio.WriteError(w, h.log, http.StatusBadRequest, fmt.Errorf("%w: to", report.ErrInvalidDateRange))
		return
	}

	res, err := h.service.Report(r.Context(), actor, from, to)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidDateRange):
			httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, report.ErrAccessDenied):
			httpio.WriteError(w, h.log, http.StatusForbidden, err)
		default:
			httpio.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, presenter.Report(res))
}
