package auth_login_post

import (
	"net/http"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/autherr"
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
	var req dto.LoginRequest
	if err := httpio.DecodeJSON(r, &req, false); err != nil {
		autherr.Write(w, h.log, err)
		return
	}

	session, err := h.service.Login(r.Context(), entities.LoginRequest{
		Mobile: entities.MobileInput{
			CountryCode: pointer.GetString(req.CountryCode),
			Number:      req.Mobile,
		},
		Code: pointer.GetString(req.OTP),
	})
	if err != nil {
		autherr.Write(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, presenter.Session(session))
}
