package auth_admin_login_post

import (
	"errors"
	"net/http"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/autherr"
	"food-delivery/internal/handlers/rest/presenter"
	"food-delivery/internal/pkg/httpio"
	"food-delivery/internal/service/auth"
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
	var req dto.AdminLoginRequest
	if err := httpio.DecodeJSON(r, &req, false); err != nil {
		autherr.Write(w, h.log, err)
		return
	}

	session, err := h.service.AdminLogin(r.Context(), entities.AdminLoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.log.With(
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("admin login failed")
		}
		autherr.Write(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, presenter.Session(session))
}
