package auth_signup_post

import (
	"net/http"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/autherr"
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
	var req dto.SignupRequest
	if err := httpio.DecodeJSON(r, &req, false); err != nil {
		autherr.Write(w, h.log, err)
		return
	}

	session, err := h.service.Signup(r.Context(), entities.SignupRequest{
		Mobile: entities.MobileInput{
			CountryCode: pointer.GetString(req.CountryCode),
			Number:      req.Mobile,
		},
		Code:      pointer.GetString(req.OTP),
		Role:      entities.Role(req.Role),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     pointer.GetString(req.Email),
		Address:   pointer.GetString(req.Address),
	})
	if err != nil {
		autherr.Write(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("user_id", session.User.ID),
		logger.NewField("role", session.User.Role.String()),
	).Info("user signed up")

	httpio.WriteJSON(w, h.log, http.StatusCreated, presenter.Session(session))
}
