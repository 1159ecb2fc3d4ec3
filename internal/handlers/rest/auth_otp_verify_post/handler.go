package auth_otp_verify_post

import (
	"net/http"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/autherr"
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
	var req dto.VerifyOTPRequest
	if err := httpio.DecodeJSON(r, &req, false); err != nil {
		autherr.Write(w, h.log, err)
		return
	}

	input := entities.MobileInput{Number: req.Mobile}
	if req.CountryCode != nil {
		input.CountryCode = *req.CountryCode
	}

	mobile, err := h.service.VerifyOTP(r.Context(), input, req.OTP)
	if err != nil {
		autherr.Write(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, dto.VerifyOTPResponse{
		Mobile:   mobile,
		Verified: true,
	})
}
