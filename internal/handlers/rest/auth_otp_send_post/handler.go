package auth_otp_send_post

import (
	"net/http"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/autherr"
	"food-delivery/internal/pkg/httpio"
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
	var req dto.SendOTPRequest
	if err := httpio.DecodeJSON(r, &req, false); err != nil {
		autherr.Write(w, h.log, err)
		return
	}

	input := entities.MobileInput{Number: req.Mobile}
	if req.CountryCode != nil {
		input.CountryCode = *req.CountryCode
	}

	res, err := h.service.SendOTP(r.Context(), input, entities.OTPPurpose(req.Purpose))
	if err != nil {
		autherr.Write(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("purpose", req.Purpose),
	).Info("otp sent")

	response := dto.SendOTPResponse{
		Mobile:    res.Mobile,
		ExpiresIn: int(res.ExpiresIn.Seconds()),
	}
	if res.DebugCode != "" {
		response.DebugCode = &res.DebugCode
	}
	httpio.WriteJSON(w, h.log, http.StatusOK, response)
}
