// Package httpio - общие операции REST-обработчиков: чтение запроса и запись JSON-ответов.
package httpio

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
	"food-delivery/internal/pkg/reqctx"
	"food-delivery/pkg/logger"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

var (
	ErrInvalidPathID = errors.New("invalid path id")
	ErrBadJSON       = errors.New("invalid JSON body")
	ErrUnauthorized  = errors.New("authentication required")
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func WriteJSON(w http.ResponseWriter, log errorLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// WriteError пишет тело ошибки. Для 5xx текст ошибки не раскрывается клиенту.
func WriteError(w http.ResponseWriter, log errorLogger, status int, err error) {
	WriteErrorBody(w, log, status, err, dto.Error{})
}

func WriteErrorBody(w http.ResponseWriter, log errorLogger, status int, err error, body dto.Error) {
	if status >= http.StatusInternalServerError {
		log.Error("request failed", logger.NewField("error", err))
		body.Error = http.StatusText(status)
	} else {
		body.Error = err.Error()
	}
	WriteJSON(w, log, status, body)
}

// DecodeJSON читает тело запроса. Пустое тело допустимо, если allowEmpty.
func DecodeJSON(r *http.Request, v any, allowEmpty bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if allowEmpty {
			return nil
		}
		return ErrBadJSON
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	err := dec.Decode(v)
	if err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return ErrBadJSON
	}
	return nil
}

func PathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, ErrInvalidPathID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

// QueryPage возвращает номер страницы из ?page=, по умолчанию 1.
func QueryPage(r *http.Request) uint64 {
	page, err := strconv.ParseUint(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page == 0 {
		return 1
	}
	return page
}

// Actor достает пользователя, сохраненный middleware аутентификации.
func Actor(r *http.Request) (entities.Actor, bool) {
	return reqctx.Actor(r.Context())
}
