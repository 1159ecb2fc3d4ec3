package chat_ws_get

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"food-delivery/internal/entities"
	"food-delivery/internal/generated/dto"
	"food-delivery/internal/handlers/rest/bookingerr"
	"food-delivery/internal/handlers/rest/presenter"
	"food-delivery/internal/pkg/httpio"
	"food-delivery/internal/service/chat"
	"food-delivery/pkg/logger"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPingInterval = 30 * time.Second
	writeTimeout        = 10 * time.Second
	readLimit           = 16 << 10
)

var errSlowConsumer = errors.New("chat subscriber dropped as slow consumer")

// Handler держит websocket-подключение к комнате заказа.
// Входящие кадры {"message": "..."} сохраняются через сервис чата,
// события комнаты из хаба пишутся клиенту.
type Handler struct {
	log          handlerLogger
	service      Service
	hub          Hub
	pingInterval time.Duration
}

func New(log handlerLogger, service Service, hub Hub, pingInterval time.Duration) *Handler {
	handlerLog := log.With()
	if pingInterval <= 0 {
		pingInterval = defaultPingInterval
	}

	return &Handler{
		log:          handlerLog,
		service:      service,
		hub:          hub,
		pingInterval: pingInterval,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpio.Actor(r)
	if !ok {
		httpio.WriteError(w, h.log, http.StatusUnauthorized, httpio.ErrUnauthorized)
		return
	}

	bookingID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	// Права проверяются по сохраненному заказу до апгрейда соединения.
	if _, err := h.service.Authorize(r.Context(), actor, bookingID); err != nil {
		httpio.WriteError(w, h.log, bookingerr.Status(err), err)
		return
	}

	// Таймауты http.Server не должны обрывать долгоживущее соединение.
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.log.Warn("websocket accept failed",
			logger.NewField("booking_id", bookingID),
			logger.NewField("error", err),
		)
		return
	}
	conn.SetReadLimit(readLimit)

	sub := h.hub.Subscribe(bookingID)
	defer h.hub.Unsubscribe(sub)

	connLog := h.log.With(
		logger.NewField("booking_id", bookingID),
		logger.NewField("user_id", actor.UserID),
		logger.NewField("subscriber_id", sub.ID()),
	)
	connLog.Info("chat connected")

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return h.readPump(ctx, conn, connLog, actor, bookingID)
	})
	var writeErr error
	g.Go(func() error {
		writeErr = h.writePump(ctx, conn, sub.Events())
		return writeErr
	})
	err = g.Wait()
	if errors.Is(writeErr, errSlowConsumer) {
		err = writeErr
	}

	switch status := websocket.CloseStatus(err); {
	case errors.Is(err, errSlowConsumer):
		// кадр закрытия уже отправлен из writePump
		connLog.Warn("chat connection dropped", logger.NewField("error", err))
	case status == websocket.StatusNormalClosure, status == websocket.StatusGoingAway:
		connLog.Info("chat disconnected")
		_ = conn.Close(websocket.StatusNormalClosure, "")
	case errors.Is(err, context.Canceled):
		_ = conn.CloseNow()
	default:
		connLog.Warn("chat connection failed", logger.NewField("error", err))
		_ = conn.Close(websocket.StatusInternalError, "")
	}
}

func (h *Handler) readPump(
	ctx context.Context,
	conn *websocket.Conn,
	log logger.Logger,
	actor entities.Actor,
	bookingID int64,
) error {
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			continue
		}

		var incoming dto.ChatIncoming
		if err := json.Unmarshal(data, &incoming); err != nil {
			if err := h.writeError(ctx, conn, httpio.ErrBadJSON); err != nil {
				return err
			}
			continue
		}
		if strings.TrimSpace(incoming.Message) == "" {
			continue
		}

		_, err = h.service.Send(ctx, actor, bookingID, incoming.Message)
		switch {
		case err == nil:
		case errors.Is(err, chat.ErrChatClosed),
			errors.Is(err, chat.ErrMessageTooLong),
			errors.Is(err, chat.ErrEmptyMessage),
			errors.Is(err, chat.ErrAccessDenied):
			log.Warn("chat message rejected", logger.NewField("error", err))
			if err := h.writeError(ctx, conn, err); err != nil {
				return err
			}
		default:
			return err
		}
	}
}

func (h *Handler) writePump(ctx context.Context, conn *websocket.Conn, events <-chan entities.ChatEvent) error {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				// Закрываем до отмены ctx, иначе conn.Read в readPump оборвет соединение без кода.
				_ = conn.Close(websocket.StatusTryAgainLater, "slow consumer")
				return errSlowConsumer
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, conn, presenter.ChatEvent(event))
			cancel()
			if err != nil {
				return err
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, h.pingInterval)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}

func (h *Handler) writeError(ctx context.Context, conn *websocket.Conn, err error) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, dto.Error{Error: err.Error()})
}
