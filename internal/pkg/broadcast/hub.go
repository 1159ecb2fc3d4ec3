package broadcast

import (
	"context"
	"sync"

	"food-delivery/internal/entities"
	"food-delivery/pkg/logger"

	"github.com/google/uuid"
)

const defaultBuffer = 16

type hubLogger interface {
	Warn(msg string, fields ...logger.Field)
}

// Hub - группы подписчиков по id заказа внутри одного процесса.
type Hub struct {
	mu     sync.RWMutex
	groups map[int64]map[string]*Subscriber
	buffer int
	log    hubLogger
}

// Subscriber получает события своей группы через буферизированный канал.
// Канал закрывается при отписке или при переполнении буфера.
type Subscriber struct {
	id        string
	bookingID int64
	events    chan entities.ChatEvent
}

func (s *Subscriber) ID() string {
	return s.id
}

func (s *Subscriber) BookingID() int64 {
	return s.bookingID
}

func (s *Subscriber) Events() <-chan entities.ChatEvent {
	return s.events
}

func NewHub(log hubLogger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		groups: make(map[int64]map[string]*Subscriber),
		buffer: buffer,
		log:    log,
	}
}

func (h *Hub) Subscribe(bookingID int64) *Subscriber {
	s := &Subscriber{
		id:        uuid.NewString(),
		bookingID: bookingID,
		events:    make(chan entities.ChatEvent, h.buffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.groups[bookingID]
	if !ok {
		group = make(map[string]*Subscriber)
		h.groups[bookingID] = group
	}
	group[s.id] = s
	chatConnections.Inc()

	return s
}

// Unsubscribe идемпотентен: повторный вызов и вызов после сброса ничего не делают.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(s)
}

// Publish рассылает событие всем подписчикам группы без блокировки.
// Подписчик с заполненным буфером отключается.
func (h *Hub) Publish(_ context.Context, event entities.ChatEvent) error {
	h.mu.RLock()
	var slow []*Subscriber
	for _, s := range h.groups[event.BookingID] {
		select {
		case s.events <- event:
		default:
			slow = append(slow, s)
		}
	}
	h.mu.RUnlock()

	if len(slow) == 0 {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range slow {
		if h.removeLocked(s) {
			chatDroppedTotal.Inc()
			h.log.Warn("chat subscriber dropped: send buffer full",
				logger.NewField("booking_id", s.bookingID),
				logger.NewField("subscriber", s.id),
			)
		}
	}
	return nil
}

// Size возвращает число подписчиков группы.
func (h *Hub) Size(bookingID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.groups[bookingID])
}

func (h *Hub) removeLocked(s *Subscriber) bool {
	group, ok := h.groups[s.bookingID]
	if !ok {
		return false
	}
	if _, ok := group[s.id]; !ok {
		return false
	}

	delete(group, s.id)
	if len(group) == 0 {
		delete(h.groups, s.bookingID)
	}
	close(s.events)
	chatConnections.Dec()
	return true
}
