package entities

import "time"

type ChatMessage struct {
	ID         int64
	BookingID  int64
	SenderID   int64
	ReceiverID int64
	SenderName string
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}

type ChatMessageCreate struct {
	BookingID  int64
	SenderID   int64
	ReceiverID int64
	Message    string
}

// ChatEvent рассылается всем подключениям комнаты заказа.
type ChatEvent struct {
	BookingID  int64     `json:"-"`
	MessageID  int64     `json:"message_id"`
	Message    string    `json:"message"`
	SenderID   int64     `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Timestamp  time.Time `json:"timestamp"`
}
