package chat

import "time"

type ChatMessageDB struct {
	ID         int64
	BookingID  int64
	SenderID   int64
	ReceiverID int64
	SenderName *string
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}
