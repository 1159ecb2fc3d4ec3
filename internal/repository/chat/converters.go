package chat

import (
	"food-delivery/internal/entities"

	"github.com/AlekSi/pointer"
)

func ToDomain(m *ChatMessageDB) *entities.ChatMessage {
	if m == nil {
		return nil
	}
	return &entities.ChatMessage{
		ID:         m.ID,
		BookingID:  m.BookingID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		SenderName: pointer.GetString(m.SenderName),
		Message:    m.Message,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
}
