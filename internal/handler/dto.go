package handler

import (
	"time"

	"github.com/msomdec/swasth-ai/internal/domain"
)

// ChatEntryDTO is the JSON form of a history entry.
type ChatEntryDTO struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}

func toChatEntryDTOs(entries []domain.ChatEntry) []ChatEntryDTO {
	dtos := make([]ChatEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = ChatEntryDTO{
			ID:        e.ID,
			Message:   e.Message,
			Response:  e.Response,
			Language:  e.Language,
			Timestamp: e.Timestamp,
		}
	}
	return dtos
}
