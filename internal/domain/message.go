package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusActive stamps a message when every occupant of the room had its tab
// focused at send time.
const StatusActive = "active"

// Message is a transient chat message; nothing here is persisted.
type Message struct {
	ID         string `json:"id"`
	Body       string `json:"msg"`
	Username   string `json:"username"`
	CreatedAt  int64  `json:"createAt"`
	ReadStatus string `json:"readStatus"`
}

// LocationMessage is a shared map link. It carries no id on purpose:
// location messages are not addressable for edit or delete.
type LocationMessage struct {
	URL        string `json:"url"`
	Username   string `json:"username"`
	CreatedAt  int64  `json:"createAt"`
	ReadStatus string `json:"readStatus"`
}

func NewMessage(body, username, readStatus string) Message {
	return Message{
		ID:         uuid.NewString(),
		Body:       body,
		Username:   Display(username),
		CreatedAt:  time.Now().UnixMilli(),
		ReadStatus: readStatus,
	}
}

func NewLocationMessage(url, username, readStatus string) LocationMessage {
	return LocationMessage{
		URL:        url,
		Username:   Display(username),
		CreatedAt:  time.Now().UnixMilli(),
		ReadStatus: readStatus,
	}
}
