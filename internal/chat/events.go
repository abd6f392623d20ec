package chat

import "github.com/dkeye/Banter/internal/domain"

// Outbound event names. These are the wire contract with the web client.
const (
	EventMessage         = "message"
	EventLocationMessage = "locationMessage"
	EventRoomData        = "roomData"
	EventActivityUpdate  = "userActivityUpdate"
	EventDisplayTyping   = "displayTyping"
	EventHideTyping      = "hideTyping"
	EventMessageUpdated  = "messageUpdated"
	EventMessageDeleted  = "messageDeleted"
)

// Emitter is the transport seen by the engine: three addressing modes plus
// the room-membership hook that keeps routing state in step with a join.
// The concrete socket adapter implements it.
type Emitter interface {
	JoinRoom(id domain.ConnID, room string)
	ToConn(id domain.ConnID, v any)
	ToRoom(room string, v any)
	ToRoomExcept(room string, id domain.ConnID, v any)
}

type MessageEvent struct {
	Type string `json:"type"`
	domain.Message
}

type LocationMessageEvent struct {
	Type string `json:"type"`
	domain.LocationMessage
}

type RoomDataEvent struct {
	Type string `json:"type"`
	RoomSnapshot
}

type ActivityUpdateEvent struct {
	Type     string `json:"type"`
	IsActive bool   `json:"isActive"`
}

type DisplayTypingEvent struct {
	Type     string `json:"type"`
	Username string `json:"username"`
}

type HideTypingEvent struct {
	Type string `json:"type"`
}

type MessageUpdatedEvent struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Body string `json:"msg"`
}

type MessageDeletedEvent struct {
	Type string `json:"type"`
	User string `json:"user"`
	ID   string `json:"id"`
}
