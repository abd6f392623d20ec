package chat

import "github.com/dkeye/Banter/internal/domain"

// Member is a read-only occupant view for room snapshots.
type Member struct {
	Username string         `json:"username"`
	IsActive bool           `json:"isActive"`
	Avatar   *domain.Avatar `json:"avatar,omitempty"`
}

// RoomSnapshot is recomputed from the registry on every request, never
// cached. Room and usernames are rendered in display form.
type RoomSnapshot struct {
	Room  string   `json:"room"`
	Users []Member `json:"users"`
	Count int      `json:"count"`
}

// Snapshot lists the current occupants of a room. An unknown or empty room
// yields an empty snapshot, not an error.
func (r *Registry) Snapshot(room string) RoomSnapshot {
	room = domain.Normalize(room)
	sessions := r.membersOf(room)
	users := make([]Member, 0, len(sessions))
	for _, s := range sessions {
		users = append(users, Member{
			Username: domain.Display(s.Username),
			IsActive: s.IsActive,
			Avatar:   s.Avatar,
		})
	}
	return RoomSnapshot{
		Room:  domain.Display(room),
		Users: users,
		Count: len(users),
	}
}
