package chat

import "github.com/dkeye/Banter/internal/domain"

// ReadStatus is the point-in-time visibility aggregate for a room: "active"
// when every occupant has its tab focused, "" otherwise. An empty room is
// vacuously "active"; in practice the sending session is always a member.
// Recomputed on every send, never cached.
func (r *Registry) ReadStatus(room string) string {
	for _, s := range r.membersOf(domain.Normalize(room)) {
		if !s.IsActive {
			return ""
		}
	}
	return domain.StatusActive
}
