package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Banter/internal/domain"
)

func TestSnapshot(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.AddSession("c1", "mcKenzie", "general", nil)
	require.NoError(t, err)
	_, err = reg.AddSession("c2", "bob", "general", &domain.Avatar{URL: "http://x/a.png", Filename: "a.png"})
	require.NoError(t, err)
	_, err = reg.AddSession("c3", "eve", "lobby", nil)
	require.NoError(t, err)

	snap := reg.Snapshot("  GENERAL ")

	assert.Equal(t, "General", snap.Room)
	assert.Equal(t, 2, snap.Count)
	require.Len(t, snap.Users, 2)

	names := []string{snap.Users[0].Username, snap.Users[1].Username}
	assert.ElementsMatch(t, []string{"Bob", "Mckenzie"}, names)
	for _, u := range snap.Users {
		assert.True(t, u.IsActive)
	}
}

func TestSnapshot_EmptyRoom(t *testing.T) {
	reg := NewRegistry()
	snap := reg.Snapshot("nowhere")

	assert.Equal(t, 0, snap.Count)
	assert.NotNil(t, snap.Users)
	assert.Empty(t, snap.Users)
}

func TestReadStatus(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.AddSession("c1", "ann", "lobby", nil)
	require.NoError(t, err)
	_, err = reg.AddSession("c2", "ben", "lobby", nil)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusActive, reg.ReadStatus("lobby"))

	// One inactive member flips the aggregate.
	_, ok := reg.SetActivity("c2", false)
	require.True(t, ok)
	assert.Equal(t, "", reg.ReadStatus("lobby"))

	_, ok = reg.SetActivity("c2", true)
	require.True(t, ok)
	assert.Equal(t, domain.StatusActive, reg.ReadStatus("lobby"))
}

func TestReadStatus_EmptyRoomIsVacuouslyActive(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, domain.StatusActive, reg.ReadStatus("nowhere"))
}
