package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMOTMToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "bare motm token", token: "MOTM", want: true},
		{name: "motm with match id", token: "MOTM:m42", want: true},
		{name: "trophy id", token: "trophy-gold-cup", want: false},
		{name: "lowercase is not a motm token", token: "motm", want: false},
		{name: "empty", token: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMOTMToken(tt.token))
		})
	}
}

func TestRemoveNotification(t *testing.T) {
	list := []Notification{
		{ID: "n1", Title: CategoryTeamJoinRequest},
		{ID: "n2", Title: CategoryMatchInvitation},
		{ID: "n3", Title: CategoryOrderRequest},
	}

	got := RemoveNotification(list, "n2")
	assert.Len(t, got, 2)
	assert.Equal(t, "n1", got[0].ID)
	assert.Equal(t, "n3", got[1].ID)

	// Removing an absent id leaves the list unchanged.
	again := RemoveNotification(got, "n2")
	assert.Equal(t, got, again)

	// Double-acting on the same notification settles once and is then a
	// no-op, regardless of how many times the removal re-runs.
	first := RemoveNotification(list, "n1")
	second := RemoveNotification(first, "n1")
	assert.Equal(t, first, second)
	assert.Len(t, second, 2)

	assert.Empty(t, RemoveNotification(nil, "n1"))
}

func TestRemoveNotificationDoesNotAliasOriginal(t *testing.T) {
	list := []Notification{{ID: "n1"}, {ID: "n2"}, {ID: "n3"}}
	got := RemoveNotification(list, "n1")

	// The original backing array must stay intact: callers hold the old
	// slice across the reconciliation.
	assert.Equal(t, "n2", list[1].ID)
	assert.Equal(t, "n3", list[2].ID)
	assert.Equal(t, []Notification{{ID: "n2"}, {ID: "n3"}}, got)
}

func TestTeamHasPlayer(t *testing.T) {
	team := Team{TeamPlayers: []string{"a@x.com", "b@x.com"}}
	assert.True(t, team.HasPlayer("a@x.com"))
	assert.False(t, team.HasPlayer("c@x.com"))
}

func TestDeletedPlayerPlaceholder(t *testing.T) {
	p := DeletedPlayer("gone@x.com")
	assert.Equal(t, "gone@x.com", p.Email)
	assert.Equal(t, "Deleted Player", p.Name)
	assert.Zero(t, p.Points)
}
