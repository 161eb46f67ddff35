package model

// Notification categories form a closed set; the client switches on the
// title to decide which actions and downstream screen apply. Unknown
// titles render read-only.
const (
	CategoryTeamJoinRequest = "Team Join Request"
	CategoryTeamInvitation  = "Team Invitation"
	CategoryMatchInvitation = "Match Invitation"
	CategoryRateOpponents   = "Rate Opponent Team Players"
	CategoryMatchCompleted  = "Match Completed"
	CategoryTrainingRequest = "New Training Request"
	CategoryOrderRequest    = "New Order Request"
)

// Notification carries a category in Title plus whichever category-specific
// fields the backend filled in.
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Date    string `json:"date"`

	MatchID   string `json:"matchId,omitempty"`
	TeamID    string `json:"teamId,omitempty"`
	Requester string `json:"requester,omitempty"` // player email
	PlayerID  string `json:"playerId,omitempty"`
	TrainerID string `json:"trainerId,omitempty"`
	ItemID    string `json:"itemId,omitempty"`
	Points    int    `json:"points,omitempty"`
}

// RemoveNotification returns the list without the notification carrying the
// given id. Removing an id that is not present is a no-op, so local state
// reconciliation after a server delete is idempotent.
func RemoveNotification(list []Notification, id string) []Notification {
	for i, n := range list {
		if n.ID == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
