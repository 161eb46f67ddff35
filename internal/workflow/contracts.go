package workflow

import (
	"context"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/model"
)

// The router declares the slices of the API surface it needs as local
// interfaces, so tests run against fakes instead of a live backend.
// *api.Client satisfies all of them.

// PlayersAPI covers player lookup, notification removal and the
// profile-side invitation decision.
type PlayersAPI interface {
	Player(ctx context.Context, email string) (model.Player, error)
	DeleteNotification(ctx context.Context, email, id string) error
	DecideTeamInvitation(ctx context.Context, teamID string, approve bool) error
}

// TeamsAPI covers team lookup and the captain-side join decision.
type TeamsAPI interface {
	Team(ctx context.Context, id string) (model.Team, error)
	DecideJoinRequest(ctx context.Context, teamID, requester string, approve bool) error
}

// MatchesAPI covers match lookup and the invitation response.
type MatchesAPI interface {
	Match(ctx context.Context, id string) (model.Match, error)
	RespondToMatch(ctx context.Context, id string, resp api.MatchResponse) error
}

// TrophiesAPI resolves the trophy a match is played for.
type TrophiesAPI interface {
	Trophy(ctx context.Context, id string) (model.Trophy, error)
}

// TrainersAPI answers training requests.
type TrainersAPI interface {
	ConfirmBooking(ctx context.Context, dec api.BookingDecision) error
}

// MarketAPI answers store order requests.
type MarketAPI interface {
	ConfirmSale(ctx context.Context, dec api.SaleDecision) error
}

// BundleStore persists assembled screen bundles keyed by notification id,
// so an interrupted flow can resume in a later invocation. A nil store
// disables resumption without affecting dispatch.
type BundleStore interface {
	SaveBundle(kind, notificationID string, payload any) error
}

// ProfileAPI is what the notification watcher polls.
type ProfileAPI interface {
	Profile(ctx context.Context) (model.Player, error)
}
