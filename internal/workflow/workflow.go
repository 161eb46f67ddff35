// Package workflow maps inbound notifications to the actions they allow
// and the effect each action has: a decision pushed to the backend plus
// removal of the notification, or an assembled bundle for the next screen.
// The category set is closed; unknown categories render read-only.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/model"
)

// Action is a user-facing verb on a notification.
type Action string

const (
	ActionApprove     Action = "approve"
	ActionReject      Action = "reject"
	ActionAccept      Action = "accept"
	ActionRate        Action = "rate"
	ActionSubmitStats Action = "submit-stats"
)

var (
	// ErrUnknownCategory means the notification title is outside the
	// closed category set.
	ErrUnknownCategory = errors.New("unknown notification category")
	// ErrUnsupportedAction means the action does not apply to the category.
	ErrUnsupportedAction = errors.New("action not available for this notification")
	// ErrNotCaptain aborts the stats-submission flow when the acting
	// player captains neither team. This is an authorization check; no
	// mutation happens.
	ErrNotCaptain = fmt.Errorf("%w: only a team captain can submit match stats", api.ErrForbidden)
)

// ActionsFor returns the action buttons a notification renders. Unknown
// categories return nil.
func ActionsFor(category string) []Action {
	switch category {
	case model.CategoryTeamJoinRequest,
		model.CategoryTeamInvitation:
		return []Action{ActionApprove, ActionReject}
	case model.CategoryMatchInvitation:
		return []Action{ActionAccept, ActionReject}
	case model.CategoryRateOpponents:
		return []Action{ActionRate}
	case model.CategoryMatchCompleted:
		return []Action{ActionSubmitStats}
	case model.CategoryTrainingRequest,
		model.CategoryOrderRequest:
		return []Action{ActionAccept, ActionReject}
	default:
		return nil
	}
}

// Screen identifies the downstream screen an outcome navigates to.
type Screen int

const (
	ScreenNone Screen = iota
	ScreenMatchResponse
	ScreenRating
	ScreenStats
)

// Outcome is the result of dispatching an action: either the notification
// was settled (Removed) or a bundle for the next screen was assembled.
type Outcome struct {
	Screen        Screen
	Removed       bool
	MatchResponse *MatchResponseBundle
	Rating        *RatingBundle
	Stats         *StatsBundle
}

// Deps wires the router's collaborators. Bundles may be nil.
type Deps struct {
	Players  PlayersAPI
	Teams    TeamsAPI
	Matches  MatchesAPI
	Trophies TrophiesAPI
	Trainers TrainersAPI
	Market   MarketAPI
	Bundles  BundleStore
}

// Router dispatches notification actions.
type Router struct {
	deps Deps
	log  zerolog.Logger
}

// NewRouter builds a router.
func NewRouter(deps Deps, logger zerolog.Logger) *Router {
	l := logger.With().Str("module", "workflow").Str("component", "router").Logger()
	return &Router{deps: deps, log: l}
}

// Dispatch performs the given action on a notification for the acting
// player. Actor is mutated when the notification is removed so the local
// list reconciles with the server. There is no retry; a failed backend call
// surfaces as-is and leaves local state untouched.
func (r *Router) Dispatch(ctx context.Context, actor *model.Player, n model.Notification, action Action) (Outcome, error) {
	allowed := false
	for _, a := range ActionsFor(n.Title) {
		if a == action {
			allowed = true
			break
		}
	}
	if !allowed {
		if ActionsFor(n.Title) == nil {
			return Outcome{}, ErrUnknownCategory
		}
		return Outcome{}, ErrUnsupportedAction
	}

	r.log.Debug().Str("category", n.Title).Str("action", string(action)).Str("notification", n.ID).Msg("dispatch")

	switch n.Title {
	case model.CategoryTeamJoinRequest:
		if err := r.deps.Teams.DecideJoinRequest(ctx, n.TeamID, n.Requester, action == ActionApprove); err != nil {
			return Outcome{}, err
		}
		return r.settle(ctx, actor, n.ID)

	case model.CategoryTeamInvitation:
		if err := r.deps.Players.DecideTeamInvitation(ctx, n.TeamID, action == ActionApprove); err != nil {
			return Outcome{}, err
		}
		return r.settle(ctx, actor, n.ID)

	case model.CategoryMatchInvitation:
		if action == ActionReject {
			if err := r.deps.Matches.RespondToMatch(ctx, n.MatchID, api.MatchResponse{Accept: false}); err != nil {
				return Outcome{}, err
			}
			return r.settle(ctx, actor, n.ID)
		}
		bundle, err := r.buildMatchResponse(ctx, n)
		if err != nil {
			return Outcome{}, err
		}
		r.cache(bundleMatchResponse, n.ID, bundle)
		return Outcome{Screen: ScreenMatchResponse, MatchResponse: bundle}, nil

	case model.CategoryRateOpponents:
		bundle, err := r.buildRating(ctx, n)
		if err != nil {
			return Outcome{}, err
		}
		r.cache(bundleRating, n.ID, bundle)
		return Outcome{Screen: ScreenRating, Rating: bundle}, nil

	case model.CategoryMatchCompleted:
		bundle, err := r.buildStats(ctx, actor.Email, n)
		if err != nil {
			return Outcome{}, err
		}
		r.cache(bundleStats, n.ID, bundle)
		return Outcome{Screen: ScreenStats, Stats: bundle}, nil

	case model.CategoryTrainingRequest:
		dec := api.BookingDecision{
			TrainerID: n.TrainerID,
			Requester: n.Requester,
			Accept:    action == ActionAccept,
		}
		if err := r.deps.Trainers.ConfirmBooking(ctx, dec); err != nil {
			return Outcome{}, err
		}
		return r.settle(ctx, actor, n.ID)

	case model.CategoryOrderRequest:
		dec := api.SaleDecision{
			ItemID: n.ItemID,
			Buyer:  n.Requester,
			Accept: action == ActionAccept,
		}
		if err := r.deps.Market.ConfirmSale(ctx, dec); err != nil {
			return Outcome{}, err
		}
		return r.settle(ctx, actor, n.ID)
	}

	return Outcome{}, ErrUnknownCategory
}

// CompleteMatchResponse submits the accepting side's selection and settles
// the originating notification. Selection validity (affordability,
// duplicate guard) is the caller's responsibility; the backend re-checks.
func (r *Router) CompleteMatchResponse(ctx context.Context, actor *model.Player, notificationID, matchID string, players []string) error {
	if err := r.deps.Matches.RespondToMatch(ctx, matchID, api.MatchResponse{Accept: true, Players: players}); err != nil {
		return err
	}
	_, err := r.settle(ctx, actor, notificationID)
	return err
}

// settle deletes the notification server-side then reconciles the local
// list. Local removal is idempotent: an id the list no longer holds leaves
// it unchanged.
func (r *Router) settle(ctx context.Context, actor *model.Player, id string) (Outcome, error) {
	if err := r.deps.Players.DeleteNotification(ctx, actor.Email, id); err != nil {
		return Outcome{}, err
	}
	actor.Notifications = model.RemoveNotification(actor.Notifications, id)
	return Outcome{Removed: true}, nil
}

// cache persists a bundle for later resumption. Failures are logged and
// swallowed: the in-memory flow continues either way.
func (r *Router) cache(kind, notificationID string, payload any) {
	if r.deps.Bundles == nil {
		return
	}
	if err := r.deps.Bundles.SaveBundle(kind, notificationID, payload); err != nil {
		r.log.Warn().Err(err).Str("notification", notificationID).Msg("bundle cache write failed")
	}
}
