package workflow

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/footballhub/cli/internal/model"
)

// Bundle kinds as persisted in the bundle store.
const (
	bundleMatchResponse = "match-response"
	bundleRating        = "rating"
	bundleStats         = "stats"
)

// resolveLimit caps concurrent player fetches during roster resolution.
const resolveLimit = 8

// MatchResponseBundle is the payload for the match-response screen, seen
// from the invited side: "my" team here is the match record's opponent.
type MatchResponseBundle struct {
	NotificationID   string         `json:"notificationId"`
	Match            model.Match    `json:"match"`
	Trophy           model.Trophy   `json:"trophy"`
	MyTeam           model.Team     `json:"myTeam"`
	OpponentTeam     model.Team     `json:"opponentTeam"`
	MyRoster         []model.Player `json:"myRoster"`
	OpponentSelected []model.Player `json:"opponentSelected"`
}

// OpponentEmails lists the already-committed opposing participants, used
// by the duplicate-participation guard.
func (b MatchResponseBundle) OpponentEmails() []string {
	out := make([]string, len(b.OpponentSelected))
	for i, p := range b.OpponentSelected {
		out[i] = p.Email
	}
	return out
}

// RatingBundle is the payload for the opponent-rating screen.
type RatingBundle struct {
	NotificationID string         `json:"notificationId"`
	MatchID        string         `json:"matchId"`
	TeamID         string         `json:"teamId"`
	Players        []model.Player `json:"players"`
}

// StatsBundle is the payload for the stats-submission screen. The acting
// side is resolved by captain identity before assembly.
type StatsBundle struct {
	NotificationID string         `json:"notificationId"`
	Match          model.Match    `json:"match"`
	Trophy         model.Trophy   `json:"trophy"`
	ActingTeam     model.Team     `json:"actingTeam"`
	OpposingTeam   model.Team     `json:"opposingTeam"`
	ActingRoster   []model.Player `json:"actingRoster"`
	OpposingRoster []model.Player `json:"opposingRoster"`
	// ActingIsCreator is true when the acting captain's team is the match
	// record's "my" side.
	ActingIsCreator bool `json:"actingIsCreator"`
}

// buildMatchResponse assembles the swapped my-side/opponent-side bundle for
// an invitation: the invited team becomes "my" team, the creating team's
// committed selection becomes the opposing roster.
func (r *Router) buildMatchResponse(ctx context.Context, n model.Notification) (*MatchResponseBundle, error) {
	match, err := r.deps.Matches.Match(ctx, n.MatchID)
	if err != nil {
		return nil, err
	}

	var (
		myTeam, oppTeam model.Team
		trophy          model.Trophy
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		myTeam, err = r.deps.Teams.Team(gctx, match.OpponentTeamID)
		return err
	})
	g.Go(func() (err error) {
		oppTeam, err = r.deps.Teams.Team(gctx, match.MyTeamID)
		return err
	})
	g.Go(func() (err error) {
		trophy, err = r.deps.Trophies.Trophy(gctx, match.TrophyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &MatchResponseBundle{
		NotificationID:   n.ID,
		Match:            match,
		Trophy:           trophy,
		MyTeam:           myTeam,
		OpponentTeam:     oppTeam,
		MyRoster:         r.resolvePlayers(ctx, myTeam.TeamPlayers),
		OpponentSelected: r.resolvePlayers(ctx, match.MyPlayers),
	}, nil
}

// buildRating assembles the opponent roster for the rating screen.
func (r *Router) buildRating(ctx context.Context, n model.Notification) (*RatingBundle, error) {
	team, err := r.deps.Teams.Team(ctx, n.TeamID)
	if err != nil {
		return nil, err
	}
	return &RatingBundle{
		NotificationID: n.ID,
		MatchID:        n.MatchID,
		TeamID:         n.TeamID,
		Players:        r.resolvePlayers(ctx, team.TeamPlayers),
	}, nil
}

// buildStats assembles the stats-submission bundle. The acting side is the
// team whose captain field equals the actor's email; an actor captaining
// neither team is refused before anything is mutated.
func (r *Router) buildStats(ctx context.Context, actorEmail string, n model.Notification) (*StatsBundle, error) {
	match, err := r.deps.Matches.Match(ctx, n.MatchID)
	if err != nil {
		return nil, err
	}

	var (
		myTeam, oppTeam model.Team
		trophy          model.Trophy
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		myTeam, err = r.deps.Teams.Team(gctx, match.MyTeamID)
		return err
	})
	g.Go(func() (err error) {
		oppTeam, err = r.deps.Teams.Team(gctx, match.OpponentTeamID)
		return err
	})
	g.Go(func() (err error) {
		trophy, err = r.deps.Trophies.Trophy(gctx, match.TrophyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := &StatsBundle{
		NotificationID: n.ID,
		Match:          match,
		Trophy:         trophy,
	}
	switch actorEmail {
	case myTeam.Captain:
		b.ActingTeam, b.OpposingTeam = myTeam, oppTeam
		b.ActingRoster = r.resolvePlayers(ctx, match.MyPlayers)
		b.OpposingRoster = r.resolvePlayers(ctx, match.OpponentPlayers)
		b.ActingIsCreator = true
	case oppTeam.Captain:
		b.ActingTeam, b.OpposingTeam = oppTeam, myTeam
		b.ActingRoster = r.resolvePlayers(ctx, match.OpponentPlayers)
		b.OpposingRoster = r.resolvePlayers(ctx, match.MyPlayers)
	default:
		return nil, ErrNotCaptain
	}
	return b, nil
}

// resolvePlayers fans out the email list into full player records. A
// member that fails to resolve becomes a placeholder instead of failing
// the batch; order is preserved.
func (r *Router) resolvePlayers(ctx context.Context, emails []string) []model.Player {
	out := make([]model.Player, len(emails))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveLimit)
	for i, email := range emails {
		g.Go(func() error {
			p, err := r.deps.Players.Player(gctx, email)
			if err != nil {
				r.log.Warn().Err(err).Str("player", email).Msg("roster member unresolved, using placeholder")
				p = model.DeletedPlayer(email)
			}
			out[i] = p
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors
	return out
}
