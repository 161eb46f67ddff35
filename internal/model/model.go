// Package model contains the entity shapes received from the Football Hub
// backend. The client never owns these records; it fetches, displays and
// mutates them through the API, so the package stays lean data shapes
// without behavior.
package model

import (
	"strings"
	"time"
)

// Player positions as the backend reports them.
const (
	PositionGoalkeeper = "goalkeeper"
	PositionDefender   = "defender"
	PositionMidfielder = "midfielder"
	PositionForward    = "forward"
)

// motmPrefix marks achievement tokens awarded for man-of-the-match honors,
// as opposed to ordinary trophy ids.
const motmPrefix = "MOTM"

// Player is identified by email across the whole API surface.
type Player struct {
	Email         string         `json:"email"`
	Name          string         `json:"name"`
	Position      string         `json:"position"`
	Skills        map[string]int `json:"skills,omitempty"` // per-position attributes on a 0-100 scale
	Matches       int            `json:"matches"`
	Goals         int            `json:"goals"`
	Assists       int            `json:"assists"`
	Wins          int            `json:"wins"`
	Draws         int            `json:"draws"`
	Losses        int            `json:"losses"`
	YellowCards   int            `json:"yellowCards"`
	RedCards      int            `json:"redCards"`
	Points        int            `json:"points"` // spendable currency balance
	AuraPoints    int            `json:"auraPoints"`
	RatingAvg     float64        `json:"ratingAvg"`
	Achievements  []string       `json:"achievements,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
}

// IsMOTMToken reports whether an achievement token is a man-of-the-match
// award rather than a trophy id.
func IsMOTMToken(token string) bool {
	return strings.HasPrefix(token, motmPrefix)
}

// DeletedPlayer is the placeholder used when a roster member can no longer
// be resolved. Batch fetches substitute it instead of aborting the batch.
func DeletedPlayer(email string) Player {
	return Player{Email: email, Name: "Deleted Player"}
}

// Team groups players under a single captain; the captain is the only
// member authorized to manage the team and its matches.
type Team struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	FoundedYear  int      `json:"foundedYear"`
	LogoURL      string   `json:"logoUrl"`
	Captain      string   `json:"captain"` // player email
	TeamPlayers  []string `json:"teamPlayers"`
	Wins         int      `json:"wins"`
	Draws        int      `json:"draws"`
	Losses       int      `json:"losses"`
	RatingAvg    float64  `json:"ratingAvg"`
	Achievements []string `json:"achievements,omitempty"`
}

// HasPlayer reports whether an email appears in the team roster.
func (t Team) HasPlayer(email string) bool {
	for _, p := range t.TeamPlayers {
		if p == email {
			return true
		}
	}
	return false
}

// Match statuses.
const (
	MatchUpcoming  = "upcoming"
	MatchLive      = "live"
	MatchCompleted = "completed"
	MatchFinal     = "final"
)

// Venue is where a match takes place.
type Venue struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// StatLine holds one player's contribution to a match.
type StatLine struct {
	Player      string `json:"player"` // email
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	YellowCards int    `json:"yellowCards"`
	RedCards    int    `json:"redCards"`
}

// MatchResult is present once the match has been finalized.
type MatchResult struct {
	Winner   string `json:"winner"` // team id, empty on a draw
	MyGoals  int    `json:"myGoals"`
	OppGoals int    `json:"oppGoals"`
	MOTM     string `json:"motm"` // player email
}

// Match as stored by the backend. "My" and "opponent" are from the
// perspective of the team that created the match; invited teams see the
// same record and swap sides client-side.
type Match struct {
	ID              string       `json:"id"`
	MyTeamID        string       `json:"myTeamId"`
	OpponentTeamID  string       `json:"opponentTeamId"`
	TrophyID        string       `json:"trophyId"`
	Status          string       `json:"status"`
	Location        Venue        `json:"location"`
	StartTime       time.Time    `json:"startTime"`
	EndTime         time.Time    `json:"endTime"`
	MyPlayers       []string     `json:"myPlayers"`
	OpponentPlayers []string     `json:"opponentPlayers"`
	MyTeamStats     []StatLine   `json:"myTeamStats,omitempty"`
	OppTeamStats    []StatLine   `json:"oppTeamStats,omitempty"`
	Result          *MatchResult `json:"result,omitempty"`
}

// TrophyDistribution is the win/lose percentage split of the prize pool.
type TrophyDistribution struct {
	Win  int `json:"win"`
	Lose int `json:"lose"`
}

// TrophyBonuses are flat point awards on top of the distribution.
type TrophyBonuses struct {
	Goal   int `json:"goal"`
	Assist int `json:"assist"`
	MOTM   int `json:"motm"`
}

// Trophy defines the stake a match is played for. Fee is the total point
// cost split between the two teams.
type Trophy struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Icon         string             `json:"icon"`
	Fee          int                `json:"fee"`
	Distribution TrophyDistribution `json:"distribution"`
	Bonuses      TrophyBonuses      `json:"bonuses"`
}

// Trainer offers bookable training sessions, priced in cash and points.
type Trainer struct {
	ID          string  `json:"id"`
	Owner       string  `json:"owner"` // player email
	Name        string  `json:"name"`
	Speciality  string  `json:"speciality"`
	Location    string  `json:"location"`
	PriceCash   int     `json:"priceCash"`
	PricePoints int     `json:"pricePoints"`
	Available   bool    `json:"available"`
	RatingAvg   float64 `json:"ratingAvg"`
}

// StoreItem is a listing on the player-to-player store.
type StoreItem struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"` // player email
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	PriceCash   int    `json:"priceCash"`
	PricePoints int    `json:"pricePoints"`
	Sold        bool   `json:"sold"`
}

// LeaderboardEntry is one row of the global leaderboard.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Team   string `json:"team,omitempty"`
	Points int    `json:"points"`
	Wins   int    `json:"wins"`
}

// GlobalStats is the aggregate counter set behind GET /stats.
type GlobalStats struct {
	Players  int `json:"players"`
	Teams    int `json:"teams"`
	Matches  int `json:"matches"`
	Trophies int `json:"trophies"`
}
