package response

import (
	"time"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
)

// Player represents a participant in API responses
type Player struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	State         string     `json:"state"`
	Rank          string     `json:"rank,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	GameCount     int        `json:"game_count"`
	LastGameEndAt *time.Time `json:"last_game_end_at,omitempty"`
	JoinedAt      time.Time  `json:"joined_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:            string(p.ID),
		Name:          p.Name,
		State:         string(p.State),
		Rank:          string(p.Rank),
		Gender:        string(p.Gender),
		GameCount:     p.GameCount,
		LastGameEndAt: p.LastGameEndAt,
		JoinedAt:      p.JoinedAt,
	}
}

// PlayerList wraps the roster
type PlayerList struct {
	Players []Player `json:"players"`
}

// PlayerListFromModel converts a roster slice
func PlayerListFromModel(players []*model.Player) PlayerList {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return PlayerList{Players: out}
}

// TeamMember is a team member with its display name resolved
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Team represents a formed team in API responses
type Team struct {
	ID        string       `json:"id"`
	State     string       `json:"state"`
	Members   []TeamMember `json:"members"`
	CourtID   string       `json:"court_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	StartedAt *time.Time   `json:"started_at,omitempty"`
}

// TeamFromModel converts a model.Team, resolving member names through
// the roster
func TeamFromModel(t *model.Team, roster map[model.PlayerID]*model.Player) Team {
	members := make([]TeamMember, len(t.Members))
	for i, id := range t.Members {
		member := TeamMember{ID: string(id)}
		if p, ok := roster[id]; ok {
			member.Name = p.Name
		}
		members[i] = member
	}
	return Team{
		ID:        string(t.ID),
		State:     string(t.State),
		Members:   members,
		CourtID:   string(t.CourtID),
		CreatedAt: t.CreatedAt,
		StartedAt: t.StartedAt,
	}
}

// TeamList wraps the active teams
type TeamList struct {
	Teams []Team `json:"teams"`
}

// TeamListFromModel converts a team slice
func TeamListFromModel(teams []*model.Team, roster map[model.PlayerID]*model.Player) TeamList {
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = TeamFromModel(t, roster)
	}
	return TeamList{Teams: out}
}

// Court represents a court slot in API responses
type Court struct {
	ID             string `json:"id"`
	Index          int    `json:"index"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	TeamID         string `json:"team_id,omitempty"`
	Paused         bool   `json:"paused,omitempty"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
}

// CourtFromModel converts a model.Court. Elapsed time is passed in
// because it is derived, not stored.
func CourtFromModel(c *model.Court, elapsed time.Duration) Court {
	return Court{
		ID:             string(c.ID),
		Index:          c.Index,
		Name:           c.Name,
		Status:         string(c.Status),
		TeamID:         string(c.CurrentTeam),
		Paused:         c.Paused,
		ElapsedSeconds: int(elapsed / time.Second),
	}
}

// CourtList wraps the court pool
type CourtList struct {
	Courts []Court `json:"courts"`
}

// Settings represents session settings in API responses
type Settings struct {
	TeamSize            int `json:"team_size"`
	CourtCount          int `json:"court_count"`
	GameDurationMinutes int `json:"game_duration_minutes"`
}

// SettingsFromModel converts model.Settings
func SettingsFromModel(s *model.Settings) Settings {
	return Settings{
		TeamSize:            s.TeamSize,
		CourtCount:          s.CourtCount,
		GameDurationMinutes: int(s.GameDuration / time.Minute),
	}
}

// Session is the session overview
type Session struct {
	Settings     Settings `json:"settings"`
	PlayerCount  int      `json:"player_count"`
	QueuedTeams  int      `json:"queued_teams"`
	GamesRunning int      `json:"games_running"`
}

// AuditEntry represents one audit line in API responses
type AuditEntry struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
	At      time.Time      `json:"at"`
}

// AuditEntryFromModel converts a model.AuditEntry
func AuditEntryFromModel(e *model.AuditEntry) AuditEntry {
	return AuditEntry{
		ID:      e.ID,
		Type:    e.Type,
		Payload: e.Payload,
		At:      e.At,
	}
}

// AuditLog wraps the audit trail
type AuditLog struct {
	Entries []AuditEntry `json:"entries"`
}

// AuditLogFromModel converts the audit trail
func AuditLogFromModel(entries []*model.AuditEntry) AuditLog {
	out := make([]AuditEntry, len(entries))
	for i, e := range entries {
		out[i] = AuditEntryFromModel(e)
	}
	return AuditLog{Entries: out}
}
