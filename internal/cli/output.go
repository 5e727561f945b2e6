package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case Team:
		o.printTeam(v)
	case TeamList:
		o.printTeamList(v)
	case CourtList:
		o.printCourtList(v)
	case Session:
		o.printSession(v)
	case Settings:
		o.printSettings(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	State     string `json:"state"`
	Rank      string `json:"rank,omitempty"`
	Gender    string `json:"gender,omitempty"`
	GameCount int    `json:"game_count"`
}

// PlayerList response type
type PlayerList struct {
	Players []Player `json:"players"`
}

// TeamMember response type
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Team response type
type Team struct {
	ID      string       `json:"id"`
	State   string       `json:"state"`
	Members []TeamMember `json:"members"`
	CourtID string       `json:"court_id,omitempty"`
}

// TeamList response type
type TeamList struct {
	Teams []Team `json:"teams"`
}

// Court response type
type Court struct {
	ID             string `json:"id"`
	Index          int    `json:"index"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	TeamID         string `json:"team_id,omitempty"`
	Paused         bool   `json:"paused,omitempty"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
}

// CourtList response type
type CourtList struct {
	Courts []Court `json:"courts"`
}

// Settings response type
type Settings struct {
	TeamSize            int `json:"team_size"`
	CourtCount          int `json:"court_count"`
	GameDurationMinutes int `json:"game_duration_minutes"`
}

// Session response type
type Session struct {
	Settings     Settings `json:"settings"`
	PlayerCount  int      `json:"player_count"`
	QueuedTeams  int      `json:"queued_teams"`
	GamesRunning int      `json:"games_running"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("State: %s\n", p.State)
	if p.Rank != "" {
		fmt.Printf("Rank: %s\n", p.Rank)
	}
	if p.Gender != "" {
		fmt.Printf("Gender: %s\n", p.Gender)
	}
	fmt.Printf("Games: %d\n", p.GameCount)
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Printf("Players (%d):\n", len(l.Players))
	for _, p := range l.Players {
		extra := ""
		if p.Rank != "" {
			extra = ", rank " + p.Rank
		}
		fmt.Printf("  - %s (%s) - %s, %d games%s\n", p.Name, p.ID, p.State, p.GameCount, extra)
	}
}

func (o *Output) printTeam(t Team) {
	fmt.Printf("Team: %s\n", t.ID)
	fmt.Printf("State: %s\n", t.State)
	if t.CourtID != "" {
		fmt.Printf("Court: %s\n", t.CourtID)
	}
	fmt.Printf("Members (%d):\n", len(t.Members))
	for _, m := range t.Members {
		fmt.Printf("  - %s (%s)\n", m.Name, m.ID)
	}
}

func (o *Output) printTeamList(l TeamList) {
	fmt.Printf("Teams (%d):\n", len(l.Teams))
	for _, t := range l.Teams {
		names := make([]string, len(t.Members))
		for i, m := range t.Members {
			names[i] = m.Name
		}
		line := fmt.Sprintf("  - %s [%s] %s", t.ID, t.State, strings.Join(names, ", "))
		if t.CourtID != "" {
			line += " on court " + t.CourtID
		}
		fmt.Println(line)
	}
}

func (o *Output) printCourtList(l CourtList) {
	fmt.Printf("Courts (%d):\n", len(l.Courts))
	for _, c := range l.Courts {
		if c.Status != "occupied" {
			fmt.Printf("  %d. %s [available]\n", c.Index, c.Name)
			continue
		}
		elapsed := (time.Duration(c.ElapsedSeconds) * time.Second).String()
		paused := ""
		if c.Paused {
			paused = ", paused"
		}
		fmt.Printf("  %d. %s [occupied] team %s - %s%s\n", c.Index, c.Name, c.TeamID, elapsed, paused)
	}
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Players: %d\n", s.PlayerCount)
	fmt.Printf("Queued Teams: %d\n", s.QueuedTeams)
	fmt.Printf("Games Running: %d\n", s.GamesRunning)
	o.printSettings(s.Settings)
}

func (o *Output) printSettings(s Settings) {
	fmt.Printf("Team Size: %d\n", s.TeamSize)
	fmt.Printf("Court Count: %d\n", s.CourtCount)
	fmt.Printf("Game Duration: %d minutes\n", s.GameDurationMinutes)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
