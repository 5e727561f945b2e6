package request

// AddPlayerRequest is the request body for adding players. Either a
// single named (and optionally ranked) player, or a bulk list of names.
type AddPlayerRequest struct {
	Name   string   `json:"name,omitempty"`
	Rank   string   `json:"rank,omitempty"`
	Gender string   `json:"gender,omitempty"`
	Names  []string `json:"names,omitempty"`
}

// UpdatePlayerRequest is the request body for editing a player. Absent
// fields are left unchanged.
type UpdatePlayerRequest struct {
	Name   *string `json:"name,omitempty"`
	Rank   *string `json:"rank,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

// SetPlayerStateRequest is the request body for a manual state change
type SetPlayerStateRequest struct {
	State string `json:"state"`
}

// RemovePlayersRequest is the request body for bulk player removal
type RemovePlayersRequest struct {
	PlayerIDs []string `json:"player_ids"`
}

// FormTeamRequest is the request body for manual team formation
type FormTeamRequest struct {
	PlayerIDs []string `json:"player_ids"`
}

// StartTeamRequest is the request body for starting a queued team. An
// empty court id takes the lowest free court.
type StartTeamRequest struct {
	CourtID string `json:"court_id,omitempty"`
}

// StartOnCourtRequest is the request body for starting a game on a
// specific court
type StartOnCourtRequest struct {
	TeamID string `json:"team_id"`
}

// SwapMemberRequest is the request body for swapping a team member
type SwapMemberRequest struct {
	Out string `json:"out"`
	In  string `json:"in"`
}

// RemoveMemberRequest is the request body for removing a team member
type RemoveMemberRequest struct {
	PlayerID string `json:"player_id"`
}

// UpdateSettingsRequest is the request body for session settings. A
// zero duration keeps the current one.
type UpdateSettingsRequest struct {
	TeamSize            int `json:"team_size"`
	CourtCount          int `json:"court_count"`
	GameDurationMinutes int `json:"game_duration_minutes,omitempty"`
}

// SetPasswordRequest is the request body for changing the admin key
type SetPasswordRequest struct {
	Password string `json:"password"`
}
