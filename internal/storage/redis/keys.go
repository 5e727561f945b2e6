package redis

import (
	"fmt"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
)

// Key prefix for all session data
const keyPrefix = "minton"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// teamKey returns the Redis key for a Team
func teamKey(id model.TeamID) string {
	return fmt.Sprintf("%s:team:%s", keyPrefix, id)
}

// teamsIndexKey returns the Redis key for the SET of all team keys
func teamsIndexKey() string {
	return fmt.Sprintf("%s:idx:teams", keyPrefix)
}

// courtKey returns the Redis key for a Court
func courtKey(id model.CourtID) string {
	return fmt.Sprintf("%s:court:%s", keyPrefix, id)
}

// courtsIndexKey returns the Redis key for the SET of all court keys
func courtsIndexKey() string {
	return fmt.Sprintf("%s:idx:courts", keyPrefix)
}

// settingsKey returns the Redis key for the settings singleton
func settingsKey() string {
	return fmt.Sprintf("%s:settings", keyPrefix)
}

// adminKey returns the Redis key for the admin credential
func adminKey() string {
	return fmt.Sprintf("%s:admin", keyPrefix)
}

// auditKey returns the Redis key for the audit log LIST
func auditKey() string {
	return fmt.Sprintf("%s:audit", keyPrefix)
}
