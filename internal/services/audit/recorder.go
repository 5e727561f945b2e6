package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/clock"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/storage"
)

// Entry types recorded by the controllers
const (
	TypePlayerAdded     = "player_added"
	TypePlayersAdded    = "players_added"
	TypePlayerUpdated   = "player_updated"
	TypePlayerRemoved   = "player_removed"
	TypePlayersRemoved  = "players_removed"
	TypePlayerState     = "player_state_changed"
	TypeAutoMatch       = "auto_match"
	TypeTeamFormed      = "team_formed"
	TypeGameStarted     = "game_started"
	TypeGamesStarted    = "games_started"
	TypeGameEnded       = "game_ended"
	TypeMemberSwapped   = "member_swapped"
	TypeMemberRemoved   = "member_removed"
	TypeCourtPaused     = "court_paused"
	TypeCourtResumed    = "court_resumed"
	TypeSettingsUpdated = "settings_updated"
	TypeSessionReset    = "session_reset"
	TypeAdminPassword   = "admin_password_changed"
)

// Recorder appends the audit trail of mutating calls
type Recorder struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewRecorder creates an audit recorder
func NewRecorder(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Recorder {
	return &Recorder{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Record appends one entry. Failures are logged, never surfaced; a
// missed audit line must not fail the operation it describes.
func (r *Recorder) Record(ctx context.Context, entryType string, payload map[string]any) {
	entry := &model.AuditEntry{
		ID:      uuid.NewString(),
		Type:    entryType,
		Payload: payload,
		At:      r.clock.Now(),
	}
	if err := r.storage.AppendAudit(ctx, entry); err != nil {
		r.logger.Warn("audit append failed",
			slog.String("type", entryType),
			slog.String("error", err.Error()),
		)
	}
}

// Log returns the audit trail oldest first
func (r *Recorder) Log(ctx context.Context) ([]*model.AuditEntry, error) {
	return r.storage.GetAuditLog(ctx)
}

// Clear wipes the audit trail. Only a full session reset does this.
func (r *Recorder) Clear(ctx context.Context) error {
	return r.storage.ClearAuditLog(ctx)
}

// RecorderInterface defines the audit recorder API
type RecorderInterface interface {
	Record(ctx context.Context, entryType string, payload map[string]any)
	Log(ctx context.Context) ([]*model.AuditEntry, error)
	Clear(ctx context.Context) error
}

var _ RecorderInterface = (*Recorder)(nil)
