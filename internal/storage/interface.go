package storage

import (
	"context"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
)

// Storage defines the interface for the remote session store. Records live
// as whole collections; adds are idempotent upserts, updates patch an
// existing record and fail with the family's not-found error when the id
// is absent, deletes are idempotent. Batched variants exist where the
// engine writes several records in one operation.
type Storage interface {
	// Player operations
	GetAllPlayers(ctx context.Context) ([]*model.Player, error)
	AddPlayer(ctx context.Context, player *model.Player) error
	AddPlayers(ctx context.Context, players []*model.Player) error
	UpdatePlayer(ctx context.Context, id model.PlayerID, patch model.PlayerPatch) error
	UpdatePlayers(ctx context.Context, patches map[model.PlayerID]model.PlayerPatch) error
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	DeletePlayers(ctx context.Context, ids []model.PlayerID) error

	// Team operations
	GetAllTeams(ctx context.Context) ([]*model.Team, error)
	AddTeam(ctx context.Context, team *model.Team) error
	AddTeams(ctx context.Context, teams []*model.Team) error
	UpdateTeam(ctx context.Context, id model.TeamID, patch model.TeamPatch) error
	DeleteTeam(ctx context.Context, id model.TeamID) error
	DeleteTeams(ctx context.Context, ids []model.TeamID) error

	// Court operations
	GetAllCourts(ctx context.Context) ([]*model.Court, error)
	AddCourt(ctx context.Context, court *model.Court) error
	AddCourts(ctx context.Context, courts []*model.Court) error
	UpdateCourt(ctx context.Context, id model.CourtID, patch model.CourtPatch) error
	DeleteCourt(ctx context.Context, id model.CourtID) error
	DeleteCourts(ctx context.Context, ids []model.CourtID) error

	// Settings singleton
	GetSettings(ctx context.Context) (*model.Settings, error)
	SaveSettings(ctx context.Context, settings model.Settings) error

	// Admin credential
	GetAdminCredential(ctx context.Context) (*model.AdminCredential, error)
	SaveAdminCredential(ctx context.Context, cred *model.AdminCredential) error

	// Audit log
	AppendAudit(ctx context.Context, entry *model.AuditEntry) error
	GetAuditLog(ctx context.Context) ([]*model.AuditEntry, error)
	ClearAuditLog(ctx context.Context) error
}
