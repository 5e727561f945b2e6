package memory

import (
	"context"
	"sync"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are stored by value so callers never share memory with it.
type Storage struct {
	mu sync.RWMutex

	players  map[model.PlayerID]model.Player
	teams    map[model.TeamID]model.Team
	courts   map[model.CourtID]model.Court
	settings *model.Settings
	admin    *model.AdminCredential
	audit    []model.AuditEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]model.Player),
		teams:   make(map[model.TeamID]model.Team),
		courts:  make(map[model.CourtID]model.Court),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) GetAllPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		cp := p.Clone()
		players = append(players, &cp)
	}
	return players, nil
}

func (s *Storage) AddPlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player.Clone()
	return nil
}

func (s *Storage) AddPlayers(ctx context.Context, players []*model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range players {
		s.players[p.ID] = p.Clone()
	}
	return nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, id model.PlayerID, patch model.PlayerPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatePlayerLocked(id, patch)
}

func (s *Storage) UpdatePlayers(ctx context.Context, patches map[model.PlayerID]model.PlayerPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, patch := range patches {
		if err := s.updatePlayerLocked(id, patch); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) updatePlayerLocked(id model.PlayerID, patch model.PlayerPatch) error {
	p, ok := s.players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	patch.Apply(&p)
	s.players[id] = p.Clone()
	return nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

func (s *Storage) DeletePlayers(ctx context.Context, ids []model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.players, id)
	}
	return nil
}

// Team operations

func (s *Storage) GetAllTeams(ctx context.Context) ([]*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]*model.Team, 0, len(s.teams))
	for _, t := range s.teams {
		cp := t.Clone()
		teams = append(teams, &cp)
	}
	return teams, nil
}

func (s *Storage) AddTeam(ctx context.Context, team *model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = team.Clone()
	return nil
}

func (s *Storage) AddTeams(ctx context.Context, teams []*model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range teams {
		s.teams[t.ID] = t.Clone()
	}
	return nil
}

func (s *Storage) UpdateTeam(ctx context.Context, id model.TeamID, patch model.TeamPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[id]
	if !ok {
		return model.ErrTeamNotFound
	}
	patch.Apply(&t)
	s.teams[id] = t.Clone()
	return nil
}

func (s *Storage) DeleteTeam(ctx context.Context, id model.TeamID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.teams, id)
	return nil
}

func (s *Storage) DeleteTeams(ctx context.Context, ids []model.TeamID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.teams, id)
	}
	return nil
}

// Court operations

func (s *Storage) GetAllCourts(ctx context.Context) ([]*model.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courts := make([]*model.Court, 0, len(s.courts))
	for _, c := range s.courts {
		cp := c
		courts = append(courts, &cp)
	}
	return courts, nil
}

func (s *Storage) AddCourt(ctx context.Context, court *model.Court) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courts[court.ID] = *court
	return nil
}

func (s *Storage) AddCourts(ctx context.Context, courts []*model.Court) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range courts {
		s.courts[c.ID] = *c
	}
	return nil
}

func (s *Storage) UpdateCourt(ctx context.Context, id model.CourtID, patch model.CourtPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courts[id]
	if !ok {
		return model.ErrCourtNotFound
	}
	patch.Apply(&c)
	s.courts[id] = c
	return nil
}

func (s *Storage) DeleteCourt(ctx context.Context, id model.CourtID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.courts, id)
	return nil
}

func (s *Storage) DeleteCourts(ctx context.Context, ids []model.CourtID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.courts, id)
	}
	return nil
}

// Settings operations

func (s *Storage) GetSettings(ctx context.Context) (*model.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, model.ErrSettingsNotFound
	}
	cp := *s.settings
	return &cp, nil
}

func (s *Storage) SaveSettings(ctx context.Context, settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}

// Admin credential operations

func (s *Storage) GetAdminCredential(ctx context.Context) (*model.AdminCredential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.admin == nil {
		return nil, model.ErrCredentialNotFound
	}
	cp := *s.admin
	return &cp, nil
}

func (s *Storage) SaveAdminCredential(ctx context.Context, cred *model.AdminCredential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *cred
	s.admin = &cp
	return nil
}

// Audit operations

func (s *Storage) AppendAudit(ctx context.Context, entry *model.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append(s.audit, *entry)
	return nil
}

func (s *Storage) GetAuditLog(ctx context.Context) ([]*model.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]*model.AuditEntry, 0, len(s.audit))
	for i := range s.audit {
		cp := s.audit[i]
		entries = append(entries, &cp)
	}
	return entries, nil
}

func (s *Storage) ClearAuditLog(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = nil
	return nil
}
