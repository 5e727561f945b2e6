package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) GetAllPlayers(ctx context.Context) ([]*model.Player, error) {
	keys, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // record may have expired
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // skip invalid data
		}
		players = append(players, &player)
	}
	return players, nil
}

func (s *Storage) AddPlayer(ctx context.Context, player *model.Player) error {
	return s.AddPlayers(ctx, []*model.Player{player})
}

func (s *Storage) AddPlayers(ctx context.Context, players []*model.Player) error {
	if len(players) == 0 {
		return nil
	}

	// Pipeline record writes with the index update
	pipe := s.client.Pipeline()
	for _, player := range players {
		data, err := json.Marshal(player)
		if err != nil {
			return err
		}
		key := playerKey(player.ID)
		pipe.Set(ctx, key, data, s.cfg.SessionTTL)
		pipe.SAdd(ctx, playersIndexKey(), key)
	}
	pipe.Expire(ctx, playersIndexKey(), s.cfg.SessionTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) UpdatePlayer(ctx context.Context, id model.PlayerID, patch model.PlayerPatch) error {
	return s.UpdatePlayers(ctx, map[model.PlayerID]model.PlayerPatch{id: patch})
}

func (s *Storage) UpdatePlayers(ctx context.Context, patches map[model.PlayerID]model.PlayerPatch) error {
	if len(patches) == 0 {
		return nil
	}

	ids := make([]model.PlayerID, 0, len(patches))
	keys := make([]string, 0, len(patches))
	for id := range patches {
		ids = append(ids, id)
		keys = append(keys, playerKey(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for i, val := range values {
		if val == nil {
			return model.ErrPlayerNotFound
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			return err
		}
		patch := patches[ids[i]]
		patch.Apply(&player)
		data, err := json.Marshal(&player)
		if err != nil {
			return err
		}
		pipe.Set(ctx, keys[i], data, s.cfg.SessionTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return s.DeletePlayers(ctx, []model.PlayerID{id})
}

func (s *Storage) DeletePlayers(ctx context.Context, ids []model.PlayerID) error {
	if len(ids) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, id := range ids {
		key := playerKey(id)
		pipe.Del(ctx, key)
		pipe.SRem(ctx, playersIndexKey(), key)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Team operations

func (s *Storage) GetAllTeams(ctx context.Context) ([]*model.Team, error) {
	keys, err := s.client.SMembers(ctx, teamsIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Team{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	teams := make([]*model.Team, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var team model.Team
		if err := json.Unmarshal([]byte(val.(string)), &team); err != nil {
			continue
		}
		teams = append(teams, &team)
	}
	return teams, nil
}

func (s *Storage) AddTeam(ctx context.Context, team *model.Team) error {
	return s.AddTeams(ctx, []*model.Team{team})
}

func (s *Storage) AddTeams(ctx context.Context, teams []*model.Team) error {
	if len(teams) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, team := range teams {
		data, err := json.Marshal(team)
		if err != nil {
			return err
		}
		key := teamKey(team.ID)
		pipe.Set(ctx, key, data, s.cfg.SessionTTL)
		pipe.SAdd(ctx, teamsIndexKey(), key)
	}
	pipe.Expire(ctx, teamsIndexKey(), s.cfg.SessionTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) UpdateTeam(ctx context.Context, id model.TeamID, patch model.TeamPatch) error {
	data, err := s.client.Get(ctx, teamKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrTeamNotFound
		}
		return err
	}

	var team model.Team
	if err := json.Unmarshal(data, &team); err != nil {
		return err
	}
	patch.Apply(&team)

	updated, err := json.Marshal(&team)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, teamKey(id), updated, s.cfg.SessionTTL).Err()
}

func (s *Storage) DeleteTeam(ctx context.Context, id model.TeamID) error {
	return s.DeleteTeams(ctx, []model.TeamID{id})
}

func (s *Storage) DeleteTeams(ctx context.Context, ids []model.TeamID) error {
	if len(ids) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, id := range ids {
		key := teamKey(id)
		pipe.Del(ctx, key)
		pipe.SRem(ctx, teamsIndexKey(), key)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Court operations

func (s *Storage) GetAllCourts(ctx context.Context) ([]*model.Court, error) {
	keys, err := s.client.SMembers(ctx, courtsIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Court{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	courts := make([]*model.Court, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var court model.Court
		if err := json.Unmarshal([]byte(val.(string)), &court); err != nil {
			continue
		}
		courts = append(courts, &court)
	}
	return courts, nil
}

func (s *Storage) AddCourt(ctx context.Context, court *model.Court) error {
	return s.AddCourts(ctx, []*model.Court{court})
}

func (s *Storage) AddCourts(ctx context.Context, courts []*model.Court) error {
	if len(courts) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, court := range courts {
		data, err := json.Marshal(court)
		if err != nil {
			return err
		}
		key := courtKey(court.ID)
		pipe.Set(ctx, key, data, s.cfg.SessionTTL)
		pipe.SAdd(ctx, courtsIndexKey(), key)
	}
	pipe.Expire(ctx, courtsIndexKey(), s.cfg.SessionTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) UpdateCourt(ctx context.Context, id model.CourtID, patch model.CourtPatch) error {
	data, err := s.client.Get(ctx, courtKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrCourtNotFound
		}
		return err
	}

	var court model.Court
	if err := json.Unmarshal(data, &court); err != nil {
		return err
	}
	patch.Apply(&court)

	updated, err := json.Marshal(&court)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, courtKey(id), updated, s.cfg.SessionTTL).Err()
}

func (s *Storage) DeleteCourt(ctx context.Context, id model.CourtID) error {
	return s.DeleteCourts(ctx, []model.CourtID{id})
}

func (s *Storage) DeleteCourts(ctx context.Context, ids []model.CourtID) error {
	if len(ids) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, id := range ids {
		key := courtKey(id)
		pipe.Del(ctx, key)
		pipe.SRem(ctx, courtsIndexKey(), key)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Settings operations

func (s *Storage) GetSettings(ctx context.Context) (*model.Settings, error) {
	data, err := s.client.Get(ctx, settingsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSettingsNotFound
		}
		return nil, err
	}

	var settings model.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Storage) SaveSettings(ctx context.Context, settings model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, settingsKey(), data, s.cfg.SessionTTL).Err()
}

// Admin credential operations

func (s *Storage) GetAdminCredential(ctx context.Context) (*model.AdminCredential, error) {
	data, err := s.client.Get(ctx, adminKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCredentialNotFound
		}
		return nil, err
	}

	var cred model.AdminCredential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (s *Storage) SaveAdminCredential(ctx context.Context, cred *model.AdminCredential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	// No TTL: the credential outlives any one session
	return s.client.Set(ctx, adminKey(), data, 0).Err()
}

// Audit operations

func (s *Storage) AppendAudit(ctx context.Context, entry *model.AuditEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, auditKey(), data)
	pipe.Expire(ctx, auditKey(), s.cfg.SessionTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAuditLog(ctx context.Context) ([]*model.AuditEntry, error) {
	values, err := s.client.LRange(ctx, auditKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*model.AuditEntry, 0, len(values))
	for _, val := range values {
		var entry model.AuditEntry
		if err := json.Unmarshal([]byte(val), &entry); err != nil {
			continue
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}

func (s *Storage) ClearAuditLog(ctx context.Context) error {
	return s.client.Del(ctx, auditKey()).Err()
}
