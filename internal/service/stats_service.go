package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"unistay/api/internal/catalog"
	"unistay/api/internal/models"
)

const (
	statsCacheKey = "stats:platform"
	statsCacheTTL = time.Hour // generous; the scheduler refreshes far more often
)

// PlatformStats backs the stat cards on the agent and admin dashboards.
type PlatformStats struct {
	TotalUsers           int64 `json:"totalUsers"`
	Students             int64 `json:"students"`
	Agents               int64 `json:"agents"`
	PendingVerifications int64 `json:"pendingVerifications"`
	TotalProperties      int64 `json:"totalProperties"`
}

// StatsStore is the slice of the user repository statistics need.
type StatsStore interface {
	CountByRole(ctx context.Context) (map[models.Role]int64, error)
	CountUnverifiedAgents(ctx context.Context) (int64, error)
}

type StatsService struct {
	users StatsStore
	cache *redis.Client
	log   zerolog.Logger
}

func NewStatsService(users StatsStore, cache *redis.Client, log zerolog.Logger) *StatsService {
	return &StatsService{
		users: users,
		cache: cache,
		log:   log,
	}
}

// Snapshot returns the most recently cached statistics. A cold or
// unreachable cache yields zeroes so the dashboards still render.
func (s *StatsService) Snapshot(ctx context.Context) PlatformStats {
	if s.cache == nil {
		return PlatformStats{}
	}

	raw, err := s.cache.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return PlatformStats{}
	}

	var stats PlatformStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		s.log.Warn().Err(err).Msg("corrupt cached stats, serving zeroes")
		return PlatformStats{}
	}
	return stats
}

// Refresh recomputes the statistics from the store and caches them.
func (s *StatsService) Refresh(ctx context.Context) error {
	if s.users == nil || s.cache == nil {
		return nil
	}

	counts, err := s.users.CountByRole(ctx)
	if err != nil {
		return err
	}
	pending, err := s.users.CountUnverifiedAgents(ctx)
	if err != nil {
		return err
	}

	stats := PlatformStats{
		TotalUsers:           counts[models.RoleStudent] + counts[models.RoleAgent] + counts[models.RoleAdmin],
		Students:             counts[models.RoleStudent],
		Agents:               counts[models.RoleAgent],
		PendingVerifications: pending,
		TotalProperties:      int64(len(catalog.Listings())),
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err()
}
