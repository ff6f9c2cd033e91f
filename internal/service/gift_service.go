package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"yuletide/internal/cache"
	dom "yuletide/internal/domain"
	"yuletide/internal/repo"

	"golang.org/x/sync/singleflight"
)

type GiftService struct {
	repo   repo.GiftRepo
	cache  *cache.GiftCache
	sf     singleflight.Group
	logger *slog.Logger
}

// NewGiftService creates a GiftService. If c is nil, caching is disabled.
func NewGiftService(r repo.GiftRepo, c *cache.GiftCache) *GiftService {
	return &GiftService{
		repo:   r,
		cache:  c,
		logger: slog.Default().With("component", "gifts"),
	}
}

// Prepare creates the schema if absent and seeds an empty table.
// Any error here should abort startup.
func (s *GiftService) Prepare(ctx context.Context, seed []dom.GiftFields) (int, error) {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return 0, fmt.Errorf("ensure schema: %w", err)
	}
	n, err := s.repo.SeedIfEmpty(ctx, seed)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	// The cache may outlive the database file.
	s.invalidateCache(ctx)
	return n, nil
}

func (s *GiftService) List(ctx context.Context) ([]dom.Gift, error) {
	if s.cache == nil {
		list, err := s.repo.List(ctx)
		if err != nil {
			return nil, storageErr("list gifts", err)
		}
		return list, nil
	}
	v, err, _ := s.sf.Do("list", func() (interface{}, error) {
		// The flight is shared by every waiting caller.
		ctx := context.WithoutCancel(ctx)

		list, err := s.cache.GetList(ctx)
		if err != nil {
			s.logger.Warn("cache read failed", "error", err)
		} else if list != nil {
			return list, nil
		}
		// Read before the store: a write committing after this point bumps
		// the generation and SetList drops the list.
		gen, genErr := s.cache.Generation(ctx)
		list, err = s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		if genErr != nil {
			s.logger.Warn("cache read failed", "error", genErr)
			return list, nil
		}
		if err := s.cache.SetList(ctx, gen, list); errors.Is(err, cache.ErrStale) {
			s.logger.Debug("gift list changed while loading, not cached")
		} else if err != nil {
			s.logger.Warn("cache write failed", "error", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, storageErr("list gifts", err)
	}
	return v.([]dom.Gift), nil
}

func (s *GiftService) GetByID(ctx context.Context, id int64) (dom.Gift, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Gift{}, storageErr("get gift", err)
	}
	return g, nil
}

func (s *GiftService) Create(ctx context.Context, f dom.GiftFields) (dom.Gift, error) {
	g, err := s.repo.Create(ctx, f)
	if err != nil {
		return dom.Gift{}, storageErr("create gift", err)
	}
	s.invalidateCache(ctx)
	return g, nil
}

// Update replaces all mutable fields of gift id.
func (s *GiftService) Update(ctx context.Context, id int64, f dom.GiftFields) (dom.Gift, error) {
	g, err := s.repo.Update(ctx, id, f)
	if err != nil {
		return dom.Gift{}, storageErr("update gift", err)
	}
	s.invalidateCache(ctx)
	return g, nil
}

func (s *GiftService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storageErr("delete gift", err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *GiftService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("cache invalidate failed", "error", err)
	}
}

// storageErr maps a missing row to ErrNotFound and everything else to
// ErrStorageUnavailable, keeping the cause in the chain for logging.
func storageErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, dom.ErrNotFound) {
		return dom.ErrNotFound
	}
	return fmt.Errorf("%s: %w: %w", op, dom.ErrStorageUnavailable, err)
}
