package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CacheKey ключ redis со списком праздников
const CacheKey = "availability:holidays:v1"

// Cache календарь праздников с кэшированием в redis.
// Без redis (client == nil) каждый запрос читает праздники из репозитория.
// Ошибки redis не прерывают запрос: календарь читается из репозитория
type Cache struct {
	client         RedisClient
	repo           HolidayRepository
	ttl            time.Duration
	considerGlobal bool
	metrics        *metrics.Metrics
	logger         Logger
}

// NewCache создает кэш. ttl <= 0 означает domain.DefaultHolidayCacheTTL.
// considerGlobal задает флаг Enabled возвращаемого календаря
func NewCache(client RedisClient, repo HolidayRepository, ttl time.Duration, considerGlobal bool, m *metrics.Metrics, logger Logger) *Cache {
	if ttl <= 0 {
		ttl = domain.DefaultHolidayCacheTTL * time.Second
	}
	return &Cache{
		client:         client,
		repo:           repo,
		ttl:            ttl,
		considerGlobal: considerGlobal,
		metrics:        m,
		logger:         logger,
	}
}

// GetCalendar возвращает глобальный календарь праздников
func (c *Cache) GetCalendar(ctx context.Context) (*domain.HolidayCalendar, error) {
	if dates, ok := c.readCache(ctx); ok {
		c.observe("hit")
		return domain.NewHolidayCalendar(c.considerGlobal, dates), nil
	}
	c.observe("miss")

	dates, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.writeCache(ctx, dates)

	return domain.NewHolidayCalendar(c.considerGlobal, dates), nil
}

// Refresh перечитывает праздники из репозитория и обновляет кэш
func (c *Cache) Refresh(ctx context.Context) error {
	dates, err := c.load(ctx)
	if err != nil {
		return err
	}
	c.writeCache(ctx, dates)
	c.logger.Info("HolidayCache: refreshed %d holidays", len(dates))
	return nil
}

// Invalidate удаляет список праздников из кэша
func (c *Cache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, CacheKey).Err(); err != nil {
		return fmt.Errorf("holiday.cache: invalidate: %w", err)
	}
	return nil
}

func (c *Cache) load(ctx context.Context) ([]types.Date, error) {
	dates, err := c.repo.ListDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadHolidays, err)
	}
	return dates, nil
}

func (c *Cache) readCache(ctx context.Context) ([]types.Date, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, CacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.observe("error")
		c.logger.Warn("HolidayCache: redis get failed: %v", err)
		return nil, false
	}

	var dates []types.Date
	if err := json.Unmarshal(data, &dates); err != nil {
		c.logger.Warn("HolidayCache: corrupted cache entry: %v", err)
		return nil, false
	}
	return dates, true
}

func (c *Cache) writeCache(ctx context.Context, dates []types.Date) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(dates)
	if err != nil {
		c.logger.Error("HolidayCache: marshal holidays: %v", err)
		return
	}
	if err := c.client.Set(ctx, CacheKey, data, c.ttl).Err(); err != nil {
		c.observe("error")
		c.logger.Warn("HolidayCache: redis set failed: %v", err)
	}
}

func (c *Cache) observe(result string) {
	if c.metrics != nil {
		c.metrics.HolidayCacheRequests.WithLabelValues(result).Inc()
	}
}
