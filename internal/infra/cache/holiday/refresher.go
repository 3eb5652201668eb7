package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// refreshTimeout ограничение времени одного обновления
const refreshTimeout = 30 * time.Second

// Refresher периодически обновляет кэш праздников по cron расписанию
type Refresher struct {
	cron   *cron.Cron
	cache  *Cache
	logger Logger
}

// NewRefresher создает планировщик обновления. spec - стандартное cron выражение (5 полей)
func NewRefresher(spec string, cache *Cache, logger Logger) (*Refresher, error) {
	r := &Refresher{
		cron:   cron.New(),
		cache:  cache,
		logger: logger,
	}

	if _, err := r.cron.AddFunc(spec, r.refresh); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCronSpec, spec, err)
	}
	return r, nil
}

// Start запускает планировщик в фоне
func (r *Refresher) Start() {
	r.cron.Start()
	r.logger.Info("HolidayRefresher: started")
}

// Stop останавливает планировщик и ждет завершения текущего обновления
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("HolidayRefresher: stopped")
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := r.cache.Refresh(ctx); err != nil {
		r.logger.Error("HolidayRefresher: refresh failed: %v", err)
	}
}
