// Package ratelimit ограничение частоты попыток бронирования на субъекта.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config настройки ограничителя
type Config struct {
	PerMinute       int           // попыток в минуту на субъекта
	Burst           int           // размер всплеска
	CleanupInterval time.Duration // интервал очистки неактивных записей
}

// DefaultConfig конфигурация для perMinute попыток в минуту
func DefaultConfig(perMinute int) Config {
	return Config{
		PerMinute:       perMinute,
		Burst:           perMinute,
		CleanupInterval: 5 * time.Minute,
	}
}

type subjectLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter хранит token bucket на каждого субъекта
type Limiter struct {
	config Config
	limit  rate.Limit

	mu       sync.Mutex
	limiters map[string]*subjectLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// New создаёт Limiter и запускает фоновую очистку
func New(config Config) *Limiter {
	l := &Limiter{
		config:   config,
		limit:    rate.Limit(float64(config.PerMinute) / 60.0),
		limiters: make(map[string]*subjectLimiter),
		stopCh:   make(chan struct{}),
	}

	go l.cleanupLoop()

	return l
}

// Allow расходует токен субъекта, false если лимит исчерпан
func (l *Limiter) Allow(subjectID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	sl, ok := l.limiters[subjectID]
	if !ok {
		sl = &subjectLimiter{limiter: rate.NewLimiter(l.limit, l.config.Burst)}
		l.limiters[subjectID] = sl
	}
	sl.lastAccess = time.Now()

	return sl.limiter.Allow()
}

// Count число отслеживаемых субъектов
func (l *Limiter) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Stop останавливает фоновую очистку
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup(time.Now())
		case <-l.stopCh:
			return
		}
	}
}

// cleanup удаляет записи без обращений дольше двух интервалов очистки
func (l *Limiter) cleanup(now time.Time) {
	ttl := l.config.CleanupInterval * 2

	l.mu.Lock()
	defer l.mu.Unlock()

	for id, sl := range l.limiters {
		if now.Sub(sl.lastAccess) > ttl {
			delete(l.limiters, id)
		}
	}
}
