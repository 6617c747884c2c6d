package ratelimit

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// LocalLimiter es un token bucket por clave en memoria del proceso.
// Se usa cuando no hay Redis configurado (dev, una sola réplica).
//
// Un bucket sin uso durante Window ya está lleno otra vez, así que se
// descarta; volver a crearlo da el mismo resultado.
type LocalLimiter struct {
	mu      sync.Mutex
	config  Config
	buckets *gocache.Cache
}

func NewLocalLimiter(cfg Config) *LocalLimiter {
	return &LocalLimiter{
		config:  cfg,
		buckets: gocache.New(cfg.Window, cfg.Window),
	}
}

func (l *LocalLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	var b *rate.Limiter
	if v, ok := l.buckets.Get(key); ok {
		b = v.(*rate.Limiter)
	} else {
		every := rate.Every(l.config.Window / time.Duration(max(1, l.config.Limit)))
		b = rate.NewLimiter(every, l.config.Limit)
	}
	// renueva la expiración en cada uso
	l.buckets.Set(key, b, gocache.DefaultExpiration)
	return b
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (Result, error) {
	b := l.bucket(key)

	now := time.Now()
	allowed := b.AllowN(now, 1)
	remaining := int(b.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   allowed,
		Remaining: remaining,
		ResetAt:   now.Add(l.config.Window),
	}, nil
}
