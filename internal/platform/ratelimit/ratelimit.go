// Package ratelimit limita requests por clave (usuario o IP). Con Redis el
// límite es compartido entre réplicas; sin Redis cae a un limitador en proceso.
package ratelimit

import (
	"context"
	"time"
)

type Config struct {
	Limit  int           // requests permitidos por ventana
	Window time.Duration // tamaño de la ventana
}

type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
