package cache

import (
	"context"

	"github.com/google/uuid"
)

// Cache is the referral cache contract shared by the Redis and no-op implementations
type Cache interface {
	GetProfileID(ctx context.Context, code string) (uuid.UUID, bool, error)
	SetProfileID(ctx context.Context, code string, id uuid.UUID) error
	Invalidate(ctx context.Context, code string) error
	FirstClick(ctx context.Context, code, ipHash string) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Cache = (*ReferralCache)(nil)
	_ Cache = Noop{}
)

// Noop is used when Redis is not configured. Every lookup misses and every click counts.
type Noop struct{}

func (Noop) GetProfileID(context.Context, string) (uuid.UUID, bool, error) {
	return uuid.Nil, false, nil
}
func (Noop) SetProfileID(context.Context, string, uuid.UUID) error { return nil }
func (Noop) Invalidate(context.Context, string) error              { return nil }
func (Noop) FirstClick(context.Context, string, string) (bool, error) {
	return true, nil
}
func (Noop) Ping(context.Context) error { return nil }
func (Noop) Close() error               { return nil }
