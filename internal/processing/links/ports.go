package links

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("link not found")
	ErrInvalidURL    = errors.New("invalid url")
	ErrInvalidCode   = errors.New("invalid code format")
	ErrCodeInUse     = errors.New("custom code already in use")
	ErrCodeExhausted = errors.New("code generation attempts exhausted")

	// ErrCodeTaken is the repository's duplicate-key signal. The service
	// always translates it; it never reaches a client.
	ErrCodeTaken = errors.New("code taken")
)

type LinkRepository interface {
	Insert(ctx context.Context, link *Link) error
	FindByCode(ctx context.Context, code string) (*Link, error)
	ListAll(ctx context.Context) ([]*Link, error)
	DeleteByCode(ctx context.Context, code string) (bool, error)
	// IncrementClick bumps clicks by one and sets lastClicked in a single
	// atomic operation on the store.
	IncrementClick(ctx context.Context, code string, at time.Time) (*Link, error)
}

type CodeGenerator interface {
	Generate(length int) (string, error)
}
