package usecase

import (
	"time"

	"item-service/internal/item"
	"item-service/internal/item/repository"
)

// implUseCase is the private implementation of item.UseCase. It does not log:
// every failure is returned classified and reported by the caller.
type implUseCase struct {
	repo repository.Repository
	now  func() time.Time
}

var _ item.UseCase = (*implUseCase)(nil)

// Option customizes the use case.
type Option func(*implUseCase)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, opts ...Option) *implUseCase {
	uc := &implUseCase{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
