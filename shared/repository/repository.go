// Package repository provides the generic in-memory store behind every domain
// collection. Records keep insertion order and every lookup scans linearly,
// so the first matching record wins whenever keys collide.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"
)

var (
	errRequiredMatch = errors.New("required match")
)

// MatchFunc selects records during a scan.
type MatchFunc[T any] func(T) bool

// ApplyFunc mutates a matched record in place.
type ApplyFunc[T any] func(*T)

type Repository[T any] struct {
	mu     sync.RWMutex
	otel   otel.Otel
	entity string
	items  []T
}

func NewRepository[T any](entityName string, otl otel.Otel) *Repository[T] {
	return &Repository[T]{
		otel:   otl,
		entity: entityName,
	}
}

// Insert appends a record. Nothing guards against key collisions here; that
// is the caller's lookout.
func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.items = append(repo.items, model)

	return nil
}

// Get returns the first matching record, or the zero value of T with a nil
// error when nothing matches. A nil match selects the first record.
func (repo *Repository[T]) Get(ctx context.Context, match MatchFunc[T]) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	var model T

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, item := range repo.items {
		if match == nil || match(item) {
			return item, nil
		}
	}

	return model, nil
}

// GetAll returns matching records in insertion order. A nil match selects
// everything.
func (repo *Repository[T]) GetAll(ctx context.Context, match MatchFunc[T]) ([]T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	models := make([]T, 0, len(repo.items))

	for _, item := range repo.items {
		if match == nil || match(item) {
			models = append(models, item)
		}
	}

	return models, nil
}

// Exist reports whether any record matches.
func (repo *Repository[T]) Exist(ctx context.Context, match MatchFunc[T]) (bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	if match == nil {
		err := fmt.Errorf("failed to check exist data (%s): %w", repo.entity, errRequiredMatch)
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, item := range repo.items {
		if match(item) {
			return true, nil
		}
	}

	return false, nil
}

// Count returns the number of matching records. A nil match counts
// everything.
func (repo *Repository[T]) Count(ctx context.Context, match MatchFunc[T]) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	count := 0

	for _, item := range repo.items {
		if match == nil || match(item) {
			count++
		}
	}

	return count, nil
}

// Update applies the mutation to the first matching record. No match is a
// silent no-op, mirroring an UPDATE that touches zero rows.
func (repo *Repository[T]) Update(ctx context.Context, match MatchFunc[T], apply ApplyFunc[T]) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	if match == nil || apply == nil {
		err := fmt.Errorf("failed to update data (%s): %w", repo.entity, errRequiredMatch)
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.items {
		if match(repo.items[i]) {
			apply(&repo.items[i])

			break
		}
	}

	return nil
}

// Delete removes the first matching record. No match is a silent no-op.
func (repo *Repository[T]) Delete(ctx context.Context, match MatchFunc[T]) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	if match == nil {
		err := fmt.Errorf("failed to delete data (%s): %w", repo.entity, errRequiredMatch)
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.items {
		if match(repo.items[i]) {
			repo.items = append(repo.items[:i], repo.items[i+1:]...)

			break
		}
	}

	return nil
}
