package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	gRepo "frontdesk/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, number int) (model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
	GetAvailable(ctx context.Context) ([]model.Room, error)
	Exist(ctx context.Context, number int) (bool, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, number int, apply gRepo.ApplyFunc[model.Room]) error
	Delete(ctx context.Context, number int) error
}

type repositoryImpl struct {
	*gRepo.Repository[model.Room]
	otel otel.Otel
}

func New(otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, otel),
		otel:       otel,
	}
}

// byNumber matches on the room number. Numbers are unique by convention only;
// linear scan order makes the first inserted room win on collisions.
func byNumber(number int) gRepo.MatchFunc[model.Room] {
	return func(room model.Room) bool {
		return room.Number == number
	}
}

func (repo *repositoryImpl) Get(ctx context.Context, number int) (model.Room, error) {
	return repo.Repository.Get(ctx, byNumber(number)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	return repo.Repository.GetAll(ctx, nil) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAvailable(ctx context.Context) ([]model.Room, error) {
	return repo.Repository.GetAll(ctx, func(room model.Room) bool {
		return room.Available
	}) //nolint:wrapcheck
}

func (repo *repositoryImpl) Exist(ctx context.Context, number int) (bool, error) {
	return repo.Repository.Exist(ctx, byNumber(number)) //nolint:wrapcheck
}

func (repo *repositoryImpl) Count(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, nil) //nolint:wrapcheck
}

func (repo *repositoryImpl) Update(ctx context.Context, number int, apply gRepo.ApplyFunc[model.Room]) error {
	return repo.Repository.Update(ctx, byNumber(number), apply) //nolint:wrapcheck
}

func (repo *repositoryImpl) Delete(ctx context.Context, number int) error {
	return repo.Repository.Delete(ctx, byNumber(number)) //nolint:wrapcheck
}
