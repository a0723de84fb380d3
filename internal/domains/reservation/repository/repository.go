package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/reservation/model"
	gRepo "frontdesk/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, id int) (model.Reservation, error)
	GetAll(ctx context.Context) ([]model.Reservation, error)
	Exist(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id int, apply gRepo.ApplyFunc[model.Reservation]) error
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	*gRepo.Repository[model.Reservation]
	otel otel.Otel
}

func New(otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, otel),
		otel:       otel,
	}
}

func byID(id int) gRepo.MatchFunc[model.Reservation] {
	return func(reservation model.Reservation) bool {
		return reservation.ID == id
	}
}

func (repo *repositoryImpl) Get(ctx context.Context, id int) (model.Reservation, error) {
	return repo.Repository.Get(ctx, byID(id)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Reservation, error) {
	return repo.Repository.GetAll(ctx, nil) //nolint:wrapcheck
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int) (bool, error) {
	return repo.Repository.Exist(ctx, byID(id)) //nolint:wrapcheck
}

func (repo *repositoryImpl) Count(ctx context.Context) (int, error) {
	return repo.Repository.Count(ctx, nil) //nolint:wrapcheck
}

func (repo *repositoryImpl) Update(ctx context.Context, id int, apply gRepo.ApplyFunc[model.Reservation]) error {
	return repo.Repository.Update(ctx, byID(id), apply) //nolint:wrapcheck
}

func (repo *repositoryImpl) Delete(ctx context.Context, id int) error {
	return repo.Repository.Delete(ctx, byID(id)) //nolint:wrapcheck
}
