package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/audit/model"
	gRepo "frontdesk/shared/repository"
)

type Audit interface {
	Insert(ctx context.Context, model model.Entry) error
	GetAll(ctx context.Context) ([]model.Entry, error)
}

type repositoryImpl struct {
	*gRepo.Repository[model.Entry]
	otel otel.Otel
}

func New(otl otel.Otel) Audit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.EntityName, otl),
		otel:       otl,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Entry, error) {
	return repo.Repository.GetAll(ctx, nil) //nolint:wrapcheck
}
