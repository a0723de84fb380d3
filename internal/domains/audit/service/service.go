package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/audit/model"
	"frontdesk/internal/domains/audit/model/dto"
	"frontdesk/internal/domains/audit/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Audit interface {
	Record(ctx context.Context, action, reference, detail string)
	GetAll(ctx context.Context) (dto.GetEntriesResponse, error)
}

type serviceImpl struct {
	repo repository.Audit
	otel otel.Otel
}

func New(repo repository.Audit, otel otel.Otel) Audit {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Record appends a journal entry for a completed operation. Journal writes
// never fail the operation they describe; a failed write is logged and
// dropped.
func (s *serviceImpl) Record(ctx context.Context, action, reference, detail string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()

	entry := model.Entry{
		ID:        uuid.NewString(),
		Action:    action,
		Reference: reference,
		Detail:    detail,
		Actor:     shared.Operator(ctx),
		At:        timezone.Now(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", action).Msg("failed to record audit entry")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit entries")

		return res, fmt.Errorf("failed to get audit entries: %w", err)
	}

	res.FromModels(models)

	return res, nil
}
