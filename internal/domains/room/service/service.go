package service

import (
	"context"
	"fmt"
	"strconv"

	"frontdesk/infras/otel"
	auditModel "frontdesk/internal/domains/audit/model"
	auditService "frontdesk/internal/domains/audit/service"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/billing"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	GetAvailable(ctx context.Context) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, number int) (dto.RoomResponse, error)
	UpdateRate(ctx context.Context, req dto.UpdateRoomRateRequest) (dto.RoomResponse, error)
	UpdatePolicy(ctx context.Context, req dto.UpdateRoomPolicyRequest) (dto.RoomResponse, error)
	Delete(ctx context.Context, number int) error
}

type serviceImpl struct {
	repo  repository.Room
	audit auditService.Audit
	otel  otel.Otel
}

func New(repo repository.Room, audit auditService.Audit, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		audit: audit,
		otel:  otel,
	}
}

// Create registers a room. Numbers are unique by convention only; a duplicate
// is appended as-is and every later lookup resolves to the older room.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Operator(ctx)

	room := req.ToModel(user)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	res.FromModel(room)

	s.audit.Record(ctx, auditModel.ActionRoomCreate, strconv.Itoa(room.Number),
		fmt.Sprintf("created %s room %d at %s/night under %s billing", room.Category, room.Number, shared.FormatMoney(room.Rate), room.Policy.Name()))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total)

	return res, nil
}

func (s *serviceImpl) GetAvailable(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return res, fmt.Errorf("failed to get available rooms: %w", err)
	}

	res.FromModels(models, len(models))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, number int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Get(ctx, number)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.Number == 0 {
		return res, failure.NotFound(fmt.Sprintf("room %d not found", number)) // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) UpdateRate(ctx context.Context, req dto.UpdateRoomRateRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Operator(ctx)

	room, err := s.repo.Get(ctx, req.Number)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, fmt.Errorf("failed to check room existence: %w", err)
	}

	if room.Number == 0 {
		log.Error().Int("number", req.Number).Msg("room not found")

		return res, failure.NotFound(fmt.Sprintf("room %d not found", req.Number))
	}

	previousRate := room.Rate

	room.Rate = req.Rate
	room.ModifiedAt = timezone.Now()
	room.ModifiedBy = user

	if err = s.repo.Update(ctx, req.Number, func(current *model.Room) {
		current.Rate = room.Rate
		current.ModifiedAt = room.ModifiedAt
		current.ModifiedBy = room.ModifiedBy
	}); err != nil {
		log.Error().Err(err).Msg("failed to update room rate")

		return res, fmt.Errorf("failed to update room rate: %w", err)
	}

	res.FromModel(room)

	s.audit.Record(ctx, auditModel.ActionRoomUpdateRate, strconv.Itoa(room.Number),
		fmt.Sprintf("changed room %d rate from %s to %s", room.Number, shared.FormatMoney(previousRate), shared.FormatMoney(room.Rate)))

	return res, nil
}

func (s *serviceImpl) UpdatePolicy(ctx context.Context, req dto.UpdateRoomPolicyRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePolicy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Operator(ctx)

	// Validation upstream guarantees the name parses.
	policy, _ := billing.Parse(req.Policy)

	room, err := s.repo.Get(ctx, req.Number)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, fmt.Errorf("failed to check room existence: %w", err)
	}

	if room.Number == 0 {
		log.Error().Int("number", req.Number).Msg("room not found")

		return res, failure.NotFound(fmt.Sprintf("room %d not found", req.Number))
	}

	previousPolicy := room.Policy.Name()

	room.Policy = policy
	room.ModifiedAt = timezone.Now()
	room.ModifiedBy = user

	if err = s.repo.Update(ctx, req.Number, func(current *model.Room) {
		current.Policy = room.Policy
		current.ModifiedAt = room.ModifiedAt
		current.ModifiedBy = room.ModifiedBy
	}); err != nil {
		log.Error().Err(err).Msg("failed to update room policy")

		return res, fmt.Errorf("failed to update room policy: %w", err)
	}

	res.FromModel(room)

	s.audit.Record(ctx, auditModel.ActionRoomUpdatePolicy, strconv.Itoa(room.Number),
		fmt.Sprintf("changed room %d billing from %s to %s", room.Number, previousPolicy, room.Policy.Name()))

	return res, nil
}

// Delete removes the first room carrying the number. Reservations referencing
// the room are left untouched; cancelling them later restores nothing.
func (s *serviceImpl) Delete(ctx context.Context, number int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, number)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		log.Error().Int("number", number).Msg("room not found")

		return failure.NotFound(fmt.Sprintf("room %d not found", number)) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, number); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.audit.Record(ctx, auditModel.ActionRoomDelete, strconv.Itoa(number),
		fmt.Sprintf("deleted room %d", number))

	return nil
}
