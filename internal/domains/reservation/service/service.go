package service

import (
	"context"
	"fmt"
	"strconv"

	"frontdesk/infras/otel"
	auditModel "frontdesk/internal/domains/audit/model"
	auditService "frontdesk/internal/domains/audit/service"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/internal/domains/reservation/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/internal/idgen/sequence"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/stay"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id int) (dto.ReservationResponse, error)
	Detail(ctx context.Context, id int) (dto.ReservationDetailResponse, error)
	UpdateGuests(ctx context.Context, req dto.UpdateReservationGuestsRequest) (dto.ReservationResponse, error)
	UpdateDates(ctx context.Context, req dto.UpdateReservationDatesRequest) (dto.ReservationResponse, error)
	UpdateRoom(ctx context.Context, req dto.UpdateReservationRoomRequest) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo     repository.Reservation
	roomRepo roomRepo.Room
	sequence *sequence.Generator
	audit    auditService.Audit
	otel     otel.Otel
}

func New(repo repository.Reservation, roomRepo roomRepo.Room, sequence *sequence.Generator, audit auditService.Audit, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		sequence: sequence,
		audit:    audit,
		otel:     otel,
	}
}

func setAvailability(available bool, user string) gRepo.ApplyFunc[roomModel.Room] {
	return func(room *roomModel.Room) {
		room.Available = available
		room.ModifiedAt = timezone.Now()
		room.ModifiedBy = user
	}
}

// Create books a room. Checks run in a fixed order: the room must exist, then
// fit the party, then be free. Nothing is mutated until all three pass.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Operator(ctx)

	room, err := s.roomRepo.Get(ctx, req.RoomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, fmt.Errorf("failed to check room existence: %w", err)
	}

	if room.Number == 0 {
		log.Error().Int("number", req.RoomNumber).Msg("room not found")

		return res, failure.NotFound(fmt.Sprintf("room %d not found", req.RoomNumber))
	}

	if req.Guests > room.MaxGuests {
		return res, failure.UnprocessableEntity(fmt.Sprintf("room %d sleeps at most %d guests", room.Number, room.MaxGuests)) // nolint:wrapcheck
	}

	if !room.Available {
		return res, failure.Conflict(fmt.Sprintf("room %d is already reserved", room.Number)) // nolint:wrapcheck
	}

	id, err := s.sequence.GetID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate reservation id")

		return res, fmt.Errorf("failed to generate reservation id: %w", err)
	}

	reservation := req.ToModel(id, user)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	if err = s.roomRepo.Update(ctx, room.Number, setAvailability(false, user)); err != nil {
		log.Error().Err(err).Msg("failed to occupy room")

		// Take the reservation back out so a failed flip leaves nothing behind.
		_ = s.repo.Delete(ctx, reservation.ID)

		return res, fmt.Errorf("failed to occupy room: %w", err)
	}

	res.FromModel(reservation)

	s.audit.Record(ctx, auditModel.ActionReservationCreate, strconv.Itoa(reservation.ID),
		fmt.Sprintf("reserved room %d for %s (%s to %s, %d guests)", reservation.RoomNumber, reservation.GuestName, reservation.CheckIn, reservation.CheckOut, reservation.Guests))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("reservation %d not found", id)) // nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

// Detail resolves the stay length and the bill for one reservation. Date
// problems surface as errors rather than reported failures; the caller
// decides how loudly to complain.
func (s *serviceImpl) Detail(ctx context.Context, id int) (res dto.ReservationDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Detail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("reservation %d not found", id)) // nolint:wrapcheck
	}

	nights, err := stay.Nights(reservation.CheckIn, reservation.CheckOut)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to compute stay length")

		return res, fmt.Errorf("failed to compute stay length for reservation %d: %w", id, err)
	}

	room, err := s.roomRepo.Get(ctx, reservation.RoomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.Number == 0 {
		return res, failure.NotFound(fmt.Sprintf("room %d not found", reservation.RoomNumber)) // nolint:wrapcheck
	}

	total, err := room.Bill(nights)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to bill stay")

		return res, fmt.Errorf("failed to bill stay for reservation %d: %w", id, err)
	}

	res.FromModel(reservation, room, nights, total)

	return res, nil
}

func (s *serviceImpl) UpdateGuests(ctx context.Context, req dto.UpdateReservationGuestsRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGuests")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Operator(ctx)

	reservation, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("reservation %d not found", req.ID)) // nolint:wrapcheck
	}

	// The new party size is checked against the room the guest occupies now.
	room, err := s.roomRepo.Get(ctx, reservation.RoomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, fmt.Errorf("failed to check room existence: %w", err)
	}

	if room.Number == 0 {
		log.Error().Int("number", reservation.RoomNumber).Msg("room not found")

		return res, failure.NotFound(fmt.Sprintf("room %d not found", reservation.RoomNumber))
	}

	if req.Guests > room.MaxGuests {
		return res, failure.UnprocessableEntity(fmt.Sprintf("room %d sleeps at most %d guests", room.Number, room.MaxGuests)) // nolint:wrapcheck
	}

	previousGuests := reservation.Guests

	reservation.Guests = req.Guests
	reservation.ModifiedAt = timezone.Now()
	reservation.ModifiedBy = user

	if err = s.repo.Update(ctx, req.ID, func(current *model.Reservation) {
		current.Guests = reservation.Guests
		current.ModifiedAt = reservation.ModifiedAt
		current.ModifiedBy = reservation.ModifiedBy
	}); err != nil {
		log.Error().Err(err).Msg("failed to update reservation guests")

		return res, fmt.Errorf("failed to update reservation guests: %w", err)
	}

	res.FromModel(reservation)

	s.audit.Record(ctx, auditModel.ActionReservationUpdateGuests, strconv.Itoa(reservation.ID),
		fmt.Sprintf("changed reservation %d guest count from %d to %d", reservation.ID, previousGuests, reservation.Guests))

	return res, nil
}

// UpdateDates overwrites the stay window as entered. The pair is not checked
// for ordering here; an inverted window only surfaces when the detail view
// tries to price it.
func (s *serviceImpl) UpdateDates(ctx context.Context, req dto.UpdateReservationDatesRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Operator(ctx)

	reservation, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("reservation %d not found", req.ID)) // nolint:wrapcheck
	}

	previousWindow := fmt.Sprintf("%s to %s", reservation.CheckIn, reservation.CheckOut)

	reservation.CheckIn = req.CheckIn
	reservation.CheckOut = req.CheckOut
	reservation.ModifiedAt = timezone.Now()
	reservation.ModifiedBy = user

	if err = s.repo.Update(ctx, req.ID, func(current *model.Reservation) {
		current.CheckIn = reservation.CheckIn
		current.CheckOut = reservation.CheckOut
		current.ModifiedAt = reservation.ModifiedAt
		current.ModifiedBy = reservation.ModifiedBy
	}); err != nil {
		log.Error().Err(err).Msg("failed to update reservation dates")

		return res, fmt.Errorf("failed to update reservation dates: %w", err)
	}

	res.FromModel(reservation)

	s.audit.Record(ctx, auditModel.ActionReservationUpdateDates, strconv.Itoa(reservation.ID),
		fmt.Sprintf("moved reservation %d stay from %s to %s-%s", reservation.ID, previousWindow, reservation.CheckIn, reservation.CheckOut))

	return res, nil
}

// UpdateRoom moves a reservation to another room. The target only has to
// exist and fit the party; whether it is marked available is not consulted,
// so a move can stack two reservations on one room.
func (s *serviceImpl) UpdateRoom(ctx context.Context, req dto.UpdateReservationRoomRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Operator(ctx)

	reservation, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("reservation %d not found", req.ID)) // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, req.RoomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, fmt.Errorf("failed to check room existence: %w", err)
	}

	if room.Number == 0 {
		log.Error().Int("number", req.RoomNumber).Msg("room not found")

		return res, failure.NotFound(fmt.Sprintf("room %d not found", req.RoomNumber))
	}

	if reservation.Guests > room.MaxGuests {
		return res, failure.UnprocessableEntity(fmt.Sprintf("room %d sleeps at most %d guests", room.Number, room.MaxGuests)) // nolint:wrapcheck
	}

	previousNumber := reservation.RoomNumber

	reservation.RoomNumber = req.RoomNumber
	reservation.ModifiedAt = timezone.Now()
	reservation.ModifiedBy = user

	if err = s.repo.Update(ctx, req.ID, func(current *model.Reservation) {
		current.RoomNumber = reservation.RoomNumber
		current.ModifiedAt = reservation.ModifiedAt
		current.ModifiedBy = reservation.ModifiedBy
	}); err != nil {
		log.Error().Err(err).Msg("failed to move reservation")

		return res, fmt.Errorf("failed to move reservation: %w", err)
	}

	if err = s.roomRepo.Update(ctx, previousNumber, setAvailability(true, user)); err != nil {
		log.Error().Err(err).Msg("failed to free previous room")

		return res, fmt.Errorf("failed to free previous room: %w", err)
	}

	if err = s.roomRepo.Update(ctx, reservation.RoomNumber, setAvailability(false, user)); err != nil {
		log.Error().Err(err).Msg("failed to occupy room")

		return res, fmt.Errorf("failed to occupy room: %w", err)
	}

	res.FromModel(reservation)

	s.audit.Record(ctx, auditModel.ActionReservationMove, strconv.Itoa(reservation.ID),
		fmt.Sprintf("moved reservation %d from room %d to room %d", reservation.ID, previousNumber, reservation.RoomNumber))

	return res, nil
}

// Cancel removes the reservation and puts its room back on the market. The
// room restore matches by number and quietly does nothing when the room has
// been deleted in the meantime.
func (s *serviceImpl) Cancel(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Operator(ctx)

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		log.Error().Int("id", id).Msg("reservation not found")

		return failure.NotFound(fmt.Sprintf("reservation %d not found", id)) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if err = s.roomRepo.Update(ctx, reservation.RoomNumber, setAvailability(true, user)); err != nil {
		log.Error().Err(err).Msg("failed to free room")

		return fmt.Errorf("failed to free room: %w", err)
	}

	s.audit.Record(ctx, auditModel.ActionReservationCancel, strconv.Itoa(id),
		fmt.Sprintf("cancelled reservation %d for %s, room %d released", id, reservation.GuestName, reservation.RoomNumber))

	return nil
}
