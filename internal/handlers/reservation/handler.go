package reservation

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/internal/domains/reservation/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/console/menu"
	"frontdesk/transport/console/prompt"
	"frontdesk/transport/console/render"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
	prompt  *prompt.Prompter
	render  *render.Renderer
}

func New(service service.Reservation, otel otel.Otel, prompt *prompt.Prompter, render *render.Renderer) Handler {
	return Handler{
		service: service,
		otel:    otel,
		prompt:  prompt,
		render:  render,
	}
}

// Register mounts the reservation actions on the menu.
func (handler *Handler) Register(m *menu.Menu) {
	m.Add(
		menu.Item{Code: "7", Label: "Book a stay", Run: handler.CreateReservation},
		menu.Item{Code: "8", Label: "List reservations", Run: handler.GetReservations},
		menu.Item{Code: "9", Label: "Stay details and bill", Run: handler.GetReservationDetail},
		menu.Item{Code: "10", Label: "Change guest count", Run: handler.UpdateReservationGuests},
		menu.Item{Code: "11", Label: "Change stay dates", Run: handler.UpdateReservationDates},
		menu.Item{Code: "12", Label: "Move to another room", Run: handler.UpdateReservationRoom},
		menu.Item{Code: "13", Label: "Cancel reservation", Run: handler.CancelReservation},
	)
}

// CreateReservation books a stay for a guest in a chosen room.
func (handler *Handler) CreateReservation(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	handler.render.Title("Book a stay")

	guestName, err := handler.prompt.String("Guest name")
	if err != nil {
		return err
	}

	contact, err := handler.prompt.String("Contact")
	if err != nil {
		return err
	}

	roomNumber, err := handler.prompt.Int("Room number")
	if err != nil {
		return err
	}

	checkIn, err := handler.prompt.String("Check-in (DD/MM/YYYY)")
	if err != nil {
		return err
	}

	checkOut, err := handler.prompt.String("Check-out (DD/MM/YYYY)")
	if err != nil {
		return err
	}

	guests, err := handler.prompt.Int("Guests")
	if err != nil {
		return err
	}

	req := dto.CreateReservationRequest{
		GuestName:  guestName,
		Contact:    contact,
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		return err
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		return err
	}

	scope.AddEvent("Reservation created successfully by " + shared.Operator(ctx))

	handler.render.Message("Reservation #%d confirmed for %s in room %d.", reservation.ID, reservation.GuestName, reservation.RoomNumber)

	return nil
}

// GetReservations lists every reservation on the books.
func (handler *Handler) GetReservations(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	reservations, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		return err
	}

	scope.AddEvent("Reservations retrieved successfully")

	handler.render.Title("Reservations")

	if reservations.TotalData == 0 {
		handler.render.Message("No reservations on the books.")

		return nil
	}

	rows := make([][]string, len(reservations.Reservations))
	for i, res := range reservations.Reservations {
		rows[i] = []string{
			strconv.Itoa(res.ID),
			res.GuestName,
			res.Contact,
			strconv.Itoa(res.RoomNumber),
			res.CheckIn,
			res.CheckOut,
			strconv.Itoa(res.Guests),
		}
	}

	handler.render.Table([]string{"ID", "Guest", "Contact", "Room", "Check-in", "Check-out", "Guests"}, rows)
	handler.render.Message("%d reservation(s).", reservations.TotalData)

	return nil
}

// GetReservationDetail prices a stay and shows the full bill.
func (handler *Handler) GetReservationDetail(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationDetail")
	defer scope.End()

	handler.render.Title("Stay details and bill")

	id, err := handler.prompt.Int("Reservation ID")
	if err != nil {
		return err
	}

	detail, err := handler.service.Detail(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation detail")

		return err
	}

	scope.AddEvent("Reservation detail retrieved successfully")

	handler.render.Detail([][2]string{
		{"Reservation", "#" + strconv.Itoa(detail.ID)},
		{"Guest", detail.GuestName},
		{"Contact", detail.Contact},
		{"Room", fmt.Sprintf("%d (%s)", detail.RoomNumber, detail.RoomCategory)},
		{"Stay", detail.CheckIn + " to " + detail.CheckOut},
		{"Guests", strconv.Itoa(detail.Guests)},
		{"Nightly rate", shared.FormatMoney(detail.RoomRate)},
		{"Billing policy", detail.Policy},
		{"Nights", strconv.Itoa(detail.Nights)},
		{"Total", shared.FormatMoney(detail.Total)},
	})

	return nil
}

// UpdateReservationGuests changes how many guests a stay is for.
func (handler *Handler) UpdateReservationGuests(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationGuests")
	defer scope.End()

	handler.render.Title("Change guest count")

	id, err := handler.prompt.Int("Reservation ID")
	if err != nil {
		return err
	}

	guests, err := handler.prompt.Int("New guest count")
	if err != nil {
		return err
	}

	req := dto.UpdateReservationGuestsRequest{
		ID:     id,
		Guests: guests,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		return err
	}

	reservation, err := handler.service.UpdateGuests(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation guests")

		return err
	}

	scope.AddEvent("Reservation guests updated successfully by " + shared.Operator(ctx))

	handler.render.Message("Reservation #%d is now for %d guest(s).", reservation.ID, reservation.Guests)

	return nil
}

// UpdateReservationDates changes the stay window of a reservation.
func (handler *Handler) UpdateReservationDates(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationDates")
	defer scope.End()

	handler.render.Title("Change stay dates")

	id, err := handler.prompt.Int("Reservation ID")
	if err != nil {
		return err
	}

	checkIn, err := handler.prompt.String("New check-in (DD/MM/YYYY)")
	if err != nil {
		return err
	}

	checkOut, err := handler.prompt.String("New check-out (DD/MM/YYYY)")
	if err != nil {
		return err
	}

	req := dto.UpdateReservationDatesRequest{
		ID:       id,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		return err
	}

	reservation, err := handler.service.UpdateDates(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation dates")

		return err
	}

	scope.AddEvent("Reservation dates updated successfully by " + shared.Operator(ctx))

	handler.render.Message("Reservation #%d now runs %s to %s.", reservation.ID, reservation.CheckIn, reservation.CheckOut)

	return nil
}

// UpdateReservationRoom moves a stay to a different room.
func (handler *Handler) UpdateReservationRoom(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationRoom")
	defer scope.End()

	handler.render.Title("Move to another room")

	id, err := handler.prompt.Int("Reservation ID")
	if err != nil {
		return err
	}

	roomNumber, err := handler.prompt.Int("New room number")
	if err != nil {
		return err
	}

	req := dto.UpdateReservationRoomRequest{
		ID:         id,
		RoomNumber: roomNumber,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		return err
	}

	reservation, err := handler.service.UpdateRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move reservation")

		return err
	}

	scope.AddEvent("Reservation moved successfully by " + shared.Operator(ctx))

	handler.render.Message("Reservation #%d moved to room %d.", reservation.ID, reservation.RoomNumber)

	return nil
}

// CancelReservation takes a stay off the books and frees its room.
func (handler *Handler) CancelReservation(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	handler.render.Title("Cancel reservation")

	id, err := handler.prompt.Int("Reservation ID")
	if err != nil {
		return err
	}

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		return err
	}

	scope.AddEvent("Reservation cancelled successfully by " + shared.Operator(ctx))

	handler.render.Message("Reservation #%d cancelled.", id)

	return nil
}
