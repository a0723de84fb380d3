package room

import (
	"context"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared"
	"frontdesk/shared/billing"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/console/menu"
	"frontdesk/transport/console/prompt"
	"frontdesk/transport/console/render"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
	prompt  *prompt.Prompter
	render  *render.Renderer
}

func New(service service.Room, otel otel.Otel, prompt *prompt.Prompter, render *render.Renderer) Handler {
	return Handler{
		service: service,
		otel:    otel,
		prompt:  prompt,
		render:  render,
	}
}

// Register mounts the room actions on the menu.
func (handler *Handler) Register(m *menu.Menu) {
	m.Add(
		menu.Item{Code: "1", Label: "Register room", Run: handler.CreateRoom},
		menu.Item{Code: "2", Label: "List rooms", Run: handler.GetRooms},
		menu.Item{Code: "3", Label: "List available rooms", Run: handler.GetAvailableRooms},
		menu.Item{Code: "4", Label: "Change room rate", Run: handler.UpdateRoomRate},
		menu.Item{Code: "5", Label: "Change billing policy", Run: handler.UpdateRoomPolicy},
		menu.Item{Code: "6", Label: "Remove room", Run: handler.DeleteRoom},
	)
}

// CreateRoom asks for the details of a new room and registers it.
func (handler *Handler) CreateRoom(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	handler.render.Title("Register room")

	number, err := handler.prompt.Int("Room number")
	if err != nil {
		return err
	}

	category, err := handler.prompt.Choice("Category", model.CategoryNames())
	if err != nil {
		return err
	}

	rate, err := handler.prompt.Float("Nightly rate")
	if err != nil {
		return err
	}

	policy, err := handler.prompt.Choice("Billing policy", billing.Names())
	if err != nil {
		return err
	}

	sleeps, err := handler.prompt.Int("Sleeps at most (0 for the category default)")
	if err != nil {
		return err
	}

	req := dto.CreateRoomRequest{
		Number:   number,
		Category: category,
		Rate:     rate,
		Policy:   policy,
	}

	if sleeps > 0 {
		req.MaxGuests = sleeps
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		return err
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		return err
	}

	scope.AddEvent("Room created successfully by " + shared.Operator(ctx))

	handler.render.Message("Registered %s room %d at %s per night.", room.Category, room.Number, shared.FormatMoney(room.Rate))

	return nil
}

// GetRooms lists every registered room.
func (handler *Handler) GetRooms(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		return err
	}

	scope.AddEvent("Rooms retrieved successfully")

	handler.render.Title("Rooms")

	if rooms.TotalData == 0 {
		handler.render.Message("No rooms registered yet.")

		return nil
	}

	handler.render.Table(roomTableHeaders(), roomTableRows(rooms.Rooms))
	handler.render.Message("%d room(s).", rooms.TotalData)

	return nil
}

// GetAvailableRooms lists the rooms currently open for booking.
func (handler *Handler) GetAvailableRooms(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	rooms, err := handler.service.GetAvailable(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		return err
	}

	scope.AddEvent("Available rooms retrieved successfully")

	handler.render.Title("Available rooms")

	if rooms.TotalData == 0 {
		handler.render.Message("No rooms are available right now.")

		return nil
	}

	handler.render.Table(roomTableHeaders(), roomTableRows(rooms.Rooms))
	handler.render.Message("%d room(s) available.", rooms.TotalData)

	return nil
}

// UpdateRoomRate changes what a room charges per night.
func (handler *Handler) UpdateRoomRate(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomRate")
	defer scope.End()

	handler.render.Title("Change room rate")

	number, err := handler.prompt.Int("Room number")
	if err != nil {
		return err
	}

	rate, err := handler.prompt.Float("New nightly rate")
	if err != nil {
		return err
	}

	req := dto.UpdateRoomRateRequest{
		Number: number,
		Rate:   rate,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		return err
	}

	room, err := handler.service.UpdateRate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room rate")

		return err
	}

	scope.AddEvent("Room rate updated successfully by " + shared.Operator(ctx))

	handler.render.Message("Room %d now charges %s per night.", room.Number, shared.FormatMoney(room.Rate))

	return nil
}

// UpdateRoomPolicy changes how a room bills its stays.
func (handler *Handler) UpdateRoomPolicy(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomPolicy")
	defer scope.End()

	handler.render.Title("Change billing policy")

	number, err := handler.prompt.Int("Room number")
	if err != nil {
		return err
	}

	policy, err := handler.prompt.Choice("New billing policy", billing.Names())
	if err != nil {
		return err
	}

	req := dto.UpdateRoomPolicyRequest{
		Number: number,
		Policy: policy,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		return err
	}

	room, err := handler.service.UpdatePolicy(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room policy")

		return err
	}

	scope.AddEvent("Room policy updated successfully by " + shared.Operator(ctx))

	handler.render.Message("Room %d now bills as %s.", room.Number, room.Policy)

	return nil
}

// DeleteRoom removes a room from the catalog.
func (handler *Handler) DeleteRoom(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	handler.render.Title("Remove room")

	number, err := handler.prompt.Int("Room number")
	if err != nil {
		return err
	}

	if err := handler.service.Delete(ctx, number); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		return err
	}

	scope.AddEvent("Room deleted successfully by " + shared.Operator(ctx))

	handler.render.Message("Room %d removed.", number)

	return nil
}

func roomTableHeaders() []string {
	return []string{"Number", "Category", "Rate", "Sleeps", "Policy", "Available"}
}

func roomTableRows(rooms []dto.RoomResponse) [][]string {
	rows := make([][]string, len(rooms))
	for i, room := range rooms {
		rows[i] = []string{
			strconv.Itoa(room.Number),
			room.Category,
			shared.FormatMoney(room.Rate),
			strconv.Itoa(room.MaxGuests),
			room.Policy,
			shared.FormatYesNo(room.Available),
		}
	}

	return rows
}
