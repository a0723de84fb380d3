package dto

import (
	"frontdesk/internal/domains/reservation/model"
	roomModel "frontdesk/internal/domains/room/model"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateReservationRequest struct {
	GuestName  string `validate:"required,max=100"`
	Contact    string `validate:"required,max=100"`
	RoomNumber int    `validate:"required,gt=0"`
	CheckIn    string `validate:"required,staydate"`
	CheckOut   string `validate:"required,staydate"`
	Guests     int    `validate:"required,gt=0"`
}

func (c *CreateReservationRequest) ToModel(id int, user string) model.Reservation {
	return model.Reservation{
		ID:         id,
		GuestName:  c.GuestName,
		Contact:    c.Contact,
		RoomNumber: c.RoomNumber,
		CheckIn:    c.CheckIn,
		CheckOut:   c.CheckOut,
		Guests:     c.Guests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationGuestsRequest struct {
	ID     int `validate:"required,gt=0"`
	Guests int `validate:"required,gt=0"`
}

type UpdateReservationDatesRequest struct {
	ID       int    `validate:"required,gt=0"`
	CheckIn  string `validate:"required,staydate"`
	CheckOut string `validate:"required,staydate"`
}

type UpdateReservationRoomRequest struct {
	ID         int `validate:"required,gt=0"`
	RoomNumber int `validate:"required,gt=0"`
}

type ReservationResponse struct {
	ID         int
	GuestName  string
	Contact    string
	RoomNumber int
	CheckIn    string
	CheckOut   string
	Guests     int
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.Contact = model.Contact
	r.RoomNumber = model.RoomNumber
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.Guests = model.Guests
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse
	TotalData    int
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData int) {
	r.TotalData = totalData

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type ReservationDetailResponse struct {
	ReservationResponse
	RoomCategory string
	RoomRate     float64
	Policy       string
	Nights       int
	Total        float64
}

func (r *ReservationDetailResponse) FromModel(reservation model.Reservation, room roomModel.Room, nights int, total float64) {
	r.ReservationResponse.FromModel(reservation)
	r.RoomCategory = string(room.Category)
	r.RoomRate = room.Rate
	r.Policy = room.Policy.Name()
	r.Nights = nights
	r.Total = total
}
