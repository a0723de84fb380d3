package dto

import (
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/billing"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateRoomRequest struct {
	Number    int     `validate:"required,gt=0"`
	Category  string  `validate:"required,oneof=Single Double Deluxe Suite"`
	Rate      float64 `validate:"required,gt=0"`
	Policy    string  `validate:"required,policy"`
	MaxGuests int     `validate:"omitempty,gt=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	// Validation upstream guarantees both names parse.
	category, _ := model.ParseCategory(c.Category)
	policy, _ := billing.Parse(c.Policy)

	maxGuests := c.MaxGuests
	if maxGuests == 0 {
		maxGuests = category.MaxGuests()
	}

	return model.Room{
		Number:    c.Number,
		Category:  category,
		Rate:      c.Rate,
		Available: true,
		Policy:    policy,
		MaxGuests: maxGuests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRateRequest struct {
	Number int     `validate:"required,gt=0"`
	Rate   float64 `validate:"required,gt=0"`
}

type UpdateRoomPolicyRequest struct {
	Number int    `validate:"required,gt=0"`
	Policy string `validate:"required,policy"`
}

type RoomResponse struct {
	Number    int
	Category  string
	Rate      float64
	Available bool
	Policy    string
	MaxGuests int
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.Number = model.Number
	r.Category = string(model.Category)
	r.Rate = model.Rate
	r.Available = model.Available
	r.Policy = model.Policy.Name()
	r.MaxGuests = model.MaxGuests
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse
	TotalData int
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData int) {
	r.TotalData = totalData

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
