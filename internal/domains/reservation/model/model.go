package model

import "frontdesk/shared/model"

const EntityName = "reservation"

// Reservation links a guest to a room for a stay. CheckIn and CheckOut hold
// DD/MM/YYYY text exactly as entered; nothing parses them until the detail
// view asks for a night count.
type Reservation struct {
	ID         int
	GuestName  string
	Contact    string
	RoomNumber int
	CheckIn    string
	CheckOut   string
	Guests     int
	model.Metadata
}
