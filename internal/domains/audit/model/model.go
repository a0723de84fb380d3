package model

import (
	"time"
)

const (
	EntityName = "audit_entry"
)

const (
	ActionRoomCreate       = "room.create"
	ActionRoomUpdateRate   = "room.update_rate"
	ActionRoomUpdatePolicy = "room.update_policy"
	ActionRoomDelete       = "room.delete"

	ActionReservationCreate       = "reservation.create"
	ActionReservationUpdateGuests = "reservation.update_guests"
	ActionReservationUpdateDates  = "reservation.update_dates"
	ActionReservationMove         = "reservation.move"
	ActionReservationCancel       = "reservation.cancel"
)

// Entry is one line of the session activity journal. Entries are immutable
// once written and die with the process like every other record.
type Entry struct {
	ID        string
	Action    string
	Reference string
	Detail    string
	Actor     string
	At        time.Time
}
