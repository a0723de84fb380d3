package seed

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/internal/domains/room/model/dto"
	roomService "frontdesk/internal/domains/room/service"

	"github.com/rs/zerolog/log"
)

// demoRooms is the floor plan loaded for demo sessions.
var demoRooms = []dto.CreateRoomRequest{
	{Number: 101, Category: "Single", Rate: 75, Policy: "Regular"},
	{Number: 102, Category: "Double", Rate: 120, Policy: "Regular"},
	{Number: 201, Category: "Double", Rate: 135, Policy: "Premium"},
	{Number: 202, Category: "Deluxe", Rate: 180, Policy: "Premium"},
	{Number: 301, Category: "Suite", Rate: 400, Policy: "Corporate"},
}

type Seeder struct {
	rooms roomService.Room
	cfg   *config.Config
}

func New(rooms roomService.Room, cfg *config.Config) *Seeder {
	return &Seeder{
		rooms: rooms,
		cfg:   cfg,
	}
}

// Up registers the demo floor when SEED_DEMO is set. Rooms go through the
// regular service, so the journal records them like any other registration.
func (s *Seeder) Up(ctx context.Context) error {
	if !s.cfg.Seed.Demo {
		return nil
	}

	for _, req := range demoRooms {
		if _, err := s.rooms.Create(ctx, req); err != nil {
			return fmt.Errorf("failed to seed room %d: %w", req.Number, err)
		}
	}

	log.Info().Int("rooms", len(demoRooms)).Msg("Demo room catalog seeded.")

	return nil
}
