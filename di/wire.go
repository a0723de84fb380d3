//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/otel"
	auditHandler "frontdesk/internal/handlers/audit"
	"frontdesk/internal/seed"
	"frontdesk/transport/console"
	"frontdesk/transport/console/prompt"
	"frontdesk/transport/console/render"

	auditRepository "frontdesk/internal/domains/audit/repository"
	auditService "frontdesk/internal/domains/audit/service"

	"github.com/google/wire"

	reservationRepository "frontdesk/internal/domains/reservation/repository"
	reservationService "frontdesk/internal/domains/reservation/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	reservationHandler "frontdesk/internal/handlers/reservation"
	roomHandler "frontdesk/internal/handlers/room"
	"frontdesk/internal/idgen/sequence"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var terminals = wire.NewSet(
	ProvideInput,
	ProvideOutput,
	prompt.New,
	render.New,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	sequence.New,
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	auditDomain,
	roomDomain,
	reservationDomain,
)

var seeding = wire.NewSet(
	seed.New,
)

var consoles = wire.NewSet(
	wire.Struct(new(console.DomainHandlers), "*"),
	roomHandler.New,
	reservationHandler.New,
	auditHandler.New,
)

func InitializeConsole() *console.Console {
	wire.Build(
		configurations,
		infrastructures,
		terminals,
		domains,
		seeding,
		consoles,
		console.New,
	)

	return &console.Console{}
}
