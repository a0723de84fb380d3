// Package console runs the interactive front desk session. It owns the menu
// loop that HTTP transports would split between server and router.
package console

import (
	"context"
	"errors"
	"io"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/handlers/audit"
	"frontdesk/internal/handlers/reservation"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/seed"
	"frontdesk/shared/constant"
	"frontdesk/transport/console/menu"
	"frontdesk/transport/console/prompt"
	"frontdesk/transport/console/render"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const exitCode = "0"

type DomainHandlers struct {
	Room        room.Handler
	Reservation reservation.Handler
	Audit       audit.Handler
}

type Console struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	Seeder         *seed.Seeder

	otel   otel.Otel
	prompt *prompt.Prompter
	render *render.Renderer
	menu   *menu.Menu
}

func New(cfg *config.Config, domainHandlers DomainHandlers, seeder *seed.Seeder, otel otel.Otel, prompt *prompt.Prompter, render *render.Renderer) *Console {
	return &Console{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		Seeder:         seeder,
		otel:           otel,
		prompt:         prompt,
		render:         render,
	}
}

// Serve runs the desk session until the operator exits or the input runs
// out. One session carries one operator name and one session ID in its
// context; every action inherits both.
func (c *Console) Serve() {
	c.setup()

	sessionID := uuid.NewString()

	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeySessionID, sessionID)
	ctx = context.WithValue(ctx, constant.ContextKeyOperator, c.Config.App.Operator)

	if err := c.Seeder.Up(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed the demo catalog")
	}

	log.Info().
		Str("session_id", sessionID).
		Str("operator", c.Config.App.Operator).
		Msg("Starting up the front desk console.")

	for {
		c.printMenu()

		code, err := c.prompt.String("Select")
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Error().Err(err).Msg("Failed to read the menu selection")
			}

			log.Info().Str("session_id", sessionID).Msg("Input closed. Shutting down now.")

			return
		}

		if code == exitCode {
			log.Info().Str("session_id", sessionID).Msg("Session ended by the operator. Shutting down now.")

			return
		}

		c.dispatch(ctx, code)
	}
}

func (c *Console) setup() {
	c.menu = menu.New()

	c.DomainHandlers.Room.Register(c.menu)
	c.DomainHandlers.Reservation.Register(c.menu)
	c.DomainHandlers.Audit.Register(c.menu)
}

func (c *Console) printMenu() {
	c.render.Title(c.Config.App.Name)

	for _, item := range c.menu.Items() {
		c.render.Message("  %2s. %s", item.Code, item.Label)
	}

	c.render.Message("  %2s. Exit", exitCode)
}

// dispatch runs one menu action and shields the loop from it. A refusal or
// error is rendered and the menu comes back; a closed input is left for the
// next menu read to notice.
func (c *Console) dispatch(ctx context.Context, code string) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+".Dispatch")
	defer scope.End()

	scope.SetAttribute("menu.code", code)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("recover", rec).Msg("Recovered from a panicking handler")
		}
	}()

	found, err := c.menu.Dispatch(ctx, code)
	if !found {
		c.render.Message("Unknown option %q.", code)

		return
	}

	if err != nil && !errors.Is(err, io.EOF) {
		scope.TraceError(err)
		c.render.Error(err)
	}
}
