package audit

import (
	"context"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/audit/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/console/menu"
	"frontdesk/transport/console/render"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Audit
	otel    otel.Otel
	render  *render.Renderer
}

func New(service service.Audit, otel otel.Otel, render *render.Renderer) Handler {
	return Handler{
		service: service,
		otel:    otel,
		render:  render,
	}
}

// Register mounts the journal actions on the menu.
func (handler *Handler) Register(m *menu.Menu) {
	m.Add(
		menu.Item{Code: "14", Label: "Activity journal", Run: handler.GetJournal},
	)
}

// GetJournal lists everything that happened this session, oldest first.
func (handler *Handler) GetJournal(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetJournal")
	defer scope.End()

	entries, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit entries")

		return err
	}

	scope.AddEvent("Audit entries retrieved successfully")

	handler.render.Title("Activity journal")

	if entries.TotalData == 0 {
		handler.render.Message("Nothing has happened yet.")

		return nil
	}

	rows := make([][]string, len(entries.Entries))
	for i, entry := range entries.Entries {
		rows[i] = []string{
			entry.At,
			entry.Actor,
			entry.Action,
			entry.Reference,
			entry.Detail,
		}
	}

	handler.render.Table([]string{"At", "Actor", "Action", "Reference", "Detail"}, rows)
	handler.render.Message("%d entries.", entries.TotalData)

	return nil
}
