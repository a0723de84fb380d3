// Package render writes console output and decides how loudly an error is
// shown.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"frontdesk/shared/failure"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

type Renderer struct {
	out io.Writer
}

func New(out io.Writer) *Renderer {
	return &Renderer{
		out: out,
	}
}

// Title prints a section heading.
func (r *Renderer) Title(text string) {
	fmt.Fprintf(r.out, "\n== %s ==\n", text)
}

// Message prints one formatted line.
func (r *Renderer) Message(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Error shows a failed operation. Reported outcomes print as a plain refusal
// and the session moves on; anything else also goes to the log as an
// internal error.
func (r *Renderer) Error(err error) {
	if failure.Is(err) {
		fmt.Fprintf(r.out, "!! %s\n", err.Error())

		return
	}

	logger.ErrorWithStack(err)

	fmt.Fprintf(r.out, "error: %v\n", err)
}

// Table prints rows under headers with aligned columns.
func (r *Renderer) Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("failed to flush table output")
	}
}

// Detail prints label and value pairs with aligned labels.
func (r *Renderer) Detail(pairs [][2]string) {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)

	for _, pair := range pairs {
		fmt.Fprintf(w, "%s\t%s\n", pair[0], pair[1])
	}

	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("failed to flush detail output")
	}
}
