package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/failure"
	"frontdesk/transport/console/render"
)

func TestRenderer_Error(t *testing.T) {
	t.Run("reported outcomes print as a refusal notice", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := render.New(out)

		r.Error(failure.NotFound("room 404 not found"))

		assert.Equal(t, "!! room 404 not found\n", out.String())
	})

	t.Run("wrapped failures still count as reported", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := render.New(out)

		r.Error(failure.Conflict("room 101 is already reserved"))

		assert.Contains(t, out.String(), "!!")
	})

	t.Run("plain errors print as internal errors", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := render.New(out)

		r.Error(errors.New("date \"2025-01-01\" must be in DD/MM/YYYY format"))

		assert.Contains(t, out.String(), "error: ")
		assert.NotContains(t, out.String(), "!!")
	})
}

func TestRenderer_Table(t *testing.T) {
	out := &bytes.Buffer{}
	r := render.New(out)

	r.Table(
		[]string{"Number", "Category"},
		[][]string{
			{"101", "Single"},
			{"202", "Deluxe"},
		},
	)

	assert.Contains(t, out.String(), "Number")
	assert.Contains(t, out.String(), "101")
	assert.Contains(t, out.String(), "Deluxe")
}

func TestRenderer_Detail(t *testing.T) {
	out := &bytes.Buffer{}
	r := render.New(out)

	r.Detail([][2]string{
		{"Guest", "Ada Lovelace"},
		{"Total", "150.00"},
	})

	assert.Contains(t, out.String(), "Guest")
	assert.Contains(t, out.String(), "Ada Lovelace")
	assert.Contains(t, out.String(), "150.00")
}

func TestRenderer_Message(t *testing.T) {
	out := &bytes.Buffer{}
	r := render.New(out)

	r.Message("Room %d now charges %s per night.", 101, "99.50")

	assert.Equal(t, "Room 101 now charges 99.50 per night.\n", out.String())
}
