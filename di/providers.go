package di

import (
	"io"
	"os"
)

// ProvideInput is where the console reads its answers from.
func ProvideInput() io.Reader {
	return os.Stdin
}

// ProvideOutput is where prompts, tables, and notices are written.
func ProvideOutput() io.Writer {
	return os.Stdout
}
