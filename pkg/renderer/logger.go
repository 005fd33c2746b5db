package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// WriterLogger implements core.Logger by writing to an io.Writer
type WriterLogger struct {
	w io.Writer
}

func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(wl.w, format, args...)
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &WriterLogger{w: w}
}

// NewDefaultLogger creates a new default logger writing to stdout
func NewDefaultLogger() core.Logger {
	return NewWriterLogger(os.Stdout)
}
