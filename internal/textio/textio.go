// Package textio holds small helpers for the one-shot text writers.
package textio

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// WriteFile creates path, hands fn a buffered writer, then flushes and
// closes the file. Errors from fn, the flush and the close are combined.
func WriteFile(path string, fn func(w *bufio.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	bw := bufio.NewWriterSize(f, 64*1024)
	if err := fn(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadFile opens path and hands the file to fn; the file is closed
// after fn returns.
func ReadFile(path string, fn func(f *os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}
