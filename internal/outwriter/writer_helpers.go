package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/gitreport/internal/contract"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
// The success line goes to status only after the file is closed cleanly.
func writeWithFile(status io.Writer, outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return fmt.Errorf("cannot open output file: %w", err)
	}
	if file == os.Stdout {
		return writer(file)
	}

	if err := writeAndClose(file, writer); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(status, "💾 %s to %s\n", successMsg, outputFile)
	return nil
}

// writeAndClose runs writer against wc and always closes it. A close error
// is returned, since that is where a failed flush to disk shows up.
func writeAndClose(wc io.WriteCloser, writer func(io.Writer) error) error {
	if err := writer(wc); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("cannot close output file: %w", err)
	}
	return nil
}
