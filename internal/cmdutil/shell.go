// internal/cmdutil/shell.go
package cmdutil

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqlab/internal/writers"
)

// Flush drains the buffered stdout writer and maps the result to an
// exit code: 0 on success or broken pipe (downstream `head` closed
// early), 3 on any other flush failure.
func Flush(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// UsageExit is the shared CLI-error tail: -h prints usage and exits 0,
// anything else prints the error and usage and exits 2.
func UsageExit(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		fs.SetOutput(outw)
		fs.Usage()
		return Flush(outw, stderr)
	}
	_, _ = fmt.Fprintln(stderr, err)
	fs.SetOutput(outw)
	fs.Usage()
	if code := Flush(outw, stderr); code != 0 {
		return code
	}
	return 2
}
