package app

import (
	"io"
	"os"

	"github.com/kaspanet/bestchain/infrastructure/config"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrTerminalOutput is returned by OpenOutput when the chain would be written
// to an interactive terminal without --force.
var ErrTerminalOutput = errors.New("refusing to write binary output to a terminal -- " +
	"redirect standard output, use --outfile or pass --force")

var defaultIsTerminal = term.IsTerminal

// isTerminal is replaced in tests.
var isTerminal = defaultIsTerminal

// OpenInput opens the header source. config.StdStream selects standard input,
// which is not closed by the returned closer.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == config.StdStream {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening header file %s", path)
	}
	return f, nil
}

// OpenOutput opens the chain destination. config.StdStream selects standard
// output, which is refused with ErrTerminalOutput when it is a terminal,
// unless force is set.
func OpenOutput(path string, force bool) (io.WriteCloser, error) {
	if path == config.StdStream {
		if !force && isTerminal(int(os.Stdout.Fd())) {
			return nil, ErrTerminalOutput
		}
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating output file %s", path)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
