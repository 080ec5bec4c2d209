package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Indicator shows that remote work is in flight.
type Indicator interface {
	Start()
	Stop()
}

// NewSpinner returns a terminal spinner writing to w. The spinner draws
// nothing when w is not a terminal.
func NewSpinner(w io.Writer, suffix string) Indicator {
	opt := spinner.WithWriter(w)
	if f, ok := w.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, opt)
	s.Suffix = " " + suffix
	return s
}

type silentIndicator struct{}

func (silentIndicator) Start() {}
func (silentIndicator) Stop()  {}

// SilentIndicator is used in machine-readable modes.
var SilentIndicator Indicator = silentIndicator{}
