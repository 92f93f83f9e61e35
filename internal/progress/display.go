package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// ScanDisplay shows feedback while the rules tree is being scanned.
type ScanDisplay struct {
	capabilities TerminalCapabilities
	symbols      Symbols
	spinner      *spinner.Spinner
}

// NewScanDisplay creates a display for the given terminal capabilities.
func NewScanDisplay(caps TerminalCapabilities) *ScanDisplay {
	return &ScanDisplay{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// Start begins the scan indicator with the given message.
func (d *ScanDisplay) Start(msg string) {
	if d.capabilities.IsTTY {
		// TTY mode: animate a spinner on stderr so stdout stays parseable
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		d.spinner.Writer = os.Stderr
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
		return
	}

	// Non-interactive mode: just print the message
	fmt.Fprintln(os.Stderr, msg)
}

// Stop ends the scan indicator. Safe to call when nothing is running.
func (d *ScanDisplay) Stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
