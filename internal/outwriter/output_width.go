package outwriter

import (
	"os"

	"github.com/huangsam/gitreport/internal/contract"
	"golang.org/x/term"
)

// Bounds for the --bars histogram.
const (
	minBarWidth   = 10
	maxBarWidth   = 60
	labelReserve  = 24 // Longest count line ("Distribution" rows) plus padding
	fallbackWidth = 80 // Conservative default for narrow terminals and CI
)

// GetMaxBarWidth calculates the longest bar that fits next to a count line
// based on the --width override, the terminal width, or a fixed width when
// writing to a file.
func GetMaxBarWidth(cfg *contract.Config) int {
	termWidth := cfg.Width

	switch {
	case termWidth != 0: // Set by override
	case cfg.OutputFile != "":
		// A report file has no terminal to fit
		termWidth = fallbackWidth
	default:
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = fallbackWidth
		} else {
			termWidth = detectedWidth
		}
	}

	available := termWidth - labelReserve
	if available < minBarWidth {
		return minBarWidth
	}
	if available > maxBarWidth {
		return maxBarWidth
	}
	return available
}
