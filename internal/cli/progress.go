package cli

import (
	"time"

	"github.com/schollz/progressbar/v3"
)

// Spinner runs an indeterminate progress spinner until done is closed.
// The upload call has no byte-level progress to report, so this is a
// liveness indicator, not a percentage.
func Spinner(description string, done <-chan struct{}) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			_ = bar.Finish()
			return
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}
