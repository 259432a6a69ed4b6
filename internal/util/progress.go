package util

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/tyama/commentx/internal/progress"
)

func isTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ShouldShowProgress resolves the --progress/--no-progress pair; with
// neither set, progress is shown only on an interactive terminal.
func ShouldShowProgress(force, no bool) bool {
	if no {
		return false
	}
	if force {
		return true
	}
	return isTTY(os.Stdout) && isTTY(os.Stderr)
}

// Progress writes a single self-overwriting status line to stderr, with
// the ETA supplied by a rate estimator.
type Progress struct {
	est      *progress.Estimator
	enabled  bool
	lastDone int
}

func NewProgress(total int, enabled bool) *Progress {
	return &Progress{
		est:     progress.NewEstimator(total, progress.Config{}),
		enabled: enabled,
	}
}

// Update takes the cumulative number of finished files.
func (p *Progress) Update(done int) {
	if !p.enabled {
		return
	}
	delta := done - p.lastDone
	p.lastDone = done
	snap, notify := p.est.Advance(delta)
	if !notify {
		return
	}
	eta := "-"
	if !snap.Warmup && snap.ETAP50 > 0 {
		eta = formatETA(snap.ETAP50)
	}
	fmt.Fprintf(os.Stderr, "\r\033[K[scan] %d/%d (%d%%) ETA %s",
		snap.Done, snap.Total, percent(snap.Done, snap.Total), eta)
}

func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	p.est.Complete()
	fmt.Fprint(os.Stderr, "\r\033[K")
}

func formatETA(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

func percent(a, b int) int {
	if b == 0 {
		return 100
	}
	pct := int(float64(a) * 100 / float64(b))
	if pct > 100 {
		return 100
	}
	return pct
}
