package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Mode selects how build progress is shown.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeBar   Mode = "bar"
	ModePlain Mode = "plain"
	ModeNone  Mode = "none"
)

// ParseMode accepts auto|bar|plain|none.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeBar, ModePlain, ModeNone:
		return m, nil
	}
	return "", fmt.Errorf("invalid progress mode %q: want auto|bar|plain|none", s)
}

// Tracker counts created entries against a planned total.
// It is driven from a single goroutine.
type Tracker struct {
	name  string
	total int64
	done  int64

	p   *mpb.Progress
	bar *mpb.Bar

	plain    io.Writer
	interval time.Duration
	last     time.Time
}

// New returns a tracker for total entries. In auto mode the bar is shown only when verbose.
func New(mode Mode, verbose bool, name string, total int64, out io.Writer, interval time.Duration) *Tracker {
	t := &Tracker{name: name, total: total}
	if mode == ModeAuto {
		mode = ModeNone
		if verbose {
			mode = ModeBar
		}
	}
	switch mode {
	case ModeBar:
		t.p = mpb.New(mpb.WithOutput(out), mpb.WithWidth(40), mpb.WithRefreshRate(100*time.Millisecond))
		namePrefix := name + " "
		t.bar = t.p.New(total, mpb.BarStyle().Rbound("|").Lbound("|"),
			mpb.PrependDecorators(decor.Name(namePrefix, decor.WC{W: len(namePrefix), C: decor.DSyncWidth}), decor.Percentage()),
			mpb.AppendDecorators(decor.CountersNoUnit("%d / %d entries")))
	case ModePlain:
		if interval <= 0 {
			interval = time.Second
		}
		t.plain, t.interval, t.last = out, interval, time.Now()
	}
	return t
}

// Incr records one created entry.
func (t *Tracker) Incr() {
	t.done++
	if t.bar != nil {
		t.bar.Increment()
	}
	if t.plain != nil && time.Since(t.last) >= t.interval {
		t.printPlain()
		t.last = time.Now()
	}
}

// Done is the number of entries recorded so far.
func (t *Tracker) Done() int64 { return t.done }

// Finish completes or aborts the display and waits for it to flush.
func (t *Tracker) Finish(ok bool) {
	if t.bar != nil {
		if ok {
			t.bar.SetTotal(t.total, true)
		} else {
			t.bar.Abort(false)
		}
		t.p.Wait()
	}
	if t.plain != nil {
		t.printPlain()
	}
}

func (t *Tracker) printPlain() {
	percent := int64(100)
	if t.total > 0 {
		percent = min(t.done*100/t.total, 100)
	}
	fmt.Fprintf(t.plain, "[%s] %s %3d %%  (%d / %d entries)\n",
		time.Now().Format("2006-01-02 15:04:05"), t.name, percent, t.done, t.total)
}
