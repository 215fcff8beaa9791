package fixture

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	fsutil "github.com/vbp1/fixturegen/internal/util/fs"
)

// ScenarioReport holds the entry count found in one scenario directory.
type ScenarioReport struct {
	Name     string
	Kind     Kind
	Declared int
	Found    int
}

// Report summarises a finished build. Totals come from walking the tree, not from the manifest.
type Report struct {
	Root      string
	Totals    Totals
	Scenarios []ScenarioReport
	Elapsed   time.Duration
}

func newReport(root string, entries []fsutil.Entry, scenarios []Scenario) Report {
	r := Report{Root: root}
	children := map[string]int{}
	for _, e := range entries {
		if e.IsDir {
			r.Totals.Dirs++
		} else {
			r.Totals.Files++
			r.Totals.Bytes += e.Size
		}
		if i := strings.LastIndexByte(e.Path, '/'); i >= 0 {
			children[e.Path[:i]]++
		}
	}
	r.Scenarios = lo.FilterMap(scenarios, func(s Scenario, _ int) (ScenarioReport, bool) {
		return ScenarioReport{Name: s.Name, Kind: s.Kind, Declared: s.Entries(), Found: children[s.Name]}, s.Name != ""
	})
	return r
}

// Summary returns the multi-line text printed after a build.
func (r Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Test project structure created in: %s\n", r.Root)
	for _, s := range r.Scenarios {
		fmt.Fprintf(&sb, "  %-22s %-8s %d entries\n", s.Name+"/", s.Kind, s.Found)
	}
	fmt.Fprintf(&sb, "Total directories created: %d\n", r.Totals.Dirs)
	fmt.Fprintf(&sb, "Total files created: %d\n", r.Totals.Files)
	fmt.Fprintf(&sb, "Total bytes written: %s", formatBytes(r.Totals.Bytes))
	return sb.String()
}

// formatBytes converts byte count to human-readable string (KB, MB, etc.).
func formatBytes(n int64) string {
	const unit = 1000
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	exp, value := 0, float64(n)
	for value >= unit && exp < 5 {
		value /= unit
		exp++
	}
	suffix := []string{"KB", "MB", "GB", "TB", "PB"}[exp-1]
	return fmt.Sprintf("%.2f %s", value, suffix)
}
