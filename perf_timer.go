package stillcount

import (
	"strconv"
	"time"
)

// PerfTimer is a black-box set of named start/stop wall-clock timers used
// by the normal search run to report elapsed time and operation counts.
// Treat it as opaque: only
// its Start/Stop/Report contract matters to callers.
type PerfTimer struct {
	initOn time.Time
	timers map[string]*perfTimerItem
}

type perfTimerItem struct {
	elapsed time.Duration
	curOn   time.Time
	running bool
	ops     int64
}

// NewPerfTimer returns a timer set with its epoch at the current time.
func NewPerfTimer() *PerfTimer {
	return &PerfTimer{initOn: time.Now(), timers: make(map[string]*perfTimerItem)}
}

func (p *PerfTimer) item(name string) *perfTimerItem {
	it, ok := p.timers[name]
	if !ok {
		it = &perfTimerItem{}
		p.timers[name] = it
	}
	return it
}

// Start begins (or resumes) the named timer.
func (p *PerfTimer) Start(name string) {
	p.item(name).curOn = time.Now()
	p.item(name).running = true
}

// Stop pauses the named timer and counts one more operation against it.
func (p *PerfTimer) Stop(name string) {
	it := p.item(name)
	if !it.running {
		return
	}
	it.elapsed += time.Since(it.curOn)
	it.running = false
	it.ops++
}

// WasOps records that the last Start/Stop pair actually covered ops
// operations, not one, for later ops/sec reporting.
func (p *PerfTimer) WasOps(name string, ops int64) {
	p.item(name).ops += ops - 1
}

// Report returns a human-readable summary of elapsed time per named timer,
// in the order given by order; names that were never started are omitted.
func (p *PerfTimer) Report(order []string) string {
	report := "Performance timer report:\n"
	report += "Elapsed time: " + time.Since(p.initOn).String() + "\n"

	for _, name := range order {
		it, ok := p.timers[name]
		if !ok {
			continue
		}
		if it.running {
			report += "  " + name + ": not stopped\n"
			continue
		}
		report += "  " + name + ": " + it.elapsed.String()
		if it.ops > 1 {
			report += " (" + strconv.FormatInt(it.ops, 10) + " ops)"
		}
		report += "\n"
	}
	return report
}
