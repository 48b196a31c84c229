package stillcount

import (
	"strings"
	"testing"
)

func TestPerfTimerReportsElapsedAndOps(t *testing.T) {
	p := NewPerfTimer()
	p.Start("search")
	p.Stop("search")
	p.WasOps("search", 100)

	report := p.Report([]string{"search"})
	if !strings.Contains(report, "search") {
		t.Fatalf("expected report to mention the timer name, got %q", report)
	}
	if !strings.Contains(report, "100 ops") {
		t.Fatalf("expected report to mention the op count, got %q", report)
	}
}

func TestPerfTimerUnstartedTimerOmitted(t *testing.T) {
	p := NewPerfTimer()
	report := p.Report([]string{"never-started"})
	if strings.Contains(report, "never-started") {
		t.Fatal("expected a never-started timer to be omitted from the report")
	}
}

func TestPerfTimerRunningTimerReportsNotStopped(t *testing.T) {
	p := NewPerfTimer()
	p.Start("still-running")
	report := p.Report([]string{"still-running"})
	if !strings.Contains(report, "not stopped") {
		t.Fatalf("expected report to flag a running timer as not stopped, got %q", report)
	}
}
