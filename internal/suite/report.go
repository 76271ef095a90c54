package suite

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/kegelbahn/tenpin/pkg/stringsutil"
)

// WriteTable renders the PASS/FAIL table for a suite run.
func WriteTable(r *Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.SuiteName)

	header := []string{"Case", "Input", "Expected", "Got", "Elapsed", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(separator(len(header)), "\t"))

	for _, c := range r.Cases {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		row := []string{
			c.ID,
			stringsutil.Truncate(c.Input, 32),
			fmt.Sprintf("%d", c.Expected),
			fmt.Sprintf("%d", c.Got),
			fmtDuration(c.Elapsed),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\n%d passed, %d failed\n", r.PassCount(), r.FailCount())
	tw.Flush()
}

// WriteBenchTable renders per-case latency stats plus an overall row.
func WriteBenchTable(br *BenchResult, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Bench: %s (%d iterations per case) ===\n\n", br.SuiteName, br.Iterations)

	header := []string{"Case", "Total", "Min", "p50", "p95", "p99", "Max", "Mean", "Stddev"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(separator(len(header)), "\t"))

	for _, c := range br.Cases {
		fmt.Fprintln(tw, strings.Join(benchRow(c.ID, fmt.Sprintf("%d", c.Total), c.Latency), "\t"))
	}
	fmt.Fprintln(tw, strings.Join(benchRow("overall", "-", br.Overall), "\t"))

	fmt.Fprintln(tw)
	tw.Flush()
}

func benchRow(name, total string, s LatencyStats) []string {
	return []string{
		name,
		total,
		fmtDuration(s.Min),
		fmtDuration(s.P50()),
		fmtDuration(s.P95()),
		fmtDuration(s.P99()),
		fmtDuration(s.Max),
		fmtDuration(s.Mean),
		fmtDuration(s.Stddev),
	}
}

func separator(n int) []string {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	return sep
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
