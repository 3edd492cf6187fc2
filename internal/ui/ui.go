// Package ui prints human-facing status lines to stderr, keeping stdout
// free for board output that can be piped or diffed.
package ui

import (
	"fmt"
	"os"
	"time"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╔════════════════════════════════════╗"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ║"+reset+bold+"   WARDEN  "+dim+"sliding-block solver"+reset+bold+cyan+"     ║"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╚════════════════════════════════════╝"+reset)
	fmt.Fprintln(os.Stderr)
}

func (p *Printer) SolveStart(name string) {
	if name == "" {
		name = "(unnamed puzzle)"
	}
	fmt.Fprintf(os.Stderr, cyan+"◆ solving"+reset+" %s\n", name)
}

func (p *Printer) Solved(moves, expanded int, d time.Duration) {
	fmt.Fprintf(os.Stderr, green+bold+"✓ solved"+reset+" in %d move(s) "+dim+"(%d states expanded, %s)"+reset+"\n",
		moves, expanded, d.Round(time.Millisecond))
}

func (p *Printer) Unsolvable(expanded int, d time.Duration) {
	fmt.Fprintf(os.Stderr, red+bold+"✗ unsolvable"+reset+dim+" — state space exhausted (%d states, %s)"+reset+"\n",
		expanded, d.Round(time.Millisecond))
}

func (p *Printer) PreviouslySolved(moves int, when time.Time) {
	fmt.Fprintf(os.Stderr, dim+"  seen before: solved in %d move(s) on %s"+reset+"\n",
		moves, when.Format("2006-01-02"))
}

func (p *Printer) Step(index, total int, label string) {
	fmt.Fprintf(os.Stderr, dim+"── move %d/%d ──"+reset+" "+bold+"%s"+reset+"\n", index, total, label)
}

func (p *Printer) WatchStart(file string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ watching"+reset+" %s "+dim+"(ctrl-c to stop)"+reset+"\n", file)
}

func (p *Printer) WatchChange(file string) {
	fmt.Fprintf(os.Stderr, "\n"+yellow+"↻ changed"+reset+" %s — re-solving\n", file)
}

func (p *Printer) ValidateResult(name string, blockCount int, errs []error) {
	if name == "" {
		name = "(unnamed puzzle)"
	}
	if len(errs) == 0 {
		fmt.Fprintf(os.Stderr, green+bold+"✓ %s"+reset+" — %d block(s), no errors\n", name, blockCount)
		return
	}
	fmt.Fprintf(os.Stderr, red+bold+"✗ %s"+reset+" — %d error(s):\n", name, len(errs))
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "  "+red+"• "+reset+"%s\n", e)
	}
}

func (p *Printer) HistoryHeader(count int) {
	fmt.Fprintf(os.Stderr, bold+"recorded solves: %d"+reset+"\n", count)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}
