// Command skydome is a terminal planetarium that projects a star catalog
// onto an overhead dome view for an observer location and time.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/skydome/internal/astro"
	"github.com/litescript/skydome/internal/catalog"
	"github.com/litescript/skydome/internal/dome"
	"github.com/litescript/skydome/internal/logging"
	"github.com/litescript/skydome/internal/state"
	"github.com/litescript/skydome/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	snapshotPath  string
	watchInterval time.Duration
	eventsMode    bool
)

// Headless exports use a fixed pixel-plane geometry so output is stable
// regardless of terminal size.
var headlessGeometry = dome.Geometry{CenterX: 250, CenterY: 250, Radius: 220}

func main() {
	lat := flag.Float64("lat", 59.3293, "Observer latitude in degrees (north positive)")
	lon := flag.Float64("lon", 18.0686, "Observer longitude in degrees (east positive)")
	timeStr := flag.String("time", "", "Pin the clock to an RFC3339 instant (default: wall clock)")
	catalogPath := flag.String("catalog", "", "Load star catalog from YAML file (default: built-in)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON frame to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 30s)")
	flag.BoolVar(&eventsMode, "events", false, "Show event log after headless output")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	clock := time.Now
	if *timeStr != "" {
		pinned, err := time.Parse(time.RFC3339, *timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -time %q: %v\n", *timeStr, err)
			os.Exit(1)
		}
		clock = func() time.Time { return pinned }
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		loaded, err := catalog.LoadYAML(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load catalog: %v\n", err)
			os.Exit(1)
		}
		cat = loaded
	}

	obs := astro.Observer{LatDeg: *lat, LonDeg: *lon}

	engine := dome.NewEngine(cat,
		dome.WithObserver(obs),
		dome.WithClock(clock),
		dome.WithLogger(logger),
	)

	stateCfg := state.DefaultConfig()
	stateCfg.Clock = clock
	stateMgr := state.NewManager(engine, stateCfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	headless := summaryMode || snapshotPath != "" || eventsMode

	// A TUI needs a terminal; fall back to the summary table when stdout
	// is redirected.
	if !headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Warn("stdout is not a terminal, falling back to -summary")
		summaryMode = true
		headless = true
	}

	if headless {
		runHeadless(ctx, stateMgr, logger)
		return
	}

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(ctx context.Context, stateMgr *state.Manager, logger *logging.Logger) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	outputOnce := func() error {
		stateMgr.SetGeometry(headlessGeometry)
		snap := stateMgr.Snapshot()

		logger.Debug("Rendered frame: %d/%d stars at %s",
			snap.VisibleCount, snap.TotalCount, snap.RenderedAt.UTC().Format(time.RFC3339))

		if snapshotPath != "" {
			export := dome.ExportFrame(snap.Frame, snap.Observer, snap.RenderedAt,
				snap.VisibleCount, snap.TotalCount)
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			dome.WriteSummaryTable(os.Stdout, snap.Frame, snap.Observer, snap.RenderedAt)
		}

		if eventsMode {
			fmt.Println()
			for _, e := range snap.Events {
				fmt.Printf("%s  %-18s %s\n",
					e.Timestamp.UTC().Format("15:04:05"), e.Type, e.Detail)
			}
		}

		return nil
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if isTTY {
				fmt.Print("\033[H\033[2J")
			} else {
				fmt.Println()
			}
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
