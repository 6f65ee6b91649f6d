// Command countup-demo renders a scrollable page of animated counters in
// the terminal. Arrow keys scroll the page; each counter starts its
// count-up the first time its row enters the simulated viewport.
//
// Counter presets are read from countup.yaml at the project root when
// present (see package config); otherwise a built-in set is used. The
// terminal owns stdout, so structured logs go to countup-demo.log.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/mum4k/termdash"
	"github.com/mum4k/termdash/cell"
	"github.com/mum4k/termdash/container"
	"github.com/mum4k/termdash/keyboard"
	"github.com/mum4k/termdash/linestyle"
	"github.com/mum4k/termdash/terminal/tcell"
	"github.com/mum4k/termdash/terminal/terminalapi"
	"github.com/mum4k/termdash/widgets/text"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-drift/countup/pkg/animation"
	"github.com/go-drift/countup/pkg/config"
	"github.com/go-drift/countup/pkg/countup"
	"github.com/go-drift/countup/pkg/errors"
	"github.com/go-drift/countup/pkg/geometry"
	"github.com/go-drift/countup/pkg/visibility"
)

const (
	// Simulated page geometry in logical pixels.
	viewportWidth  = 800
	viewportHeight = 600
	rowHeight      = 90
	rowSpacing     = 220
	firstRowTop    = 150

	frameInterval = 16 * time.Millisecond
	scrollStep    = 40.0

	logFileName = "countup-demo.log"
)

// stat is one row on the simulated page.
type stat struct {
	name    string
	counter *countup.Counter
	target  *visibility.Target
	top     float64
}

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "countup-demo: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	observer := visibility.NewViewportObserver()
	observer.SetViewport(geometry.RectFromLTWH(0, 0, viewportWidth, viewportHeight))

	stats := buildStats(logger, observer)
	defer func() {
		for _, s := range stats {
			s.counter.Dispose()
		}
	}()

	if err := run(logger, observer, stats); err != nil {
		logger.Errorw("demo terminated", "error", err)
		fmt.Fprintf(os.Stderr, "countup-demo: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds a JSON file logger; the terminal UI owns stdout.
func newLogger() (*zap.SugaredLogger, error) {
	logFile, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", logFileName, err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(logFile),
		zap.InfoLevel,
	)

	return zap.New(core).Sugar(), nil
}

// builtinPresets is used when no countup.yaml is found.
func builtinPresets() map[string]countup.Config {
	return map[string]countup.Config{
		"customers": {End: 48230, Separator: ","},
		"revenue":   {End: 1250000, Prefix: "$", Separator: ",", Duration: 2500 * time.Millisecond},
		"uptime":    {End: 99.99, Decimals: 2, Suffix: "%"},
		"downloads": {End: 3400000, Separator: ",", Suffix: "+", Duration: 3 * time.Second},
		"countries": {End: 142},
	}
}

// loadPresets resolves countup.yaml presets, falling back to the built-in
// set when the project root or file is unavailable.
func loadPresets(logger *zap.SugaredLogger) map[string]countup.Config {
	root, err := config.FindProjectRoot()
	if err != nil {
		logger.Infow("no project root, using built-in presets", "reason", err.Error())
		return builtinPresets()
	}

	resolved, err := config.Resolve(root)
	if err != nil {
		errors.Report(&errors.CountupError{Op: "config.Resolve", Kind: errors.KindConfig, Err: err})
		logger.Warnw("preset loading failed, using built-in presets", "error", err.Error())
		return builtinPresets()
	}
	if len(resolved.Presets) == 0 {
		logger.Infow("no presets configured, using built-in presets", "root", resolved.Root)
		return builtinPresets()
	}

	logger.Infow("loaded presets",
		"root", resolved.Root,
		"module", resolved.ModulePath,
		"count", len(resolved.Presets),
	)
	return resolved.Presets
}

// buildStats lays the presets out as page rows and attaches their counters.
func buildStats(logger *zap.SugaredLogger, observer *visibility.ViewportObserver) []*stat {
	presets := loadPresets(logger)

	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	stats := make([]*stat, 0, len(names))
	for i, name := range names {
		s := &stat{
			name:    name,
			counter: countup.NewCounter(presets[name]),
			target:  visibility.NewTarget(),
			top:     firstRowTop + float64(i)*rowSpacing,
		}
		s.target.SetBounds(geometry.RectFromLTWH(100, s.top, 600, rowHeight))

		statName := name
		s.counter.AddStatusListener(func(status animation.AnimationStatus) {
			switch status {
			case animation.AnimationForward:
				logger.Infow("counter triggered", "stat", statName)
			case animation.AnimationCompleted:
				logger.Infow("counter completed", "stat", statName)
			}
		})

		s.counter.Attach(observer, s.target)
		stats = append(stats, s)
	}

	return stats
}

// pageHeight returns the total scrollable height for the given rows.
func pageHeight(stats []*stat) float64 {
	if len(stats) == 0 {
		return viewportHeight
	}
	last := stats[len(stats)-1]
	return last.top + rowHeight + firstRowTop
}

func run(logger *zap.SugaredLogger, observer *visibility.ViewportObserver, stats []*stat) error {
	term, err := tcell.New()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer term.Close()

	page, err := text.New()
	if err != nil {
		return fmt.Errorf("failed to create text widget: %w", err)
	}

	root, err := container.New(
		term,
		container.Border(linestyle.Light),
		container.BorderTitle(" countup demo - arrows scroll, q quits "),
		container.PlaceWidget(page),
	)
	if err != nil {
		return fmt.Errorf("failed to build layout: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scrollCh := make(chan float64, 16)
	onKey := func(k *terminalapi.Keyboard) {
		switch k.Key {
		case keyboard.KeyArrowDown:
			scrollCh <- scrollStep
		case keyboard.KeyArrowUp:
			scrollCh <- -scrollStep
		case keyboard.KeyEsc, 'q', 'Q':
			cancel()
		}
	}

	// Frame loop: all counter state is owned by this goroutine.
	go func() {
		frames := time.NewTicker(frameInterval)
		defer frames.Stop()

		maxScroll := pageHeight(stats) - viewportHeight
		if maxScroll < 0 {
			maxScroll = 0
		}
		scroll := 0.0

		for {
			select {
			case <-ctx.Done():
				return
			case <-frames.C:
				scroll += drainScroll(scrollCh)
				if scroll < 0 {
					scroll = 0
				}
				if scroll > maxScroll {
					scroll = maxScroll
				}

				for _, s := range stats {
					s.target.SetBounds(geometry.RectFromLTWH(100, s.top-scroll, 600, rowHeight))
				}
				observer.Step()
				animation.StepTickers()

				render(page, stats, scroll, maxScroll)
			}
		}
	}()

	logger.Infow("demo started", "stats", len(stats))
	if err := termdash.Run(ctx, term, root,
		termdash.KeyboardSubscriber(onKey),
		termdash.RedrawInterval(frameInterval),
	); err != nil {
		return fmt.Errorf("terminal loop failed: %w", err)
	}

	logger.Infow("demo stopped")
	return nil
}

// drainScroll sums all pending scroll deltas without blocking.
func drainScroll(ch chan float64) float64 {
	total := 0.0
	for {
		select {
		case delta := <-ch:
			total += delta
		default:
			return total
		}
	}
}

// render redraws the page text from the current scroll position.
func render(page *text.Text, stats []*stat, scroll, maxScroll float64) {
	page.Reset()
	page.Write(fmt.Sprintf("scroll %4.0fpx / %4.0fpx\n\n", scroll, maxScroll))

	for _, s := range stats {
		rel := s.top - scroll
		if rel+rowHeight <= 0 || rel >= viewportHeight {
			continue
		}

		page.Write(fmt.Sprintf("  %-12s ", s.name))
		opts := text.WriteCellOpts(cell.FgColor(cell.ColorWhite))
		if s.counter.IsCompleted() {
			opts = text.WriteCellOpts(cell.FgColor(cell.ColorGreen))
		}
		page.Write(fmt.Sprintf("%14s", s.counter.Value()), opts)
		page.Write("\n\n")
	}

	if scroll < maxScroll {
		page.Write("\n  . . . scroll down for more . . .\n", text.WriteCellOpts(cell.FgColor(cell.ColorNavy)))
	}
}
