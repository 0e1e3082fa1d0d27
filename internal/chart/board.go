package chart

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"bwgraph/internal/traffic"
)

// Event is a presentation change delivered to every live chart.
type Event interface {
	event()
}

type ColorSchemeChanged struct {
	Theme Theme
}

type BeforePrint struct{}

type AfterPrint struct{}

func (ColorSchemeChanged) event() {}
func (BeforePrint) event()        {}
func (AfterPrint) event()         {}

// Board owns the live charts of one page.
type Board struct {
	mu      sync.Mutex
	scheme  Theme
	handles []Handle
	logger  *logrus.Entry
}

func NewBoard(scheme Theme, logger *logrus.Entry) *Board {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Board{
		scheme: scheme,
		logger: logger.WithField("component", "board"),
	}
}

// Mount builds one chart per interface series, in order.
func (b *Board) Mount(builder Builder, items []traffic.InterfaceSeries, stacked bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, item := range items {
		h, err := builder.Build(item.ID, item.Series, item.Title, stacked, b.scheme)
		if err != nil {
			return fmt.Errorf("build chart %s: %w", item.ID, err)
		}
		b.handles = append(b.handles, h)
	}
	b.logger.Debugf("mounted %d charts", len(items))
	return nil
}

func (b *Board) Handles() []Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Handle(nil), b.handles...)
}

func (b *Board) Scheme() Theme {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scheme
}

// Apply restyles every chart for ev. Printing always uses PrintTheme; after
// printing the current colour scheme is restored.
func (b *Board) Apply(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var theme Theme
	switch e := ev.(type) {
	case ColorSchemeChanged:
		b.scheme = e.Theme
		theme = e.Theme
	case BeforePrint:
		theme = PrintTheme
	case AfterPrint:
		theme = b.scheme
	default:
		b.logger.Warnf("unknown event %T", ev)
		return
	}

	for _, h := range b.handles {
		h.Restyle(theme)
	}
}
