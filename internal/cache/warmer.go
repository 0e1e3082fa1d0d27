package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"bwgraph/internal/vnstat"
)

// Warmer refreshes the cached documents on a cron schedule so page loads
// rarely wait for vnstat.
type Warmer struct {
	cron    *cron.Cron
	source  *Source
	queries []vnstat.Query
	timeout time.Duration
	logger  *logrus.Entry
}

func NewWarmer(spec string, source *Source, queries []vnstat.Query, timeout time.Duration) (*Warmer, error) {
	w := &Warmer{
		cron:    cron.New(),
		source:  source,
		queries: queries,
		timeout: timeout,
		logger:  source.logger.WithField("job", "warm"),
	}
	if _, err := w.cron.AddFunc(spec, w.run); err != nil {
		return nil, fmt.Errorf("add warm job %q: %w", spec, err)
	}
	return w, nil
}

func (w *Warmer) run() {
	ctx := context.Background()
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	start := time.Now()
	if err := w.source.Warm(ctx, w.queries); err != nil {
		w.logger.WithError(err).Error("warm cache failed")
		return
	}
	w.logger.Debugf("warmed %d documents in %s", len(w.queries), time.Since(start))
}

func (w *Warmer) Start() {
	w.cron.Start()
}

// Stop waits for a running job to finish.
func (w *Warmer) Stop() {
	<-w.cron.Stop().Done()
}
