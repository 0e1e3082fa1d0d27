package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bwgraph/internal/chart"
	"bwgraph/internal/metrics"
	"bwgraph/internal/traffic"
	"bwgraph/internal/vnstat"
	"bwgraph/pkg/log"
)

type renderOptions struct {
	timeScale string
	count     int
	stacked   bool
	file      string
	print     bool
	dark      bool
	width     int
}

var renderOpts renderOptions

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Draw bandwidth graphs in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		conf := loadConfig()

		g, err := traffic.ParseGranularity(renderOpts.timeScale)
		if err != nil {
			logrus.Fatal(err)
		}
		count := renderOpts.count
		if count <= 0 {
			count = g.DefaultCount()
		}
		q := vnstat.Query{Granularity: g, Count: min(count, conf.MaxPeriods)}

		var source vnstat.Source
		if renderOpts.file != "" {
			source = &vnstat.FileSource{Path: renderOpts.file}
		} else {
			s, _, store, err := openSource(conf)
			if err != nil {
				logrus.Fatal("failed to open cache, ", err)
			}
			if store != nil {
				defer store.Close()
			}
			source = s
		}

		ctx := context.Background()
		if conf.Vnstat.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, conf.Vnstat.Timeout)
			defer cancel()
		}
		doc, err := source.Fetch(ctx, q)
		if err != nil {
			logrus.Fatal("failed to fetch traffic document, ", err)
		}

		builder, err := conf.Builder()
		if err != nil {
			logrus.Fatal(err)
		}
		theme := conf.Theme.Light
		if renderOpts.dark {
			theme = conf.Theme.Dark
		}
		if err := renderCharts(cmd.OutOrStdout(), doc, g, builder, theme, renderOpts); err != nil {
			logrus.Fatal(err)
		}
	},
}

func renderCharts(w io.Writer, doc *traffic.Document, g traffic.Granularity, builder *traffic.Builder, theme chart.Theme, opts renderOptions) error {
	ifaces := traffic.Normalize(doc, g)
	items := builder.Run(doc, g, opts.stacked)
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "no interface has traffic data")
		return err
	}

	board := chart.NewBoard(theme, log.NewLogger())
	if err := board.Mount(chart.TermBuilder{Width: opts.width}, items, opts.stacked); err != nil {
		return err
	}
	metrics.AddChartsBuilt(string(g), len(items))
	if opts.print {
		board.Apply(chart.BeforePrint{})
	}

	for i, h := range board.Handles() {
		rx, tx := traffic.Totals(ifaces[i], g)
		_, err := fmt.Fprintf(w, "%s  total rx %s, tx %s\n\n",
			h.(*chart.TermChart).Render(), humanize.IBytes(rx), humanize.IBytes(tx))
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	f := renderCommand.Flags()
	f.StringVar(&renderOpts.timeScale, "ts", "d", "Time scale, d (daily) or h (hourly)")
	f.IntVar(&renderOpts.count, "nr", 0, "Number of periods, default 7 daily and 12 hourly")
	f.BoolVar(&renderOpts.stacked, "stack", false, "Stack rx and tx instead of showing a total")
	f.StringVar(&renderOpts.file, "file", "", "Read the traffic document from a file instead of vnstat")
	f.BoolVar(&renderOpts.print, "print", false, "Use the print theme")
	f.BoolVar(&renderOpts.dark, "dark", false, "Use the dark theme")
	f.IntVar(&renderOpts.width, "width", 40, "Bar width in cells")
}
