package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bwgraph/internal/cache"
	"bwgraph/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start bwgraph server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	conf := loadConfig()

	logrus.Infof("config: %+v", conf)

	source, cached, store, err := openSource(conf)
	if err != nil {
		logrus.Fatal("failed to open cache, ", err)
	}
	if store != nil {
		defer store.Close()
	}

	var warmer *cache.Warmer
	if cached != nil && conf.Cache.Refresh != "" {
		warmer, err = cache.NewWarmer(conf.Cache.Refresh, cached, defaultQueries(), conf.Vnstat.Timeout)
		if err != nil {
			logrus.Fatalf("new warmer error, %s", err.Error())
		}
		warmer.Start()
	}

	ctx, cancelFunc := context.WithCancel(context.Background())

	srv, err := server.NewServer(ctx, conf, source)
	if err != nil {
		cancelFunc()
		logrus.Fatalf("newServer error, %s", err.Error())
		return
	}
	go srv.Start()

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan
	logrus.Infof("server is shutting down...")
	srv.Shutdown()
	if warmer != nil {
		warmer.Stop()
	}
	cancelFunc()
}
