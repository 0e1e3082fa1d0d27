package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bwgraph/internal/cache"
	"bwgraph/pkg/log"
)

var cacheCommand = &cobra.Command{
	Use:   "cache",
	Short: "Manage the traffic document cache",
}

var cacheWarmCommand = &cobra.Command{
	Use:   "warm",
	Short: "Fetch the default daily and hourly documents into the cache",
	Run: func(cmd *cobra.Command, args []string) {
		conf := loadConfig()
		if !conf.Cache.Enabled {
			logrus.Fatal("cache is disabled in config")
		}

		_, cached, store, err := openSource(conf)
		if err != nil {
			logrus.Fatal("failed to open cache, ", err)
		}
		defer store.Close()

		queries := defaultQueries()
		ctx := context.Background()
		if conf.Vnstat.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(len(queries))*conf.Vnstat.Timeout)
			defer cancel()
		}
		if err := cached.Warm(ctx, queries); err != nil {
			logrus.Fatal("failed to warm cache, ", err)
		}
		logrus.Infof("cache warmed")
	},
}

var cachePurgeCommand = &cobra.Command{
	Use:   "purge",
	Short: "Drop every cached document",
	Run: func(cmd *cobra.Command, args []string) {
		conf := loadConfig()

		store, err := cache.Open(conf.Cache.Dir, conf.Cache.TTL, log.NewLogger())
		if err != nil {
			logrus.Fatal("failed to open cache, ", err)
		}
		defer store.Close()

		keys, err := store.Keys()
		if err != nil {
			logrus.Fatal("failed to list cache, ", err)
		}
		if err := store.Purge(); err != nil {
			logrus.Fatal("failed to purge cache, ", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "purged %d documents\n", len(keys))
	},
}

func init() {
	cacheCommand.AddCommand(cacheWarmCommand)
	cacheCommand.AddCommand(cachePurgeCommand)
}
