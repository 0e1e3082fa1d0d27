package cmd

import (
	"github.com/sirupsen/logrus"

	"bwgraph/internal/cache"
	"bwgraph/internal/config"
	"bwgraph/internal/traffic"
	"bwgraph/internal/vnstat"
	"bwgraph/pkg/log"
)

func loadConfig() *config.Config {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}
	if !rootCmd.PersistentFlags().Changed("log-format") && conf.LogFormat != "" {
		log.InitLog(logLevel, conf.LogFormat)
	}
	return conf
}

// backendSource picks where documents come from: a stored file, a remote
// data.json, or the local vnstat binary.
func backendSource(conf *config.Config) vnstat.Source {
	switch {
	case conf.Vnstat.DataFile != "":
		return &vnstat.FileSource{Path: conf.Vnstat.DataFile}
	case conf.Vnstat.URL != "":
		return vnstat.NewHTTPSource(conf.Vnstat.URL, conf.Vnstat.Timeout)
	default:
		return vnstat.NewCommandSource(conf.Vnstat.Binary, conf.Vnstat.Interface, conf.Vnstat.Timeout, log.NewLogger())
	}
}

// openSource returns the backend wrapped in the document cache when it is
// enabled. The store is nil otherwise.
func openSource(conf *config.Config) (vnstat.Source, *cache.Source, *cache.Store, error) {
	backend := backendSource(conf)
	if !conf.Cache.Enabled {
		return backend, nil, nil, nil
	}
	store, err := cache.Open(conf.Cache.Dir, conf.Cache.TTL, log.NewLogger())
	if err != nil {
		return nil, nil, nil, err
	}
	cached := cache.NewSource(backend, store)
	return cached, cached, store, nil
}

// defaultQueries are the documents a page load without parameters asks for.
func defaultQueries() []vnstat.Query {
	return []vnstat.Query{
		{Granularity: traffic.GranularityDay, Count: traffic.GranularityDay.DefaultCount()},
		{Granularity: traffic.GranularityHour, Count: traffic.GranularityHour.DefaultCount()},
	}
}
