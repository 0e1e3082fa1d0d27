package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"bwgraph/internal/version"
	"bwgraph/pkg/log"
)

var (
	logLevel   string
	logFormat  string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "bwgraph",
	Short: "bwgraph draws bandwidth usage graphs from vnstat",
	Long: `Daily and hourly bandwidth usage graphs per network interface, served to a browser or drawn in the terminal.
Version: ` + version.VERSION + `/` + version.COMMIT,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.InitLog(logLevel, logFormat)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "etc/config.yaml", "Path to config file")

	rootCmd.AddCommand(serveCommand)
	rootCmd.AddCommand(renderCommand)
	rootCmd.AddCommand(cacheCommand)
	rootCmd.AddCommand(versionCommand)
}
