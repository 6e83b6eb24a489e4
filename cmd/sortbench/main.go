package main

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbosity  string
)

var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Benchmark insertion, quick, bucket, bubble and merge sort",
	Long: `Times every selected sorting algorithm on random integer sequences of each configured
input size, averages the trials and prints the results. A line chart is written as well unless
the plot path is empty.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbosity)
	},
	RunE: runBenchmark,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to benchmark configuration file")
	rootCmd.PersistentFlags().StringVar(&verbosity, "verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")

	rootCmd.Flags().StringVar(&outputFormat, "format", "table", "Output format - choose from [table, csv, samples]")
	rootCmd.Flags().IntSlice("sizes", nil, "Comma separated input sizes, overrides the configuration")
	rootCmd.Flags().Int("trials", 0, "Trials per algorithm and input size, overrides the configuration")
	rootCmd.Flags().Int64("seed", 0, "Random seed, 0 picks one from the clock")
	rootCmd.Flags().String("isolation", "", "Input isolation between trials - choose from [copy, shared]")
	rootCmd.Flags().String("plot", "", "Path of the chart to write, empty disables it")

	rootCmd.AddCommand(listCmd)
}

func setupLogging(verbosity string) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	// stdout carries the results
	log.SetOutput(os.Stderr)

	switch verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
