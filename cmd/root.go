// Package cmd is for command line interactions with the clustalign
// application
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is an optional settings file overriding the defaults
	cfgFile string

	verbose bool
)

// RootCmd represents the base command when called without any
// subcommands.
var RootCmd = &cobra.Command{
	Use: "clustalign",
	Short: `Progressive multiple sequence alignment of nucleotide sequences.
Aligns related sequences (eg bacterial 16S rRNA genes) to expose their
conserved and variable regions, and derives a consensus sequence`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "settings", "", "path to a YAML settings file")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	RootCmd.PersistentFlags().Float64("match", 1, "score of two identical residues")
	RootCmd.PersistentFlags().Float64("mismatch", -1, "score of two differing residues")
	RootCmd.PersistentFlags().Float64("gap-open", -2, "penalty of the first symbol of a gap")
	RootCmd.PersistentFlags().Float64("gap-extend", -1, "penalty of each further gap symbol")
	RootCmd.PersistentFlags().Int("workers", 0, "worker count for pairwise distances, 0 for one per CPU")

	viper.BindPFlag("scoring.match", RootCmd.PersistentFlags().Lookup("match"))
	viper.BindPFlag("scoring.mismatch", RootCmd.PersistentFlags().Lookup("mismatch"))
	viper.BindPFlag("scoring.gap-open", RootCmd.PersistentFlags().Lookup("gap-open"))
	viper.BindPFlag("scoring.gap-extend", RootCmd.PersistentFlags().Lookup("gap-extend"))
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))
}

// initConfig reads in the settings file, if set, and prepares logging.
func initConfig() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("reading settings file: %v", err)
	}
	log.WithField("file", viper.ConfigFileUsed()).Debug("read settings")
}
