package cmd

import (
	"fmt"
	"os"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const name = "jenkins-helper"

// version is set at build time with -ldflags.
var version = "dev"

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   name,
	Short: "Inventory and classify the build and test machines of a CI fleet",
	Long: `jenkins-helper lists the worker machines registered with a Jenkins
controller (and optionally Kubernetes or a static node file), classifies each
by architecture, OS, OS version and CI role, and writes:

  - a count table grouped by OS, version, architecture and role
  - an Ansible-style INI inventory rendered from a template
  - an alert file listing offline or unlabelled machines`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: inventory.yml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("inventory")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

func initLogging() {
	if debug {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, "debug")
		return
	}
	logging.SetDefaultStructuredLogger(name, version)
}
