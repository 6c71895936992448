// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the orcid-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/orcid-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "orcid-engine/0.1"
)

// rootCmd is the base command for the orcid-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "orcid-engine",
	Short: "Fetch and flatten researcher records from the ORCID registry",
	Long: `orcid-engine retrieves researcher metadata (employment, education, works,
funding, peer reviews, biographical fields, and registry search) from the
public ORCID API and flattens its nested JSON into schema-stable tabular
records. Columns are uniform regardless of how sparse a record is, so the
output feeds directly into data-analysis tooling.

Each operation is a subcommand: fetch, search, and status.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./orcid-engine.yaml or ~/.config/orcid-engine/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "registry API base URL (default: production public registry)")
	rootCmd.PersistentFlags().String("token", "", "bearer token for the registry (default: token from config or environment)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("orcid-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "orcid-engine"))
		}
	}

	viper.SetEnvPrefix("ORCID_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadRegistryConfig assembles the registry settings: viper supplies the
// config-file and environment values, flags override them. Credential
// resolution happens here, never inside the transport: the token reaches
// the core only as an explicit parameter.
func loadRegistryConfig(cmd *cobra.Command) types.RegistryConfig {
	cfg := types.RegistryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		BaseURL: viper.GetString("base_url"),
		Token:   viper.GetString("token"),
	}
	if v, _ := cmd.Flags().GetString("base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v, _ := cmd.Flags().GetString("token"); v != "" {
		cfg.Token = v
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
