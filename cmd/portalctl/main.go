package main

import (
	"os"

	"github.com/innoalumni/portalkit/internal/common"
	"github.com/innoalumni/portalkit/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Command-line client for the alumni portal backend",
	Long: "portalctl issues calls against the alumni portal API with the portal's\n" +
		"default headers and credential handling, exports tabular resources to\n" +
		"xlsx workbooks, and keeps an optional local history of calls.",
}

func init() {
	// .env is optional; real environment always wins
	_ = godotenv.Load()

	// Defaults
	v := viper.GetViper()
	v.SetDefault("config", "./portalctl.yaml")

	// Environment variables support: PORTAL_CONFIG, PORTAL_BACKEND_URL, ...
	v.SetEnvPrefix("PORTAL")
	v.AutomaticEnv()

	rootCmd.PersistentFlags().String("config", v.GetString("config"), "path to a portalctl config yaml")
	rootCmd.PersistentFlags().String("backend-url", "", "backend base URL (overrides config and BACKEND_URL)")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("backend_url", rootCmd.PersistentFlags().Lookup("backend-url"))

	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(waitCmd)
	rootCmd.AddCommand(stubCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads the config document, applies CLI/env overrides and
// installs the configured logger as process default.
func loadConfig() (*config.ConfigDoc, error) {
	v := viper.GetViper()
	doc, err := config.Load(v.GetString("config"))
	if err != nil {
		return nil, err
	}
	if u := v.GetString("backend_url"); u != "" {
		doc.BackendURL = u
	}
	common.SetDefaultLogger(doc.NewLogger())
	return doc, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		common.GetLogger().Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
