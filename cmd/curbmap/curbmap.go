package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	envFile     string
	logLevelInt int
	logLevel    zerolog.Level = 1
	// The root command of our program
	rootCmd = &cobra.Command{
		Use:   "curbmap",
		Short: "Converts San Francisco parking open data into per-blockface app bundles.",
		Long: `Curbmap converts San Francisco municipal open-data feeds into the consolidated
	per-blockface model consumed by the parking lookup app. The convert command
	matches regulation, sweeping and meter records onto blockface centerlines;
	the zones command derives permit-area polygons from the converted output.`,
	}
)

// Go, go, go
func main() {
	rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Bind our args to the command
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "The env file to read.")
	rootCmd.PersistentFlags().IntVar(&logLevelInt, "log", 1, "The logging level to use.")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(zonesCmd)
}

func initConfig() {
	logLevel = zerolog.Level(logLevelInt)
	zerolog.SetGlobalLevel(logLevel)

	err := godotenv.Load(envFile)
	if err != nil {
		slog.Info("failed to load env file", "error", err.Error())
	}
}
