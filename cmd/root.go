package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fastbreak-sim/fastbreak-sim/league"
	"github.com/fastbreak-sim/fastbreak-sim/store"
)

var (
	// CLI flags shared across subcommands
	seed         int64  // Master seed for league generation and every game
	startYear    int    // First season year
	seasons      int    // Number of seasons to simulate
	teamID       string // Franchise the user controls
	dbPath       string // SQLite save database path
	slot         string // Save slot name
	logLevel     string // Log verbosity level
	settingsPath string // Optional YAML settings override file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "fastbreak",
	Short: "Basketball franchise management simulator",
}

// runCmd simulates whole seasons headlessly, saving after each one
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate seasons from a seed",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		settings, err := LoadSettings(settingsPath)
		if err != nil {
			logrus.Fatalf("Could not load settings: %v", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			logrus.Fatalf("Could not open save database %s: %v", dbPath, err)
		}
		defer st.Close()

		ctx := context.Background()
		ls := league.NewLeague(seed, startYear, settings, teamID)
		logrus.Infof("Starting league: seed=%d, year=%d, %d teams, user team %s",
			seed, startYear, len(ls.Teams), ls.UserTeamID)

		endYear := startYear + seasons
		for ls.Year < endYear {
			res, err := league.Apply(ctx, ls, st, league.AdvanceTimeCommand{ToNextEvent: true})
			if err != nil {
				logrus.Fatalf("Advance failed in year %d, phase %s: %v", ls.Year, ls.Phase, err)
			}
			ls = res.State
			if res.Report.Transitioned && ls.Phase == league.PhaseOffseason {
				printSeasonSummary(ls)
				if err := st.Save(ctx, slot, ls); err != nil {
					logrus.Fatalf("Save failed: %v", err)
				}
				logrus.Infof("Saved slot %q after year %d", slot, ls.Year)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// savesCmd lists the save slots in the database
var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := store.Open(dbPath)
		if err != nil {
			logrus.Fatalf("Could not open save database %s: %v", dbPath, err)
		}
		defer st.Close()

		infos, err := st.List(context.Background())
		if err != nil {
			logrus.Fatalf("Could not list saves: %v", err)
		}
		if len(infos) == 0 {
			fmt.Println("no saves")
			return
		}
		for _, info := range infos {
			fmt.Printf("%-20s year %d day %d (%s) %d bytes, saved %s\n",
				info.Slot, info.Year, info.Day, info.Phase, info.SizeBytes,
				info.SavedAt.Format("2006-01-02 15:04:05"))
		}
	},
}

// deleteSaveCmd removes one save slot
var deleteSaveCmd = &cobra.Command{
	Use:   "delete [slot]",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st, err := store.Open(dbPath)
		if err != nil {
			logrus.Fatalf("Could not open save database %s: %v", dbPath, err)
		}
		defer st.Close()

		if err := st.Delete(context.Background(), args[0]); err != nil {
			logrus.Fatalf("Could not delete save: %v", err)
		}
		fmt.Printf("deleted %s\n", args[0])
	},
}

// printSeasonSummary logs standings and the title after a season ends
func printSeasonSummary(ls *league.LeagueState) {
	standings := ls.Standings()
	logrus.Infof("Final standings, year %d:", ls.Year)
	for i, rec := range standings {
		logrus.Infof("  %2d. %s %d-%d (%+d)", i+1, rec.TeamID, rec.Wins, rec.Losses, rec.PointDiff)
	}
	for i := len(ls.Log) - 1; i >= 0; i-- {
		if ls.Log[i].Kind == "champion" && ls.Log[i].Year == ls.Year {
			logrus.Info(ls.Log[i].Detail)
			break
		}
	}
}

// Execute runs the CLI root command
func Execute() {
	// Optional .env for local defaults such as FASTBREAK_DB
	_ = godotenv.Load()
	if env := os.Getenv("FASTBREAK_DB"); env != "" && dbPath == "fastbreak.db" {
		dbPath = env
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "fastbreak.db", "SQLite save database path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for league generation and game results")
	runCmd.Flags().IntVar(&startYear, "year", 2025, "First season year")
	runCmd.Flags().IntVar(&seasons, "seasons", 1, "Number of seasons to simulate")
	runCmd.Flags().StringVar(&teamID, "team", "", "Franchise to control (default: first team)")
	runCmd.Flags().StringVar(&slot, "slot", "autosave", "Save slot name")
	runCmd.Flags().StringVar(&settingsPath, "settings", "", "YAML settings override file")

	savesCmd.AddCommand(deleteSaveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(savesCmd)
}
