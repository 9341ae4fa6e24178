package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/storecrewhq/storecrew/internal/config"
	"github.com/storecrewhq/storecrew/internal/metrics"
	"github.com/storecrewhq/storecrew/pkg/core/services"
	"github.com/storecrewhq/storecrew/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	logger *zap.Logger
	ctx    context.Context
}

var (
	env         string
	metricsAddr string
	app         *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "storecrew",
		Short: "Storecrew CLI - Evaluate retail crew schedules",
		Long:  `A CLI tool for validating candidate crew schedules against store rules and scoring worker preferences.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "prod", "Environment (test, dev, prod)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Expose Prometheus metrics on this address (e.g. :8080), disabled when empty")

	// Add all commands
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(coverageCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			app.logger.Info("Metrics server listening", zap.String("address", metricsAddr))
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				app.logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	return nil
}

// loadSchedule loads a schedule-day file and builds the evaluation
// snapshot for the given date (today when dateStr is empty)
func loadSchedule(path, dateStr string) (*config.Config, time.Time, error) {
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to load schedule: %w", err)
	}

	date := time.Now()
	if dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
	}

	return cfg, date, nil
}

// Command definitions

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schedule_file>",
		Short: "Validate a candidate schedule against the store rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dateStr, _ := cmd.Flags().GetString("date")

			cfg, date, err := loadSchedule(args[0], dateStr)
			if err != nil {
				return err
			}

			sched, err := cfg.Schedule(date)
			if err != nil {
				return err
			}

			report, err := services.Evaluate(app.ctx, app.logger, sched)
			if err != nil {
				return err
			}

			if report.Valid {
				fmt.Printf("\n✓ Schedule is valid (%d assignments checked)\n", len(sched.Assignments))
				return nil
			}

			violations := report.Violations()
			fmt.Printf("\n✗ Schedule is invalid: %d violations\n\n", len(violations))
			for _, v := range violations {
				fmt.Printf("  - %s\n", v)
			}
			fmt.Println()

			os.Exit(1)
			return nil
		},
	}

	cmd.Flags().String("date", "", "Scheduling date (YYYY-MM-DD, defaults to today)")

	return cmd
}

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <schedule_file>",
		Short: "Score worker preferences for a candidate schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dateStr, _ := cmd.Flags().GetString("date")

			cfg, date, err := loadSchedule(args[0], dateStr)
			if err != nil {
				return err
			}

			sched, err := cfg.Schedule(date)
			if err != nil {
				return err
			}

			report, err := services.Evaluate(app.ctx, app.logger, sched)
			if err != nil {
				return err
			}

			fmt.Printf("\nPreference scores (%d preferences):\n\n", len(report.Scores))
			for _, s := range report.Scores {
				mark := "✗"
				if s.Satisfied {
					mark = "✓"
				}
				fmt.Printf("  %s %-18s %-16s score %10.2f  (weight %.2f)  %s\n",
					mark, s.WorkerID, s.Category, s.Score, s.AppliedWeight, s.Details)
			}
			fmt.Printf("\nObjective total: %.2f\n\n", report.TotalScore)

			return nil
		},
	}

	cmd.Flags().String("date", "", "Scheduling date (YYYY-MM-DD, defaults to today)")

	return cmd
}

func evaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <schedule_file>",
		Short: "Run the full evaluation: rule checks plus preference scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dateStr, _ := cmd.Flags().GetString("date")

			cfg, date, err := loadSchedule(args[0], dateStr)
			if err != nil {
				return err
			}

			sched, err := cfg.Schedule(date)
			if err != nil {
				return err
			}

			report, err := services.Evaluate(app.ctx, app.logger, sched)
			if err != nil {
				return err
			}

			fmt.Printf("\nEvaluation report %s\n\n", report.ID)

			for _, check := range report.Checks {
				if check.Result.Valid {
					fmt.Printf("  ✓ %s\n", check.Rule)
					continue
				}
				fmt.Printf("  ✗ %s\n", check.Rule)
				for _, v := range check.Result.Violations {
					fmt.Printf("      - %s\n", v)
				}
			}

			fmt.Printf("\nPreference scores:\n")
			for _, s := range report.Scores {
				fmt.Printf("  %-18s %-16s %10.2f\n", s.WorkerID, s.Category, s.Score)
			}

			verdict := "VALID"
			if !report.Valid {
				verdict = "INVALID"
			}
			fmt.Printf("\nVerdict: %s   Objective total: %.2f\n\n", verdict, report.TotalScore)

			if !report.Valid {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().String("date", "", "Scheduling date (YYYY-MM-DD, defaults to today)")

	return cmd
}

func coverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage <schedule_file> <date>",
		Short: "Show the hourly coverage targets the recurring rules produce for a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, date, err := loadSchedule(args[0], args[1])
			if err != nil {
				return err
			}

			targets, err := cfg.TargetsFor(date)
			if err != nil {
				return err
			}

			if len(targets) == 0 {
				fmt.Printf("\nNo coverage targets apply on %s\n\n", date.Format("2006-01-02 (Monday)"))
				return nil
			}

			fmt.Printf("\nCoverage targets for %s:\n\n", date.Format("2006-01-02 (Monday)"))
			for _, target := range targets {
				fmt.Printf("  %02d:00  role %-12s exactly %d workers\n",
					target.Hour, target.RoleID, target.Required)
			}
			fmt.Println()

			return nil
		},
	}
}
