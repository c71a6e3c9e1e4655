package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/app"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "pass_booking",
		Short:         "Corporate Pass Booking admin console",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnv(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the web console",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		newPingCmd(),
	)

	return root
}

// loadEnv loads the dotenv file if it exists.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func serve() error {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	if err = application.Run(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}
	return nil
}

func newPingCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check the booking API and print collection sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			application, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("app init: %w", err)
			}
			defer application.Close(context.Background())

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			var facilities, visitors, bookings int
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				res, err := application.Facilities.List(gctx)
				facilities = len(res)
				return err
			})
			g.Go(func() error {
				res, err := application.Visitors.List(gctx)
				visitors = len(res)
				return err
			})
			g.Go(func() error {
				res, err := application.Bookings.List(gctx)
				bookings = len(res)
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("ping %s: %w", cfg.API.BaseURL, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d facilities, %d visitors, %d bookings\n",
				cfg.API.BaseURL, facilities, visitors, bookings)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to wait for the booking API")

	return cmd
}
