package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/api"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/config"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/filter"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/logging"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/repo"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/store"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/text"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/ui"
)

var dbPath string

func main() {
	// Default database location
	home, _ := os.UserHomeDir()
	defaultDB := filepath.Join(home, ".rockets", "rockets.db")

	rootCmd := &cobra.Command{
		Use:   "rockets",
		Short: "Browse the SpaceX rocket catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "database path")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(refreshCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openRepository builds the repository from config, store, and API client.
// The caller owns the returned store and must Close it.
func openRepository() (*repo.Repository, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("create db dir: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute

	return repo.New(s, client, ttl), s, nil
}

func runTUI() error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Close()

	r, s, err := openRepository()
	if err != nil {
		return err
	}
	defer s.Close()

	app := ui.NewApp(ui.AppConfig{
		LoadRockets: func(force bool) tea.Cmd {
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
				defer cancel()

				rockets, err := r.Rockets(ctx, force)
				return ui.RocketsLoaded{Rockets: rockets, Refreshed: force, Err: err}
			}
		},
		Catalog: text.English,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func listCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the rocket catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, s, err := openRepository()
			if err != nil {
				return err
			}
			defer s.Close()

			rockets, err := r.Rockets(cmd.Context(), false)
			if err != nil {
				return err
			}
			rockets = filter.Search(rockets, search)

			if len(rockets) == 0 {
				fmt.Println("No rockets match.")
				return nil
			}

			for _, rk := range rockets {
				status := "retired"
				if rk.Active {
					status = "active"
				}
				fmt.Printf("%-14s  %s  %7s  %s m × %s m  %s kg\n",
					rk.Name,
					rk.FirstFlight,
					status,
					text.Number(rk.HeightM),
					text.Number(rk.DiameterM),
					text.Number(rk.MassKg),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name substring")
	return cmd
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Force a fetch from the API and update the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, s, err := openRepository()
			if err != nil {
				return err
			}
			defer s.Close()

			rockets, err := r.Rockets(cmd.Context(), true)
			if err != nil {
				return err
			}

			fmt.Printf("Refreshed %d rockets.\n", len(rockets))
			return nil
		},
	}
}
