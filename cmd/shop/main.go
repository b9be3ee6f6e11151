package main

import (
	"algofit-storefront/internal/app/backend"
	"algofit-storefront/internal/app/config"
	"algofit-storefront/internal/app/countdown"
	"algofit-storefront/internal/app/repository"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	backendURL string
	logLevel   string
}

func main() {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse AlgoFit plans from the terminal",
		Long: `shop talks to the AlgoFit backend directly and renders the plan catalog
with the same filters, sorting and pagination as the web storefront.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(flags.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			logrus.SetOutput(os.Stderr)
			logrus.SetLevel(level)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&flags.backendURL, "backend", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level")

	rootCmd.AddCommand(newBrowseCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// session bundles what every subcommand needs.
type session struct {
	cfg      *config.Config
	repo     *repository.Repository
	discount countdown.Countdown
}

// open loads the config and builds a repository over an in-memory store.
func open(flags *rootFlags) (*session, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.backendURL != "" {
		cfg.Backend.BaseURL = flags.backendURL
	}
	client := backend.NewClientFromConfig(cfg)
	repo := repository.New(client, repository.NewMemoryStore(), repository.OptionsFromConfig(cfg))
	return &session{
		cfg:      cfg,
		repo:     repo,
		discount: countdown.NewDiscount(time.Now(), cfg.Discount.Span, cfg.Discount.EndTime()),
	}, nil
}
