package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/config"
	"github.com/qyinm/shoptui/logging"
	"github.com/qyinm/shoptui/types"
	"github.com/qyinm/shoptui/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type flags struct {
	configPath  string
	product     int
	wideWidth   int
	logFile     string
	logLevel    string
	noAltScreen bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "shoptui [route]",
		Short: "Browse a storefront category in the terminal",
		Long: `shoptui renders a storefront in the terminal.

Routes:
  /                      landing screen
  /category/{category}   product listing for a category

Without a route argument the configured route is used.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Route = args[0]
			}
			return run(cmd.Context(), cfg, f.product)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().IntVar(&f.product, "product", 0, "open quick view for a product id at startup")
	cmd.Flags().IntVar(&f.wideWidth, "wide-width", 0, "terminal width from which the filter sidebar is always shown")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write JSON logs to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&f.noAltScreen, "no-alt-screen", false, "render inline instead of the alternate screen")

	return cmd
}

// resolveConfig applies explicitly set flags over the loaded config
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("wide-width") {
		cfg.WideWidth = f.wideWidth
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("no-alt-screen") {
		cfg.AltScreen = !f.noAltScreen
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config, productID int) error {
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	route, err := types.ParseRoute(cfg.Route)
	if err != nil {
		return err
	}

	model := ui.NewModel(catalog.New(), route, ui.Options{
		WideWidth:     cfg.WideWidth,
		MarkdownStyle: cfg.MarkdownStyle,
		MarkdownWrap:  cfg.MarkdownWrap,
		Logger:        logger,
	})
	if productID != 0 {
		if err := model.OpenProduct(productID); err != nil {
			return err
		}
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("starting", zap.String("route", route.Path()))
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
