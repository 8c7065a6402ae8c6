package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/osse101/SlotReveal_Go/internal/animation"
	"github.com/osse101/SlotReveal_Go/internal/bootstrap"
	"github.com/osse101/SlotReveal_Go/internal/catalog"
	"github.com/osse101/SlotReveal_Go/internal/config"
	"github.com/osse101/SlotReveal_Go/internal/domain"
	"github.com/osse101/SlotReveal_Go/internal/logger"
	"github.com/osse101/SlotReveal_Go/internal/spin"
)

const clientServiceName = "slot-reveal-client"

var (
	winColor  = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed)
)

func main() {
	spins := flag.Int("n", 1, "number of spins to play")
	catalogPath := flag.String("catalog", "", "catalog file shared with the server (built-in when empty)")
	flag.Parse()

	if err := run(*spins, *catalogPath, os.Stdout); err != nil {
		slog.Error("Spin client failed", "error", err)
		os.Exit(1)
	}
}

func run(spins int, catalogPath string, out io.Writer) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to stderr so the reel display stays readable
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel, cfg.LogFormat, clientServiceName, config.DefaultVersion, config.EnvironmentDev, false,
	), os.Stderr)

	cat := catalog.Default()
	if catalogPath != "" {
		if cat, err = catalog.LoadFile(catalogPath); err != nil {
			return err
		}
	}

	policy, err := spin.ParseRefundPolicy(cfg.RefundPolicy)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := bootstrap.InitializeEventSystem()
	summary := newSessionSummary()
	summary.Register(bus)

	ctrl := spin.NewController(cat,
		spin.NewAPIClient(cfg.APIURL, cfg.APIKey),
		spin.NewMemoryAccount(cfg.Balance),
		spin.WithDurations(cfg.BaseDuration, cfg.Stagger),
		spin.WithRefundPolicy(policy),
		spin.WithEventBus(bus),
	)

	playErr := play(ctx, ctrl, cfg.Bet, spins, out)

	// Shutdown drains pending events before the summary is read
	if err := ctrl.Shutdown(context.Background()); err != nil {
		slog.Warn("Controller shutdown failed", "error", err)
	}
	summary.Print(out)
	return playErr
}

// play runs up to spins rounds, stopping early when the balance cannot cover the bet
func play(ctx context.Context, ctrl *spin.Controller, bet decimal.Decimal, spins int, out io.Writer) error {
	fmt.Fprintf(out, "Balance: %s\n", ctrl.Balance())
	for i := 0; i < spins && ctx.Err() == nil; i++ {
		fmt.Fprintln(out, spin.MsgSpinning)

		result, err := ctrl.Spin(ctx, bet)
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			failColor.Fprintf(out, "Insufficient balance for a %s bet.\n", bet)
			return nil
		case errors.Is(err, domain.ErrInvalidWager):
			return err
		case err != nil:
			failColor.Fprintln(out, ctrl.Message())
			fmt.Fprintf(out, "Balance: %s\n", ctrl.Balance())
			continue
		}

		renderReels(out, ctrl.Reels())
		if result.Win {
			winColor.Fprintln(out, result.Message)
		} else {
			fmt.Fprintln(out, result.Message)
		}
		fmt.Fprintf(out, "Balance: %s\n", result.Balance)
	}
	return nil
}

// renderReels prints the three visible rows, marking the payline
func renderReels(out io.Writer, reels []*animation.Reel) {
	for row := 0; row < animation.VisibleRows; row++ {
		cells := make([]string, len(reels))
		for i, reel := range reels {
			cells[i] = "  "
			if reel != nil {
				cells[i] = reel.Visible()[row].Glyph
			}
		}
		marker := "  "
		if row == animation.PaylineRow {
			marker = "> "
		}
		fmt.Fprintf(out, "%s%s\n", marker, strings.Join(cells, " | "))
	}
}
