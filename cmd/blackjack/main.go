package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/presenters"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/presenters/view"
	gameRepo "github.com/fadedpez/blackjack/pkg/repositories/game"
	walletRepo "github.com/fadedpez/blackjack/pkg/repositories/wallet"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
	"github.com/fadedpez/blackjack/pkg/services/wallet"
)

// version is set by ldflags during build
var version = "dev"

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Presenter string           `short:"p" default:"${presenter}" help:"User interface to play with (${presenters})"`
	Balance   int64            `short:"b" default:"${balance}" help:"Starting balance"`
	Seed      int64            `default:"${seed}" help:"Shoe seed, 0 for a random shoe"`
	LogLevel  string           `default:"${log_level}" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFile   string           `default:"${log_file}" type:"path" help:"File to write logs to"`
	NoColor   bool             `help:"Disable colours in the console presenter"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		charmlog.Fatal("Failed to load configuration", "err", err)
	}

	registry := presenters.Default()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single player casino blackjack for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":    version,
			"presenter":  cfg.Presenter,
			"presenters": strings.Join(registry.ListPresenters(), ", "),
			"balance":    strconv.FormatInt(cfg.StartBalance, 10),
			"seed":       strconv.FormatInt(cfg.Seed, 10),
			"log_level":  strings.ToLower(cfg.LogLevel),
			"log_file":   cfg.LogFile,
		},
	)

	err = run(cli, cfg, registry)
	ctx.FatalIfErrorf(err)
}

func run(cli CLI, cfg *config.Config, registry *presenters.Registry) error {
	if cli.Balance < 0 {
		return fmt.Errorf("balance must not be negative")
	}
	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			charmlog.Error("Failed to close log file", "error", err)
		}
	}()

	sessionID := uuid.New().String()
	logger := logging.NewLogger(logFile, level).WithPrefix("MAIN")
	logger.Info("Starting blackjack",
		"version", version,
		"environment", cfg.Environment,
		"presenter", cli.Presenter,
		"balance", cli.Balance,
		"seed", cli.Seed,
		"session", sessionID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cli.Presenter == presenters.Console {
		fmt.Println(titleStyle.Render("♠ ♥ Blackjack ♦ ♣"))
		fmt.Println()
	}

	presenter, err := registry.Create(cli.Presenter, presenters.Options{
		In:      os.Stdin,
		Out:     os.Stdout,
		Logger:  logger,
		NoColor: cli.NoColor,
	})
	if err != nil {
		return err
	}

	bankroll, err := wallet.NewService(ctx, walletRepo.NewMemoryRepository(), sessionID, cli.Balance, logger)
	if err != nil {
		return fmt.Errorf("failed to create bankroll: %w", err)
	}

	rounds := gameRepo.NewMemoryRepository()
	defer rounds.Close()
	recorder := statistics.NewService(rounds, logger)

	session := blackjack.NewSession(blackjack.SessionConfig{
		ID:        sessionID,
		Presenter: presenter,
		Bankroll:  bankroll,
		Drawer:    entities.NewShoe(cli.Seed),
		Recorder:  recorder,
		Logger:    logger,
	})

	stats, err := session.Run(ctx)
	if err != nil {
		logger.LogError(err)
		return err
	}

	if cfg.IsDevelopment() {
		logRecent(ctx, logger, recorder, bankroll, sessionID)
	}

	fmt.Println()
	for _, line := range view.SummaryLines(stats) {
		fmt.Println(line)
	}
	fmt.Println(view.BalanceLine(bankroll.Balance()))
	return nil
}

// logRecent writes the last rounds and ledger entries of the session to the log
func logRecent(ctx context.Context, logger *logging.Logger, recorder *statistics.Service, bankroll *wallet.Service, sessionID string) {
	recent, err := recorder.RecentRounds(ctx, sessionID, 0)
	if err != nil {
		logger.LogError(err)
		return
	}
	for _, r := range recent {
		logger.Debug("Round", "round", r.RoundID, "wagered", r.Wagered(), "returned", r.Returned(), "balance", r.BalanceAfter)
	}

	ledger, err := bankroll.Transactions(ctx, 0)
	if err != nil {
		logger.LogError(err)
		return
	}
	for _, tx := range ledger {
		logger.Debug("Transaction", "type", tx.Type, "amount", tx.Amount, "hand", tx.HandIndex, "balance", tx.BalanceAfter)
	}

	payouts, err := bankroll.TransactionsByType(ctx, entities.TransactionTypePayout, 0)
	if err != nil {
		logger.LogError(err)
		return
	}
	var paid int64
	for _, tx := range payouts {
		paid += tx.Amount
	}
	logger.Debug("Payouts", "count", len(payouts), "total", paid)
}
