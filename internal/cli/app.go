// Package cli implements the interactive terminal client for the car
// wash bookkeeping system.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/auth"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/common"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/config"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/durable"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/logging"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/relay"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/services"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/syncer"
)

type App struct {
	config         *config.Config
	ctrl           *syncer.Controller
	billingService *services.BillingService
	expenseService *services.ExpenseService
	userService    *services.UserService
	authService    *services.AuthService
	log            logging.Logger

	currentUser *models.User
	reader      *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	local, err := durable.OpenSQLite(ctx, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	var rl relay.Relay
	switch cfg.RelayKind {
	case config.RelayKindS3:
		rl, err = relay.NewS3Relay(ctx, relay.S3Options{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			Name:         cfg.RelayName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to init S3 relay: %w", err)
		}
	default:
		rl = relay.NewHTTPRelay(http.DefaultClient, cfg.RelayBaseURL, cfg.RelayName, local)
	}

	origin := cfg.Origin
	if origin == "" {
		origin, err = common.MakeRandHexString(8)
		if err != nil {
			return nil, err
		}
	}

	provider := auth.NewArgon2Provider()

	ctrl := syncer.NewController(syncer.Options{
		Local:  local,
		Relay:  rl,
		Logger: log,
		Origin: origin,
		Setup:  services.EnsureBootstrapAccounts(provider),
	})
	if err := ctrl.Initialize(ctx, cfg.PreferCloud); err != nil {
		return nil, err
	}

	return &App{
		config:         cfg,
		ctrl:           ctrl,
		billingService: services.NewBillingService(ctrl),
		expenseService: services.NewExpenseService(ctrl),
		userService:    services.NewUserService(ctrl, provider),
		authService:    services.NewAuthService(ctrl, provider, []byte(cfg.SecretKey), cfg.TokenValidity),
		log:            log,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.ctrl.Close()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartUpdateWatcher(watchCtx, a.config.PollInterval)

	a.Main(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

func (a *App) isAdmin() bool {
	return a.currentUser != nil && a.currentUser.Role == models.RoleAdmin
}

// StartUpdateWatcher polls the relay and applies newer remote snapshots
// until ctx is cancelled.
func (a *App) StartUpdateWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pollCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			applied, err := a.ctrl.CheckForUpdates(pollCtx)
			cancel()
			if err != nil {
				a.log.Warn(ctx, "update check failed", "error", err)
				continue
			}
			if applied {
				a.log.Info(ctx, "applied newer remote snapshot")
			}
		case <-ctx.Done():
			return
		}
	}
}
