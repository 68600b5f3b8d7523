package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-auth-session/config"
	"github.com/jrsteele09/go-auth-session/logging"
	"github.com/jrsteele09/go-auth-session/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const appName = "Auth Session"

func main() {
	username := flag.String("username", "vincent", "username to log in with")
	password := flag.String("password", "pass123", "password to log in with")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	if err := run(*username, *password); err != nil {
		log.Fatal().Err(err).Msg("session demo failed")
	}
}

func run(username, password string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("Recovered from panic: %v", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("config.FromEnv: %w", err)
	}
	displayAppname(appName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager, err := session.New(cfg, session.WithLogger(logging.NewZerolog(log.Logger)))
	if err != nil {
		return fmt.Errorf("session.New: %w", err)
	}

	tk, err := manager.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	log.Info().Str("token_id", tk.ID).Int("expires_in", tk.ExpiresIn()).Msg("logged in")
	logStatus(manager)

	refreshed, err := manager.RefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	log.Info().Str("token_id", refreshed.ID).Time("expires_at", refreshed.ExpiresAt()).Msg("refreshed")

	manager.Logout()
	logStatus(manager)
	return nil
}

func logStatus(manager *session.Manager) {
	status := manager.Status()
	log.Info().
		Bool("logged_in", status.LoggedIn).
		Str("subject", status.Subject).
		Dur("remaining", status.Remaining).
		Msg("session status")
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
