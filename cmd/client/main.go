package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reviewboard/internal/adapters/observability"
	"reviewboard/internal/adapters/reviewsapi"
	"reviewboard/internal/render"
	"reviewboard/internal/shared"
)

func main() {
	cfg, err := shared.LoadClient()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// stderr keeps log lines out of the rendered view
	l := observability.NewLoggerTo(os.Stderr, cfg.AppEnv).Level(zerolog.InfoLevel)
	if cfg.Dev() {
		l = l.Level(zerolog.DebugLevel)
	}
	log.Logger = l

	client := reviewsapi.New(reviewsapi.DefaultEndpoint)
	m := render.NewModel(context.Background(), client, l)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
}
