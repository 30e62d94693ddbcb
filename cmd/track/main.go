//go:build ebiten

package main

import (
	"errors"
	"os"

	"tracking/internal/app"
	"tracking/internal/config"
	"tracking/internal/core"
	"tracking/internal/input"
	"tracking/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	cfg := config.NewConfig()
	fs := pflag.NewFlagSet("track", pflag.ExitOnError)
	cfg.Bind(fs)
	_ = fs.Parse(os.Args[1:])

	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := cfg.Load(viper.New(), fs); err != nil {
		boot.Fatal().Err(err).Msg("load config")
	}
	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		boot.Fatal().Err(err).Msg("create logger")
	}

	w, h := ebiten.ScreenSizeInFullscreen()
	cfg.UseDisplay(core.Size{W: w, H: h})

	log.Info().
		Str("title", cfg.Title).
		Int("width", cfg.Window.W).
		Int("height", cfg.Window.H).
		Int("ref_width", cfg.Reference.W).
		Int("ref_height", cfg.Reference.H).
		Dur("tick", cfg.Tick).
		Int("tps", cfg.TPS).
		Msg("starting")

	game := app.New(cfg, input.NewEbiten(), log)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Window.W, cfg.Window.H)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("run game")
	}
}
