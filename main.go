package main

import (
	"embed"
	"os"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/kherm/brickyard/pkg/catalog"
	"github.com/kherm/brickyard/pkg/config"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := config.Load("."); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if level, err := zerolog.ParseLevel(config.GetString("logLevel")); err == nil {
		log = log.Level(level)
	}

	cat := catalog.Default()
	if path := config.GetString("catalog.path"); path != "" {
		if err := cat.Load(path); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("loading brick catalog")
		}
		log.Info().Int("types", cat.Len()).Str("path", path).Msg("catalog extended")
	}

	app := NewApp(cat, log)
	app.SetGridSnap(config.GetBool("snap.grid"))

	err := wails.Run(&options.App{
		Title:  config.GetString("window.title"),
		Width:  config.GetInt("window.width"),
		Height: config.GetInt("window.height"),
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("wails run")
	}
}
