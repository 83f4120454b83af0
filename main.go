package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/fonts"
	"github.com/automoto/pixelcam/pixelcam"
	"github.com/automoto/pixelcam/scenes"
	"github.com/automoto/pixelcam/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	scene Scene
}

func NewGame(saved *systems.SavedCamera) (*Game, error) {
	if err := fonts.LoadFont(fonts.Regular, goregular.TTF, config.HUD.FontSize); err != nil {
		return nil, err
	}
	if err := fonts.LoadFont(fonts.Small, goregular.TTF, config.HUD.FontSize-2); err != nil {
		return nil, err
	}

	return &Game{
		scene: scenes.NewWorldScene(config.World.Level, saved),
	}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the screen at the window's size so resizing drives the pixel
// camera's recompute.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	width := flag.Int("width", config.C.Width, "window width")
	height := flag.Int("height", config.C.Height, "window height")
	zoom := flag.Float64("zoom", config.PixelCamera.ZoomLevel, "initial zoom level")
	ppu := flag.Float64("ppu", config.PixelCamera.PixelsPerUnit, "pixels per world unit")
	perspective := flag.Bool("perspective", !config.PixelCamera.Orthographic, "start with a perspective camera")
	debug := flag.Bool("debug", config.Debug.Enabled, "show the debug overlay")
	verbose := flag.Bool("verbose", false, "log pixel camera recomputes")
	flag.Parse()

	config.C.Width, config.C.Height = *width, *height
	config.PixelCamera.ZoomLevel = *zoom
	config.PixelCamera.PixelsPerUnit = *ppu
	config.PixelCamera.Orthographic = !*perspective
	config.Debug.Enabled = *debug

	if *verbose {
		pixelcam.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		pixelcam.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Saved tunables apply unless a camera flag was given
	var saved *systems.SavedCamera
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else if !cameraFlagsSet() {
		s, err := systems.LoadCamera()
		if err != nil {
			log.Printf("Warning: Could not parse saved camera settings: %v", err)
		}
		saved = s
	}

	game, err := NewGame(saved)
	if err != nil {
		log.Fatal(err)
	}
	err = ebiten.RunGame(game)
	game.scene.Close()
	if err != nil {
		log.Fatal(err)
	}
}

func cameraFlagsSet() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "zoom", "ppu", "perspective", "debug":
			set = true
		}
	})
	return set
}
