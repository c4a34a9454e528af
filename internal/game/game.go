// Package game implements the main loop: input, update, render, present.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/woodland/internal/config"
	"github.com/Faultbox/woodland/internal/controls"
	"github.com/Faultbox/woodland/internal/engine/capture"
	"github.com/Faultbox/woodland/internal/engine/input"
	"github.com/Faultbox/woodland/internal/engine/mesh"
	"github.com/Faultbox/woodland/internal/engine/renderer"
	"github.com/Faultbox/woodland/internal/engine/window"
	"github.com/Faultbox/woodland/internal/game/scene"
	"github.com/Faultbox/woodland/internal/game/setup"
	"github.com/Faultbox/woodland/internal/game/world"
	"github.com/Faultbox/woodland/internal/logger"
)

const title = "Woodland"

// Game owns the window, the GL renderer and the world.
type Game struct {
	config   *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	world    *world.World
	composer *scene.Composer
	capture  *capture.Writer

	screenshot bool
	log        *zap.Logger
}

// New creates the window, renderer and world.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config:  cfg,
		capture: capture.New(cfg.Capture.Dir, "woodland", cfg.Capture.Format),
		log:     logger.Named("game"),
	}

	bindings, err := setup.Bindings(cfg)
	if err != nil {
		return nil, err
	}
	g.input = input.New(bindings)

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	pw, ph := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.DefaultConfig(pw, ph), logger.Named("renderer"))
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	handles := setup.Handles{
		Ground:   g.renderer.CreateMesh(mesh.Ground()),
		Triangle: g.renderer.CreateMesh(mesh.Triangle()),
		Bounds:   g.renderer.CreateMesh(mesh.BoxWireframe()),
	}
	wc, err := setup.World(cfg, handles)
	if err != nil {
		g.Close()
		return nil, err
	}
	wc.Width, wc.Height = g.window.Size()
	g.world = world.New(wc, logger.Named("world"))
	g.composer = scene.NewComposer(setup.Scene(cfg, handles))

	g.log.Info("game initialized",
		zap.String("profile", cfg.Scene.Profile),
		zap.Int("trees", len(g.world.Trees)),
	)
	return g, nil
}

// Run loops until quit. It returns an error when a frame fails, which
// includes a transform stack left unbalanced.
func (g *Game) Run() error {
	var frameLimit time.Duration
	if g.config.Graphics.FPSLimit > 0 {
		frameLimit = time.Second / time.Duration(g.config.Graphics.FPSLimit)
	}

	frames := 0
	fpsTimer := time.Now()
	g.log.Info("starting game loop")

	for !g.world.Quitting() {
		start := time.Now()

		g.handleEvents()
		if g.world.Quitting() {
			break
		}

		g.world.Update()

		g.renderer.Begin()
		if err := g.composer.Frame(g.renderer, g.world); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if g.screenshot {
			g.screenshot = false
			g.saveScreenshot()
		}
		g.window.SwapBuffers()

		g.world.Advance()

		frames++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frames) / elapsed.Seconds()
			g.window.SetTitle(fmt.Sprintf("%s - %s - %.0f fps", title, g.world.Camera.Mode(), fps))
			g.log.Debug("fps", zap.Float64("fps", fps))
			frames = 0
			fpsTimer = time.Now()
		}

		if frameLimit > 0 {
			if rest := frameLimit - time.Since(start); rest > 0 {
				sdl.Delay(uint32(rest.Milliseconds()))
			}
		}
	}

	g.log.Info("game loop stopped")
	return nil
}

func (g *Game) handleEvents() {
	for _, e := range g.input.Poll() {
		switch e.Type {
		case input.EventQuit:
			g.world.Quit()
		case input.EventWindowResize:
			g.world.Resize(e.Width, e.Height)
			g.renderer.Resize(g.window.DrawableSize())
		case input.EventFocusLost:
			g.world.Keys.Clear()
		case input.EventAction:
			if e.Action == controls.Screenshot && e.Pressed {
				g.screenshot = true
			}
			g.world.HandleKey(e.Action, e.Pressed)
		case input.EventMouseButton:
			g.world.HandleMouseButton(e.Left, e.Pressed)
		case input.EventMouseMove:
			g.world.HandleMouseMove(e.X, e.Y)
		}
	}
}

func (g *Game) saveScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	name, err := g.capture.SavePixels(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("file", name))
}

// Close cleans up resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
