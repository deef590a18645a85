package app

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/huewheel/internal/explorer"
	"github.com/irfansharif/huewheel/internal/geom"
	"github.com/irfansharif/huewheel/internal/logger"
	"github.com/irfansharif/huewheel/internal/palette"
	"github.com/irfansharif/huewheel/internal/render"
	"github.com/irfansharif/huewheel/internal/wheel"
)

const maxShapeSeed = 10000.0

// background is the window clear color (#1A1A1A).
var background = [4]float32{0x1A / 255.0, 0x1A / 255.0, 0x1A / 255.0, 1}

// App ties an explorer session to a window and a renderer. It redraws only
// when something changed: color edits re-render the widget textures and the
// frame; layout or preview changes only rebuild the frame.
type App struct {
	Window   *glfw.Window
	Renderer *render.Renderer
	Explorer *explorer.Explorer
	View     *View
	Log      *logger.Logger
	Title    string

	rng           *rand.Rand
	frameDirty    bool
	texturesDirty bool
	needsDraw     bool
}

// NewApp creates a new application instance. seed drives the shape seeds
// handed out by Refresh and preset changes.
func NewApp(window *glfw.Window, title string, renderer *render.Renderer, ex *explorer.Explorer, view *View, log *logger.Logger, seed int64) *App {
	return &App{
		Title:         title,
		Window:        window,
		Renderer:      renderer,
		Explorer:      ex,
		View:          view,
		Log:           log,
		rng:           rand.New(rand.NewSource(seed)),
		frameDirty:    true,
		texturesDirty: true,
		needsDraw:     true,
	}
}

// NextShapeSeed draws a fresh shape seed.
func (app *App) NextShapeSeed() float64 {
	return app.rng.Float64() * maxShapeSeed
}

// Prepare brings the GPU state up to date with the session.
func (app *App) Prepare() error {
	if app.View.SetSwatches(len(app.Explorer.Palette())) {
		app.frameDirty = true
	}
	if app.texturesDirty {
		g, hsl := app.Explorer.Geometry(), app.Explorer.HSL()
		if err := app.Renderer.SetTexture(explorer.TextureWheel, g.RenderWheel(hsl)); err != nil {
			return err
		}
		if err := app.Renderer.SetTexture(explorer.TextureSlider, g.RenderSlider(hsl)); err != nil {
			return err
		}
		app.texturesDirty = false
		app.needsDraw = true
	}
	if app.frameDirty {
		frame, err := app.Explorer.Frame(app.View.Layout)
		if err != nil {
			return fmt.Errorf("building frame: %w", err)
		}
		if err := app.Renderer.Upload(frame); err != nil {
			return err
		}
		app.frameDirty = false
		app.needsDraw = true
	}
	return nil
}

// Draw redraws the window if anything changed since the last call and
// reports whether it did.
func (app *App) Draw() bool {
	if !app.needsDraw {
		return false
	}
	app.Renderer.SetView(app.View.Width, app.View.Height, app.View.FBWidth, app.View.FBHeight)
	app.Renderer.Draw(background)
	app.Window.SwapBuffers()
	app.needsDraw = false
	return true
}

// Resize handles window or framebuffer size changes.
func (app *App) Resize(width, height, fbWidth, fbHeight int) {
	app.View.SetViewport(width, height, fbWidth, fbHeight)
	app.frameDirty = true
}

// Expose forces a redraw without rebuilding anything.
func (app *App) Expose() { app.needsDraw = true }

// Pointer routes a pointer event at window position (x, y). Presses on a
// preset button apply it; everything else goes through the wheel reducer.
func (app *App) Pointer(kind wheel.Kind, x, y float64) {
	if kind == wheel.Down && app.Explorer.Dragging() == wheel.None {
		if i, ok := app.View.Layout.PresetAt(geom.MakePoint(x, y)); ok {
			app.ApplyPreset(i)
			return
		}
	}
	if app.Explorer.HandleWheel(app.View.Layout.Event(kind, x, y)) {
		app.colorChanged()
	}
}

// SelectType switches the harmony rule.
func (app *App) SelectType(t palette.Type) {
	if t == app.Explorer.Type() {
		return
	}
	if err := app.Explorer.SetPaletteType(t); err != nil {
		app.Log.Errorf(err, "selecting palette type")
		return
	}
	app.Log.Infof("palette type: %s", t.Label())
	app.frameDirty = true
}

// CycleType advances to the next harmony rule.
func (app *App) CycleType() { app.SelectType(app.Explorer.Type().Next()) }

// ApplyPreset switches to preset i with a fresh shape seed.
func (app *App) ApplyPreset(i int) {
	if err := app.Explorer.ApplyPreset(i, app.NextShapeSeed()); err != nil {
		app.Log.Errorf(err, "applying preset %d", i)
		return
	}
	app.presetChanged()
}

// NextPreset applies the preset after the active one.
func (app *App) NextPreset() {
	if err := app.Explorer.NextPreset(app.NextShapeSeed()); err != nil {
		app.Log.Errorf(err, "cycling presets")
		return
	}
	app.presetChanged()
}

func (app *App) presetChanged() {
	p, _, _ := app.Explorer.Preset()
	app.Log.Infof("preset: %s (%s)", p.Name, p.Type)
	app.colorChanged()
}

// Refresh moves the preview shapes.
func (app *App) Refresh() {
	app.Explorer.Refresh(app.NextShapeSeed())
	app.frameDirty = true
}

// SetBase replaces the base color.
func (app *App) SetBase(hex string) error {
	if err := app.Explorer.SetBase(hex); err != nil {
		return err
	}
	app.colorChanged()
	return nil
}

// LogPalette writes the current palette to the log.
func (app *App) LogPalette() {
	var b strings.Builder
	for i, sw := range app.Explorer.Swatches() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s/%s", sw.Hex, sw.Text)
	}
	app.Log.WithFields(map[string]any{
		"base": app.Explorer.Base(),
		"type": string(app.Explorer.Type()),
	}).Infof("palette: %s", b.String())
}

func (app *App) colorChanged() {
	app.texturesDirty = true
	app.frameDirty = true
	app.Window.SetTitle(app.Title + " " + app.Explorer.Base())
}
