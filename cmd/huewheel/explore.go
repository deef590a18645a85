package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/irfansharif/huewheel/internal/app"
	"github.com/irfansharif/huewheel/internal/cli"
	"github.com/irfansharif/huewheel/internal/config"
	"github.com/irfansharif/huewheel/internal/explorer"
	"github.com/irfansharif/huewheel/internal/logger"
	"github.com/irfansharif/huewheel/internal/render"
)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
}

func newExploreCmd(opts *cli.Options) *cobra.Command {
	var hex string
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Open the interactive color wheel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Load()
			if err != nil {
				return err
			}
			if hex != "" {
				cfg.BaseColor = hex
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			log, err := cli.Logger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return explore(cfg, log)
		},
	}
	cmd.Flags().StringVar(&hex, "hex", "", "Starting base color (defaults to the configured base color)")
	return cmd
}

func explore(cfg config.Config, log *logger.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing GLFW: %w", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	log.Debugf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}
	defer renderer.Delete()

	ex, err := explorer.New(cfg, log)
	if err != nil {
		return err
	}

	w, h := window.GetSize()
	fbw, fbh := window.GetFramebufferSize()
	application := app.NewApp(
		window,
		cfg.Window.Title,
		renderer,
		ex,
		app.NewView(w, h, fbw, fbh, ex.Geometry(), len(ex.Palette())),
		log,
		seed(cfg),
	)
	window.SetTitle(cfg.Window.Title + " " + ex.Base())
	NewEventHandlers(application)

	log.WithFields(map[string]any{
		"base": ex.Base(),
		"type": string(ex.Type()),
	}).Infof("explorer ready")

	frameCount, frameTimeSum := 0, 0.0
	lastStats := time.Now()

	for !window.ShouldClose() {
		frameStart := time.Now()
		if err := application.Prepare(); err != nil {
			return err
		}
		if application.Draw() {
			frameTimeSum += time.Since(frameStart).Seconds() * 1000.0 // ms
			frameCount++
		}

		if now := time.Now(); cfg.Log.DebugRuntime && now.Sub(lastStats) >= time.Second {
			logStats(log, renderer.Stats(), frameCount, frameTimeSum, now.Sub(lastStats))
			frameCount, frameTimeSum = 0, 0.0
			lastStats = now
		}

		// Nothing animates; sleep until input, waking up for the stats line.
		glfw.WaitEventsTimeout(1)
	}
	return nil
}

func logStats(log *logger.Logger, stats render.Stats, frames int, frameTimeSum float64, elapsed time.Duration) {
	avgFrameTime := 0.0
	if frames > 0 {
		avgFrameTime = frameTimeSum / float64(frames)
	}
	log.WithFields(map[string]any{
		"frames":         frames,
		"fps":            float64(frames) / elapsed.Seconds(),
		"ms_per_frame":   avgFrameTime,
		"vertices":       stats.Vertices,
		"draw_calls":     stats.DrawCalls,
		"gpu_mib":        float64(stats.GPUBytes) / (1024.0 * 1024.0),
		"buffer_growths": stats.BufferGrowths,
		"uploads":        stats.Uploads,
		"upload_us":      stats.LastUploadTimeUs,
		"texture_us":     stats.LastTextureTimeUs,
		"draw_us":        stats.LastDrawTimeUs,
	}).Infof("runtime statistics")
}

func seed(cfg config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().Unix()
}
