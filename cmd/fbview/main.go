// Command fbview displays a 256x224 framebuffer in a resizable window,
// preserving its aspect ratio. In noise mode, the framebuffer is filled with
// random pixels on every frame.
//
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/db47h/fbview"
	"github.com/db47h/fbview/app"
	"github.com/db47h/fbview/debug"
	"github.com/db47h/fbview/render"
	"github.com/db47h/fbview/source"
	"github.com/db47h/fbview/texture"
	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

// logical framebuffer size
const (
	fbWidth  = 256
	fbHeight = 224
)

type dirList []string

func (l *dirList) String() string { return strings.Join(*l, ",") }

func (l *dirList) Set(s string) error {
	*l = append(*l, strings.Split(s, ",")...)
	return nil
}

func main() {
	var (
		mode     = flag.String("mode", "noise", "framebuffer content: `static` or noise")
		title    = flag.String("title", "", "window title (defaults depend on -mode)")
		width    = flag.Int("width", 640, "initial window width")
		height   = flag.Int("height", 480, "initial window height")
		minSize  = flag.Bool("min", false, "prevent the window from shrinking below its initial size")
		vsync    = flag.Int("vsync", 1, "vsync value for glfw.SwapInterval")
		fps      = flag.Int("fps", 0, "frame rate cap, 0 for uncapped")
		seed     = flag.Uint64("seed", 0, "noise seed, 0 for a time based seed")
		showInfo = flag.Bool("debug", false, "show frame rate and cursor position")
		fontName = flag.String("font", "", "TrueType `file` in -assets for the debug overlay (defaults to Go Regular)")
		fontSize = flag.Float64("font-size", 10, "debug overlay font size in points")
		assets   dirList
		filter   = texture.Nearest
		logLevel = slog.LevelInfo
	)
	flag.Var(&assets, "assets", "comma separated `dirs` to look up fonts and quad.vert, quad.frag overrides in")
	flag.TextVar(&filter, "filter", filter, "texture `filter`: nearest or linear")
	flag.TextVar(&logLevel, "log-level", logLevel, "log `level`: debug, info, warn or error")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	fbview.SetLogger(logger)

	if err := run(&config{
		mode:     *mode,
		title:    *title,
		width:    *width,
		height:   *height,
		minSize:  *minSize,
		vsync:    *vsync,
		fps:      *fps,
		seed:     *seed,
		showInfo: *showInfo,
		fontName: *fontName,
		fontSize: *fontSize,
		assets:   assets,
		filter:   filter,
	}); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

type config struct {
	mode          string
	title         string
	width, height int
	minSize       bool
	vsync         int
	fps           int
	seed          uint64
	showInfo      bool
	fontName      string
	fontSize      float64
	assets        []string
	filter        texture.FilterMode
}

func run(cfg *config) error {
	v := &viewer{
		img:      image.NewRGBA(image.Rect(0, 0, fbWidth, fbHeight)),
		showInfo: cfg.showInfo,
		filter:   cfg.filter,
	}
	title := cfg.title
	switch cfg.mode {
	case "static":
		v.src = new(source.Static)
		if title == "" {
			title = "Simple example"
		}
	case "noise":
		seed := cfg.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		v.src = source.NewNoise(seed)
		if title == "" {
			title = "Noise"
		}
	default:
		return errors.Errorf("unknown mode %q", cfg.mode)
	}
	if len(cfg.assets) > 0 {
		var ovl ofs.Overlay
		if err := ovl.Add(false, cfg.assets...); err != nil {
			return errors.Wrap(err, "asset directories")
		}
		v.fsys = &ovl
	}
	if cfg.showInfo {
		face, err := debug.LoadFace(v.fsys, cfg.fontName, cfg.fontSize)
		if err != nil {
			return err
		}
		defer face.Close()
		v.info.Face = face
	}

	opts := []app.WindowOption{
		app.Title(title),
		app.Size(cfg.width, cfg.height),
		app.SwapInterval(cfg.vsync),
		app.LogicalSize(fbWidth, fbHeight),
	}
	if cfg.minSize {
		opts = append(opts, app.MinSize(cfg.width, cfg.height))
	}
	if cfg.fps > 0 {
		opts = append(opts, app.MinFrameTime(time.Second/time.Duration(cfg.fps)))
	}
	return app.Run(v, opts...)
}

// viewer implements app.Handler.
type viewer struct {
	src      source.Source
	img      *image.RGBA
	dirty    bool
	fsys     ofs.FileSystem
	filter   texture.FilterMode
	tex      *texture.Texture
	quad     *render.Quad
	win      *app.Window
	showInfo bool
	info     debug.Overlay
	timer    debug.Timer
	last     time.Time
}

func (v *viewer) Init(w *app.Window) error {
	vs, fs, err := render.LoadShaders(v.fsys)
	if err != nil {
		return err
	}
	v.tex = texture.New(fbWidth, fbHeight,
		texture.Wrap(texture.ClampToEdge, texture.ClampToEdge),
		texture.Filter(v.filter, v.filter))
	v.quad, err = render.NewQuad(v.tex, vs, fs)
	if err != nil {
		v.tex.Delete()
		return err
	}
	v.win = w
	return nil
}

func (v *viewer) FrameStart(t time.Time) {
	if !v.last.IsZero() {
		v.timer.Add(t.Sub(v.last))
	}
	v.last = t
}

func (v *viewer) Update() {
	if v.src.Fill(v.img) {
		v.dirty = true
	}
	if v.showInfo {
		s := fmt.Sprintf("%.0f fps", v.timer.AveragePerSecond())
		if p, ok := v.win.Cursor(); ok {
			s += fmt.Sprintf(" %d,%d", p.X, p.Y)
		}
		v.info.Draw(v.img, s)
		v.dirty = true
	}
}

func (v *viewer) Draw() {
	if v.dirty {
		v.tex.Upload(v.img)
		v.dirty = false
	}
	v.quad.Draw()
}

func (v *viewer) OnFrameBufferSize(w *app.Window, vp image.Rectangle) {
	fbview.Logger().Debug("resized", "window", w.Screen().Size(), "viewport", vp)
}

func (v *viewer) Terminate() error {
	v.quad.Delete()
	v.tex.Delete()
	return nil
}
