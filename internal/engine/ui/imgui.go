// Package ui provides the ImGui window, input and widgets of the viewer.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/pkg/math"
)

// Config holds window configuration.
type Config struct {
	Title    string
	Width    int
	Height   int
	VSync    bool
	FPSLimit int
}

// Backend wraps the ImGui SDL backend. It owns the window, the OpenGL
// context and the main loop.
type Backend struct {
	log     *zap.Logger
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	vsync   bool

	cursor math.Vec2
}

// NewBackend creates the window and initializes OpenGL.
func NewBackend(cfg Config, log *zap.Logger) (*Backend, error) {
	b := &Backend{log: log}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
	})

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(cfg.Title, cfg.Width, cfg.Height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	b.SetVSync(cfg.VSync)
	if cfg.FPSLimit > 0 {
		b.backend.SetTargetFPS(uint(cfg.FPSLimit))
	}

	log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
		zap.Int("fps_limit", cfg.FPSLimit),
	)
	return b, nil
}

// Run starts the main loop. frame is called once per frame between the
// ImGui NewFrame and Render calls. Run returns when the window closes.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// OnClose registers fn to run after the last frame, while the OpenGL
// context still exists.
func (b *Backend) OnClose(fn func()) {
	b.backend.SetBeforeDestroyContextHook(fn)
}

// Close asks the main loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// SetVSync toggles synchronization to the display refresh rate.
func (b *Backend) SetVSync(on bool) {
	interval := sdlbackend.SDLWindowFlags(0)
	if on {
		interval = 1
	}
	if err := b.backend.SetSwapInterval(interval); err != nil {
		b.log.Warn("failed to set swap interval", zap.Bool("vsync", on), zap.Error(err))
		return
	}
	b.vsync = on
}

// VSync reports whether VSync is on.
func (b *Backend) VSync() bool {
	return b.vsync
}

// DisplaySize returns the window size in points, the space mouse
// positions are reported in. Valid inside the frame callback.
func (b *Backend) DisplaySize() (int, int) {
	size := imgui.CurrentIO().DisplaySize()
	return int(size.X), int(size.Y)
}

// FramebufferSize returns the drawable size in pixels, which differs from
// DisplaySize on high-DPI displays.
func (b *Backend) FramebufferSize() (int, int) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	return int(size.X * scale.X), int(size.Y * scale.Y)
}

// DrawScene shows an offscreen scene texture behind all other windows.
func (b *Backend) DrawScene(textureID uint32, w, h float32) {
	if textureID == 0 {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(0, 0))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs | imgui.WindowFlagsNoSavedSettings

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		// GL textures are bottom-up.
		imgui.ImageV(*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// KeyPressed reports whether key went down this frame. Keys typed into an
// ImGui widget are not reported.
func KeyPressed(key imgui.Key) bool {
	if imgui.CurrentIO().WantCaptureKeyboard() {
		return false
	}
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
