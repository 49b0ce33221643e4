// Package renderer owns OpenGL initialization and global GL state.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pixelmonaskarion/islands-3d/internal/logger"
)

// Renderer holds the default GL state for the frame loop.
type Renderer struct {
	width  int
	height int
}

// New initializes OpenGL and sets up default state.
// Must be called after the GL context is created.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.3, 0.6, 0.9, 1.0)

	return r, nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current drawable size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Clear clears the color and depth buffers of the bound target.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetViewport restores the viewport to the full drawable size, used after
// offscreen passes rebind the default framebuffer.
func (r *Renderer) SetViewport() {
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
}
