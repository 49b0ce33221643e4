package game

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pixelmonaskarion/islands-3d/internal/assets"
	"github.com/pixelmonaskarion/islands-3d/internal/config"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/camera"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/framebuffer"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/heightfield"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/input"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/instancegen"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/lighting"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/renderer"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/scene"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/terrain"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/text"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/texture"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/water"
	"github.com/pixelmonaskarion/islands-3d/internal/engine/window"
	"github.com/pixelmonaskarion/islands-3d/internal/logger"
	"github.com/pixelmonaskarion/islands-3d/pkg/obj"
)

const fontSizePx = 24

// Game wires the whole demo together and runs the main loop.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	fb       *framebuffer.Framebuffer

	field     *heightfield.Field
	gen       *instancegen.Generator
	player    *Player
	collector *Collector
	sun       lighting.Sun

	terrainR  *scene.TerrainRenderer
	waterR    *scene.WaterRenderer
	instanceR *scene.InstanceRenderer
	sunR      *scene.SunRenderer
	postR     *scene.PostRenderer
	overlay   *scene.OverlayRenderer

	waterLevel float32
	startTime  time.Time
	held       map[sdl.Scancode]bool
	fps        int
}

// New builds the world from config and assets and creates every
// renderer. Any resource failure here is fatal for the demo.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:  cfg,
		held: make(map[sdl.Scancode]bool),
		sun:  lighting.Default(),
	}

	mgr := assets.NewManager(cfg.Assets.Dir)

	heightBytes, err := mgr.Load(cfg.World.Heightmap)
	if err != nil {
		return nil, fmt.Errorf("loading heightmap: %w", err)
	}
	g.field, err = heightfield.FromBytes(heightBytes, cfg.World.Size, cfg.World.HeightMultiplier)
	if err != nil {
		return nil, fmt.Errorf("decoding heightmap: %w", err)
	}

	terr := terrain.Build(g.field, cfg.World.Resolution, cfg.World.Chunks, cfg.World.GenNormals)
	logger.Info("terrain built",
		zap.Int("chunks", len(terr.Chunks)),
		zap.Int("triangles", terr.TriangleCount()),
	)

	g.window, err = window.New(window.Config{
		Title:      "Islands",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := g.window.DrawableSize()
	g.renderer, err = renderer.New(dw, dh)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.fb, err = framebuffer.New(int32(dw), int32(dh))
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create framebuffer: %w", err)
	}

	g.waterLevel = terrain.WaterLevelFraction * cfg.World.HeightMultiplier

	if err := g.createScene(cfg, mgr, terr); err != nil {
		g.window.Close()
		return nil, err
	}

	// Start in the middle of the map at standing height.
	eye := mgl32.Vec3{
		float32(g.field.Width()) / 2.0 * cfg.World.Size,
		cfg.World.HeightMultiplier / 2.0,
		float32(g.field.Height()) / 2.0 * cfg.World.Size,
	}
	cam := camera.NewFirstPerson(eye, float32(dw)/float32(dh))
	cam.Sensitivity = cfg.Game.MouseSensitivity

	g.player = NewPlayer(cam, g.field, cfg.World.EyeOffset, cfg.Game.MoveSpeed)

	g.gen = instancegen.New(g.field, instancegen.Config{
		Grid:    [2]int{cfg.Bananas.GridX, cfg.Bananas.GridY},
		Spacing: cfg.Bananas.Spacing,
		Hover:   cfg.Bananas.Hover,
		Workers: cfg.Bananas.Workers,
	})
	g.collector = NewCollector(g.gen, cfg.Bananas.CaptureRadius)

	g.input = input.New()
	g.window.GrabCursor(true)

	logger.Info("game initialized",
		zap.Int("bananas", g.gen.Total()),
		zap.Float32("water_level", g.waterLevel),
	)
	return g, nil
}

func (g *Game) createScene(cfg *config.Config, mgr *assets.Manager, terr *terrain.Terrain) error {
	var err error

	g.terrainR, err = scene.NewTerrainRenderer(terr, g.waterLevel)
	if err != nil {
		return fmt.Errorf("terrain renderer: %w", err)
	}

	maxDim := g.field.Width()
	if g.field.Height() > maxDim {
		maxDim = g.field.Height()
	}
	plane := water.BuildPlane(float32(maxDim)*cfg.World.Size, g.waterLevel, cfg.World.WaterTile)

	normal1, err := loadTexture(mgr, "water_normal.png")
	if err != nil {
		return err
	}
	normal2, err := loadTexture(mgr, "water_normal2.png")
	if err != nil {
		return err
	}
	g.waterR, err = scene.NewWaterRenderer(plane, normal1, normal2)
	if err != nil {
		return fmt.Errorf("water renderer: %w", err)
	}

	objBytes, err := mgr.Load("banana.obj")
	if err != nil {
		return fmt.Errorf("loading banana model: %w", err)
	}
	mesh, err := obj.Parse(objBytes)
	if err != nil {
		return fmt.Errorf("parsing banana model: %w", err)
	}

	var bananaTex uint32
	if mgr.Exists("banana.png") {
		bananaTex, err = loadTexture(mgr, "banana.png")
		if err != nil {
			return err
		}
	}
	g.instanceR, err = scene.NewInstanceRenderer(mesh, g.totalSlots(cfg), bananaTex, mgl32.Vec3{0.95, 0.85, 0.2})
	if err != nil {
		return fmt.Errorf("instance renderer: %w", err)
	}

	g.sunR, err = scene.NewSunRenderer()
	if err != nil {
		return fmt.Errorf("sun renderer: %w", err)
	}

	g.postR, err = scene.NewPostRenderer()
	if err != nil {
		return fmt.Errorf("post renderer: %w", err)
	}

	fontBytes := goregular.TTF
	if mgr.Exists("font.ttf") {
		fontBytes, err = mgr.Load("font.ttf")
		if err != nil {
			return fmt.Errorf("loading font: %w", err)
		}
	}
	atlas, err := text.BuildAtlas(fontBytes, fontSizePx)
	if err != nil {
		return fmt.Errorf("baking font atlas: %w", err)
	}
	g.overlay, err = scene.NewOverlayRenderer(atlas)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}

	return nil
}

func (g *Game) totalSlots(cfg *config.Config) int {
	return cfg.Bananas.GridX * cfg.Bananas.GridY
}

func loadTexture(mgr *assets.Manager, path string) (uint32, error) {
	data, err := mgr.Load(path)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", path, err)
	}
	tex, _, _, err := texture.FromBytes(data, true)
	if err != nil {
		return 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	return tex, nil
}

// Run starts the main loop and blocks until quit.
func (g *Game) Run() error {
	g.running = true

	g.startTime = time.Now()
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()
		if !g.running {
			break
		}

		elapsed := float32(time.Since(g.startTime).Seconds())
		g.update(dt, elapsed)
		g.render(elapsed)
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.fps = frameCount
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if g.cfg.Graphics.FPSLimit > 0 {
			frameBudget := time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
			if spent := time.Since(now); spent < frameBudget {
				time.Sleep(frameBudget - spent)
			}
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventQuit:
			g.running = false

		case input.EventWindowResize:
			dw, dh := g.window.DrawableSize()
			g.renderer.Resize(dw, dh)
			g.fb.Resize(int32(dw), int32(dh))
			g.player.Cam.Resize(dw, dh)

		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_ESCAPE {
				g.running = false
				break
			}
			g.held[event.Key] = true

		case input.EventKeyUp:
			delete(g.held, event.Key)

		case input.EventMouseMotion:
			g.player.HandleMouseMotion(event.XRel, event.YRel)

		case input.EventFingerDown:
			g.player.HandleFingerDown(event.FingerID, event.X, event.Y)

		case input.EventFingerMotion:
			g.player.HandleFingerMotion(event.FingerID, event.DX, event.DY)

		case input.EventFingerUp:
			g.player.HandleFingerUp(event.FingerID)
		}
	}
}

func (g *Game) update(dt, elapsed float32) {
	controls := Controls{
		Forward: g.held[sdl.SCANCODE_W],
		Back:    g.held[sdl.SCANCODE_S],
		Left:    g.held[sdl.SCANCODE_A],
		Right:   g.held[sdl.SCANCODE_D],
		Up:      g.held[sdl.SCANCODE_SPACE],
		Down:    g.held[sdl.SCANCODE_LSHIFT],
	}
	g.player.Update(dt, controls)

	if g.collector.Update(g.player.Cam.Eye) {
		logger.Debug("banana collected",
			zap.Int("count", g.collector.Count()),
			zap.Int("total", g.collector.Total()),
		)
	}

	g.instanceR.SetInstances(g.gen.Generate(elapsed))
}

func (g *Game) render(elapsed float32) {
	cam := g.player.Cam
	viewProj := cam.ViewProjection()
	view := cam.View()

	// Billboard basis from the view matrix rows.
	camRight := mgl32.Vec3{view.At(0, 0), view.At(0, 1), view.At(0, 2)}
	camUp := mgl32.Vec3{view.At(1, 0), view.At(1, 1), view.At(1, 2)}

	// Scene pass into the offscreen target.
	g.fb.Bind()
	g.fb.Clear(0.55, 0.7, 0.9, 1.0)

	g.terrainR.Render(viewProj, g.sun)
	g.instanceR.Render(viewProj, g.sun)
	g.sunR.Render(viewProj, g.sun, cam.Eye, camRight, camUp)
	g.waterR.Render(viewProj, elapsed, g.sun, cam.Eye)

	// Composite to the screen.
	g.fb.Unbind()
	g.renderer.SetViewport()
	g.renderer.Clear()
	g.postR.Render(g.fb, cam.InverseViewProjection(), cam.Eye, elapsed, g.waterLevel)

	// Overlay.
	w, h := g.renderer.Size()
	counter := fmt.Sprintf("Bananas: %d/%d", g.collector.Count(), g.collector.Total())
	g.overlay.Draw(counter, 16, 16+fontSizePx, 1, mgl32.Vec3{1, 1, 1}, w, h)
	if g.cfg.Game.ShowFPS {
		g.overlay.Draw(fmt.Sprintf("FPS: %d", g.fps), 16, 16+fontSizePx+g.overlay.LineHeight(1), 1, mgl32.Vec3{1, 1, 1}, w, h)
	}
}

// Close releases every GL resource and tears down the window.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.overlay != nil {
		g.overlay.Destroy()
	}
	if g.postR != nil {
		g.postR.Destroy()
	}
	if g.sunR != nil {
		g.sunR.Destroy()
	}
	if g.instanceR != nil {
		g.instanceR.Destroy()
	}
	if g.waterR != nil {
		g.waterR.Destroy()
	}
	if g.terrainR != nil {
		g.terrainR.Destroy()
	}
	if g.fb != nil {
		g.fb.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}
