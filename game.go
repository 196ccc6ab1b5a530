package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/phox/common"
	"github.com/milk9111/phox/ecs"
	"github.com/milk9111/phox/ecs/component"
	"github.com/milk9111/phox/ecs/entity"
	"github.com/milk9111/phox/ecs/render"
	"github.com/milk9111/phox/ecs/system"
	"github.com/milk9111/phox/input"
	"github.com/milk9111/phox/levels"
	"github.com/milk9111/phox/prefabs"
	"github.com/milk9111/phox/save"
	"golang.org/x/image/colornames"
)

const prefabsDir = "prefabs"

type Options struct {
	Level string
	Debug bool
	Watch bool
	Store *save.Store
}

type Game struct {
	debug       bool
	drawPhysics bool
	paused      bool
	quit        bool

	source input.Source
	specs  entity.Specs
	store  *save.Store

	levelNames []string
	levelIdx   int
	level      *levels.Level
	background color.Color

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *render.RenderSystem

	pauseUI *ebitenui.UI
	overlay *overlay
	watcher *prefabs.Watcher
	reloads prefabs.ReloadFilter
}

func NewGame(opts Options) (*Game, error) {
	specs, err := entity.LoadSpecs()
	if err != nil {
		return nil, fmt.Errorf("load prefabs: %w", err)
	}

	g := &Game{
		debug:      opts.Debug,
		source:     keyboardSource{bindings: keyBindings},
		specs:      specs,
		store:      opts.Store,
		levelNames: levels.Names(),
		render:     render.NewRenderSystem(),
		overlay:    newOverlay(),
	}
	if len(g.levelNames) == 0 {
		return nil, fmt.Errorf("no levels embedded")
	}
	g.pauseUI = NewPauseUI(pauseActions{
		resume:  func() { g.paused = false },
		restart: g.restart,
		quit:    func() { g.quit = true },
	})

	name := opts.Level
	if name == "" {
		progress, err := g.store.Load()
		if err != nil {
			log.Warn("could not read progress", "err", err)
		}
		name = progress.LastLevel
	}
	if name == "" {
		name = g.levelNames[0]
	}
	if err := g.loadLevel(name); err != nil {
		return nil, err
	}

	if opts.Watch {
		g.startWatcher()
	}

	return g, nil
}

func (g *Game) startWatcher() {
	if _, err := os.Stat(prefabsDir); err != nil {
		log.Warn("prefab hot reload disabled", "dir", prefabsDir, "err", err)
		return
	}
	w, err := prefabs.NewWatcher(prefabsDir)
	if err != nil {
		log.Warn("prefab hot reload disabled", "err", err)
		return
	}
	g.watcher = w
	log.Info("watching prefabs", "dir", prefabsDir)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// loadLevel builds a fresh world for name. On failure the current world is
// kept.
func (g *Game) loadLevel(name string) error {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return fmt.Errorf("load level %q: %w", name, err)
	}

	world := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(world, lvl, g.specs); err != nil {
		return fmt.Errorf("load level %q: %w", name, err)
	}

	g.world = world
	g.scheduler = system.NewGameplayScheduler(g.source, g.specs.World)
	g.physics = nil
	for _, s := range g.scheduler.Systems() {
		if ps, ok := s.(*system.PhysicsSystem); ok {
			g.physics = ps
		}
	}
	g.level = lvl
	g.background = colornames.Black
	if lvl.Background != "" {
		if c, err := levels.ParseColor(lvl.Background); err == nil {
			g.background = c
		} else {
			log.Warn("bad level background", "level", lvl.Name, "err", err)
		}
	}
	for i, n := range g.levelNames {
		if n == lvl.Name {
			g.levelIdx = i
		}
	}

	if err := g.store.RecordLevel(lvl.Name); err != nil {
		log.Warn("could not save progress", "err", err)
	}
	log.Info("level loaded", "level", lvl.Name, "size", fmt.Sprintf("%dx%d", lvl.PixelWidth(), lvl.PixelHeight()), "entities", len(ecs.Entities(world)))
	return nil
}

func (g *Game) restart() {
	g.paused = false
	if g.level == nil {
		return
	}
	if err := g.loadLevel(g.level.Name); err != nil {
		log.Error("restart failed", "err", err)
	}
}

func (g *Game) cycleLevel(step int) {
	n := len(g.levelNames)
	next := ((g.levelIdx+step)%n + n) % n
	if err := g.loadLevel(g.levelNames[next]); err != nil {
		log.Error("switch level failed", "err", err)
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.debug {
		if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
			g.cycleLevel(-1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
			g.cycleLevel(1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
			g.drawPhysics = !g.drawPhysics
		}
	}

	g.world.Advance(1.0 / common.TPS)
	g.scheduler.Update(g.world)
	g.logEvents()
	return nil
}

func (g *Game) logEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case ecs.EventMissingClip:
			// Already warned by the animation system.
		default:
			log.Debug("event", "kind", evt.Kind, "entity", evt.Entity, "data", evt.Data, "tick", g.world.Tick())
		}
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadPrefab(prefabs.BaseName(path))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn("prefab watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reloadPrefab(name string) {
	if !g.reloads.Changed(name) {
		return
	}
	switch name {
	case prefabs.PlayerFile:
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Error("reload player", "err", err)
			return
		}
		if p, ok := g.world.Player(); ok {
			if err := entity.ApplyPlayerSpec(g.world, p, spec); err != nil {
				log.Error("reload player", "err", err)
				return
			}
		}
		g.specs.Player = spec
		render.ForgetImages()
	case prefabs.CameraFile:
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			log.Error("reload camera", "err", err)
			return
		}
		g.specs.Camera = spec
		ecs.ForEach(g.world, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
			if spec.AspectW > 0 && spec.AspectH > 0 {
				cam.AspectW, cam.AspectH = spec.AspectW, spec.AspectH
			}
		})
	case prefabs.WorldFile:
		spec, err := prefabs.LoadWorldSpec()
		if err != nil {
			log.Error("reload world", "err", err)
			return
		}
		g.specs.World = spec
		g.restart()
	default:
		return
	}
	log.Info("prefab reloaded", "file", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.render.Draw(g.world, screen)

	if g.debug {
		if g.drawPhysics && g.physics != nil {
			if frame, ok := g.render.Frame(g.world); ok {
				render.DrawPhysicsDebug(g.physics.Space(), frame, screen)
			}
		}
		g.overlay.Draw(screen, g)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
