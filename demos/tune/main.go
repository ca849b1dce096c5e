// Tune is a live camera-tuning playground. The camera is built from
// camera.yaml next to this file; edit and save it while the demo runs and
// the camera rebuilds in place. WASD moves the player the camera follows,
// and SPACE glides the view back to the world origin before the follow
// takes over again.
//
// Run it from this directory so the preset path resolves:
//
//	go run .
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween/ease"

	"github.com/brightfall/lens"
	"github.com/brightfall/lens/preset"
)

const (
	windowTitle = "Lens — Tune Demo"
	screenW     = 960
	screenH     = 720
	presetPath  = "camera.yaml"
	moveSpeed   = 14.0 / 60
	followLerp  = 0.08
	scrollTime  = 0.8
)

var worldBounds = lens.Frame{Width: 60, Height: 40}

type game struct {
	cam        *lens.Camera
	presetName string
	watcher    *preset.Watcher
	scroll     *lens.Scroll

	player    cp.Vector
	playerImg *ebiten.Image
	status    string
}

func newGame() (*game, error) {
	cam, name, err := loadCamera()
	if err != nil {
		return nil, err
	}

	w, err := preset.NewWatcher(".")
	if err != nil {
		return nil, err
	}

	playerImg := ebiten.NewImage(24, 24)
	playerImg.Fill(color.RGBA{R: 240, G: 120, B: 100, A: 255})

	return &game{
		cam:        cam,
		presetName: name,
		watcher:    w,
		playerImg:  playerImg,
		status:     "loaded " + presetPath,
	}, nil
}

func loadCamera() (*lens.Camera, string, error) {
	p, err := preset.Load[preset.Camera](presetPath)
	if err != nil {
		return nil, "", err
	}
	cam, err := p.Build()
	if err != nil {
		return nil, "", err
	}
	return cam, p.Name, nil
}

func (g *game) Update() error {
	select {
	case _, ok := <-g.watcher.Events:
		if ok {
			g.reload()
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watch: %v", err)
		}
	default:
	}

	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.player.X -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.player.X += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.player.Y += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.player.Y -= moveSpeed
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scroll = lens.NewScroll(g.cam.Position, cp.Vector{}, scrollTime, ease.InOutCubic)
	}

	if g.scroll != nil {
		pos, done := g.scroll.Update(1.0 / 60)
		g.cam.Position = pos
		if done {
			g.scroll = nil
		}
	} else {
		g.cam.Position = lens.Follow(g.cam.Position, g.player, followLerp)
	}
	g.cam.Position = lens.ClampFrame(g.cam.Frame(), worldBounds)

	return nil
}

// reload rebuilds the camera from the preset file. The running camera stays
// untouched when the new preset fails to parse or build.
func (g *game) reload() {
	cam, name, err := loadCamera()
	if err != nil {
		log.Printf("reload: %v", err)
		g.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	g.cam = cam
	g.presetName = name
	g.scroll = nil
	g.status = "reloaded " + presetPath
	log.Printf("reloaded %s: %q, %d px/unit", presetPath, name, cam.Dimensions().PixelRatio)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 26, G: 30, B: 34, A: 255})

	g.drawGrid(screen)
	g.drawWorldBorder(screen)

	// Player occupies 1.5x1.5 units centered on its position.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1.5/24, -1.5/24)
	op.GeoM.Translate(g.player.X-0.75, g.player.Y+0.75)
	op.GeoM.Concat(g.cam.GeoM())
	screen.DrawImage(g.playerImg, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"wasd: move   space: glide to origin   edit %s to retune\n"+
			"preset: %q   ratio: %d px/unit   frame: %.2f x %.2f units\n"+
			"camera: (%.2f, %.2f)   %s",
		presetPath,
		g.presetName, g.cam.Dimensions().PixelRatio, g.cam.Width(), g.cam.Height(),
		g.cam.Position.X, g.cam.Position.Y, g.status,
	))
}

func (g *game) drawGrid(screen *ebiten.Image) {
	f := g.cam.Frame()
	gridColor := color.RGBA{R: 255, G: 255, B: 255, A: 16}

	for x := float64(int(f.Left())); x <= f.Right(); x++ {
		top := g.cam.ToScreen(cp.Vector{X: x, Y: f.Top()})
		bottom := g.cam.ToScreen(cp.Vector{X: x, Y: f.Bottom()})
		vector.StrokeLine(screen, float32(top.X), float32(top.Y), float32(bottom.X), float32(bottom.Y), 1, gridColor, false)
	}
	for y := float64(int(f.Bottom())); y <= f.Top(); y++ {
		left := g.cam.ToScreen(cp.Vector{X: f.Left(), Y: y})
		right := g.cam.ToScreen(cp.Vector{X: f.Right(), Y: y})
		vector.StrokeLine(screen, float32(left.X), float32(left.Y), float32(right.X), float32(right.Y), 1, gridColor, false)
	}
}

// drawWorldBorder outlines the bounds the camera is clamped to.
func (g *game) drawWorldBorder(screen *ebiten.Image) {
	tl := g.cam.ToScreen(worldBounds.TopLeft())
	br := g.cam.ToScreen(worldBounds.BottomRight())
	clr := color.RGBA{R: 120, G: 200, B: 255, A: 120}
	vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(br.X-tl.X), float32(br.Y-tl.Y), 2, clr, false)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	g, err := newGame()
	if err != nil {
		log.Fatal(err)
	}
	defer g.watcher.Close()

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(windowTitle)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
