package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/playback"
	"github.com/san-kum/atomviz/internal/scene"
	"github.com/sirupsen/logrus"
)

// Figure colours, matching a plain white plotting figure.
var (
	ColBg      = rl.NewColor(255, 255, 255, 255)
	ColTitle   = rl.NewColor(20, 20, 20, 255)
	ColCaption = rl.NewColor(90, 90, 90, 255)
	ColDot     = rl.NewColor(200, 200, 200, 255)
	ColDotOn   = rl.NewColor(66, 146, 198, 255)
)

const (
	headerHeight = 70
	footerHeight = 70
	margin       = 30
	titleSize    = 24
	captionSize  = 16
)

// App owns the window and replays the driver's display list every frame.
type App struct {
	Driver *playback.Driver
	List   *scene.DisplayList
	Width  int32
	Height int32
	FPS    int32
	log    logrus.FieldLogger
}

func NewApp(drv *playback.Driver, list *scene.DisplayList, cfg config.WindowConfig, log logrus.FieldLogger) *App {
	return &App{
		Driver: drv,
		List:   list,
		Width:  int32(cfg.Width),
		Height: int32(cfg.Height),
		FPS:    int32(cfg.FPS),
		log:    log,
	}
}

// initWindow opens an anti-aliased window titled "atomviz".
func (a *App) initWindow() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(a.Width, a.Height, "atomviz")
	rl.SetTargetFPS(a.FPS)
}

// Run opens the window and blocks until it is closed.
func Run(a *App) {
	a.initWindow()
	defer rl.CloseWindow()
	a.log.WithFields(logrus.Fields{
		"width":    a.Width,
		"height":   a.Height,
		"interval": a.Driver.Interval(),
	}).Info("window opened")
	a.RunLoop()
	a.log.Info("window closed")
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	if a.Driver.Elapse(dt) {
		a.log.WithFields(logrus.Fields{
			"frame": a.Driver.Index(),
			"model": a.Driver.Current().Name(),
		}).Debug("window frame changed")
	}
}

// viewport is the square plot area between the header and footer.
func (a *App) viewport() scene.Viewport {
	w := float64(a.Width - 2*margin)
	h := float64(a.Height - headerHeight - footerHeight)
	vp := scene.NewViewport(a.List.View(), w, h)
	vp.Left += margin
	vp.Top += headerHeight
	return vp
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawCentered(a.List.Title, headerHeight/2-titleSize/2, titleSize, ColTitle)
	Paint(a.List, a.viewport())
	a.drawFooter()

	rl.EndDrawing()
}

func (a *App) drawFooter() {
	cur := a.Driver.Current()
	y := a.Height - footerHeight + 12
	a.drawCentered(fmt.Sprintf("%d  ·  %s", cur.Year(), cur.Caption()), y, captionSize, ColCaption)

	n := int32(a.Driver.Len())
	const r, gap = 5, 18
	x := a.Width/2 - (n-1)*gap/2
	for i := int32(0); i < n; i++ {
		col := ColDot
		if int(i) == a.Driver.Index() {
			col = ColDotOn
		}
		rl.DrawCircle(x+i*gap, y+captionSize+18, r, col)
	}
}

func (a *App) drawCentered(text string, y, size int32, col rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, a.Width/2-w/2, y, size, col)
}
