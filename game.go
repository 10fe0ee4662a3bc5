package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/seafloor/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	size   = 24
	margin = 16
	header = 48
	tps    = 60
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

var COLOR_EAST = HexToF32(0xfa3636)
var COLOR_SOUTH = HexToF32(0x34fbf6)
var COLOR_FRAME = HexToF32(0x9a9a9a)

type GameState int

const (
	CONNECTING GameState = iota + 1
	PLAYING
	PAUSED
	CONVERGED
	DISCONNECTED
)

func (s GameState) Name() string {
	switch s {
	case CONNECTING:
		return "CONNECTING"
	case PLAYING:
		return "PLAYING"
	case PAUSED:
		return "PAUSED"
	case CONVERGED:
		return "CONVERGED"
	case DISCONNECTED:
		return "DISCONNECTED"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Game struct {
	State       GameState
	Link        *Link
	Model       *model.Replay
	Frame       *Nine
	Tweens      map[*gween.Tween]*Action
	tile        *ebiten.Image
	face        font.Face
	bannerAlpha float64
}

func loadFont() (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    20,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

func screenSize(cols, rows int) (int, int) {
	return cols*size + 2*margin, rows*size + header + margin
}

func (g *Game) setup(s model.Setup) {
	g.Model = &model.Replay{
		Width:  s.Width,
		Height: s.Height,
		Board:  model.NewBoard(s.Rows),
	}
	g.Tweens = make(map[*gween.Tween]*Action)
	g.bannerAlpha = 0
	if g.State != PAUSED {
		g.State = PLAYING
	}
	w, h := screenSize(s.Width, s.Height)
	ebiten.SetScreenSize(w, h)
	g.Frame.SetBounds(margin/2, header-margin/2, float64(w-margin), float64(h-header))
	log.WithFields(log.Fields{"width": s.Width, "height": s.Height}).Info("replay setup")
}

func (g *Game) handle(mes model.ServerMessage) {
	for _, s := range mes.Setup {
		g.setup(s)
	}
	if g.Model == nil {
		return
	}
	for _, fr := range mes.Frames {
		g.slide(g.Model.Advance(fr))
	}
	for _, c := range mes.Converged {
		g.Model.Board = model.NewBoard(c.Rows)
		g.Model.Step = c.Steps
		g.State = CONVERGED
		g.fadeBanner()
		log.Infof("settled after %d steps", c.Steps)
	}
}

// receive takes the next message once the previous frame finished sliding.
func (g *Game) receive() {
	if g.Model != nil && len(g.Model.Moving) > 0 {
		return
	}
	select {
	case mes := <-g.Link.Messages:
		g.handle(mes)
		return
	default:
	}
	select {
	case <-g.Link.Done:
		if g.State != CONVERGED {
			g.State = DISCONNECTED
		}
	default:
	}
}

func (g *Game) input() {
	toggle := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	switch {
	case toggle && g.State == PLAYING:
		g.State = PAUSED
		g.Link.Send(model.CMD_PAUSE)
	case toggle && g.State == PAUSED:
		g.State = PLAYING
		g.Link.Send(model.CMD_RESUME)
	case inpututil.IsKeyJustPressed(ebiten.KeyR) && g.State != DISCONNECTED:
		g.State = PLAYING
		g.Link.Send(model.CMD_RESTART)
	}
}

func (g *Game) drawTile(screen *ebiten.Image, kind model.Kind, x, y float64) {
	sx, sy := .8, .8
	c := COLOR_EAST
	switch kind {
	case model.East:
		sy = .45
	case model.South:
		sx = .45
		c = COLOR_SOUTH
	default:
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(margin+x*size+(1-sx)*size/2, header+y*size+(1-sy)*size/2)
	op.ColorM.Scale(c.r, c.g, c.b, 1)
	screen.DrawImage(g.tile, op)
}

func (g *Game) draw(screen *ebiten.Image) {
	if err := screen.Fill(color.RGBA{20, 30, 45, 255}); err != nil {
		log.Printf("%v", err)
	}
	if g.Model != nil {
		for row, line := range g.Model.Board {
			for col, kind := range line {
				if g.Model.IsMoving(col, row) {
					continue
				}
				g.drawTile(screen, kind, float64(col), float64(row))
			}
		}
		for _, m := range g.Model.Moving {
			x, y := m.Position()
			g.drawTile(screen, m.Kind, x, y)
		}
		g.Frame.Draw(screen)
		text.Draw(screen, fmt.Sprintf("step %d", g.Model.Step), g.face, margin, 28, color.White)
		if g.State == CONVERGED {
			banner := color.NRGBA{255, 230, 120, uint8(g.bannerAlpha * 255)}
			text.Draw(screen, "settled", g.face, margin+120, 28, banner)
		}
	}
	ebitenutil.DebugPrintAt(screen, g.State.Name(), margin, 0)
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens(1.0 / tps)
	g.input()
	g.receive()
	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func main() {
	flag.Parse()

	face, err := loadFont()
	if err != nil {
		log.Fatal(err)
	}
	tile, err := ebiten.NewImage(size, size, ebiten.FilterDefault)
	if err != nil {
		log.Fatal(err)
	}
	if err := tile.Fill(color.White); err != nil {
		log.Fatal(err)
	}
	ring, err := ebiten.NewImageFromImage(ringImage(32, 3), ebiten.FilterDefault)
	if err != nil {
		log.Fatal(err)
	}
	frame := NewNine(ring, 15, .5)
	frame.SetColor(COLOR_FRAME.r, COLOR_FRAME.g, COLOR_FRAME.b, 1)

	link, err := Connect(*addr)
	if err != nil {
		log.Fatal(err)
	}

	theGame := &Game{
		State:  CONNECTING,
		Link:   link,
		Frame:  frame,
		Tweens: make(map[*gween.Tween]*Action),
		tile:   tile,
		face:   face,
	}
	w, h := screenSize(10, 10)
	if err := ebiten.Run(theGame.update, w, h, 1, "Seafloor"); err != nil {
		log.Fatal(err)
	}
}
