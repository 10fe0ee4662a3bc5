package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/seafloor/model"
)

const slideSeconds = 0.08

type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return action
}

// slide animates the markers of one frame into their new cells.
func (g *Game) slide(markers []*model.Slide) {
	if len(markers) == 0 {
		return
	}
	t := gween.New(0, 1, slideSeconds, ease.OutQuad)
	a := &Action{
		onChange: func(p float32) {
			for _, m := range markers {
				m.Progress = float64(p)
			}
		},
	}
	a.addOnFinish(func() {
		g.Model.Moving = nil
	})
	g.Tweens[t] = a
}

// updateTweens steps every tween and runs what is chained after finished ones.
func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// fadeBanner shows the banner and then dims it a little.
func (g *Game) fadeBanner() {
	in := gween.New(0, 1, 0.4, ease.OutQuad)
	out := gween.New(1, 0.6, 0.6, ease.InOutQuad)
	set := func(p float32) {
		g.bannerAlpha = float64(p)
	}
	a := &Action{onChange: set}
	a.next(out).onChange = set
	g.Tweens[in] = a
}
