package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/tomoyk/go-life-game/model"
	"github.com/tomoyk/go-life-game/patterns"
	"github.com/tomoyk/go-life-game/utils"
)

// app owns the screen and the view settings for one player session.
type app struct {
	screen   tcell.Screen
	renderer *model.Renderer
	setting  *model.Setting
}

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		config = utils.DefaultConfig()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init screen:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	a := &app{
		screen:   screen,
		renderer: model.NewRenderer(screen),
		setting:  model.NewSetting(config),
	}

	if err := a.run(patterns.All()); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

// run cycles through the pattern library forever, until a quit key or an
// error ends the session.
func (a *app) run(pats []patterns.Pattern) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		for _, p := range pats {
			done, err := a.play(p, events)
			if done || err != nil {
				return err
			}
		}
	}
}

// play runs one pattern until the grid reaches a fixed point or a key skips
// ahead. It reports done=true when the whole session should end.
func (a *app) play(p patterns.Pattern, events <-chan tcell.Event) (done bool, err error) {
	grid, err := model.NewGridFromSeed(p.Name, p.Rows)
	if err != nil {
		return true, errors.Wrapf(err, "[play] invalid pattern %q", p.Name)
	}

	var (
		stats      = utils.NewStats()
		generation = 0
		lastTick   = time.Now()
		nextTick   = lastTick.Add(a.setting.TickRate)
	)

	for {
		a.renderer.Draw(grid, a.setting, stats, generation)

		select {
		case ev, ok := <-events:
			if !ok {
				return true, nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch handleKeyEvent(ev, a.setting) {
				case handleQuit:
					return true, nil
				case handleNext:
					return false, nil
				case handleStep:
					nextTick = time.Now()
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case <-time.After(time.Until(nextTick)):
			changed := grid.Advance()
			generation++
			stats.Update(generation, grid.CountLivingCells(), time.Since(lastTick))
			lastTick = time.Now()
			nextTick = lastTick.Add(a.setting.TickRate)
			if !changed {
				return false, nil
			}
		}
	}
}
