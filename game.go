package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/quizplatformer/assets"
	"github.com/milk9111/quizplatformer/common"
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/system"
	"github.com/milk9111/quizplatformer/levels"
	"github.com/milk9111/quizplatformer/prefabs"
	"github.com/milk9111/quizplatformer/scores"
	"github.com/milk9111/quizplatformer/session"
	"golang.org/x/image/colornames"
)

type Options struct {
	Level int
	Debug bool
	Watch bool
	Seed  int64
	Art   string
	// Scores is the results file; empty keeps results in memory only.
	Scores string
}

type Game struct {
	debug   bool
	seed    int64
	levelID int

	set         *prefabs.Set
	placeholder *assets.PlaceholderFrames
	render      *system.RenderSystem
	watcher     *prefabs.Watcher
	scores      *scores.Store

	// menu is the title, level select or scores screen; nil while playing.
	menu *ebitenui.UI
	quit bool

	play    *play
	results []session.Result
	// done is set once the last level has been won.
	done bool

	paused   bool
	pauseUI  *ebitenui.UI
	question *questionView
	// message is a transient banner; messageTicks counts down to its removal.
	message      string
	messageTicks int
}

const messageSeconds = 2

func NewGame(opts Options) (*Game, error) {
	set, err := prefabs.LoadSet()
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		debug:       opts.Debug,
		seed:        seed,
		set:         set,
		placeholder: assets.NewPlaceholderFrames(),
	}
	g.applyTints()

	var frames assets.FrameProvider = g.placeholder
	if opts.Art != "" {
		frames = assets.NewImageFrames(opts.Art, g.placeholder)
	}
	g.render = system.NewRenderSystem(frames)
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("game: prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.scores = scores.Memory()
	if opts.Scores != "" {
		store, err := scores.Open(opts.Scores)
		if err != nil {
			log.Printf("game: scores not saved: %v", err)
		} else {
			g.scores = store
		}
	}

	if opts.Level <= 0 {
		g.showStartMenu()
		return g, nil
	}
	if err := g.loadLevel(opts.Level); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) applyTints() {
	tints := map[string]*prefabs.YAMLColor{
		"player": g.set.Player.Color,
		"enemy":  g.set.Enemy.Color,
		"bullet": g.set.Bullet.Color,
	}
	for kind, c := range tints {
		fallback := assets.DefaultTints[kind]
		g.placeholder.SetTint(kind, color.RGBAModel.Convert(c.Or(fallback)).(color.RGBA))
	}
}

// reloadPrefabs applies edited prefab files by rebuilding the current
// level from scratch.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Drain()
	if err != nil {
		log.Printf("game: prefab watch: %v", err)
	}
	if len(changed) == 0 {
		return
	}
	set, err := prefabs.LoadSet()
	if err != nil {
		log.Printf("game: reload %v: %v", changed, err)
		return
	}
	g.set = set
	g.applyTints()
	if g.play == nil {
		log.Printf("game: reloaded %v", changed)
		return
	}
	if err := g.loadLevel(g.levelID); err != nil {
		log.Printf("game: reload level %d: %v", g.levelID, err)
		return
	}
	log.Printf("game: reloaded %v", changed)
}

func (g *Game) Update() error {
	g.reloadPrefabs()
	if g.quit {
		return ebiten.Termination
	}
	if g.menu != nil {
		g.menu.Update()
		return nil
	}
	if g.done {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.showStartMenu()
		}
		return nil
	}
	p := g.play

	if p.sess.Over() {
		return g.updateOver()
	}

	if g.question != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.closeQuestion()
			return nil
		}
		g.question.ui.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.handleEvents(p.scheduler.Tick(p.world))
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if p.sess.Asking {
		g.openQuestion()
	}
	return nil
}

func (g *Game) updateOver() error {
	p := g.play
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.showStartMenu()
		return nil
	}
	switch p.sess.Outcome {
	case session.Won:
		if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return nil
		}
		g.results = append(g.results, p.sess.Result())
		err := g.loadLevel(g.levelID + 1)
		var missing *levels.MissingLevelError
		if errors.As(err, &missing) {
			g.done = true
			return nil
		}
		return err
	case session.Lost:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return g.loadLevel(g.levelID)
		}
	}
	return nil
}

func (g *Game) handleEvents(events []ecs.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case ecs.EventPlayerHit:
			g.say(fmt.Sprintf("Hit for %d", ev.Value))
		case ecs.EventEnemyKilled:
			g.say("Enemy defeated")
		case ecs.EventLevelCompleted:
			g.say("Level complete")
			g.recordResult()
		case ecs.EventPlayerDied:
			g.say("You died")
			g.recordResult()
		}
		if g.debug {
			log.Printf("event: %s entity=%s value=%d", ev.Kind, ev.Entity, ev.Value)
		}
	}
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = messageSeconds * g.tps()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightskyblue)
	if g.menu != nil {
		g.menu.Draw(screen)
		return
	}
	if g.done {
		drawSummary(screen, g.results)
		return
	}

	p := g.play
	g.render.Draw(p.world, screen)
	if g.debug {
		system.DrawPhysicsDebug(p.engine, p.world, screen)
		system.DrawActorDebug(p.world, p.engine, screen)
	}
	drawHUD(screen, p, g.message)

	switch {
	case p.sess.Over():
		drawOutcome(screen, p.sess.Result())
	case g.question != nil:
		g.question.ui.Draw(screen)
	case g.paused:
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
