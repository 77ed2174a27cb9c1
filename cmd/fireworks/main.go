package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/terminal"
)

var (
	colorBg  = terminal.RGB{R: 8, G: 8, B: 16}
	colorHUD = terminal.RGB{R: 140, G: 140, B: 150}
)

type star struct {
	x, y, brightness, phase float64
}

func makeStars(rng *rand.Rand, w, h int) []star {
	stars := make([]star, parameter.StarCount)
	for i := range stars {
		stars[i] = star{
			x:          rng.Float64() * float64(w),
			y:          rng.Float64() * float64(h),
			brightness: 0.3 + rng.Float64()*0.7,
			phase:      rng.Float64() * math.Pi * 2,
		}
	}
	return stars
}

func renderStars(buf *render.RenderBuffer, stars []star, t float64) {
	for _, s := range stars {
		brite := s.brightness * (0.6 + 0.4*math.Sin(t*3.5+s.phase))
		val := uint8(120 * brite)
		buf.SetBg(int(s.x), int(s.y), terminal.RGB{R: val, G: val, B: val}, render.BlendAdd, 1.0)
	}
}

func startInputReader(term terminal.Terminal) <-chan terminal.Event {
	ch := make(chan terminal.Event, 64)
	go func() {
		defer close(ch)
		for {
			ev := term.PollEvent()
			if ev.Type == terminal.EventInterrupt {
				return
			}
			ch <- ev
		}
	}()
	return ch
}

func main() {
	interval := flag.Duration("interval", parameter.AutoLaunchInterval, "delay between automatic launches (0 disables)")
	fps := flag.Int("fps", parameter.TargetFPS, "target frames per second")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	if *fps <= 0 {
		fmt.Fprintf(os.Stderr, "fps must be positive\n")
		os.Exit(1)
	}

	term := terminal.New()
	term.EnableMouse()
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()
	term.SetCursorVisible(false)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		term.Fini()
		os.Exit(0)
	}()

	w, h := term.Size()
	buf := render.NewRenderBuffer(w, h, colorBg)
	sim := firework.NewSimulation(w, h, core.NewMonotonicTimeProvider(), *seed)

	starRng := rand.New(rand.NewSource(*seed + 1))
	stars := makeStars(starRng, w, h)

	inputCh := startInputReader(term)

	frameTicker := time.NewTicker(time.Second / time.Duration(*fps))
	defer frameTicker.Stop()

	var launchCh <-chan time.Time
	if *interval > 0 {
		launchTicker := time.NewTicker(*interval)
		defer launchTicker.Stop()
		launchCh = launchTicker.C
	}

	launch := func() {
		if err := sim.Launch(); err != nil {
			log.Printf("launch: %v", err)
		}
	}

	running := true
	for running {
		select {
		case ev, ok := <-inputCh:
			if !ok {
				running = false
				break
			}
			switch ev.Type {
			case terminal.EventKey:
				switch {
				case ev.Key == terminal.KeyEscape, ev.Key == terminal.KeyCtrlC:
					running = false
				case ev.Key == terminal.KeyRune && (ev.Rune == 'q' || ev.Rune == 'Q'):
					running = false
				case ev.Key == terminal.KeySpace:
					launch()
				}
			case terminal.EventMouse:
				launch()
			}

		case resize := <-term.ResizeChan():
			w, h = resize.Width, resize.Height
			buf.Resize(w, h)
			sim.Resize(w, h)
			stars = makeStars(starRng, w, h)
			term.Sync()

		case <-launchCh:
			launch()

		case <-frameTicker.C:
			buf.Clear()
			sim.Tick(buf)
			renderStars(buf, stars, sim.Elapsed())

			hud := fmt.Sprintf(" space/click: launch  q: quit  rockets: %d ", sim.RocketCount())
			buf.SetText(1, h-1, hud, colorHUD)

			buf.FlushToTerminal(term)
		}
	}
}
