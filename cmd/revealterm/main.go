// Command revealterm plays a rune reveal or a typewriter in the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/reveal"
	"github.com/gdamore/tcell/v2"
)

type options struct {
	mode  string
	text  string
	speed time.Duration
	delay time.Duration
	pause time.Duration
	sound bool
	log   string
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("revealterm", flag.ContinueOnError)
	var o options
	var speed, delay, pause int
	fs.StringVar(&o.mode, "mode", "rune", "rune or typewriter")
	fs.StringVar(&o.text, "text", "", "text to reveal; typewriter strings are separated by |")
	fs.IntVar(&speed, "speed", 0, "milliseconds per character (0 keeps the mode default)")
	fs.IntVar(&delay, "delay", -1, "start delay in milliseconds (-1 keeps the mode default)")
	fs.IntVar(&pause, "pause", -1, "typewriter pause between strings in milliseconds (-1 keeps the default)")
	fs.BoolVar(&o.sound, "sound", false, "play a click per character")
	fs.StringVar(&o.log, "log", "", "write debug logs to this file")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if o.mode != "rune" && o.mode != "typewriter" {
		return o, fmt.Errorf("unknown mode %q", o.mode)
	}
	o.speed = time.Duration(speed) * time.Millisecond
	o.delay = time.Duration(delay) * time.Millisecond
	o.pause = time.Duration(pause) * time.Millisecond
	return o, nil
}

// engineConfig applies the flag overrides to the mode default
func (o options) engineConfig() reveal.Config {
	cfg := reveal.DefaultRuneConfig()
	if o.mode == "typewriter" {
		cfg = reveal.DefaultTypewriterConfig()
	}
	if o.speed > 0 {
		cfg.Interval = o.speed
	}
	if o.delay >= 0 {
		cfg.StartDelay = o.delay
	}
	if o.pause >= 0 {
		cfg.PauseDuration = o.pause
	}
	return cfg
}

func (o options) texts() []string {
	if o.text == "" {
		if o.mode == "typewriter" {
			return []string{"Hello there. ", "Welcome to the terminal, ", "one character at a time."}
		}
		return []string{"Hello, world!"}
	}
	if o.mode == "typewriter" {
		return strings.Split(o.text, "|")
	}
	return []string{o.text}
}

// engine is the common surface of both reveal variants
type engine struct {
	start  func()
	cancel func()
}

// newEngine builds the engine for o and feeds its frames into frames
func newEngine(o options, frames chan snapshot, click func()) engine {
	cfg := o.engineConfig()
	texts := o.texts()

	if o.mode == "typewriter" {
		tw := reveal.NewTypewriter(nil, texts, cfg)
		typed := 0
		tw.Subscribe(func(f reveal.TypewriterFrame) {
			if n := len(f.Prefix()); n > typed {
				typed = n
				click()
			}
			offerLatest(frames, snapshot(typewriterSnapshot(f)))
		})
		return engine{start: tw.Start, cancel: tw.Cancel}
	}

	r := reveal.New(nil, texts[0], cfg)
	revealed := 0
	r.Subscribe(func(f reveal.Frame) {
		if f.Revealed > revealed {
			revealed = f.Revealed
			click()
		}
		offerLatest(frames, snapshot(runeSnapshot(f)))
	})
	return engine{start: r.Start, cancel: r.Cancel}
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(o); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(o options) error {
	var logOut io.Writer = io.Discard
	if o.log != "" {
		f, err := os.Create(o.log)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reveal.SetLogger(logger)

	var sound *clicker
	if o.sound {
		c, err := newClicker()
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			sound = c
			defer sound.close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	frames := make(chan snapshot, 1)
	eng := newEngine(o, frames, sound.click)
	defer eng.cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	eng.start()

	var last snapshot
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					logger.Debug("quit", "done", last != nil && last.done())
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, last)
			}
		case f := <-frames:
			last = f
			draw(screen, last)
		}
	}
}

var styles = map[cellKind]tcell.Style{
	kindRevealed: tcell.StyleDefault,
	kindPending:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Dim(true),
	kindCaret:    tcell.StyleDefault.Reverse(true),
}

func draw(screen tcell.Screen, s snapshot) {
	screen.Clear()
	if s != nil {
		width, _ := screen.Size()
		for _, p := range s.layout(width - 2) {
			runes := []rune(p.Text)
			screen.SetContent(p.X+1, p.Y+1, runes[0], runes[1:], styles[p.Kind])
		}
	}
	screen.Show()
}

// offerLatest replaces an undrawn frame with f
func offerLatest(ch chan snapshot, f snapshot) {
	for {
		select {
		case ch <- f:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
