package main

import (
	"io"
	"net/http"
	"strconv"

	"github.com/Zachkp/portfolio/reveal"
	"github.com/gin-gonic/gin"
)

// frameSource is the host-facing side of a reveal engine
type frameSource[F any] interface {
	Subscribe(fn func(F)) func()
	Start()
	Cancel()
}

func setupRevealRoutes(r *gin.Engine, cfg Config, clock reveal.Clock) {
	// Typewriter under the name on the About tab
	r.GET("/reveal/intro", func(c *gin.Context) {
		tw := reveal.NewTypewriter(clock, IntroTexts, cfg.Typewriter)
		streamFrames[reveal.TypewriterFrame](c, tw, func(f reveal.TypewriterFrame) bool {
			return f.State == reveal.Completed
		})
	})

	// One About paragraph, each fragment resolving from runes on its own timer
	r.GET("/reveal/about/:paragraph", func(c *gin.Context) {
		n, err := strconv.Atoi(c.Param("paragraph"))
		if err != nil || n < 0 || n >= len(AboutParagraphs) {
			c.JSON(http.StatusNotFound, gin.H{"error": "paragraph not found"})
			return
		}
		g := reveal.NewGroup(clock, paragraphFragments(AboutParagraphs[n], cfg))
		streamFrames[reveal.GroupFrame](c, g, func(f reveal.GroupFrame) bool {
			return f.Done
		})
	})
}

func paragraphFragments(paragraph []aboutFragment, cfg Config) []reveal.Fragment {
	fragments := make([]reveal.Fragment, len(paragraph))
	for i, frag := range paragraph {
		timing := cfg.Rune
		if frag.Quick {
			timing = cfg.QuickRune
		}
		fragments[i] = reveal.Fragment{Text: frag.Text, Config: timing}
	}
	return fragments
}

// streamFrames relays frames from src as server-sent events until done
// reports true or the client goes away. The engine belongs to this request
// and is cancelled before the handler returns.
func streamFrames[F any](c *gin.Context, src frameSource[F], done func(F) bool) {
	frames := make(chan F, 1)
	unsubscribe := src.Subscribe(func(f F) { offerLatest(frames, f) })
	defer unsubscribe()
	defer src.Cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	src.Start()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case f := <-frames:
			c.SSEvent("frame", f)
			if done(f) {
				c.SSEvent("done", gin.H{"done": true})
				return false
			}
			return true
		}
	})
}

// offerLatest puts f on ch, replacing an undelivered older frame. Frames are
// full snapshots, so a slow client only ever skips intermediate states.
func offerLatest[F any](ch chan F, f F) {
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
