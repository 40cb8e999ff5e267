package main

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// clicker plays a short tone per typed character
type clicker struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

func newClicker() (*clicker, error) {
	c := &clicker{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.ready = true
	return c, nil
}

func (c *clicker) click() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}

	tone := beep.Take(sampleRate.N(18*time.Millisecond), newClickTone(sampleRate, 1320))
	speaker.Lock()
	c.mixer.Add(&effects.Volume{Streamer: tone, Base: 2, Volume: -3})
	speaker.Unlock()
}

func (c *clicker) close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.ready = false
}

// newClickTone is a sine tone with a fast exponential decay
func newClickTone(sr beep.SampleRate, freq float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			v := 0.3 * math.Sin(2*math.Pi*freq*t) * math.Exp(-t*250)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
