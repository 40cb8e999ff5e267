package main

import (
	"github.com/Zachkp/portfolio/reveal"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type cellKind int

const (
	kindRevealed cellKind = iota
	kindPending
	kindCaret
)

// placed is one grapheme cluster positioned on screen
type placed struct {
	X, Y int
	Text string
	Kind cellKind
}

// snapshot is a frame that can be laid out at a given width
type snapshot interface {
	layout(width int) []placed
	done() bool
}

type runeSnapshot reveal.Frame

func (s runeSnapshot) layout(width int) []placed {
	fl := flow{width: width}
	for _, c := range s.Cells {
		kind := kindRevealed
		if !c.Revealed {
			kind = kindPending
		}
		fl.put(c.Display, kind)
	}
	return fl.out
}

func (s runeSnapshot) done() bool { return s.Done }

type typewriterSnapshot reveal.TypewriterFrame

func (s typewriterSnapshot) layout(width int) []placed {
	fl := flow{width: width}
	f := reveal.TypewriterFrame(s)
	for _, ch := range reveal.Split(f.Prefix()) {
		fl.put(ch, kindRevealed)
	}
	if f.Caret {
		fl.put(" ", kindCaret)
	}
	return fl.out
}

func (s typewriterSnapshot) done() bool { return s.State == reveal.Completed }

// flow places clusters left to right, wrapping at width
type flow struct {
	x, y  int
	width int
	out   []placed
}

func (fl *flow) put(text string, kind cellKind) {
	if uniseg.HasTrailingLineBreakInString(text) {
		fl.x = 0
		fl.y++
		return
	}
	w := clusterWidth(text)
	if fl.width > 0 && fl.x > 0 && fl.x+w > fl.width {
		fl.x = 0
		fl.y++
	}
	fl.out = append(fl.out, placed{X: fl.x, Y: fl.y, Text: text, Kind: kind})
	fl.x += w
}

// clusterWidth is the terminal width of a grapheme cluster, at least one cell
func clusterWidth(text string) int {
	if w := runewidth.StringWidth(text); w > 0 {
		return w
	}
	return 1
}
