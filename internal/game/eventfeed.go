package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	feedCapacity   = 48
	feedLineHeight = 14
	feedRecentRows = 3 // latest rows drawn with a highlight background
)

// FeedEvent is a single line in the on-screen event feed.
type FeedEvent struct {
	Round   int
	Team    int
	Message string
}

// EventFeed is a fixed-capacity ring buffer of battle events rendered in
// the side panel, newest at the bottom.
type EventFeed struct {
	events []FeedEvent
	head   int
	count  int
}

// NewEventFeed creates an empty feed.
func NewEventFeed() *EventFeed {
	return &EventFeed{events: make([]FeedEvent, feedCapacity)}
}

// Push appends an event, evicting the oldest once the buffer is full.
func (f *EventFeed) Push(round, team int, msg string) {
	f.events[f.head] = FeedEvent{Round: round, Team: team, Message: msg}
	f.head = (f.head + 1) % feedCapacity
	if f.count < feedCapacity {
		f.count++
	}
}

// Recent returns buffered events oldest first.
func (f *EventFeed) Recent() []FeedEvent {
	out := make([]FeedEvent, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedCapacity) % feedCapacity
		out[i] = f.events[idx]
	}
	return out
}

// Len reports how many events are buffered.
func (f *EventFeed) Len() int { return f.count }

// Draw renders the feed inside the side panel, bottom-anchored so the
// newest event sits just above panel bottom.
func (f *EventFeed) Draw(screen *ebiten.Image, face font.Face, x, top, width, bottom int) {
	vector.StrokeLine(screen, float32(x), float32(top), float32(x+width), float32(top), 1.0,
		color.RGBA{R: 60, G: 60, B: 72, A: 255}, false)
	text.Draw(screen, "EVENTS", face, x, top+14, color.RGBA{R: 160, G: 160, B: 176, A: 255})

	events := f.Recent()
	maxVisible := (bottom - top - 24) / feedLineHeight
	if maxVisible < 0 {
		maxVisible = 0
	}
	if len(events) > maxVisible {
		events = events[len(events)-maxVisible:]
	}

	teamDots := [2]color.RGBA{
		{R: 60, G: 120, B: 220, A: 255},
		{R: 220, G: 80, B: 60, A: 255},
	}
	dim := color.RGBA{R: 150, G: 150, B: 150, A: 255}

	y := top + 24
	for i, e := range events {
		isRecent := i >= len(events)-feedRecentRows
		if isRecent {
			vector.FillRect(screen, float32(x-2), float32(y-11), float32(width), feedLineHeight,
				color.RGBA{R: 30, G: 30, B: 40, A: 180}, false)
		}
		vector.FillRect(screen, float32(x), float32(y-8), 3, 6, teamDots[e.Team%2], false)
		col := color.Color(dim)
		if isRecent {
			col = color.White
		}
		text.Draw(screen, fmt.Sprintf("R%d %s", e.Round, e.Message), face, x+8, y, col)
		y += feedLineHeight
	}
}
