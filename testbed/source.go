package testbed

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/testbed2d/core"
)

type tick uint8

const (
	tickUpdate tick = iota + 1
	tickRender
)

// TcellSource turns screen input and two tickers into frame loop events
// Tickers only post interrupts into the screen queue; all consumers run on the
// goroutine calling Next
type TcellSource struct {
	screen         tcell.Screen
	updateInterval time.Duration
	renderInterval time.Duration

	stop    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
	pressed bool
}

// NewTcellSource creates a source over an initialized screen
func NewTcellSource(screen tcell.Screen, updateInterval, renderInterval time.Duration) *TcellSource {
	return &TcellSource{
		screen:         screen,
		updateInterval: updateInterval,
		renderInterval: renderInterval,
		stop:           make(chan struct{}),
	}
}

// Start launches the tickers
func (s *TcellSource) Start() {
	s.wg.Add(2)
	core.Go(func() { s.run(s.updateInterval, tickUpdate) })
	core.Go(func() { s.run(s.renderInterval, tickRender) })
}

// Stop halts the tickers; safe to call more than once
func (s *TcellSource) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})
	s.wg.Wait()
}

func (s *TcellSource) run(interval time.Duration, kind tick) {
	defer s.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			// Full queue drops the tick
			_ = s.screen.PostEvent(tcell.NewEventInterrupt(kind))
		}
	}
}

// Next blocks for the next event
// Quit keys (q, Esc, Ctrl+C) and a finalized screen end the stream
func (s *TcellSource) Next() (Event, bool) {
	ev := s.screen.PollEvent()
	if ev == nil {
		return Event{}, false
	}

	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		switch ev.Data() {
		case tickUpdate:
			return Event{Kind: EventUpdate}, true
		case tickRender:
			return Event{Kind: EventRender}, true
		}

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			s.Stop()
			return Event{}, false
		}
		return Event{Kind: EventKey, Key: ev.Key(), Rune: ev.Rune()}, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed == s.pressed {
			// Motion without a button change
			return Event{Kind: EventOther}, true
		}
		s.pressed = pressed
		return Event{Kind: EventMouse, X: x, Y: y, Pressed: pressed}, true

	case *tcell.EventResize:
		cols, rows := ev.Size()
		return Event{Kind: EventResize, X: cols, Y: rows}, true
	}

	return Event{Kind: EventOther}, true
}
