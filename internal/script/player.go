package script

import (
	"sync"

	"inputhistory/gamepad"
)

// Player is a gamepad.Reader that returns one state per Read.
// After the last state it reads released, or starts over when Loop is set.
type Player struct {
	Loop bool

	mu     sync.Mutex
	states []gamepad.State
	pos    int
}

func NewPlayer(states []gamepad.State) *Player {
	return &Player{states: states}
}

func (p *Player) Read() gamepad.State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pos >= len(p.states) {
		if !p.Loop || len(p.states) == 0 {
			return gamepad.Released()
		}
		p.pos = 0
	}
	st := p.states[p.pos]
	p.pos++
	return st
}

// Len returns the number of states in one pass.
func (p *Player) Len() int { return len(p.states) }

// Done reports whether a non-looping player has run out of states.
func (p *Player) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.Loop && p.pos >= len(p.states)
}
