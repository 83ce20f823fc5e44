package session

import (
	"fmt"

	"github.com/qzvr/vrinput/controller"
	"github.com/qzvr/vrinput/mapper"
)

// Game is a mapper.GameState driven by recorded frame flags.
type Game struct {
	Menu, Cinema, Intermission bool
}

func (g *Game) InLevel() bool    { return !g.Intermission }
func (g *Game) MenuActive() bool { return g.Menu }
func (g *Game) CinemaMode() bool { return g.Cinema }

// Player turns recorded frames into mapper frames, carrying each frame's
// snapshots over as the next frame's old state.
type Player struct {
	s       *Session
	game    *Game
	next    int
	prevDom controller.Snapshot
	prevOff controller.Snapshot
}

// NewPlayer returns a Player over s. Its Game must be the GameState handed
// to the mapper.
func NewPlayer(s *Session) *Player {
	return &Player{s: s, game: &Game{}}
}

// Game returns the recorded mode flags of the current frame.
func (p *Player) Game() *Game {
	return p.game
}

// Next decodes the next frame and updates the game flags. It returns false
// when the session is exhausted.
func (p *Player) Next() (*mapper.Frame, bool, error) {
	if p.next >= len(p.s.Frames) {
		return nil, false, nil
	}
	idx := p.next
	rec := p.s.Frames[idx]
	p.next++

	dom, domPose, err := rec.Dominant.decode()
	if err != nil {
		return nil, false, fmt.Errorf("frame %d dominant: %w", idx, err)
	}
	off, offPose, err := rec.Off.decode()
	if err != nil {
		return nil, false, fmt.Errorf("frame %d off: %w", idx, err)
	}
	headPos, err := vec3(rec.Head.Position)
	if err != nil {
		return nil, false, fmt.Errorf("frame %d head position: %w", idx, err)
	}
	headDelta, err := vec3(rec.Head.Delta)
	if err != nil {
		return nil, false, fmt.Errorf("frame %d head delta: %w", idx, err)
	}

	f := &mapper.Frame{
		Dominant: mapper.Hand{Old: p.prevDom, New: dom, Pose: domPose},
		Off:      mapper.Hand{Old: p.prevOff, New: off, Pose: offPose},
		Buttons:  p.s.Mapping(),
		Head:     mapper.Head{Position: headPos, Yaw: rec.Head.Yaw, PositionDelta: headDelta},
		GameYaw:  rec.GameYaw,
	}
	p.prevDom, p.prevOff = dom, off
	*p.game = Game{Menu: rec.Menu, Cinema: rec.Cinema, Intermission: rec.Intermission}
	return f, true, nil
}

// Index returns the number of frames consumed so far.
func (p *Player) Index() int {
	return p.next
}
