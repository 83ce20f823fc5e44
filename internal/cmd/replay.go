package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/qzvr/vrinput/event"
	"github.com/qzvr/vrinput/internal/log"
	"github.com/qzvr/vrinput/keys"
	"github.com/qzvr/vrinput/mapper"
	"github.com/qzvr/vrinput/session"
)

// Replay feeds a recorded session through the mapper and prints the
// resulting key events and motion.
type Replay struct {
	Session string    `arg:"" name:"session" type:"existingfile" help:"Recorded session file (json, yaml or toml)"`
	VR      VROptions `embed:"" prefix:"vr."`
	Held    bool      `help:"Print the held keys after every frame"`
	Motion  bool      `help:"Print motion output after every frame"`

	out io.Writer
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, frames log.FrameLogger) error {
	cfg := r.VR.MapperConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := session.Load(r.Session)
	if err != nil {
		return err
	}
	logger.Info("Replaying session", "file", r.Session, "frames", len(s.Frames))

	out := r.out
	if out == nil {
		out = os.Stdout
	}
	return r.replay(s, cfg, out, logger, frames)
}

func (r *Replay) replay(s *session.Session, cfg mapper.Config, out io.Writer, logger *slog.Logger, frames log.FrameLogger) error {
	player := session.NewPlayer(s)
	var q event.Queue
	st := mapper.NewState()
	m := mapper.New(cfg, player.Game(), &q, logger)

	for {
		f, ok, err := player.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		idx := uint64(player.Index() - 1)
		if b, err := f.Dominant.New.MarshalBinary(); err == nil {
			frames.Log(idx, "dominant", b)
		}
		if b, err := f.Off.New.MarshalBinary(); err == nil {
			frames.Log(idx, "off", b)
		}

		m.Handle(st, f)
		held := q.Held()
		if b, err := held.MarshalBinary(); err == nil {
			frames.Log(idx, "held", b)
		}
		if err := r.printFrame(out, idx, q.Drain(), held, st); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	logger.Debug("Replay finished", "snapTurn", st.SnapTurn, "stabilised", st.WeaponStabilised)
	return nil
}

func (r *Replay) printFrame(out io.Writer, idx uint64, evs []event.Event, held keys.State, st *mapper.State) error {
	parts := make([]string, 0, len(evs))
	for _, ev := range evs {
		parts = append(parts, ev.String())
	}
	line := fmt.Sprintf("frame %d: %s", idx, strings.Join(parts, " "))
	if r.Held {
		var names []string
		for _, k := range held.Held() {
			names = append(names, k.String())
		}
		line += fmt.Sprintf(" held=[%s]", strings.Join(names, " "))
	}
	if r.Motion {
		mo := st.Motion
		line += fmt.Sprintf(" snap=%.1f move=(%.3f,%.3f) aim=(%.1f,%.1f,%.1f) stabilised=%t",
			st.SnapTurn,
			mo.RemoteSideways, mo.RemoteForward,
			mo.WeaponAngles.Pitch, mo.WeaponAngles.Yaw, mo.WeaponAngles.Roll,
			st.WeaponStabilised)
		if mo.Teleport {
			line += " teleport"
		}
	}
	_, err := fmt.Fprintln(out, strings.TrimRight(line, " "))
	return err
}
