// Package session loads recorded controller sessions for offline replay
// through the mapper.
package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/qzvr/vrinput/controller"
	"github.com/qzvr/vrinput/mapper"
)

// HandRecord is one controller's state in a recorded frame.
type HandRecord struct {
	Buttons     []string  `json:"buttons,omitempty" yaml:"buttons,omitempty" toml:"buttons"`
	Stick       []float64 `json:"stick,omitempty" yaml:"stick,omitempty" toml:"stick"`
	Position    []float64 `json:"position,omitempty" yaml:"position,omitempty" toml:"position"`
	Orientation []float64 `json:"orientation,omitempty" yaml:"orientation,omitempty" toml:"orientation"` // w, x, y, z
}

// HeadRecord is the headset state in a recorded frame.
type HeadRecord struct {
	Position []float64 `json:"position,omitempty" yaml:"position,omitempty" toml:"position"`
	Yaw      float64   `json:"yaw" yaml:"yaw" toml:"yaw"`
	Delta    []float64 `json:"delta,omitempty" yaml:"delta,omitempty" toml:"delta"`
}

// FrameRecord is one recorded frame.
type FrameRecord struct {
	GameYaw      float64    `json:"gameYaw" yaml:"gameYaw" toml:"gameYaw"`
	Menu         bool       `json:"menu" yaml:"menu" toml:"menu"`
	Cinema       bool       `json:"cinema" yaml:"cinema" toml:"cinema"`
	Intermission bool       `json:"intermission" yaml:"intermission" toml:"intermission"`
	Head         HeadRecord `json:"head" yaml:"head" toml:"head"`
	Dominant     HandRecord `json:"dominant" yaml:"dominant" toml:"dominant"`
	Off          HandRecord `json:"off" yaml:"off" toml:"off"`
}

// Session is a recorded sequence of frames.
type Session struct {
	LeftHanded bool          `json:"leftHanded" yaml:"leftHanded" toml:"leftHanded"`
	Frames     []FrameRecord `json:"frames" yaml:"frames" toml:"frames"`
}

var ErrUnknownFormat = errors.New("unknown session format")

// Load reads a session file, picking the decoder from the file extension.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	s, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses a session in json, yaml/yml or toml format.
func Decode(r io.Reader, format string) (*Session, error) {
	var s Session
	switch format {
	case "json":
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &s, nil
}

// Mapping returns the face-button layout for the session's handedness.
func (s *Session) Mapping() mapper.ButtonMapping {
	if s.LeftHanded {
		return mapper.LeftHandedMapping
	}
	return mapper.RightHandedMapping
}

func vec2(v []float64) (mgl64.Vec2, error) {
	var out mgl64.Vec2
	if len(v) == 0 {
		return out, nil
	}
	if len(v) != 2 {
		return out, fmt.Errorf("expected 2 components, got %d", len(v))
	}
	copy(out[:], v)
	return out, nil
}

func vec3(v []float64) (mgl64.Vec3, error) {
	var out mgl64.Vec3
	if len(v) == 0 {
		return out, nil
	}
	if len(v) != 3 {
		return out, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	copy(out[:], v)
	return out, nil
}

func quat(v []float64) (mgl64.Quat, error) {
	if len(v) == 0 {
		return mgl64.QuatIdent(), nil
	}
	if len(v) != 4 {
		return mgl64.Quat{}, fmt.Errorf("expected 4 components, got %d", len(v))
	}
	return mgl64.Quat{W: v[0], V: mgl64.Vec3{v[1], v[2], v[3]}}.Normalize(), nil
}

func (h HandRecord) decode() (controller.Snapshot, controller.Pose, error) {
	var snap controller.Snapshot
	var pose controller.Pose
	var err error

	if snap.Buttons, err = controller.ParseButtons(h.Buttons); err != nil {
		return snap, pose, err
	}
	if snap.Joystick, err = vec2(h.Stick); err != nil {
		return snap, pose, fmt.Errorf("stick: %w", err)
	}
	if pose.Position, err = vec3(h.Position); err != nil {
		return snap, pose, fmt.Errorf("position: %w", err)
	}
	if pose.Orientation, err = quat(h.Orientation); err != nil {
		return snap, pose, fmt.Errorf("orientation: %w", err)
	}
	return snap, pose, nil
}
