package prefabs

import (
	"fmt"

	"github.com/milk9111/phox/anim"
	"github.com/milk9111/phox/player"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	CameraFile = "camera.yaml"
	WorldFile  = "world.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name            string          `yaml:"name"`
	MoveSpeed       float64         `yaml:"move_speed"`
	JumpImpulse     float64         `yaml:"jump_impulse"`
	SpeedMultiplier float64         `yaml:"speed_multiplier"`
	JumpLimit       *int            `yaml:"jump_limit"`
	Collider        ColliderSpec    `yaml:"collider"`
	Sprite          SpriteSpec      `yaml:"sprite"`
	RenderLayer     RenderLayerSpec `yaml:"render_layer"`
	Animation       AnimationSpec   `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config converts the movement tunables, filling zero values with defaults.
func (s *PlayerSpec) Config() player.Config {
	cfg := player.DefaultConfig()
	if s == nil {
		return cfg
	}
	if s.MoveSpeed > 0 {
		cfg.MoveSpeed = s.MoveSpeed
	}
	if s.JumpImpulse > 0 {
		cfg.JumpImpulse = s.JumpImpulse
	}
	if s.SpeedMultiplier > 0 {
		cfg.SpeedMultiplier = s.SpeedMultiplier
	}
	if s.JumpLimit != nil && *s.JumpLimit >= 0 {
		cfg.JumpLimit = *s.JumpLimit
	}
	return cfg
}

type CameraSpec struct {
	Name    string  `yaml:"name"`
	AspectW float64 `yaml:"aspect_w"`
	AspectH float64 `yaml:"aspect_h"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// WorldSpec tunes the physics space shared by a level.
type WorldSpec struct {
	Name         string  `yaml:"name"`
	Gravity      float64 `yaml:"gravity"`
	Iterations   int     `yaml:"iterations"`
	TileFriction float64 `yaml:"tile_friction"`
	BoundsWalls  bool    `yaml:"bounds_walls"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type SpriteSpec struct {
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type AnimationSpec struct {
	Initial string              `yaml:"initial"`
	Clips   map[string]ClipSpec `yaml:"clips"`
}

type ClipSpec struct {
	Sheet         string  `yaml:"sheet"`
	Row           int     `yaml:"row"`
	ColStart      int     `yaml:"col_start"`
	FrameW        int     `yaml:"frame_w"`
	FrameH        int     `yaml:"frame_h"`
	FrameCount    int     `yaml:"frame_count"`
	FrameDuration float64 `yaml:"frame_duration"`
}

// Library builds the clip table. Unknown state names are an error; states
// without a clip are simply absent and surface later as missing clips.
func (s AnimationSpec) Library() (*anim.Library, error) {
	lib := anim.NewLibrary()
	for name, c := range s.Clips {
		state, err := anim.ParseState(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: animation: %w", err)
		}
		clip := anim.Clip{
			Sheet:         c.Sheet,
			Row:           c.Row,
			ColStart:      c.ColStart,
			FrameW:        c.FrameW,
			FrameH:        c.FrameH,
			FrameCount:    c.FrameCount,
			FrameDuration: c.FrameDuration,
		}
		if err := lib.Set(state, clip); err != nil {
			return nil, fmt.Errorf("prefabs: animation %s: %w", name, err)
		}
	}
	return lib, nil
}

// InitialState parses Initial, defaulting to idle.
func (s AnimationSpec) InitialState() (anim.State, error) {
	if s.Initial == "" {
		return anim.Idle, nil
	}
	return anim.ParseState(s.Initial)
}
