package anim

import (
	"fmt"

	"gopkg.in/ini.v1"
)

const defaultSpeed = 5

// LoadSet parses clip definitions from INI source. Each section is one clip:
//
//	[GunFire]
//	frames = 4
//	speed  = 3
//	glyph  = F
//	color  = #FFD700
//
// frames is required and must be positive; speed defaults to 5 ticks.
func LoadSet(source []byte) (*Set, error) {
	file, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse clip definitions: %w", err)
	}

	var clips []Clip
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		frames := section.Key("frames").MustInt(0)
		if frames <= 0 {
			return nil, fmt.Errorf("clip %s: frames must be positive, got %d", section.Name(), frames)
		}

		speed := section.Key("speed").MustInt(defaultSpeed)
		if speed <= 0 {
			return nil, fmt.Errorf("clip %s: speed must be positive, got %d", section.Name(), speed)
		}

		clips = append(clips, Clip{
			Name:   section.Name(),
			Frames: frames,
			Speed:  speed,
			Glyph:  section.Key("glyph").String(),
			Color:  section.Key("color").String(),
		})
	}

	if len(clips) == 0 {
		return nil, fmt.Errorf("no clips defined")
	}

	return NewSet(clips), nil
}

// MustLoadSet parses clip definitions, panicking on error.
// Use this for embedded data that must be present for the game to function.
func MustLoadSet(source []byte) *Set {
	set, err := LoadSet(source)
	if err != nil {
		panic(err)
	}
	return set
}
