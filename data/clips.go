package data

import "fmt"

// Clips returns the raw clip definitions from the embedded clips.ini.
func Clips() ([]byte, error) {
	content, err := dataFS.ReadFile("clips.ini")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded clips.ini: %w", err)
	}
	return content, nil
}

// MustClips returns the raw clip definitions, panicking on error.
// Use this for data that must be present for the game to function.
func MustClips() []byte {
	content, err := Clips()
	if err != nil {
		panic(err)
	}
	return content
}
