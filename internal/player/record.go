package player

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pusewicz/tacticaltwo-game/internal/coro"
)

// Record is the persisted per-character state machine record. It is a plain
// value with no handles in it: copying it, writing it to storage, and
// restoring it verbatim reproduces forward execution, provided the clip
// player's own position is restored to match (see the save package).
type Record struct {
	Current  State
	Previous State
	Elapsed  float32    // Seconds in the current state; reset on transition
	Resume   coro.Point // Where the active handler continues next frame
}

// Spawn returns a fresh record: idle, never transitioned, handler not started.
func Spawn() Record {
	return Record{Current: StateIdle, Previous: StateIdle}
}

// Sanitize clamps a loaded record into its legal domain. An out-of-domain
// state or a negative elapsed marks the record untrustworthy: elapsed is
// clamped to zero and the resume point is forced fresh, so the handler for
// Current restarts from its top. A resume token the current handler does not
// define (a save from older code) is likewise forced fresh.
func (r *Record) Sanitize() {
	if !r.Current.Valid() || r.Elapsed < 0 {
		r.Elapsed = 0
		r.Resume.Reset()
	}
	if !r.Previous.Valid() {
		r.Previous = r.Current
	}
	if !r.Resume.Valid(lastPoint(r.Current)) {
		r.Resume.Reset()
	}
}

// Binary layout: version byte, then the four fields in fixed order.
const (
	recordVersion = 1
	recordSize    = 11 // version + current + previous + elapsed(4) + resume(4)
)

// MarshalBinary encodes the record in its versioned flat layout:
// version uint8, current uint8, previous uint8, elapsed float32 LE,
// resume int32 LE.
func (r Record) MarshalBinary() ([]byte, error) {
	buf := make([]byte, recordSize)
	buf[0] = recordVersion
	buf[1] = byte(r.Current)
	buf[2] = byte(r.Previous)
	binary.LittleEndian.PutUint32(buf[3:], math.Float32bits(r.Elapsed))
	binary.LittleEndian.PutUint32(buf[7:], uint32(r.Resume))
	return buf, nil
}

// UnmarshalBinary decodes and sanitizes a persisted record. Anomalies inside
// a structurally valid record are repaired, not rejected: a malformed field
// costs at most a restarted handler, never a failed load.
func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) != recordSize {
		return fmt.Errorf("record: got %d bytes, want %d", len(data), recordSize)
	}
	if data[0] != recordVersion {
		return fmt.Errorf("record: unsupported version %d", data[0])
	}

	r.Current = State(data[1])
	r.Previous = State(data[2])
	r.Elapsed = math.Float32frombits(binary.LittleEndian.Uint32(data[3:]))
	r.Resume = coro.Point(int32(binary.LittleEndian.Uint32(data[7:])))

	r.Sanitize()
	return nil
}
