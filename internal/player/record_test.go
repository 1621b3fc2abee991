package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pusewicz/tacticaltwo-game/internal/coro"
)

func TestRecordBinaryRoundTrip(t *testing.T) {
	original := Record{
		Current:  StateFiring,
		Previous: StateWalking,
		Elapsed:  0.75,
		Resume:   fireAwaitFinish,
	}

	blob, err := original.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, blob, recordSize)
	assert.Equal(t, byte(recordVersion), blob[0])

	var decoded Record
	require.NoError(t, decoded.UnmarshalBinary(blob))
	assert.Equal(t, original, decoded)
}

func TestRecordUnmarshalRejectsBadEnvelope(t *testing.T) {
	rec := Spawn()
	blob, err := rec.MarshalBinary()
	require.NoError(t, err)

	assert.Error(t, new(Record).UnmarshalBinary(blob[:recordSize-1]), "short buffer")
	assert.Error(t, new(Record).UnmarshalBinary(append(blob, 0)), "long buffer")

	blob[0] = 99
	assert.Error(t, new(Record).UnmarshalBinary(blob), "unknown version")
}

func TestRecordUnmarshalRepairsAnomalies(t *testing.T) {
	// A structurally valid record with hostile contents loads as a fresh
	// entry into its state instead of failing.
	hostile := Record{
		Current:  StateReloading,
		Previous: StateReloading,
		Elapsed:  -3,
		Resume:   reloadAwaitFinish,
	}
	blob, err := hostile.MarshalBinary()
	require.NoError(t, err)

	var decoded Record
	require.NoError(t, decoded.UnmarshalBinary(blob))
	assert.Equal(t, StateReloading, decoded.Current)
	assert.Equal(t, float32(0), decoded.Elapsed, "negative elapsed clamps to zero")
	assert.True(t, decoded.Resume.IsStart(), "anomalous record restarts its handler")
}

func TestSanitizeOutOfDomainState(t *testing.T) {
	rec := Record{
		Current:  State(200),
		Previous: State(201),
		Elapsed:  1.5,
		Resume:   coro.Point(7),
	}

	rec.Sanitize()

	assert.Equal(t, State(200), rec.Current, "state value is preserved for the dispatcher fallback")
	assert.Equal(t, rec.Current, rec.Previous)
	assert.Equal(t, float32(0), rec.Elapsed)
	assert.True(t, rec.Resume.IsStart())
}

func TestSanitizeStaleResumeToken(t *testing.T) {
	// A token from an older handler that defined more points than the
	// current one: falls back to a full restart of the sequence.
	rec := Record{
		Current:  StateFiring,
		Previous: StateFiring,
		Elapsed:  0.2,
		Resume:   coro.Point(57),
	}

	rec.Sanitize()

	assert.True(t, rec.Resume.IsStart(), "unrecognized token forces a reset")
	assert.Equal(t, float32(0.2), rec.Elapsed, "elapsed alone is not anomalous")
}

func TestSanitizeKeepsHealthyRecord(t *testing.T) {
	rec := Record{
		Current:  StateCrouchFiring,
		Previous: StateCrouching,
		Elapsed:  0.4,
		Resume:   crouchFireAwaitFinish,
	}
	before := rec

	rec.Sanitize()

	assert.Equal(t, before, rec, "a healthy record passes through untouched")
}
