package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/runner/internal/domain/entity"
)

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		message string
	}{
		{"unsupported extension", "jump.ogg", "unsupported audio format"},
		{"no extension", "jump", "unsupported audio format"},
		{"broken mp3", "jump.mp3", "decode mp3"},
		{"broken wav", "JUMP.WAV", "decode wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := decode(44100, tt.file, []byte("not audio"))
			assert.Nil(t, s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestPlayer_SilentWithoutSounds(t *testing.T) {
	var nilPlayer *Player
	empty := &Player{}

	assert.NotPanics(t, func() {
		nilPlayer.PlayJump()
		nilPlayer.PlayMusic()
		empty.PlayJump()
		empty.PlayMusic()
	})
	assert.NoError(t, nilPlayer.Close())
	assert.NoError(t, empty.Close())
}

func TestPlayer_ImplementsSounds(t *testing.T) {
	var _ entity.Sounds = (*Player)(nil)
}
