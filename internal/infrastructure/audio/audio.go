// Package audio plays the jump effect and the looping background music.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// stream is a decoded sound with a known length
type stream interface {
	io.ReadSeeker
	Length() int64
}

// decode picks a decoder by file extension
func decode(sampleRate int, name string, data []byte) (stream, error) {
	reader := bytes.NewReader(data)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("decode mp3 %q: %w", name, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", name, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format %q", name)
	}
}

// Player owns the game's sound players
type Player struct {
	ctx          *audio.Context
	jump         *audio.Player
	music        *audio.Player
	effectVolume float64
	musicVolume  float64
}

// NewPlayer creates a player. ebiten allows one audio context per process.
func NewPlayer(ctx *audio.Context, effectVolume, musicVolume float64) *Player {
	return &Player{
		ctx:          ctx,
		effectVolume: effectVolume,
		musicVolume:  musicVolume,
	}
}

// LoadJump decodes the jump effect
func (p *Player) LoadJump(name string, data []byte) error {
	s, err := decode(p.ctx.SampleRate(), name, data)
	if err != nil {
		return err
	}
	player, err := p.ctx.NewPlayer(s)
	if err != nil {
		return fmt.Errorf("jump player: %w", err)
	}
	player.SetVolume(p.effectVolume)
	p.jump = player
	return nil
}

// LoadMusic decodes the background track and loops it forever
func (p *Player) LoadMusic(name string, data []byte) error {
	s, err := decode(p.ctx.SampleRate(), name, data)
	if err != nil {
		return err
	}
	player, err := p.ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return fmt.Errorf("music player: %w", err)
	}
	player.SetVolume(p.musicVolume)
	p.music = player
	return nil
}

// PlayJump restarts the jump effect. It is silent when no effect is loaded.
func (p *Player) PlayJump() {
	if p == nil || p.jump == nil {
		return
	}
	_ = p.jump.Rewind()
	p.jump.Play()
}

// PlayMusic starts the background loop if it is not already playing
func (p *Player) PlayMusic() {
	if p == nil || p.music == nil || p.music.IsPlaying() {
		return
	}
	p.music.Play()
}

// Close releases the players
func (p *Player) Close() error {
	if p == nil {
		return nil
	}
	for _, player := range []*audio.Player{p.jump, p.music} {
		if player == nil {
			continue
		}
		if err := player.Close(); err != nil {
			return err
		}
	}
	return nil
}
