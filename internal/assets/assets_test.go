package assets

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/meteorfall/internal/core"
)

type countingOutput struct {
	played int
}

func (o *countingOutput) Play(s beep.Streamer) {
	o.played++
}

func TestLoadDefaultPack(t *testing.T) {
	pack, err := Load(context.Background(), DefaultFS(), nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	for _, id := range []string{"player", "meteor", "life"} {
		if _, err := pack.Sprite(id); err != nil {
			t.Errorf("Sprite(%q) failed: %v", id, err)
		}
	}

	meteor, _ := pack.Sprite("meteor")
	w, h := meteor.Size()
	if w != 3 || h != 2 {
		t.Errorf("meteor size = %dx%d, expected 3x2", w, h)
	}
	if r, c := meteor.At(1, 0); r != '@' || c != core.ColorOrange {
		t.Errorf("meteor At(1, 0) = %q/%d", r, c)
	}

	hit, err := pack.Sound("hit")
	if err != nil {
		t.Fatalf("Sound(hit) failed: %v", err)
	}
	if hit.Len() != SampleRate.N(90*time.Millisecond) {
		t.Errorf("hit sound has %d samples", hit.Len())
	}
}

func TestSoundPlay(t *testing.T) {
	out := &countingOutput{}
	s, err := synthesize("beep", SoundSpec{Frequency: 440, DurationMs: 10}, out)
	if err != nil {
		t.Fatalf("synthesize() failed: %v", err)
	}

	s.Play()
	s.Play()
	if s.Plays() != 2 || out.played != 2 {
		t.Errorf("plays = %d, output got %d, expected 2", s.Plays(), out.played)
	}

	silent, _ := synthesize("quiet", SoundSpec{Frequency: 440, DurationMs: 10}, nil)
	silent.Play()
	if silent.Plays() != 1 {
		t.Error("silent sound should still count plays")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	fsys := fstest.MapFS{
		ManifestFile: &fstest.MapFile{Data: []byte("sprites:\n  ghost:\n    file: missing.txt\n")},
	}

	if _, err := Load(context.Background(), fsys, nil); err == nil {
		t.Fatal("expected an error for a missing sprite file")
	}
}

func TestLoadInvalidSoundFails(t *testing.T) {
	fsys := fstest.MapFS{
		ManifestFile: &fstest.MapFile{Data: []byte("sounds:\n  broken:\n    frequency: 0\n")},
	}

	if _, err := Load(context.Background(), fsys, nil); err == nil {
		t.Fatal("expected an error for an invalid sound")
	}
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, DefaultFS(), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() with cancelled context = %v, expected context.Canceled", err)
	}
}

func TestPackNotFound(t *testing.T) {
	pack, err := Load(context.Background(), DefaultFS(), nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, err := pack.Sprite("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Sprite(nope) = %v, expected ErrNotFound", err)
	}
	if _, err := pack.Sound("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Sound(nope) = %v, expected ErrNotFound", err)
	}
}

func TestSpriteShortRowsAreTransparent(t *testing.T) {
	s := NewSprite("x", []string{"abc", "d"}, core.ColorGreen)
	w, h := s.Size()
	if w != 3 || h != 2 {
		t.Fatalf("Size() = %dx%d, expected 3x2", w, h)
	}
	if r, _ := s.At(2, 1); r != ' ' {
		t.Errorf("At past a short row = %q, expected space", r)
	}
}
