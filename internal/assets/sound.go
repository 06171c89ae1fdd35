package assets

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate sounds are synthesized at.
const SampleRate = beep.SampleRate(44100)

// Output receives streamers to play.
type Output interface {
	Play(s beep.Streamer)
}

// Sound is a pre-rendered sound effect.
type Sound struct {
	id    string
	buf   *beep.Buffer
	out   Output
	mu    sync.Mutex
	plays int
}

// ID returns the manifest id of the sound.
func (s *Sound) ID() string { return s.id }

// Play starts the sound on the attached output. Without an output it only counts the play.
func (s *Sound) Play() {
	s.mu.Lock()
	s.plays++
	out := s.out
	s.mu.Unlock()

	if out == nil || s.buf == nil {
		return
	}
	out.Play(s.buf.Streamer(0, s.buf.Len()))
}

// Plays returns how many times Play was called.
func (s *Sound) Plays() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plays
}

// Len returns the number of rendered samples.
func (s *Sound) Len() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Len()
}

// synthesize renders a sine tone described by spec into a buffer.
func synthesize(id string, spec SoundSpec, out Output) (*Sound, error) {
	if spec.Frequency <= 0 || spec.DurationMs <= 0 {
		return nil, fmt.Errorf("assets: sound %q needs a positive frequency and duration", id)
	}
	tone, err := generators.SineTone(SampleRate, float64(spec.Frequency))
	if err != nil {
		return nil, fmt.Errorf("assets: sound %q: %w", id, err)
	}

	var streamer beep.Streamer = beep.Take(SampleRate.N(time.Duration(spec.DurationMs)*time.Millisecond), tone)
	if spec.Volume != 0 {
		streamer = &effects.Volume{Streamer: streamer, Base: 2, Volume: spec.Volume}
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(streamer)
	return &Sound{id: id, buf: buf, out: out}, nil
}

// SpeakerOutput plays sounds through the system audio device.
type SpeakerOutput struct {
	mixer *beep.Mixer
}

// NewSpeakerOutput initializes the speaker and starts an idle mixer on it.
func NewSpeakerOutput() (*SpeakerOutput, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("assets: cannot open audio device: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return &SpeakerOutput{mixer: mixer}, nil
}

// Play mixes s into the speaker output.
func (o *SpeakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the audio device.
func (o *SpeakerOutput) Close() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
