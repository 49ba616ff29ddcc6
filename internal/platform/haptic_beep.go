package platform

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// ToneConfig describes the tone used in place of a vibration pulse.
type ToneConfig struct {
	SampleRate beep.SampleRate
	Frequency  float64
	Amplitude  float64
	// Volume is passed to effects.Volume with base 2; 0 leaves the level unchanged.
	Volume float64
}

// DefaultToneConfig returns a soft 440Hz tone.
func DefaultToneConfig() ToneConfig {
	return ToneConfig{
		SampleRate: beep.SampleRate(44100),
		Frequency:  440,
		Amplitude:  0.4,
		Volume:     0,
	}
}

// BeepNotifier plays a sine tone through the default speaker for each pulse.
type BeepNotifier struct {
	config  ToneConfig
	once    sync.Once
	initErr error
}

// NewBeepNotifier creates a notifier. The speaker is opened on the first pulse.
func NewBeepNotifier(config ToneConfig) *BeepNotifier {
	if config.SampleRate <= 0 {
		config.SampleRate = DefaultToneConfig().SampleRate
	}
	return &BeepNotifier{config: config}
}

// Pulse starts a tone of the given length and returns without waiting for it to finish.
func (notifier *BeepNotifier) Pulse(duration time.Duration) error {
	notifier.once.Do(func() {
		notifier.initErr = speaker.Init(notifier.config.SampleRate, notifier.config.SampleRate.N(time.Second/10))
	})
	if notifier.initErr != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, notifier.initErr)
	}

	speaker.Play(notifier.streamer(duration))
	return nil
}

func (notifier *BeepNotifier) streamer(duration time.Duration) beep.Streamer {
	tone := beep.Take(notifier.config.SampleRate.N(duration), sineTone(notifier.config))
	return &effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   notifier.config.Volume,
	}
}

func sineTone(config ToneConfig) beep.Streamer {
	step := 2 * math.Pi * config.Frequency / float64(config.SampleRate)
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := math.Sin(step*float64(position)) * config.Amplitude
			samples[i][0] = value
			samples[i][1] = value
			position++
		}
		return len(samples), true
	})
}
