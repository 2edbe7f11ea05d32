package notify

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate beep.SampleRate = 44100

// silence is the gain an exponential fade ends on.
const silence = 0.001

func sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func triangle(phase float64) float64 {
	_, frac := math.Modf(phase)

	return 1 - 4*math.Abs(frac-0.5)
}

// voice is a single oscillator with a linear attack and an exponential fade.
// Times are in seconds from the start of the sound.
type voice struct {
	wave   func(phase float64) float64
	freq   float64
	peak   float64
	start  float64
	attack float64
	fade   float64
	stop   float64
}

func (v *voice) at(t float64) float64 {
	t -= v.start
	if t < 0 || t >= v.stop {
		return 0
	}

	var gain float64

	if t < v.attack {
		gain = v.peak * t / v.attack
	} else {
		gain = v.peak * math.Pow(silence/v.peak, (t-v.attack)/(v.fade-v.attack))
	}

	return gain * v.wave(v.freq*t)
}

// Sound is a synthesized notification sound.
type Sound struct {
	voices []voice
	length time.Duration
}

// Streamer renders the sound at sr.
func (s Sound) Streamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(s.length)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}

		for i := range samples {
			if pos >= total {
				break
			}

			t := sr.D(pos).Seconds()

			var v float64
			for j := range s.voices {
				v += s.voices[j].at(t)
			}

			samples[i][0], samples[i][1] = v, v

			pos++
			n++
		}

		return n, true
	})
}

// BellSound is a singing bowl struck at C5.
var BellSound = Sound{
	length: 4 * time.Second,
	voices: []voice{
		{wave: sine, freq: 523.25, peak: 0.6, attack: 0.05, fade: 3.5, stop: 4},
		{wave: sine, freq: 523.25 * 2.5, peak: 0.06, attack: 0.05, fade: 3.5, stop: 4},
	},
}

// EndSound is a rising A major arpeggio.
var EndSound = Sound{
	length: 1600 * time.Millisecond,
	voices: []voice{
		{wave: triangle, freq: 440, peak: 0.2, attack: 0.1, fade: 1, stop: 1.2},
		{wave: triangle, freq: 554.37, peak: 0.2, start: 0.2, attack: 0.1, fade: 1, stop: 1.2},
		{wave: triangle, freq: 659.25, peak: 0.2, start: 0.4, attack: 0.1, fade: 1, stop: 1.2},
	},
}

// Player plays sounds on the system speaker, which is initialised on first
// use.
type Player struct {
	once sync.Once
	err  error
}

// Play starts s and returns without waiting for it to finish.
func (p *Player) Play(s Sound) error {
	p.once.Do(func() {
		p.err = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})

	if p.err != nil {
		return p.err
	}

	speaker.Play(s.Streamer(sampleRate))

	return nil
}

// Close releases the speaker if it was initialised.
func (p *Player) Close() {
	p.once.Do(func() {
		p.err = errSpeakerClosed
	})

	if p.err == nil {
		speaker.Clear()
		speaker.Close()
	}
}
