package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/island/config"
	"github.com/lixenwraith/island/constants"
	"github.com/lixenwraith/island/physics"
)

const sampleRate = beep.SampleRate(constants.SplashSampleRate)

// SplashPlayer turns drip impacts into sounds on a shared mixer
type SplashPlayer struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSplashPlayer creates a player; nothing is audible until Initialize
func NewSplashPlayer(cfg config.AudioConfig) *SplashPlayer {
	return &SplashPlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *SplashPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences all sounds
func (p *SplashPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; clearing the mixer ensures no audio artifacts
	p.initialized = false
}

// PlayImpacts queues one splash per impact, up to the per-frame cap
// Returns the number queued
func (p *SplashPlayer) PlayImpacts(impacts []physics.Impact) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(impacts) == 0 {
		return 0
	}

	n := 0
	for _, im := range impacts {
		if n == constants.SplashMaxPerFrame {
			break
		}
		s := CreateSplashSound(im.Speed, p.cfg.Volume, sampleRate)
		p.add(s)
		n++
	}
	return n
}

// add queues s under the speaker lock, which guards the mixer against the playback goroutine
func (p *SplashPlayer) add(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Pending returns the number of sounds still playing
func (p *SplashPlayer) Pending() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}
