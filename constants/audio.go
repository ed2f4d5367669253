package constants

import "time"

// Splash sound shape
const (
	SplashSampleRate    = 48000
	SplashDuration      = 140 * time.Millisecond
	SplashAttack        = 4 * time.Millisecond
	SplashRelease       = 110 * time.Millisecond
	SplashNoiseDuration = 40 * time.Millisecond
	SplashNoiseRelease  = 36 * time.Millisecond

	// Pitch glides from start to end; faster drops start lower
	SplashStartFreq = 1400.0
	SplashEndFreq   = 420.0

	// Impact speed (sub-units per frame) that plays at full volume
	SplashReferenceSpeed = 20.0

	// Splashes queued per frame beyond this are dropped
	SplashMaxPerFrame = 4

	// Speaker buffer
	SpeakerBufferDuration = 100 * time.Millisecond
)
