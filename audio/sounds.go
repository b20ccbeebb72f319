package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/dead-arena/core"
)

// SampleRate is the output rate; decoded files are resampled to it
const SampleRate = beep.SampleRate(44100)

// Format is the in-memory format of every buffered sound
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// recipes build the procedural fallback for each sound key, unity gain
var recipes = map[string]func() beep.Streamer{
	core.SoundShootPistol: func() beep.Streamer {
		return newVolume(glide(900, 500, 70*time.Millisecond, WaveSquare), 0.35)
	},
	core.SoundShootShotgun: func() beep.Streamer {
		return beep.Mix(
			newVolume(NewEnvelope(NewOscillator(0, 180*time.Millisecond, WaveNoise, SampleRate),
				180*time.Millisecond, 2*time.Millisecond, 150*time.Millisecond, SampleRate), 0.5),
			newVolume(glide(160, 60, 180*time.Millisecond, WaveSine), 0.6),
		)
	},
	core.SoundShootRifle: func() beep.Streamer {
		return newVolume(glide(1400, 700, 45*time.Millisecond, WaveSaw), 0.3)
	},
	core.SoundEnemyHit: func() beep.Streamer {
		return newVolume(tone(220, 60*time.Millisecond, WaveSquare, 40*time.Millisecond), 0.3)
	},
	core.SoundEnemyDie: func() beep.Streamer {
		return beep.Mix(
			newVolume(NewEnvelope(NewOscillator(0, 300*time.Millisecond, WaveNoise, SampleRate),
				300*time.Millisecond, 2*time.Millisecond, 280*time.Millisecond, SampleRate), 0.3),
			newVolume(glide(180, 50, 300*time.Millisecond, WaveSine), 0.5),
		)
	},
	core.SoundPickup: func() beep.Streamer {
		// B5 then E6
		return beep.Seq(
			newVolume(tone(987.77, 80*time.Millisecond, WaveSquare, 30*time.Millisecond), 0.25),
			newVolume(tone(1318.51, 220*time.Millisecond, WaveSquare, 180*time.Millisecond), 0.25),
		)
	},
	core.SoundPlayerHurt: func() beep.Streamer {
		return newVolume(tone(110, 150*time.Millisecond, WaveSaw, 100*time.Millisecond), 0.5)
	},
	core.SoundWaveStart: func() beep.Streamer {
		return beep.Seq(
			newVolume(tone(440, 120*time.Millisecond, WaveSine, 60*time.Millisecond), 0.4),
			newVolume(tone(660, 120*time.Millisecond, WaveSine, 60*time.Millisecond), 0.4),
			newVolume(tone(880, 250*time.Millisecond, WaveSine, 200*time.Millisecond), 0.4),
		)
	},
	core.SoundGameOver: func() beep.Streamer {
		return beep.Seq(
			newVolume(tone(392, 250*time.Millisecond, WaveSaw, 100*time.Millisecond), 0.35),
			newVolume(tone(311.13, 250*time.Millisecond, WaveSaw, 100*time.Millisecond), 0.35),
			newVolume(tone(261.63, 600*time.Millisecond, WaveSaw, 500*time.Millisecond), 0.35),
		)
	},
	core.SoundMusic: musicLoop,
}

// musicLoop is one bar of kick and bass, 100 BPM, buffered and looped by the manager
func musicLoop() beep.Streamer {
	beat := 600 * time.Millisecond
	bass := []float64{55, 55, 65.41, 49}
	parts := make([]beep.Streamer, 0, len(bass))
	for _, f := range bass {
		parts = append(parts, beep.Mix(
			newVolume(glide(150, 45, 100*time.Millisecond, WaveSine), 0.6),
			newVolume(tone(f, beat, WaveSaw, beat/3), 0.15),
		))
	}
	return beep.Seq(parts...)
}

// Generate returns a fresh procedural streamer for key, nil for unknown keys
func Generate(key string) beep.Streamer {
	recipe, ok := recipes[key]
	if !ok {
		return nil
	}
	return recipe()
}

// Keys returns every key with a procedural recipe
func Keys() []string {
	keys := make([]string, 0, len(recipes))
	for k := range recipes {
		keys = append(keys, k)
	}
	return keys
}
