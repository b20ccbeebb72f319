package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/dead-arena/core"
)

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		sn, ok := s.Stream(buf)
		for i := 0; i < sn; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		n += sn
		if !ok {
			return n, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, SampleRate)
			n, peak := drain(osc)
			if n != SampleRate.N(100*time.Millisecond) {
				t.Errorf("expected %d samples, got %d", SampleRate.N(100*time.Millisecond), n)
			}
			if peak > 1.0 || peak == 0 {
				t.Errorf("peak out of range: %v", peak)
			}
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)

	total := SampleRate.N(d)
	out := make([][2]float64, total)
	got := 0
	for got < total {
		n, ok := env.Stream(out[got:])
		got += n
		if !ok {
			break
		}
	}
	if got != total {
		t.Fatalf("expected %d samples, got %d", total, got)
	}
	// Square at 0 Hz holds phase 0, so the raw signal is constant 1
	if out[0][0] != 0 {
		t.Errorf("attack must start silent, got %v", out[0][0])
	}
	if out[total/2][0] != 1 {
		t.Errorf("sustain must be unity, got %v", out[total/2][0])
	}
	if last := out[total-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("release must approach zero, got %v", last)
	}
}

func TestEnvelopeTruncatesLongerSource(t *testing.T) {
	env := NewEnvelope(NewOscillator(440, time.Second, WaveSine, SampleRate), 50*time.Millisecond, 0, 0, SampleRate)
	if n, _ := drain(env); n != SampleRate.N(50*time.Millisecond) {
		t.Errorf("envelope must cut the stream at its duration, got %d", n)
	}
}

func TestGenerateAllKeys(t *testing.T) {
	keys := []string{
		core.SoundShootPistol, core.SoundShootShotgun, core.SoundShootRifle,
		core.SoundEnemyHit, core.SoundEnemyDie, core.SoundPickup, core.SoundPlayerHurt,
		core.SoundWaveStart, core.SoundGameOver, core.SoundMusic,
	}
	if len(Keys()) != len(keys) {
		t.Errorf("expected %d recipes, got %d", len(keys), len(Keys()))
	}
	for _, k := range keys {
		s := Generate(k)
		if s == nil {
			t.Errorf("%s: missing recipe", k)
			continue
		}
		n, peak := drain(s)
		if n == 0 || peak == 0 {
			t.Errorf("%s: silent or empty (n=%d peak=%v)", k, n, peak)
		}
		if n > SampleRate.N(3*time.Second) {
			t.Errorf("%s: unexpectedly long (%d samples)", k, n)
		}
	}
	if Generate("kazoo") != nil {
		t.Error("unknown key must have no recipe")
	}
}

func TestRegisterWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(0.8)
	if err := sm.RegisterGenerated(core.SoundPickup); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !sm.Has(core.SoundPickup) {
		t.Fatal("sound should be buffered")
	}
	want := SampleRate.D(SampleRate.N(80*time.Millisecond) + SampleRate.N(220*time.Millisecond))
	if got := sm.Duration(core.SoundPickup); got != want {
		t.Errorf("expected duration %v, got %v", want, got)
	}
	if err := sm.RegisterGenerated("kazoo"); err == nil {
		t.Error("unknown recipe should fail")
	}
	if err := sm.Register("nil", nil, Format); err == nil {
		t.Error("nil stream should fail")
	}
}

func TestRegisterResamples(t *testing.T) {
	sm := NewSoundManager(1)
	src := beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}
	osc := NewOscillator(440, time.Second, WaveSine, src.SampleRate)
	if err := sm.Register("tone", osc, src); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	got := sm.Duration("tone")
	if got < 990*time.Millisecond || got > 1010*time.Millisecond {
		t.Errorf("resampled sound should last about 1s, got %v", got)
	}
}

// Playback without an initialized speaker must be a silent no-op
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(1)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	_ = sm.RegisterGenerated(core.SoundMusic)
	sm.Play(core.SoundMusic, 0.5, true)
	sm.Play("missing", 1, false)
	if sm.Playing(core.SoundMusic) {
		t.Error("nothing can play before Initialize")
	}
	sm.Stop(core.SoundMusic)
	sm.Cleanup()
}
