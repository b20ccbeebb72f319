package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

// SoundManager buffers sounds by key and plays them through one speaker mixer
// All methods are safe to call before Initialize or after Cleanup; playback is then a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     map[string]*beep.Buffer
	loops       map[string]*beep.Ctrl
	master      float64
	initialized bool
}

// NewSoundManager creates a manager with the given master volume in [0, 1]
func NewSoundManager(master float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		buffers: make(map[string]*beep.Buffer),
		loops:   make(map[string]*beep.Ctrl),
		master:  math.Max(0, math.Min(1, master)),
	}
}

// Initialize opens the speaker; safe to call repeatedly
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything; beep has no speaker close, so the mixer is cleared
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	for _, ctrl := range sm.loops {
		ctrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()
	clear(sm.loops)
	sm.initialized = false
}

// Register buffers a decoded stream under key, resampling to the output rate
func (sm *SoundManager) Register(key string, s beep.Streamer, format beep.Format) error {
	if s == nil {
		return fmt.Errorf("sound %q: nil stream", key)
	}
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, s)
	}
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("sound %q: %w", key, err)
	}
	if buf.Len() == 0 {
		return fmt.Errorf("sound %q: empty stream", key)
	}

	sm.mu.Lock()
	sm.buffers[key] = buf
	sm.mu.Unlock()
	return nil
}

// RegisterGenerated buffers the procedural recipe for key
func (sm *SoundManager) RegisterGenerated(key string) error {
	s := Generate(key)
	if s == nil {
		return fmt.Errorf("sound %q: no procedural recipe", key)
	}
	return sm.Register(key, s, Format)
}

// Has reports whether a sound is buffered under key
func (sm *SoundManager) Has(key string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.buffers[key]
	return ok
}

// Duration returns the buffered length of key, zero when absent
func (sm *SoundManager) Duration(key string) time.Duration {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if buf, ok := sm.buffers[key]; ok {
		return Format.SampleRate.D(buf.Len())
	}
	return 0
}

// Play starts key at volume in [0, 1], scaled by the master volume
// A looping key already playing is not restarted; unknown keys are ignored
func (sm *SoundManager) Play(key string, volume float64, loop bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf, ok := sm.buffers[key]
	if !ok {
		log.Debug().Str("key", key).Msg("play: sound not loaded")
		return
	}
	if loop {
		if ctrl, ok := sm.loops[key]; ok && !ctrl.Paused {
			return
		}
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	s = newVolume(s, volume*sm.master)

	speaker.Lock()
	if loop {
		ctrl := &beep.Ctrl{Streamer: s}
		sm.loops[key] = ctrl
		sm.mixer.Add(ctrl)
	} else {
		sm.mixer.Add(s)
	}
	speaker.Unlock()
}

// Stop halts a looping sound started with Play
func (sm *SoundManager) Stop(key string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ctrl, ok := sm.loops[key]
	if !ok {
		return
	}
	if sm.initialized {
		speaker.Lock()
		ctrl.Paused = true
		speaker.Unlock()
	} else {
		ctrl.Paused = true
	}
	delete(sm.loops, key)
}

// Playing reports whether a looping sound is active under key
func (sm *SoundManager) Playing(key string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	ctrl, ok := sm.loops[key]
	return ok && !ctrl.Paused
}
