package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/dead-arena/audio"
	"github.com/lixenwraith/dead-arena/core"
)

var _ Provider = (*Loader)(nil)

// Loader reads PNG images and WAV sounds from a directory
// Sounds are buffered into the sound manager; a nil manager disables audio
type Loader struct {
	dir    string
	sounds *audio.SoundManager

	mu     sync.RWMutex
	images map[string]image.Image

	requested atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
}

// NewLoader creates a loader rooted at dir
func NewLoader(dir string, sounds *audio.SoundManager) *Loader {
	return &Loader{
		dir:    dir,
		sounds: sounds,
		images: make(map[string]image.Image),
	}
}

// LoadAll loads every manifest entry on a background goroutine
// Progress accounts for the whole manifest immediately
func (l *Loader) LoadAll(m Manifest) {
	l.requested.Add(int64(m.Len()))

	// Deterministic order keeps logs comparable between runs
	imageKeys := sortedKeys(m.Images)
	soundKeys := sortedKeys(m.Sounds)

	core.Go(func() {
		for _, k := range imageKeys {
			l.loadImage(k, m.Images[k])
		}
		for _, k := range soundKeys {
			l.loadSound(k, m.Sounds[k])
		}
		log.Info().
			Int64("loaded", l.completed.Load()-l.failed.Load()).
			Int64("failed", l.failed.Load()).
			Msg("assets loaded")
	})
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadImage synchronously loads a PNG; returns nil on failure
func (l *Loader) LoadImage(key, source string) image.Image {
	l.requested.Add(1)
	return l.loadImage(key, source)
}

func (l *Loader) loadImage(key, source string) image.Image {
	defer l.completed.Add(1)

	img, err := l.decodeImage(source)
	if err != nil {
		l.failed.Add(1)
		log.Warn().Err(err).Str("key", key).Msg("image unavailable, using primitive shape")
		return nil
	}

	l.mu.Lock()
	l.images[key] = img
	l.mu.Unlock()
	return img
}

func (l *Loader) decodeImage(source string) (image.Image, error) {
	f, err := os.Open(l.resolve(source))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	return img, nil
}

// LoadSound synchronously loads a WAV, falling back to the procedural recipe
func (l *Loader) LoadSound(key, source string) Sound {
	l.requested.Add(1)
	return l.loadSound(key, source)
}

func (l *Loader) loadSound(key, source string) Sound {
	defer l.completed.Add(1)

	snd := Sound{Key: key}
	if l.sounds == nil {
		return snd
	}

	err := l.decodeSound(key, source)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("sound file unavailable, generating")
		if genErr := l.sounds.RegisterGenerated(key); genErr != nil {
			l.failed.Add(1)
			log.Warn().Err(genErr).Str("key", key).Msg("sound unavailable")
			return snd
		}
		snd.Procedural = true
	}
	snd.Duration = l.sounds.Duration(key)
	return snd
}

func (l *Loader) decodeSound(key, source string) error {
	f, err := os.Open(l.resolve(source))
	if err != nil {
		return err
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", source, err)
	}
	defer stream.Close()

	return l.sounds.Register(key, stream, format)
}

func (l *Loader) resolve(source string) string {
	if filepath.IsAbs(source) || l.dir == "" {
		return source
	}
	return filepath.Join(l.dir, source)
}

func (l *Loader) Progress() float64 {
	req := l.requested.Load()
	if req == 0 {
		return 1
	}
	done := l.completed.Load()
	if done >= req {
		return 1
	}
	return float64(done) / float64(req)
}

// Failed returns the number of assets that could not be served at all
func (l *Loader) Failed() int {
	return int(l.failed.Load())
}

func (l *Loader) Image(key string) (image.Image, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[key]
	return img, ok
}

func (l *Loader) Play(key string, volume float64, loop bool) {
	if l.sounds != nil {
		l.sounds.Play(key, volume, loop)
	}
}

func (l *Loader) Stop(key string) {
	if l.sounds != nil {
		l.sounds.Stop(key)
	}
}
