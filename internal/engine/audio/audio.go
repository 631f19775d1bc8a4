// Package audio plays the looping ambient soundtrack.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playback is requested before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager handles ambient playback. The speaker goroutine reads the
// streamers, so all state is guarded by mu.
type Manager struct {
	mu sync.RWMutex

	// State
	initialized bool
	sampleRate  beep.SampleRate

	// Ambient track
	source  beep.StreamSeekCloser
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	playing bool
	name    string

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	musicVolume  float64
	muted        bool
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		masterVolume: 1.0,
		musicVolume:  0.7,
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopInternal()
	if m.initialized {
		speaker.Close()
	}
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateVolume()
}

// SetMusicVolume sets the soundtrack volume (0.0 to 1.0).
func (m *Manager) SetMusicVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicVolume = clamp(vol, 0, 1)
	m.updateVolume()
}

// SetMuted silences output without losing the volume levels.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.updateVolume()
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// MusicVolume returns the soundtrack volume.
func (m *Manager) MusicVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.musicVolume
}

// Muted reports whether output is muted.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// effectiveVolume is the linear output level after mute.
func (m *Manager) effectiveVolume() float64 {
	if m.muted {
		return 0
	}
	return m.masterVolume * m.musicVolume
}

func (m *Manager) updateVolume() {
	if m.volume == nil {
		return
	}
	// Volume uses dB scale, convert from 0-1 to dB
	vol := m.effectiveVolume()
	m.volume.Silent = vol <= 0
	m.volume.Volume = volumeToDb(vol)
}

// volumeToDb converts a 0-1 volume to the exponent effects.Volume expects
// with Base 2: vol=1 -> 0, vol=0.5 -> -1.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return math.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PlayAmbient starts looping WAV data, replacing any current track.
func (m *Manager) PlayAmbient(data []byte, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}

	// Stop current track
	m.stopInternal()

	source, looped, err := decodeLoop(data, m.sampleRate)
	if err != nil {
		return err
	}

	m.ctrl = &beep.Ctrl{Streamer: looped, Paused: false}
	m.volume = &effects.Volume{
		Streamer: m.ctrl,
		Base:     2,
	}
	m.updateVolume()

	m.source = source
	m.name = name
	m.playing = true

	speaker.Play(m.volume)
	return nil
}

// decodeLoop decodes WAV data into an endless stream at the target rate.
func decodeLoop(data []byte, target beep.SampleRate) (beep.StreamSeekCloser, beep.Streamer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("decode wav: %w", err)
	}
	if streamer.Len() == 0 {
		streamer.Close()
		return nil, nil, fmt.Errorf("decode wav: no samples")
	}

	// Loop before resampling so the resampler never sees the end.
	var looped beep.Streamer = &loopStreamer{source: streamer}
	if format.SampleRate != target {
		looped = beep.Resample(4, format.SampleRate, target, looped)
	}
	return streamer, looped, nil
}

// Stop stops the soundtrack.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopInternal()
}

func (m *Manager) stopInternal() {
	if m.ctrl != nil {
		speaker.Lock()
		m.ctrl.Paused = true
		speaker.Unlock()
	}
	if m.initialized {
		speaker.Clear()
	}
	m.playing = false
	if m.source != nil {
		m.source.Close()
		m.source = nil
	}
	m.ctrl = nil
	m.volume = nil
	m.name = ""
}

// Pause pauses the soundtrack.
func (m *Manager) Pause() {
	m.setPaused(true)
}

// Resume resumes the paused soundtrack.
func (m *Manager) Resume() {
	m.setPaused(false)
}

func (m *Manager) setPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = paused
	speaker.Unlock()
	m.playing = !paused
}

// IsPlaying returns whether the soundtrack is currently playing.
func (m *Manager) IsPlaying() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.playing
}

// Track returns the name of the current soundtrack.
func (m *Manager) Track() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

// loopStreamer rewinds its source whenever the stream runs dry.
type loopStreamer struct {
	source beep.StreamSeeker
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	empty := 0
	for filled < len(samples) {
		n, ok := l.source.Stream(samples[filled:])
		filled += n
		if n > 0 {
			empty = 0
		}
		if !ok || n == 0 {
			empty++
			if empty > 1 {
				break
			}
			// Reset to beginning
			if err := l.source.Seek(0); err != nil {
				break
			}
		}
	}
	return filled, filled > 0
}

func (l *loopStreamer) Err() error {
	return l.source.Err()
}
