//go:build !ci

// Package sound plays short effect clips for game events. Clips are
// loaded from assets/sounds at startup; a missing directory or clip is
// silently ignored so the game works without audio assets.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// 事件名，对应 assets/sounds 下的文件名（不含扩展名）
const (
	EventDeal     = "deal"
	EventPlay     = "play"
	EventBomb     = "bomb"
	EventLandlord = "landlord"
	EventWin      = "win"
	EventLose     = "lose"
)

const soundDir = "assets/sounds"

type Manager struct {
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewManager() *Manager {
	return &Manager{buffers: make(map[string]*beep.Buffer)}
}

func (m *Manager) Init() error {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("初始化音频设备失败: %w", err)
	}
	m.enabled = true

	entries, err := os.ReadDir(soundDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("读取音效目录失败: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}
		// 单个文件加载失败不影响其他音效
		_ = m.load(entry.Name(), ext, sampleRate)
	}
	return nil
}

func (m *Manager) load(name, ext string, sampleRate beep.SampleRate) error {
	f, err := os.Open(filepath.Clean(filepath.Join(soundDir, name)))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buffer.Append(resampled)
	m.buffers[strings.TrimSuffix(name, filepath.Ext(name))] = buffer
	return nil
}

// Play 播放指定事件的音效，未加载的事件静默跳过
func (m *Manager) Play(event string) {
	if !m.enabled {
		return
	}
	buffer, ok := m.buffers[event]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (m *Manager) Close() {
	m.enabled = false
}
