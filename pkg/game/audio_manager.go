package game

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 播放一次性音效：每次播放创建新的播放器，同一音效可以重叠播放，不排队
//   - 播放循环背景音乐：同一时间只有一首
//   - 与设置联动：音量和开关从 SettingsManager 读取
//
// 没有音频上下文时（测试环境）所有播放请求返回 false，不会崩溃。
type AudioManager struct {
	resourceManager *ResourceManager // 资源管理器（提供解码后的音频数据）
	settingsManager *SettingsManager // 设置管理器（可为 nil）

	currentMusic       *audio.Player // 当前播放的背景音乐
	currentMusicID     string        // 当前背景音乐ID
	currentTrackVolume float64       // 当前背景音乐的曲目音量（再乘以设置中的音乐音量）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（需已加载音频资源）
//   - sm: SettingsManager 实例（可为 nil，使用默认设置）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
	}
}

// PlaySound 播放音效（发后不管）
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_BURST"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.settings().SoundEnabled {
		return false
	}

	ctx := am.context()
	if ctx == nil {
		return false
	}
	data := am.resourceManager.GetSoundData(soundID)
	if data == nil {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}

	player := ctx.NewPlayerFromBytes(data)
	player.SetVolume(am.settings().SoundVolume)
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐
// 如果已经在播放同一首音乐，只更新音量
//
// 参数：
//   - musicID: 音乐资源ID（如 "SOUND_BGMUSIC"）
//   - trackVolume: 曲目音量 (0.0 ~ 1.0)，实际音量 = 曲目音量 × 设置中的音乐音量
//
// 返回：
//   - bool: 是否在播放
func (am *AudioManager) PlayMusic(musicID string, trackVolume float64) bool {
	am.currentTrackVolume = clampVolume(trackVolume)

	if am.currentMusicID == musicID && am.currentMusic != nil {
		am.applyMusicVolume()
		if am.settings().MusicEnabled && !am.currentMusic.IsPlaying() {
			am.currentMusic.Play()
		}
		return am.currentMusic.IsPlaying()
	}

	am.StopMusic()

	ctx := am.context()
	if ctx == nil {
		return false
	}
	data := am.resourceManager.GetSoundData(musicID)
	if data == nil {
		log.Printf("[AudioManager] Warning: Music not found: %s", musicID)
		return false
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create music player %s: %v", musicID, err)
		return false
	}

	am.currentMusic = player
	am.currentMusicID = musicID
	am.applyMusicVolume()

	if !am.settings().MusicEnabled {
		log.Printf("[AudioManager] Music %s loaded but disabled", musicID)
		return false
	}
	player.Play()
	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, am.musicVolume())
	return true
}

// StopMusic 停止并释放当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		if err := am.currentMusic.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close music player: %v", err)
		}
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// IsMusicPlaying 背景音乐是否正在播放
func (am *AudioManager) IsMusicPlaying() bool {
	return am.currentMusic != nil && am.currentMusic.IsPlaying()
}

// ToggleMusic 切换音乐开关，立即暂停或恢复当前背景音乐
//
// 返回：
//   - bool: 切换后音乐是否启用
func (am *AudioManager) ToggleMusic() bool {
	enabled := !am.settings().MusicEnabled
	if am.settingsManager != nil {
		am.settingsManager.SetMusicEnabled(enabled)
	}

	if am.currentMusic != nil {
		if enabled {
			am.currentMusic.Play()
		} else {
			am.currentMusic.Pause()
		}
	}
	log.Printf("[AudioManager] Music enabled: %v", enabled)
	return enabled
}

// ToggleSound 切换音效开关
//
// 返回：
//   - bool: 切换后音效是否启用
func (am *AudioManager) ToggleSound() bool {
	enabled := !am.settings().SoundEnabled
	if am.settingsManager != nil {
		am.settingsManager.SetSoundEnabled(enabled)
	}
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// SetMusicVolume 设置音乐音量，立即应用到当前背景音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	am.applyMusicVolume()
}

// SetSoundVolume 设置音效音量，影响之后播放的音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

func (am *AudioManager) applyMusicVolume() {
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.musicVolume())
	}
}

// musicVolume 实际音乐音量
func (am *AudioManager) musicVolume() float64 {
	return am.currentTrackVolume * am.settings().MusicVolume
}

func (am *AudioManager) settings() *GameSettings {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings()
	}
	return DefaultSettings()
}

func (am *AudioManager) context() *audio.Context {
	if am.resourceManager == nil {
		return nil
	}
	return am.resourceManager.AudioContext()
}
