package game

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理点火/拒绝两个提示音的播放
//   - 音效在首次播放时用代码合成 PCM，不依赖二进制资源
//
// 设计原则：
//   - 中心化管理：所有音频播放都通过 AudioManager
//   - 可降级：没有音频上下文（无头测试）时所有播放调用安静地返回 false
type AudioManager struct {
	audioContext *audio.Context
	soundPlayers map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
	Enabled      bool                     // 关闭后 PlaySound 直接返回
}

// 支持的音效ID
const (
	// SoundFire 点火音效：短促的噪声爆裂
	SoundFire = "SOUND_FIRE"
	// SoundBuzzer 无效操作音效：低频蜂鸣（未到达目标时点火）
	SoundBuzzer = "SOUND_BUZZER"
)

// NewAudioManager 创建新的音频管理器
// ctx 可以为 nil（无头运行），此时播放调用全部为空操作
func NewAudioManager(ctx *audio.Context) *AudioManager {
	return &AudioManager{
		audioContext: ctx,
		soundPlayers: make(map[string]*audio.Player),
		Enabled:      true,
	}
}

// PlaySound 播放音效，返回是否成功触发播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.audioContext == nil || !am.Enabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] rewind %s 失败: %v", soundID, err)
		return false
	}
	player.Play()
	return true
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, ok := am.soundPlayers[soundID]; ok {
		return player
	}

	pcm := synthSound(soundID, am.audioContext.SampleRate())
	if pcm == nil {
		log.Printf("[AudioManager] 未知音效ID: %s", soundID)
		return nil
	}

	player, err := am.audioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		log.Printf("[AudioManager] 创建播放器失败 %s: %v", soundID, err)
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// synthSound 合成音效 PCM（16-bit LE 双声道，采样率跟随音频上下文）
func synthSound(soundID string, sampleRate int) []byte {
	switch soundID {
	case SoundFire:
		// 300ms 指数衰减噪声，近似爆裂声
		return synthPCM(sampleRate, 0.300, func(t, progress float64) float64 {
			noise := pseudoNoise(t * float64(sampleRate))
			return noise * math.Exp(-6*progress) * 0.45
		})
	case SoundBuzzer:
		// 180ms 110Hz 方波，低音量
		return synthPCM(sampleRate, 0.180, func(t, progress float64) float64 {
			if math.Mod(t*110, 1) < 0.5 {
				return 0.18
			}
			return -0.18
		})
	default:
		return nil
	}
}

// synthPCM 按波形函数生成 PCM 数据
// wave 的参数：t 为秒，progress 为 0-1 的进度；返回 [-1, 1] 振幅
func synthPCM(sampleRate int, durationSec float64, wave func(t, progress float64) float64) []byte {
	n := int(float64(sampleRate) * durationSec)
	buf := make([]byte, n*4) // 每采样 2 声道 x 2 字节
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := wave(t, float64(i)/float64(n))
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		sample := int16(v * math.MaxInt16)
		lo := byte(sample)
		hi := byte(sample >> 8)
		buf[i*4] = lo
		buf[i*4+1] = hi
		buf[i*4+2] = lo
		buf[i*4+3] = hi
	}
	return buf
}

// pseudoNoise 确定性伪噪声（避免引入随机源，重复播放听感一致）
func pseudoNoise(x float64) float64 {
	f := math.Sin(x) * 43758.5453
	f -= math.Floor(f)
	return 2*f - 1
}
