package game

import (
	"testing"
)

func TestPlaySoundWithoutContext(t *testing.T) {
	// 无头运行（nil 音频上下文）：播放调用安静地返回 false
	am := NewAudioManager(nil)

	if am.PlaySound(SoundFire) {
		t.Error("PlaySound must be a no-op without an audio context")
	}
	if am.PlaySound(SoundBuzzer) {
		t.Error("PlaySound must be a no-op without an audio context")
	}
}

func TestSynthSoundPCMShape(t *testing.T) {
	const sampleRate = 48000

	tests := []struct {
		soundID     string
		durationSec float64
	}{
		{SoundFire, 0.300},
		{SoundBuzzer, 0.180},
	}

	for _, tt := range tests {
		t.Run(tt.soundID, func(t *testing.T) {
			pcm := synthSound(tt.soundID, sampleRate)
			if pcm == nil {
				t.Fatal("known sound ID must synthesize")
			}
			// 16-bit 双声道：每采样 4 字节
			want := int(sampleRate*tt.durationSec) * 4
			if len(pcm) != want {
				t.Errorf("pcm length = %d, want %d", len(pcm), want)
			}
		})
	}

	if synthSound("SOUND_UNKNOWN", sampleRate) != nil {
		t.Error("unknown sound ID must return nil")
	}
}

func TestPseudoNoiseRangeAndDeterminism(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.37
		v := pseudoNoise(x)
		if v < -1 || v > 1 {
			t.Fatalf("pseudoNoise(%v) = %v, out of [-1, 1]", x, v)
		}
		if v != pseudoNoise(x) {
			t.Fatalf("pseudoNoise must be deterministic")
		}
	}
}
