package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// buildAU assembles an AU file with the standard 24-byte header.
func buildAU(encoding, sampleRate, channels uint32, payload []byte) []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{auMagic, 24, uint32(len(payload)), encoding, sampleRate, channels} {
		binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(payload)
	return buf.Bytes()
}

func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return data
}

func TestDecodeAU_MuLawMono(t *testing.T) {
	// 0x00 → -32124, 0x80 → 32124, 0xff → 0
	d, err := DecodeAU(bytes.NewReader(buildAU(auEncodingULaw, 8000, 1, []byte{0x00, 0x80, 0xff})))
	if err != nil {
		t.Fatalf("DecodeAU failed: %v", err)
	}

	if d.SampleRate() != 8000 || d.Channels() != 1 {
		t.Errorf("unexpected format: %d Hz, %d channels", d.SampleRate(), d.Channels())
	}
	if d.Length() != 3*4 {
		t.Fatalf("expected 3 stereo frames (12 bytes), got %d", d.Length())
	}

	pcm := readAll(t, d)
	want := []int16{-32124, -32124, 32124, 32124, 0, 0}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestDecodeAU_PCM16Stereo(t *testing.T) {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint16(payload[0:], uint16(1000))
	binary.BigEndian.PutUint16(payload[2:], uint16(0xFC18)) // -1000
	binary.BigEndian.PutUint16(payload[4:], uint16(2))
	binary.BigEndian.PutUint16(payload[6:], uint16(3))

	d, err := DecodeAU(bytes.NewReader(buildAU(auEncodingPCM16, 44100, 2, payload)))
	if err != nil {
		t.Fatalf("DecodeAU failed: %v", err)
	}

	pcm := readAll(t, d)
	want := []int16{1000, -1000, 2, 3}
	if len(pcm) != len(want)*2 {
		t.Fatalf("expected %d bytes, got %d", len(want)*2, len(pcm))
	}
	for i, w := range want {
		if got := int16(binary.LittleEndian.Uint16(pcm[i*2:])); got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestDecodeAU_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte{0x2e, 0x73}},
		{"bad magic", append([]byte("RIFF"), buildAU(auEncodingULaw, 8000, 1, []byte{1})[4:]...)},
		{"unsupported encoding", buildAU(27, 8000, 1, []byte{1, 2})},
		{"too many channels", buildAU(auEncodingULaw, 8000, 6, []byte{1})},
		{"zero sample rate", buildAU(auEncodingULaw, 0, 1, []byte{1})},
		{"no payload", buildAU(auEncodingULaw, 8000, 1, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeAU(bytes.NewReader(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestAUDecoderSeek(t *testing.T) {
	d, err := DecodeAU(bytes.NewReader(buildAU(auEncodingULaw, 8000, 1, []byte{0x00, 0x80, 0xff, 0x7f})))
	if err != nil {
		t.Fatalf("DecodeAU failed: %v", err)
	}

	if pos, err := d.Seek(-4, io.SeekEnd); err != nil || pos != d.Length()-4 {
		t.Errorf("Seek(-4, End) = (%d, %v)", pos, err)
	}
	if n := len(readAll(t, d)); n != 4 {
		t.Errorf("expected 4 bytes after seeking to the last frame, got %d", n)
	}

	if _, err := d.Seek(-1, io.SeekStart); err == nil {
		t.Error("expected error for negative position")
	}
	if _, err := d.Seek(0, 42); err == nil {
		t.Error("expected error for invalid whence")
	}
}

func TestDecodeWithSampleRate_SameRate(t *testing.T) {
	s, err := DecodeWithSampleRate(8000, bytes.NewReader(buildAU(auEncodingULaw, 8000, 1, []byte{0x00, 0x80})))
	if err != nil {
		t.Fatalf("DecodeWithSampleRate failed: %v", err)
	}
	if _, ok := s.(*AUDecoder); !ok {
		t.Errorf("expected the decoder itself when no resampling is needed, got %T", s)
	}
}
