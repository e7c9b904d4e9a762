package segment

import (
	"strings"
	"testing"
)

func TestSegmenter_Segment_CoversInput(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("new segmenter: %v", err)
	}

	text := "我喜欢猫。"
	tokens := s.Segment(text)

	if len(tokens) == 0 {
		t.Fatal("expected tokens")
	}
	// Concatenated tokens must reproduce the input; segmentation never
	// drops or invents characters.
	if got := strings.Join(tokens, ""); got != text {
		t.Errorf("joined tokens: got %q, want %q", got, text)
	}
}

func TestSegmenter_InsertWord_KeepsTaughtWordWhole(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("new segmenter: %v", err)
	}

	taught := "猫咪咪"
	s.InsertWord(taught)

	tokens := s.Segment("我的" + taught)
	found := false
	for _, tok := range tokens {
		if tok == taught {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("taught word split apart: %v", tokens)
	}
}
