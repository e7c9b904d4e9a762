// Package segment wraps gse for Chinese word segmentation.
package segment

import (
	"fmt"
	"sync"

	"github.com/go-ego/gse"
)

// The frequency for user-taught words. High enough that a taught word
// wins over the dictionary's own splits of the same characters.
const taughtWordFreq = 100.0

// Segmenter tokenizes Chinese text using the embedded simplified-Chinese
// dictionary. Safe for concurrent use; InsertWord takes the write lock.
type Segmenter struct {
	mu  sync.RWMutex
	seg gse.Segmenter
}

// New creates a Segmenter with the embedded dictionary loaded.
func New() (*Segmenter, error) {
	s := &Segmenter{}
	if err := s.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("load segmenter dictionary: %w", err)
	}
	return s, nil
}

// Segment splits text into tokens. Punctuation comes through as its own
// tokens; the caller decides what to do with it.
func (s *Segmenter) Segment(text string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seg.Cut(text, true)
}

// InsertWord adds a surface form to the dictionary so future calls keep
// it whole. Lost on restart; persistent vocabulary is re-taught at boot.
func (s *Segmenter) InsertWord(surfaceForm string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seg.AddToken(surfaceForm, taughtWordFreq) //nolint:errcheck
}
