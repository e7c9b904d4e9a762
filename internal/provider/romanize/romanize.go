// Package romanize derives pinyin from Chinese text.
package romanize

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Romanizer converts a Chinese surface form to pinyin.
// The zero value is not usable; construct with New.
type Romanizer struct {
	args gopinyin.Args
}

// New creates a Romanizer producing plain syllables without tone
// marks (wo, hao), matching the form stored alongside words.
func New() *Romanizer {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Normal
	return &Romanizer{args: args}
}

// Romanize returns the pinyin of one word, syllables run together the
// way dictionaries print multi-character words (xihuan). Text without
// Han characters comes back unchanged.
func (r *Romanizer) Romanize(surfaceForm string) string {
	syllables := gopinyin.Pinyin(surfaceForm, r.args)
	if len(syllables) == 0 {
		return surfaceForm
	}

	var b strings.Builder
	for _, candidates := range syllables {
		if len(candidates) > 0 {
			b.WriteString(candidates[0])
		}
	}
	return b.String()
}
