package classname

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// suffixLen is the number of random characters after the tag.
const suffixLen = 8

// Namer produces class tokens for elements.
type Namer interface {
	Token(tag string) string
}

// Sequential is implemented by namers whose tokens depend on the order of
// Token calls. Modules named by one must be compiled one at a time, in a
// fixed order, for the tokens to be reproducible.
type Sequential interface {
	Namer
	sequential()
}

// RandomNamer builds tokens of the form _<tag>_<8 lowercase hex chars>.
// The suffix is taken from a random UUID; it is a namespacing device and
// not meant to be unguessable.
type RandomNamer struct{}

// Token implements Namer.
func (RandomNamer) Token(tag string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix(tag) + hex[:suffixLen]
}

// SequenceNamer numbers tokens in call order. Output is reproducible across
// runs, which makes it suitable for tests and golden files.
type SequenceNamer struct {
	n atomic.Uint64
}

// Token implements Namer.
func (s *SequenceNamer) Token(tag string) string {
	return fmt.Sprintf("%s%0*d", prefix(tag), suffixLen, s.n.Add(1))
}

func (*SequenceNamer) sequential() {}

func prefix(tag string) string {
	return "_" + sanitizeTag(tag) + "_"
}

// sanitizeTag makes member (Menu.Item) and namespaced (svg:rect) tags usable
// inside a class selector.
func sanitizeTag(tag string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', ':':
			return '-'
		}
		return r
	}, tag)
}
