// Package fonts provides the font faces used to measure and draw card text.
//
// The default set is built from the Go fonts bundled with golang.org/x/image,
// so rendering needs no system fonts. A custom TrueType or OpenType file can
// replace them for wider glyph coverage (the Go fonts have no emoji and only
// a subset of symbol glyphs).
package fonts

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/render/draw"
)

// DPI used for every face; at 72 DPI one point is one pixel.
const DPI = 72

// Set holds one parsed font per weight and caches sized faces.
//
// Faces returned by a Set are not safe for concurrent use. Callers serialize
// text drawing and measurement; the render dispatcher does this for all
// synchronous draws.
type Set struct {
	mu    sync.Mutex
	fonts [3]*opentype.Font
	faces map[draw.Font]font.Face
}

var (
	defaultSet  *Set
	defaultOnce sync.Once
)

// Default returns the shared set backed by the Go fonts.
func Default() *Set {
	defaultOnce.Do(func() {
		s, err := New(goregular.TTF, gomedium.TTF, gobold.TTF)
		if err != nil {
			panic("fonts: parse bundled Go fonts: " + err.Error())
		}
		defaultSet = s
	})
	return defaultSet
}

// New parses one font file per weight.
func New(regular, medium, bold []byte) (*Set, error) {
	s := &Set{faces: make(map[draw.Font]font.Face)}
	for i, data := range [][]byte{regular, medium, bold} {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s font", draw.Weight(i))
		}
		s.fonts[i] = f
	}
	return s, nil
}

// Load reads a single TrueType/OpenType file and uses it for every weight.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "font file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read font file %s", path)
	}
	return New(data, data, data)
}

// Face returns the face for f, creating it on first use.
func (s *Set) Face(f draw.Font) font.Face {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faceLocked(f)
}

func (s *Set) faceLocked(f draw.Font) font.Face {
	if face, ok := s.faces[f]; ok {
		return face
	}
	w := f.Weight
	if w < draw.Regular || w > draw.Bold {
		w = draw.Regular
	}
	face, err := opentype.NewFace(s.fonts[w], &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     DPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		// NewFace only fails on invalid options; size and DPI are always set.
		panic("fonts: new face: " + err.Error())
	}
	s.faces[f] = face
	return face
}

// Measure returns the advance width of text in pixels.
func (s *Set) Measure(f draw.Font, text string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	adv := font.MeasureString(s.faceLocked(f), text)
	return float64(adv) / 64
}

// Close releases all cached faces.
func (s *Set) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, face := range s.faces {
		_ = face.Close()
		delete(s.faces, k)
	}
	return nil
}
