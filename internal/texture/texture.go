// Package texture decodes material texture files into images ready for GPU upload.
// Decoding is separate from upload so it runs (and is tested) without a GL context.
package texture

import (
	"errors"
	"fmt"
	"image"

	// extra formats for image.Decode, used by imgio.Open
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// DefaultMaxSize is the largest width or height kept by Decode; larger images are downscaled.
const DefaultMaxSize = 2048

// ErrNoDiffuse is returned by Load when a Set has no diffuse map.
var ErrNoDiffuse = errors.New("texture set has no diffuse map")

// Set names the texture files of one material. Only Diffuse is required.
type Set struct {
	Diffuse  string `yaml:"diffuse" json:"diffuse"`
	Specular string `yaml:"specular,omitempty" json:"specular,omitempty"`
	Normal   string `yaml:"normal,omitempty" json:"normal,omitempty"`
	AO       string `yaml:"ao,omitempty" json:"ao,omitempty"`
}

// Images holds the decoded maps of a Set. Slots whose file was not named are nil.
type Images struct {
	Diffuse  image.Image
	Specular image.Image
	Normal   image.Image
	AO       image.Image
}

// Decode opens the image at path, flips it vertically so row 0 is the bottom
// (OpenGL texture origin), and downscales it to fit maxSize×maxSize keeping the
// aspect ratio. maxSize <= 0 disables downscaling.
func Decode(path string, maxSize int) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("texture: %s: empty image", path)
	}
	var out image.Image = transform.FlipV(img)
	if w, h := fitSize(b.Dx(), b.Dy(), maxSize); w != b.Dx() || h != b.Dy() {
		out = transform.Resize(out, w, h, transform.Linear)
	}
	return out, nil
}

// Load decodes every named map in set.
func Load(set Set, maxSize int) (Images, error) {
	if set.Diffuse == "" {
		return Images{}, ErrNoDiffuse
	}
	var imgs Images
	slots := []struct {
		path string
		dst  *image.Image
	}{
		{set.Diffuse, &imgs.Diffuse},
		{set.Specular, &imgs.Specular},
		{set.Normal, &imgs.Normal},
		{set.AO, &imgs.AO},
	}
	for _, s := range slots {
		if s.path == "" {
			continue
		}
		img, err := Decode(s.path, maxSize)
		if err != nil {
			return Images{}, err
		}
		*s.dst = img
	}
	return imgs, nil
}

// fitSize scales (w, h) down to fit within max×max, keeping at least 1 pixel per side.
func fitSize(w, h, max int) (int, int) {
	if max <= 0 || (w <= max && h <= max) {
		return w, h
	}
	if w >= h {
		return max, clampMin1(h * max / w)
	}
	return clampMin1(w * max / h), max
}

func clampMin1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
