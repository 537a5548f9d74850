package opengl

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/go-gl/gl/v4.1-core/gl"

	// imaging registers jpeg, png, gif, bmp and tiff; add webp.
	_ "golang.org/x/image/webp"
)

// DecodeTexture reads an image file and returns it as NRGBA with its rows
// flipped so that the first row is the bottom of the image, matching GL's
// texture coordinate origin.
func DecodeTexture(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return imaging.FlipV(img), nil
}

// LoadTexture decodes path and uploads it as a mipmapped 2D texture with
// mirrored-repeat wrapping. The context must be current.
func LoadTexture(path string) (uint32, error) {
	img, err := DecodeTexture(path)
	if err != nil {
		return 0, err
	}
	b := img.Bounds()
	if b.Empty() {
		return 0, fmt.Errorf("decode texture %q: empty image", path)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// NRGBA rows are tightly packed, so the default unpack alignment of 4 holds.
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex, nil
}
