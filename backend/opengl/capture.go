package opengl

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebuffer reads the lower-left width x height pixels of the current
// framebuffer, top row first.
func ReadFramebuffer(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	// GL's origin is bottom-left.
	return imaging.FlipV(img)
}
