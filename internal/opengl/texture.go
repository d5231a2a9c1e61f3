package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"still-life/scene"
)

// TextureBackend implements scene.TextureUploader and scene.TextureDeleter
// on the current GL context. Call from the main goroutine only.
type TextureBackend struct{}

// UploadTexture pushes decoded pixels to a new texture object. 3-channel
// data uploads as RGB8, 4-channel as RGBA8.
func (TextureBackend) UploadTexture(data *scene.TextureData) (uint32, error) {
	if data == nil || len(data.Pixels) == 0 {
		return 0, fmt.Errorf("texture has no pixel data")
	}

	var internalFormat int32
	var format uint32
	switch data.Channels {
	case 3:
		internalFormat = gl.RGB8
		format = gl.RGB
	case 4:
		internalFormat = gl.RGBA8
		format = gl.RGBA
	default:
		return 0, fmt.Errorf("texture %q: unsupported channel count %d", data.Name, data.Channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if data.Channels == 3 {
		// RGB rows are not 4-byte aligned at odd widths.
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	}
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(data.Width),
		int32(data.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&data.Pixels[0]),
	)
	if data.Channels == 3 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

// DeleteTexture frees a previously uploaded texture object.
func (TextureBackend) DeleteTexture(handle uint32) {
	gl.DeleteTextures(1, &handle)
}

// BindTextureUnit binds the texture handle to the given texture unit.
func BindTextureUnit(slot int32, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + slot))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}
