package scene

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureData holds a decoded image ready for GPU upload. Pixels are packed
// row-major bottom-to-top (the GL texture origin the scene UVs were authored
// against), 3 bytes per pixel for RGB and 4 for RGBA.
type TextureData struct {
	Name     string
	Width    int
	Height   int
	Channels int
	Pixels   []byte
}

// DecodeTextureFile reads an image file and returns its pixels as RGB or
// RGBA bytes. Images that decode to fewer than 3 channels are rejected.
func DecodeTextureFile(path string) (*TextureData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("texture %q: unsupported channel count %d", path, channels)
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	pixels := make([]byte, 0, w*h*channels)
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if channels == 3 {
				pixels = append(pixels, c.R, c.G, c.B)
			} else {
				pixels = append(pixels, c.R, c.G, c.B, c.A)
			}
		}
	}

	return &TextureData{
		Name:     path,
		Width:    w,
		Height:   h,
		Channels: channels,
		Pixels:   pixels,
	}, nil
}

// channelCount maps the decoded image type to a source channel count.
// Grayscale and alpha-only images report 1, opaque color images 3, and
// everything carrying (or convertible with) alpha reports 4.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	default:
		return 4
	}
}

// TextureUploader pushes decoded pixels to the GPU and returns the texture
// object handle. Implemented by the OpenGL backend; tests substitute fakes.
type TextureUploader interface {
	UploadTexture(data *TextureData) (uint32, error)
}

// TextureDeleter releases a GPU texture handle.
type TextureDeleter interface {
	DeleteTexture(handle uint32)
}

// TextureEntry records one loaded texture. Slot is the 0-based load-order
// index and doubles as the texture unit the handle is bound to.
type TextureEntry struct {
	Tag    string
	Handle int32
	Slot   int32
}

// TextureRegistry tracks loaded textures in load order and resolves draw
// tags to handles and sampler slots.
type TextureRegistry struct {
	entries []TextureEntry
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{}
}

// Load decodes the file, uploads it, and appends an entry under the given
// tag. A failed decode or upload leaves the registry untouched.
func (r *TextureRegistry) Load(up TextureUploader, path, tag string) error {
	data, err := DecodeTextureFile(path)
	if err != nil {
		return err
	}

	handle, err := up.UploadTexture(data)
	if err != nil {
		return fmt.Errorf("upload texture %q: %w", path, err)
	}

	r.entries = append(r.entries, TextureEntry{
		Tag:    tag,
		Handle: int32(handle),
		Slot:   int32(len(r.entries)),
	})
	return nil
}

// HandleByTag returns the texture object handle for the tag, or -1 if no
// entry matches. The scan is case-sensitive, first match wins.
func (r *TextureRegistry) HandleByTag(tag string) int32 {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Handle
		}
	}
	return -1
}

// SlotByTag returns the texture unit slot for the tag, or -1 if no entry
// matches.
func (r *TextureRegistry) SlotByTag(tag string) int32 {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Slot
		}
	}
	return -1
}

func (r *TextureRegistry) Count() int {
	return len(r.entries)
}

func (r *TextureRegistry) Entries() []TextureEntry {
	return r.entries
}

// Destroy releases every loaded handle exactly once and empties the
// registry.
func (r *TextureRegistry) Destroy(d TextureDeleter) {
	for _, e := range r.entries {
		d.DeleteTexture(uint32(e.Handle))
	}
	r.entries = nil
}
