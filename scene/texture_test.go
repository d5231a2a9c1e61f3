package scene

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// fakeGPU assigns sequential texture handles and records deletions.
type fakeGPU struct {
	nextHandle uint32
	uploadErr  error
	uploaded   []*TextureData
	deleted    []uint32
}

func (f *fakeGPU) UploadTexture(data *TextureData) (uint32, error) {
	if f.uploadErr != nil {
		return 0, f.uploadErr
	}
	f.nextHandle++
	f.uploaded = append(f.uploaded, data)
	return f.nextHandle, nil
}

func (f *fakeGPU) DeleteTexture(handle uint32) {
	f.deleted = append(f.deleted, handle)
}

func writeImageFile(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()

	if filepath.Ext(name) == ".jpg" {
		err = jpeg.Encode(f, img, nil)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return path
}

func TestDecodeTextureFileJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 180, G: 90, B: 45, A: 255})
		}
	}
	path := writeImageFile(t, "tex.jpg", img)

	data, err := DecodeTextureFile(path)
	if err != nil {
		t.Fatalf("DecodeTextureFile: %v", err)
	}
	if data.Channels != 3 {
		t.Errorf("Channels: expected 3, got %d", data.Channels)
	}
	if data.Width != 4 || data.Height != 2 {
		t.Errorf("Size: expected 4x2, got %dx%d", data.Width, data.Height)
	}
	if len(data.Pixels) != 4*2*3 {
		t.Errorf("Pixels: expected %d bytes, got %d", 4*2*3, len(data.Pixels))
	}
}

func TestDecodeTextureFilePNGAlpha(t *testing.T) {
	// 1x2 image with distinct rows to observe the vertical flip.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 10, B: 30, A: 255}) // top row
	img.SetNRGBA(0, 1, color.NRGBA{R: 5, G: 60, B: 90, A: 128})   // bottom row
	path := writeImageFile(t, "tex.png", img)

	data, err := DecodeTextureFile(path)
	if err != nil {
		t.Fatalf("DecodeTextureFile: %v", err)
	}
	if data.Channels != 4 {
		t.Fatalf("Channels: expected 4, got %d", data.Channels)
	}
	if len(data.Pixels) != 1*2*4 {
		t.Fatalf("Pixels: expected %d bytes, got %d", 1*2*4, len(data.Pixels))
	}

	// Bottom row must come first.
	bottom := [4]byte{data.Pixels[0], data.Pixels[1], data.Pixels[2], data.Pixels[3]}
	if bottom != [4]byte{5, 60, 90, 128} {
		t.Errorf("flip: expected bottom row first (5,60,90,128), got %v", bottom)
	}
	top := [4]byte{data.Pixels[4], data.Pixels[5], data.Pixels[6], data.Pixels[7]}
	if top != [4]byte{200, 10, 30, 255} {
		t.Errorf("flip: expected top row second (200,10,30,255), got %v", top)
	}
}

func TestDecodeTextureFileRejectsGrayscale(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writeImageFile(t, "gray.png", img)

	if _, err := DecodeTextureFile(path); err == nil {
		t.Error("DecodeTextureFile: expected error for grayscale image, got nil")
	}
}

func TestDecodeTextureFileMissing(t *testing.T) {
	if _, err := DecodeTextureFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("DecodeTextureFile: expected error for missing file, got nil")
	}
}

func TestTextureRegistrySlotsFollowLoadOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	path := writeImageFile(t, "tex.png", img)

	reg := NewTextureRegistry()
	gpu := &fakeGPU{}
	for _, ref := range StillLifeTexturePlan() {
		if err := reg.Load(gpu, path, ref.Tag); err != nil {
			t.Fatalf("Load %q: %v", ref.Tag, err)
		}
	}

	if reg.Count() != 10 {
		t.Fatalf("Count: expected 10, got %d", reg.Count())
	}
	if got := reg.SlotByTag("counter"); got != 0 {
		t.Errorf("SlotByTag(counter): expected 0, got %d", got)
	}
	if got := reg.SlotByTag("mug"); got != 9 {
		t.Errorf("SlotByTag(mug): expected 9, got %d", got)
	}
	if got := reg.HandleByTag("wall"); got != 2 {
		t.Errorf("HandleByTag(wall): expected 2, got %d", got)
	}
}

func TestTextureRegistryLookupIsCaseSensitive(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	path := writeImageFile(t, "tex.png", img)

	reg := NewTextureRegistry()
	gpu := &fakeGPU{}
	if err := reg.Load(gpu, path, "mug"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := reg.SlotByTag("Mug"); got != -1 {
		t.Errorf("SlotByTag(Mug): expected -1, got %d", got)
	}
	if got := reg.HandleByTag("MUG"); got != -1 {
		t.Errorf("HandleByTag(MUG): expected -1, got %d", got)
	}
	if got := reg.HandleByTag("granite"); got != -1 {
		t.Errorf("HandleByTag(granite): expected -1, got %d", got)
	}
}

func TestTextureRegistryFailedLoadLeavesNoEntry(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	grayPath := writeImageFile(t, "gray.png", gray)

	reg := NewTextureRegistry()
	gpu := &fakeGPU{}
	if err := reg.Load(gpu, grayPath, "gray"); err == nil {
		t.Fatal("Load: expected decode error, got nil")
	}
	if reg.Count() != 0 {
		t.Errorf("Count after failed decode: expected 0, got %d", reg.Count())
	}

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	path := writeImageFile(t, "tex.png", img)
	gpu.uploadErr = errors.New("out of texture memory")
	if err := reg.Load(gpu, path, "tex"); err == nil {
		t.Fatal("Load: expected upload error, got nil")
	}
	if reg.Count() != 0 {
		t.Errorf("Count after failed upload: expected 0, got %d", reg.Count())
	}
	if got := reg.SlotByTag("tex"); got != -1 {
		t.Errorf("SlotByTag(tex): expected -1, got %d", got)
	}
}

func TestTextureRegistryDestroyReleasesEachHandleOnce(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	path := writeImageFile(t, "tex.png", img)

	reg := NewTextureRegistry()
	gpu := &fakeGPU{}
	for _, tag := range []string{"a", "b", "c"} {
		if err := reg.Load(gpu, path, tag); err != nil {
			t.Fatalf("Load %q: %v", tag, err)
		}
	}

	reg.Destroy(gpu)

	if len(gpu.deleted) != 3 {
		t.Fatalf("deleted: expected 3 handles, got %d", len(gpu.deleted))
	}
	seen := map[uint32]int{}
	for _, h := range gpu.deleted {
		seen[h]++
	}
	for _, h := range []uint32{1, 2, 3} {
		if seen[h] != 1 {
			t.Errorf("handle %d: expected exactly 1 delete, got %d", h, seen[h])
		}
	}
	if reg.Count() != 0 {
		t.Errorf("Count after Destroy: expected 0, got %d", reg.Count())
	}

	// A second Destroy must not release anything again.
	reg.Destroy(gpu)
	if len(gpu.deleted) != 3 {
		t.Errorf("deleted after second Destroy: expected 3, got %d", len(gpu.deleted))
	}
}
