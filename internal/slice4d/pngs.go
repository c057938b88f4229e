package slice4d

import (
	"image/png"
	"os"
	"path/filepath"
)

// SavePNG writes the frame as a lossless 8-bit PNG.
func SavePNG(f *Frame, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(out, f.Img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
