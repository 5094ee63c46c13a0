package codec

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImagingCodec(t *testing.T) {
	c := NewImagingCodec()
	assert.Equal(t, DefaultJPEGQuality, c.jpegQuality)
	assert.False(t, c.autoOrient)

	c = NewImagingCodec(WithJPEGQuality(60), WithAutoOrientation(true))
	assert.Equal(t, 60, c.jpegQuality)
	assert.True(t, c.autoOrient)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.png")
	require.NoError(t, imaging.Save(imaging.New(12, 7, color.Black), valid))

	corrupt := filepath.Join(dir, "corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not an image"), 0o644))

	tests := []struct {
		name       string
		path       string
		wantErr    bool
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "success",
			path:       valid,
			wantWidth:  12,
			wantHeight: 7,
		},
		{
			name:    "missing file",
			path:    filepath.Join(dir, "missing.png"),
			wantErr: true,
		},
		{
			name:    "corrupt data",
			path:    corrupt,
			wantErr: true,
		},
	}

	c := NewImagingCodec()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := c.Load(context.Background(), tc.path)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, img)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantWidth, img.Bounds().Dx())
				assert.Equal(t, tc.wantHeight, img.Bounds().Dy())
			}
		})
	}
}

func TestSave(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr error
	}{
		{name: "png", file: "out.png"},
		{name: "jpeg", file: "out.jpg"},
		{name: "gif", file: "out.gif"},
		{name: "bmp", file: "out.bmp"},
		{name: "tiff", file: "out.tiff"},
		{name: "uppercase extension", file: "OUT.PNG"},
		{name: "unsupported extension", file: "out.xyz", wantErr: imaging.ErrUnsupportedFormat},
		{name: "no extension", file: "out", wantErr: imaging.ErrUnsupportedFormat},
	}

	img := imaging.New(8, 4, color.NRGBA{R: 255, A: 255})
	c := NewImagingCodec()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)

			err := c.Save(context.Background(), img, path)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)

				_, statErr := os.Stat(path)
				assert.True(t, os.IsNotExist(statErr))
				return
			}

			require.NoError(t, err)

			decoded, err := c.Load(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, 8, decoded.Bounds().Dx())
			assert.Equal(t, 4, decoded.Bounds().Dy())
		})
	}
}

func TestSaveMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.png")

	err := NewImagingCodec().Save(context.Background(), imaging.New(1, 1, color.White), path)
	assert.Error(t, err)
}
