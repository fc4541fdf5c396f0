package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// minimal valid headers per format
var (
	jpegHead = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	pngHead  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	gifHead  = []byte("GIF89a")
)

func TestValidateImageBySniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		head     []byte
		wantErr  bool
	}{
		{"jpeg accepted", "photo.jpg", jpegHead, false},
		{"png accepted", "photo.png", pngHead, false},
		{"gif accepted", "anim.gif", gifHead, false},
		{"svg extension rejected", "image.svg", []byte("<svg></svg>"), true},
		{"html content rejected", "photo.png", []byte("<!DOCTYPE html><html>"), true},
		{"exe extension rejected", "malware.exe", jpegHead, true},
		{"uppercase extension accepted", "PHOTO.JPG", jpegHead, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateImageBySniff(tt.filename, tt.head)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWebPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fsPath string
		want   string
	}{
		{"relative upload path", "uploads/abc123.jpg", "/uploads/abc123.jpg"},
		{"thumbnail next to source", "uploads/abc123_thumb.jpg", "/uploads/abc123_thumb.jpg"},
		{"absolute server path stripped", "/srv/campusfound/uploads/abc123.png", "/uploads/abc123.png"},
		{"dot-prefixed upload dir", "./uploads/abc123.gif", "/uploads/abc123.gif"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, WebPath(tt.fsPath))
		})
	}
}
