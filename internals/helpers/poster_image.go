package helper

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	posterThumbWidth  = 480
	posterMaxBytes    = 2 << 20 // 2MB decoded
	webpThumbQuality  = 80
	dataURLWebpPrefix = "data:image/webp;base64,"
)

// DecodePosterDataURL parses a "data:image/...;base64,..." payload as sent by
// the dashboard form and returns the decoded image.
func DecodePosterDataURL(dataURL string) (image.Image, error) {
	idx := strings.Index(dataURL, ";base64,")
	if !strings.HasPrefix(dataURL, "data:image/") || idx < 0 {
		return nil, fmt.Errorf("not an image data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("invalid base64 poster payload: %w", err)
	}
	if len(raw) > posterMaxBytes {
		return nil, fmt.Errorf("poster image exceeds %d bytes", posterMaxBytes)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("cannot decode poster image: %w", err)
	}
	return img, nil
}

// PosterThumbDataURL resizes the poster to a fixed-width thumbnail and
// re-encodes it as webp, returned as a data URL ready to embed in responses.
func PosterThumbDataURL(dataURL string) (string, error) {
	img, err := DecodePosterDataURL(dataURL)
	if err != nil {
		return "", err
	}

	thumb := imaging.Resize(img, posterThumbWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Quality: webpThumbQuality}); err != nil {
		return "", fmt.Errorf("webp encode failed: %w", err)
	}
	return dataURLWebpPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
