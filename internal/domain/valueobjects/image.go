package valueobjects

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"
)

// アップロード上限 (10MB)
const MaxImageSize = 10 * 1024 * 1024

type ImageFormat string

const (
	JPEG ImageFormat = "jpeg"
	PNG  ImageFormat = "png"
	GIF  ImageFormat = "gif"
	WEBP ImageFormat = "webp"
)

// Extension returns the file extension used when the image is persisted.
func (f ImageFormat) Extension() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + string(f)
}

type ImageData struct {
	data     []byte
	format   ImageFormat
	mimeType string
}

// NewImageData validates raw image bytes. The declared MIME type is kept when it agrees with
// the decoded format, otherwise the detected one wins.
func NewImageData(data []byte, mimeType string) (*ImageData, error) {
	if len(data) == 0 {
		return nil, NewValidationFailure("Please upload an image first.")
	}

	if len(data) > MaxImageSize {
		return nil, NewFailure(FailureOversized, fmt.Sprintf("image is %d bytes, limit is %d", len(data), MaxImageSize), nil)
	}

	if mimeType != "" && !strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return nil, NewFailure(FailureUnsupportedType, fmt.Sprintf("unsupported media type: %s", mimeType), nil)
	}

	format, err := detectFormat(data)
	if err != nil {
		return nil, NewFailure(FailureUnsupportedType, "unsupported image format", err)
	}

	detected := "image/" + string(format)
	if !strings.EqualFold(mimeType, detected) {
		mimeType = detected
	}

	return &ImageData{
		data:     data,
		format:   format,
		mimeType: strings.ToLower(mimeType),
	}, nil
}

// NewImageDataFromBase64 decodes a base64 payload (a data: URL prefix is accepted).
func NewImageDataFromBase64(encoded string, mimeType string) (*ImageData, error) {
	if encoded == "" {
		return nil, NewValidationFailure("Please upload an image first.")
	}

	if i := strings.Index(encoded, ";base64,"); i >= 0 && strings.HasPrefix(encoded, "data:") {
		if mimeType == "" {
			mimeType = strings.TrimPrefix(encoded[:i], "data:")
		}
		encoded = encoded[i+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, NewFailure(FailureValidation, "image payload is not valid base64", err).
			WithUserMessage("The uploaded image could not be read. Please try another file.")
	}

	return NewImageData(data, mimeType)
}

func (i *ImageData) Data() []byte {
	return i.data
}

func (i *ImageData) Format() ImageFormat {
	return i.format
}

func (i *ImageData) MimeType() string {
	return i.mimeType
}

func (i *ImageData) Size() int {
	return len(i.data)
}

func (i *ImageData) IsJPEG() bool {
	return i.format == JPEG
}

// ForUpstream returns an image the Gemini models accept. GIF is not one of them.
func (i *ImageData) ForUpstream() (*ImageData, error) {
	if i.format != GIF {
		return i, nil
	}
	return i.ToJPEG()
}

func (i *ImageData) ToJPEG() (*ImageData, error) {
	if i.IsJPEG() {
		return i, nil
	}

	reader := bytes.NewReader(i.data)
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: 90}
	if err := jpeg.Encode(&buf, img, opts); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	return &ImageData{
		data:     buf.Bytes(),
		format:   JPEG,
		mimeType: "image/jpeg",
	}, nil
}

func (i *ImageData) ToBase64() string {
	return base64.StdEncoding.EncodeToString(i.data)
}

func detectFormat(data []byte) (ImageFormat, error) {
	reader := bytes.NewReader(data)
	_, format, err := image.DecodeConfig(reader)
	if err != nil {
		return "", err
	}

	switch format {
	case "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	case "webp":
		return WEBP, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
