package helper

import (
	"encoding/base64"
	"strings"

	"foodgram-api/models"
)

const dataImagePrefix = "data:image"

// ImageFile is an image decoded from a data URI.
type ImageFile struct {
	Ext     string
	Content []byte
}

// Name returns a file name carrying the image extension.
func (f ImageFile) Name(base string) string {
	return base + "." + f.Ext
}

// IsDataImage reports whether s looks like an inline image data URI.
func IsDataImage(s string) bool {
	return strings.HasPrefix(s, dataImagePrefix)
}

// DecodeBase64Image decodes "data:image/<ext>;base64,<payload>".
func DecodeBase64Image(s string) (*ImageFile, error) {
	if !IsDataImage(s) {
		return nil, models.NewValidationError("image", "image must be a data:image base64 string")
	}

	header, payload, found := strings.Cut(s, ";base64,")
	if !found {
		return nil, models.NewValidationError("image", "image must be base64 encoded")
	}

	ext := header[strings.LastIndex(header, "/")+1:]
	if ext == "" || ext == header {
		return nil, models.NewValidationError("image", "image type is missing")
	}

	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, models.NewValidationError("image", "image payload is not valid base64")
	}
	if len(content) == 0 {
		return nil, models.NewValidationError("image", "image is empty")
	}

	return &ImageFile{Ext: ext, Content: content}, nil
}
