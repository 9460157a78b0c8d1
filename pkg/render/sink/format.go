package sink

import (
	"strings"
	"unicode"

	"github.com/matzehuels/inkwell/pkg/errors"
)

// Format is an export file format.
type Format string

// Supported formats.
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	SVG  Format = "svg"
)

// Formats lists the supported formats.
var Formats = []Format{PNG, JPEG, SVG}

// ParseFormat resolves a format name or file extension, ignoring case and
// a leading dot. "jpg" is accepted for JPEG.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	switch s {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	case "svg":
		return SVG, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want png, jpeg or svg)", s)
}

// IsRaster reports whether f is encoded from pixels.
func (f Format) IsRaster() bool {
	return f == PNG || f == JPEG
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string {
	return string(f)
}

// MIME returns the media type of f.
func (f Format) MIME() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case SVG:
		return "image/svg+xml"
	}
	return "application/octet-stream"
}

// Filename returns the download name for a signature: the text lowercased
// with whitespace runs replaced by dashes, followed by "-signature.<ext>".
// Path separators and control characters are dropped.
func Filename(text string, f Format) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case unicode.IsSpace(r):
			dash = true
			continue
		case r == '/' || r == '\\' || unicode.IsControl(r):
			continue
		}
		if dash && b.Len() > 0 {
			b.WriteByte('-')
		}
		dash = false
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "signature." + f.Ext()
	}
	return b.String() + "-signature." + f.Ext()
}
