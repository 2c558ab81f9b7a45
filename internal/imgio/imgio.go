package imgio

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // decode-only format, not registered by imaging
)

// Kind classifies why a path could not be decoded into an image.
type Kind int

const (
	// KindNotFound means the file does not exist.
	KindNotFound Kind = iota + 1
	// KindNotReadable means the file exists but cannot be read,
	// for example due to permissions or because it is a directory.
	KindNotReadable
	// KindUnsupported means the bytes are not a decodable image.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "does not exist"
	case KindNotReadable:
		return "not readable"
	case KindUnsupported:
		return "not a supported image"
	}
	return "unknown"
}

// Error describes a single file that could not be decoded. Callers decide
// whether such a failure is fatal based on where the path came from, so the
// error keeps the path and the failure kind inspectable.
type Error struct {
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Decoder opens files and decodes them into images. The zero value is ready
// to use. Format support is whatever the registered decoders provide
// (JPEG, PNG, GIF, BMP, TIFF, WebP); nothing inspects file extensions.
type Decoder struct {
	// AutoOrient applies EXIF orientation during decode so a rotated
	// photo fingerprints the same as its upright rendering.
	AutoOrient bool
}

// Decode reads and decodes the image at path. Every failure is returned as
// an *Error carrying the path and the failure kind.
func (d *Decoder) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := KindNotReadable
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindNotFound
		}
		return nil, &Error{Path: path, Kind: kind, Err: err}
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil && fi.IsDir() {
		return nil, &Error{Path: path, Kind: KindNotReadable, Err: errors.New("is a directory")}
	}

	img, err := imaging.Decode(f, imaging.AutoOrientation(d.AutoOrient))
	if err != nil {
		return nil, &Error{Path: path, Kind: KindUnsupported, Err: err}
	}
	return img, nil
}
