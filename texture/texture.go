// Package texture keeps the encoded images an application registers before
// its first frame and hands out the opaque identifiers scene nodes use to
// refer to them.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"math"
	"sort"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ID identifies a registered texture. IDs are assigned in registration order
// starting at 0.
type ID uint16

var (
	// ErrUnknownTexture is returned for an ID that was never registered.
	ErrUnknownTexture = errors.New("texture: unknown id")
	// ErrEmptyData is returned when a registered texture has no bytes.
	ErrEmptyData = errors.New("texture: empty data")
	// ErrRegistryFull is the panic value of Add once every ID is taken.
	ErrRegistryFull = errors.New("texture: registry full")
)

// Registry maps texture IDs to raw encoded image bytes.
// The zero value is ready to use.
type Registry struct {
	lastID ID
	data   map[ID][]byte
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers encoded image bytes and returns the ID to reference them
// from texture nodes. The bytes are not copied and must not be modified
// afterwards.
//
// Add panics with ErrRegistryFull when all 65536 IDs are in use.
func (r *Registry) Add(data []byte) ID {
	if r.data == nil {
		r.data = make(map[ID][]byte)
	}
	if len(r.data) > math.MaxUint16 {
		panic(ErrRegistryFull)
	}
	id := r.lastID
	r.data[id] = data
	r.lastID++
	return id
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.data)
}

// Data returns the encoded bytes registered under id.
func (r *Registry) Data(id ID) ([]byte, bool) {
	data, ok := r.data[id]
	return data, ok
}

// IDs returns every registered ID in ascending order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.data))
	for id := range r.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Decode decodes the image registered under id. It returns the decoded image
// and the format name reported by the decoder (e.g. "png").
func (r *Registry) Decode(id ID) (image.Image, string, error) {
	data, ok := r.data[id]
	if !ok {
		return nil, "", fmt.Errorf("%w %d", ErrUnknownTexture, id)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("texture %d: %w", id, ErrEmptyData)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("texture %d: decode: %w", id, err)
	}
	return img, format, nil
}

// DecodeAll decodes every registered texture. Textures that fail to decode
// are left out of the map and their errors are joined into the returned
// error.
func (r *Registry) DecodeAll() (map[ID]image.Image, error) {
	images := make(map[ID]image.Image, len(r.data))
	var errs []error
	for _, id := range r.IDs() {
		img, _, err := r.Decode(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		images[id] = img
	}
	return images, errors.Join(errs...)
}
