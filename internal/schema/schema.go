// Package schema holds the CUE definition of a hotel record and the sample
// catalog written into an empty store.
//
// The definition and the samples live in one embedded CUE file, so the
// samples are checked against #Hotel every time they are loaded.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/hamdanyasser/hotelref/internal/hotel"
)

//go:embed hotel.cue
var hotelCUE string

// ValidationError reports the first field of a record that does not
// satisfy #Hotel.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid hotel: %s", e.Message)
	}
	return fmt.Sprintf("invalid hotel: %s: %s", e.Field, e.Message)
}

// cueHotel mirrors #Hotel field names for Encode/Decode.
type cueHotel struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Location string `json:"location"`
	Nearby   string `json:"nearby"`
	Food     string `json:"food"`
	ImageRef int64  `json:"imageRef"`
}

func (c cueHotel) toHotel() hotel.Hotel {
	return hotel.Hotel{
		Name:     c.Name,
		Phone:    c.Phone,
		Website:  c.Website,
		Location: c.Location,
		Nearby:   c.Nearby,
		Food:     c.Food,
		ImageRef: c.ImageRef,
	}
}

func fromHotel(h hotel.Hotel) cueHotel {
	return cueHotel{
		Name:     h.Name,
		Phone:    h.Phone,
		Website:  h.Website,
		Location: h.Location,
		Nearby:   h.Nearby,
		Food:     h.Food,
		ImageRef: h.ImageRef,
	}
}

// compile builds the embedded schema in a fresh context. cue.Context is not
// shared between goroutines, so every public call gets its own.
func compile() (*cue.Context, cue.Value, error) {
	ctx := cuecontext.New()
	root := ctx.CompileString(hotelCUE, cue.Filename("hotel.cue"))
	if err := root.Err(); err != nil {
		return nil, cue.Value{}, fmt.Errorf("compile hotel schema: %w", err)
	}
	return ctx, root, nil
}

// Samples returns the sample catalog in seeding order.
func Samples() ([]hotel.Hotel, error) {
	_, root, err := compile()
	if err != nil {
		return nil, err
	}

	v := root.LookupPath(cue.ParsePath("samples"))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("samples: %w", toValidationError(err))
	}

	var raw []cueHotel
	if err := v.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode samples: %w", err)
	}

	hotels := make([]hotel.Hotel, len(raw))
	for i, r := range raw {
		hotels[i] = r.toHotel()
	}
	return hotels, nil
}

// DefaultImageRef returns the image reference the schema assigns when a
// record does not name one.
func DefaultImageRef() (int64, error) {
	_, root, err := compile()
	if err != nil {
		return 0, err
	}
	return root.LookupPath(cue.ParsePath("defaultImageRef")).Int64()
}

// Validate checks a draft against #Hotel. The id is not part of the schema
// and is ignored.
func Validate(h hotel.Hotel) error {
	ctx, root, err := compile()
	if err != nil {
		return err
	}

	def := root.LookupPath(cue.ParsePath("#Hotel"))
	v := def.Unify(ctx.Encode(fromHotel(h)))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return toValidationError(err)
	}
	return nil
}

// toValidationError keeps the first CUE error and the field it points at.
func toValidationError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	first := errs[0]
	field := ""
	if path := first.Path(); len(path) > 0 {
		field = path[len(path)-1]
	}
	format, args := first.Msg()
	return &ValidationError{
		Field:   field,
		Message: strings.TrimSpace(fmt.Sprintf(format, args...)),
	}
}
