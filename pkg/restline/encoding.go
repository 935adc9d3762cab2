package restline

import (
	"encoding/json"
	"net/url"

	"github.com/gorilla/schema"
)

const (
	formContentType = "application/x-www-form-urlencoded"
	jsonContentType = "application/json"
)

// BodyEncoder serialises the argument supplied for a method's body
// parameter. Encoders plug into MethodMetadata.ExpandWithBody; the
// compiled template itself stays encoding-agnostic.
type BodyEncoder interface {
	// ContentType is the header value installed when the method does not
	// declare its own Content-Type.
	ContentType() string

	// Encode renders v as the request body.
	Encode(v any) ([]byte, error)
}

// FormEncoder encodes a struct into an application/x-www-form-urlencoded
// body. Field names follow the struct's `schema` tags.
type FormEncoder struct {
	enc *schema.Encoder
}

// NewFormEncoder creates a FormEncoder.
func NewFormEncoder() *FormEncoder {
	return &FormEncoder{enc: schema.NewEncoder()}
}

// ContentType implements BodyEncoder.
func (e *FormEncoder) ContentType() string { return formContentType }

// Encode implements BodyEncoder.
func (e *FormEncoder) Encode(v any) ([]byte, error) {
	values := url.Values{}
	if err := e.enc.Encode(v, values); err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}

// JSONEncoder encodes the body argument as JSON.
type JSONEncoder struct{}

// ContentType implements BodyEncoder.
func (JSONEncoder) ContentType() string { return jsonContentType }

// Encode implements BodyEncoder.
func (JSONEncoder) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}
