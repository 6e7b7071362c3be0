// Package json renders command results as indented JSON documents.
package json

import (
	"encoding/json"
	"io"

	"github.com/scopelink/scopelink/pkg/errors"
)

// Renderer writes one JSON document per render call.
type Renderer struct {
	encoder *json.Encoder
}

// New wires a renderer to output. HTML escaping is off so paths and
// scoped package names come through untouched.
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}, nil
}

// RenderResult encodes a result document as-is.
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError encodes an error together with its code and any
// attached details.
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
		"code":  errors.GetErrorCode(err),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage encodes a bare informational message.
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
