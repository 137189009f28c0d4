package envelope

import (
	"encoding/json"
	"net/http"
)

// ------------------------------------
// Any (untyped variant)
// ------------------------------------

// Any is the untyped counterpart of Envelope: the same wire shape with an
// opaque payload. It exists for operations that return only a status
// message, or nothing at all, where carrying a type parameter would be
// noise. Any and Envelope are independent implementations, not related by
// embedding.
//
// Because Any carries no payload type, the CRUD constructors take the
// entity name explicitly; TypeName can supply it from a type parameter at
// the call site.
type Any struct {
	data       any
	errors     []string
	success    bool
	statusCode int
}

// SucceedAny builds a successful envelope with no payload.
// The status code defaults to 200.
func SucceedAny(status ...int) *Any {
	return &Any{
		success:    true,
		statusCode: statusOr(status, http.StatusOK),
	}
}

// SucceedAnyData builds a successful envelope carrying an opaque payload.
// The status code defaults to 200.
func SucceedAnyData(data any, status ...int) *Any {
	return &Any{
		data:       data,
		success:    true,
		statusCode: statusOr(status, http.StatusOK),
	}
}

// SucceedCreateAny builds a successful "<name> is created" envelope for the
// named entity. The status code defaults to 201.
func SucceedCreateAny(name string, status ...int) *Any {
	return SucceedAnyData(name+" is created", statusOr(status, http.StatusCreated))
}

// SucceedUpdateAny builds a successful "<name> is updated" envelope.
func SucceedUpdateAny(name string, status ...int) *Any {
	return SucceedAnyData(name+" is updated", statusOr(status, http.StatusOK))
}

// SucceedDeleteAny builds a successful "<name> is deleted" envelope.
func SucceedDeleteAny(name string, status ...int) *Any {
	return SucceedAnyData(name+" is deleted", statusOr(status, http.StatusOK))
}

// SucceedRemoveAny builds a successful "<name> is removed" envelope.
func SucceedRemoveAny(name string, status ...int) *Any {
	return SucceedAnyData(name+" is removed", statusOr(status, http.StatusOK))
}

// FailAny builds a failed envelope carrying a single error message and no
// payload. The status code defaults to 500.
func FailAny(msg string, status ...int) *Any {
	return &Any{
		errors:     []string{msg},
		statusCode: statusOr(status, http.StatusInternalServerError),
	}
}

// FailAllAny builds a failed envelope carrying the given error messages in
// order. The slice is copied; the status code defaults to 500.
func FailAllAny(msgs []string, status ...int) *Any {
	return &Any{
		errors:     append([]string(nil), msgs...),
		statusCode: statusOr(status, http.StatusInternalServerError),
	}
}

// WithData overwrites the payload without touching the success flag.
func (a *Any) WithData(v any) *Any {
	a.data = v
	return a
}

// WithErrors overwrites the error list wholesale.
func (a *Any) WithErrors(errs []string) *Any {
	a.errors = errs
	return a
}

// WithError appends a single error message, starting a fresh list if none
// exists yet.
func (a *Any) WithError(msg string) *Any {
	a.errors = append(a.errors, msg)
	return a
}

// WithStatusCode overwrites the status code.
func (a *Any) WithStatusCode(code int) *Any {
	a.statusCode = code
	return a
}

// Success reports whether the envelope represents a successful operation.
func (a *Any) Success() bool { return a.success }

// StatusCode returns the transport status code.
func (a *Any) StatusCode() int { return a.statusCode }

// Errors returns the error messages in order, or nil if none are attached.
func (a *Any) Errors() []string { return a.errors }

// Data returns the opaque payload, nil when absent.
func (a *Any) Data() any { return a.data }

// anyWire mirrors envelopeWire with an opaque payload slot.
type anyWire struct {
	Data       any      `json:"data"`
	Errors     []string `json:"errors"`
	Success    bool     `json:"success"`
	StatusCode int      `json:"statusCode"`
}

// MarshalJSON encodes the envelope with all four wire keys present, nulls
// included.
func (a *Any) MarshalJSON() ([]byte, error) {
	return json.Marshal(anyWire{
		Data:       a.data,
		Errors:     a.errors,
		Success:    a.success,
		StatusCode: a.statusCode,
	})
}

// UnmarshalJSON decodes the wire shape. The payload comes back as whatever
// encoding/json produces for an any slot (string, float64, map, slice, or
// nil).
func (a *Any) UnmarshalJSON(b []byte) error {
	var w anyWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	a.data = w.Data
	a.errors = w.Errors
	a.success = w.Success
	a.statusCode = w.StatusCode
	return nil
}
