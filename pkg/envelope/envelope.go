package envelope

import (
	"encoding/json"
	"net/http"
)

// ------------------------------------
// Envelope (generic variant)
// ------------------------------------

// Envelope is a typed operation-result wrapper used to standardize API
// responses. It carries the result payload, an ordered list of error
// messages, a success flag, and a transport status code.
//
// Envelopes are created through the package-level constructor functions
// (Succeed, Fail, and friends); the zero value is not a usable envelope.
// After construction the envelope can be adjusted field-by-field with the
// fluent With* setters, each returning the same instance for chaining.
//
// An instance is not safe for concurrent mutation; ownership of a given
// envelope is the caller's responsibility.
type Envelope[T any] struct {
	data       *T
	errors     []string
	success    bool
	statusCode int
}

// Succeed builds a successful envelope carrying data.
// The status code defaults to 200 unless one is supplied.
func Succeed[T any](data T, status ...int) *Envelope[T] {
	return &Envelope[T]{
		data:       &data,
		success:    true,
		statusCode: statusOr(status, http.StatusOK),
	}
}

// SucceedCreate builds a successful envelope whose payload is the message
// "<name of T> is created", with the entity name derived from the type
// parameter. The status code defaults to 201.
//
// The result is an Envelope[string] regardless of T: the payload of a CRUD
// confirmation is the message itself, not the entity.
func SucceedCreate[T any](status ...int) *Envelope[string] {
	return Succeed(TypeName[T]()+" is created", statusOr(status, http.StatusCreated))
}

// SucceedUpdate builds a successful "<name of T> is updated" envelope.
// The status code defaults to 200.
func SucceedUpdate[T any](status ...int) *Envelope[string] {
	return Succeed(TypeName[T]()+" is updated", statusOr(status, http.StatusOK))
}

// SucceedDelete builds a successful "<name of T> is deleted" envelope.
// The status code defaults to 200.
func SucceedDelete[T any](status ...int) *Envelope[string] {
	return Succeed(TypeName[T]()+" is deleted", statusOr(status, http.StatusOK))
}

// SucceedRemove builds a successful "<name of T> is removed" envelope.
// Remove is a synonym of Delete with its own message text; the status code
// defaults to 200.
func SucceedRemove[T any](status ...int) *Envelope[string] {
	return Succeed(TypeName[T]()+" is removed", statusOr(status, http.StatusOK))
}

// Fail builds a failed envelope carrying a single error message and no data.
// The status code defaults to 500.
func Fail[T any](msg string, status ...int) *Envelope[T] {
	return &Envelope[T]{
		errors:     []string{msg},
		statusCode: statusOr(status, http.StatusInternalServerError),
	}
}

// FailAll builds a failed envelope carrying the given error messages in
// order. The slice is copied; the status code defaults to 500.
func FailAll[T any](msgs []string, status ...int) *Envelope[T] {
	return &Envelope[T]{
		errors:     append([]string(nil), msgs...),
		statusCode: statusOr(status, http.StatusInternalServerError),
	}
}

// From lifts a conventional (value, error) return pair into an envelope:
// a nil error yields Succeed(v), anything else yields Fail with the error's
// message.
func From[T any](v T, err error, status ...int) *Envelope[T] {
	if err != nil {
		return Fail[T](err.Error(), status...)
	}
	return Succeed(v, status...)
}

// ------------------------------------
// Fluent setters
// ------------------------------------

// WithData overwrites the payload. The success flag is left untouched, so a
// failed envelope may carry partial results alongside its errors.
func (e *Envelope[T]) WithData(v T) *Envelope[T] {
	e.data = &v
	return e
}

// WithErrors overwrites the error list wholesale.
func (e *Envelope[T]) WithErrors(errs []string) *Envelope[T] {
	e.errors = errs
	return e
}

// WithError appends a single error message, starting a fresh list if none
// exists yet. Repeated calls accumulate in call order.
func (e *Envelope[T]) WithError(msg string) *Envelope[T] {
	e.errors = append(e.errors, msg)
	return e
}

// WithStatusCode overwrites the status code.
func (e *Envelope[T]) WithStatusCode(code int) *Envelope[T] {
	e.statusCode = code
	return e
}

// ------------------------------------
// Accessors
// ------------------------------------

// Success reports whether the envelope represents a successful operation.
func (e *Envelope[T]) Success() bool { return e.success }

// StatusCode returns the transport status code.
func (e *Envelope[T]) StatusCode() int { return e.statusCode }

// Errors returns the error messages in the order they were attached, or nil
// for an envelope without errors.
func (e *Envelope[T]) Errors() []string { return e.errors }

// Data returns the payload and whether one is present. Failed envelopes
// report false unless data was attached explicitly.
func (e *Envelope[T]) Data() (T, bool) {
	if e.data == nil {
		var zero T
		return zero, false
	}
	return *e.data, true
}

// ------------------------------------
// Wire shape
// ------------------------------------

// envelopeWire is the fixed serialization shape. All four keys are always
// emitted, nulls included.
type envelopeWire[T any] struct {
	Data       *T       `json:"data"`
	Errors     []string `json:"errors"`
	Success    bool     `json:"success"`
	StatusCode int      `json:"statusCode"`
}

// MarshalJSON encodes the envelope as
// {"data": ..., "errors": ..., "success": ..., "statusCode": ...}.
func (e *Envelope[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelopeWire[T]{
		Data:       e.data,
		Errors:     e.errors,
		Success:    e.success,
		StatusCode: e.statusCode,
	})
}

// UnmarshalJSON decodes the wire shape, reproducing an envelope equal to the
// one that was encoded.
func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	var w envelopeWire[T]
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	e.data = w.Data
	e.errors = w.Errors
	e.success = w.Success
	e.statusCode = w.StatusCode
	return nil
}

// statusOr picks the first supplied status code, falling back to fallback.
// Extra values are ignored.
func statusOr(status []int, fallback int) int {
	if len(status) > 0 {
		return status[0]
	}
	return fallback
}
