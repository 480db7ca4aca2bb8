// Package api implements the HTTP transport for the club API and the uniform
// result envelope every remote call is normalized into. The transport never
// panics past its own boundary: network failures, non-success statuses, and
// unparsable bodies all collapse into the envelope's error arm.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bosphorusfellas/clubclient/internal/common"
)

// Envelope is the uniform outcome of a single transport call.
//
// Exactly one of Data / ErrorMessage is populated: a success carries parsed
// response data (nil for an empty body) and an empty message, a failure
// carries a human-readable message and no data.
type Envelope struct {
	OK           bool
	StatusCode   int
	Data         json.RawMessage
	ErrorMessage string
}

// Success builds the success arm of the envelope.
func Success(status int, data json.RawMessage) Envelope {
	return Envelope{OK: true, StatusCode: status, Data: data}
}

// Failure builds the error arm of the envelope. An empty message is replaced
// with a generic status description so the arm is never silent.
func Failure(status int, msg string) Envelope {
	if msg == "" {
		if status > 0 {
			msg = fmt.Sprintf("HTTP error status %d", status)
		} else {
			msg = "request failed"
		}
	}
	return Envelope{OK: false, StatusCode: status, ErrorMessage: msg}
}

// AuthFailure reports whether the envelope signals an invalid or expired
// token. By the time an accessor sees one the transport has already
// destroyed the stored credential.
func (e Envelope) AuthFailure() bool {
	return !e.OK && e.StatusCode == 401
}

// Result is the typed analogue of Envelope returned by resource accessors.
// On failure Err wraps exactly one sentinel from the common error taxonomy
// (ErrValidation, ErrTransport, ErrAuthentication, ErrStorageConsistency).
type Result[T any] struct {
	OK           bool
	StatusCode   int
	Data         T
	ErrorMessage string
	Err          error
}

// OKResult builds a typed success.
func OKResult[T any](status int, data T) Result[T] {
	return Result[T]{OK: true, StatusCode: status, Data: data}
}

// Fail builds a typed failure wrapping the given taxonomy sentinel.
func Fail[T any](sentinel error, status int, msg string) Result[T] {
	if msg == "" {
		msg = sentinel.Error()
	}
	return Result[T]{
		StatusCode:   status,
		ErrorMessage: msg,
		Err:          fmt.Errorf("%w: %s", sentinel, msg),
	}
}

// Invalid builds a local precondition failure. By construction no network
// call was made when a result carries it.
func Invalid[T any](msg string) Result[T] {
	return Fail[T](common.ErrValidation, 0, msg)
}

// FromEnvelope classifies a failed envelope into the error taxonomy. Calling
// it with a success envelope is a programming error and yields a transport
// failure to keep the no-panic guarantee.
func FromEnvelope[T any](env Envelope) Result[T] {
	if env.OK {
		return Fail[T](common.ErrTransport, env.StatusCode, "unexpected success envelope")
	}
	sentinel := common.ErrTransport
	if env.AuthFailure() {
		sentinel = common.ErrAuthentication
	}
	return Fail[T](sentinel, env.StatusCode, env.ErrorMessage)
}

// Decode turns a successful envelope into a typed result, or classifies the
// failure. A payload that does not fit T is rejected as a transport failure
// rather than propagating undefined fields. An empty body decodes to the
// zero value.
func Decode[T any](env Envelope) Result[T] {
	if !env.OK {
		return FromEnvelope[T](env)
	}
	var out T
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return OKResult(env.StatusCode, out)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return Fail[T](common.ErrTransport, env.StatusCode, "unexpected response shape: "+err.Error())
	}
	return OKResult(env.StatusCode, out)
}

// DecodeOne decodes a single record, unwrapping a one-row array when the
// backend answers list-shaped. An empty set is reported as not found.
func DecodeOne[T any](env Envelope) Result[T] {
	if !env.OK {
		return FromEnvelope[T](env)
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Fail[T](common.ErrNotFound, env.StatusCode, "record not found")
	}
	if data[0] == '[' {
		rows := Decode[[]T](env)
		if !rows.OK {
			return Result[T]{StatusCode: rows.StatusCode, ErrorMessage: rows.ErrorMessage, Err: rows.Err}
		}
		if len(rows.Data) == 0 {
			return Fail[T](common.ErrNotFound, env.StatusCode, "record not found")
		}
		return OKResult(env.StatusCode, rows.Data[0])
	}
	return Decode[T](env)
}
