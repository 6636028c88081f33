// Copyright 2025 Scenic Roster Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errs defines the typed failure taxonomy of the roster engine.
// Every mutating operation returns one of these kinds on rejection and
// leaves all stores unchanged; nothing in this package ever escapes the
// engine API un-typed.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: malformed or missing required field.
	KindValidation
	// KindCapability: the principal lacks the required boolean capability.
	KindCapability
	// KindCeiling: requested community rank exceeds the caller's ceiling.
	KindCeiling
	// KindCredential: authentication failure (not found / disabled / bad password).
	KindCredential
	// KindConflict: duplicate email, exhausted community-number space.
	KindConflict
	// KindNotFound: the addressed record does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindCapability:
		return "capability"
	case KindCeiling:
		return "ceiling"
	case KindCredential:
		return "credential"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a typed engine failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Capability(capability string) error {
	return &Error{Kind: KindCapability, Msg: fmt.Sprintf("missing capability %s", capability)}
}

func Ceiling(requested, ceiling int) error {
	return &Error{
		Kind: KindCeiling,
		Msg:  fmt.Sprintf("community rank index %d exceeds assignable ceiling %d", requested, ceiling),
	}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Credential failures are fixed sentinels so callers can distinguish the
// three authentication outcomes with errors.Is.
var (
	ErrAccountNotFound = &Error{Kind: KindCredential, Msg: "account not found"}
	ErrAccountDisabled = &Error{Kind: KindCredential, Msg: "account is disabled"}
	ErrBadCredential   = &Error{Kind: KindCredential, Msg: "incorrect password"}
)

// Sentinels the presentation layer maps onto specific response codes.
var (
	ErrSignupDisabled  = &Error{Kind: KindCapability, Msg: "sign-up is disabled"}
	ErrEmailTaken      = &Error{Kind: KindConflict, Msg: "email is already registered"}
	ErrMemberNotFound  = &Error{Kind: KindNotFound, Msg: "member not found"}
	ErrArchiveNotFound = &Error{Kind: KindNotFound, Msg: "archived member not found"}
)
