/*
 *     Copyright 2023 The MAGSOLUTION Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package saterrors

import (
	"errors"
	"fmt"

	"github.com/magsolution/sat/internal/satcodes"
)

// common errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDataNotFound    = errors.New("data not found")
	ErrEmptyValue      = errors.New("empty value")
)

// SatError carries a code that the http boundary translates into a status.
type SatError struct {
	Code    satcodes.Code
	Message string
	// Fields names the offending request fields of an InvalidInput error.
	Fields []string

	cause error
}

func (s *SatError) Error() string {
	if s.cause != nil {
		return fmt.Sprintf("[%d]%s: %v", s.Code, s.Message, s.cause)
	}

	return fmt.Sprintf("[%d]%s", s.Code, s.Message)
}

func (s *SatError) Unwrap() error {
	return s.cause
}

func New(code satcodes.Code, msg string) *SatError {
	return &SatError{
		Code:    code,
		Message: msg,
	}
}

func Newf(code satcodes.Code, format string, a ...any) *SatError {
	return &SatError{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// Wrap attaches code to err, the original error stays reachable through errors.Is and errors.As.
func Wrap(code satcodes.Code, err error, msg string) *SatError {
	return &SatError{
		Code:    code,
		Message: msg,
		cause:   err,
	}
}

func InvalidFields(fields ...string) *SatError {
	return &SatError{
		Code:    satcodes.InvalidInput,
		Message: fmt.Sprintf("invalid or missing fields: %v", fields),
		Fields:  fields,
	}
}

// As returns the first SatError in err's chain.
func As(err error) (*SatError, bool) {
	var e *SatError
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

func CheckError(err error, code satcodes.Code) bool {
	if err == nil {
		return false
	}

	e, ok := As(err)
	return ok && e.Code == code
}
