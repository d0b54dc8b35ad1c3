/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package wigcorr

/* -------------------------------------------------------------------------- */

import "errors"
import "fmt"

/* -------------------------------------------------------------------------- */

var ErrConfiguration = errors.New("configuration error")
var ErrAlignment     = errors.New("tracks are not aligned")
var ErrFormat        = errors.New("invalid track format")
var ErrUndefined     = errors.New("correlation is undefined")

/* -------------------------------------------------------------------------- */

// FormatError is returned by track readers for malformed input. It
// matches ErrFormat with errors.Is.
type FormatError struct {
  Line int
  Err  error
}

func newFormatError(line int, format string, args ...interface{}) *FormatError {
  return &FormatError{line, fmt.Errorf(format, args...)}
}

func (err *FormatError) Error() string {
  return fmt.Sprintf("line %d: %v", err.Line, err.Err)
}

func (err *FormatError) Unwrap() error {
  return err.Err
}

func (err *FormatError) Is(target error) bool {
  return target == ErrFormat
}
