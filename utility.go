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

import "bufio"
import "compress/gzip"
import "io"
import "regexp"
import "strings"
import "unicode"

/* -------------------------------------------------------------------------- */

// Wrap r in a gzip reader if the stream starts with the gzip magic
// number.
func openReader(r io.Reader) (io.Reader, error) {
  b := bufio.NewReader(r)

  magic, err := b.Peek(2)
  if err != nil && err != io.EOF {
    return nil, err
  }
  if len(magic) == 2 && magic[0] == 31 && magic[1] == 139 {
    g, err := gzip.NewReader(b)
    if err != nil {
      return nil, err
    }
    return g, nil
  }
  return b, nil
}

/* -------------------------------------------------------------------------- */

func fieldsQuoted(line string) []string {
  // if quoted
  q := false
  f := func(r rune) bool {
    if r == '"' {
      q = !q
    }
    return unicode.IsSpace(r) && q == false
  }
  return strings.FieldsFunc(line, f)
}

var quotesRegexp = regexp.MustCompile(`"([^"]*)"`)

func removeQuotes(str string) string {
  return quotesRegexp.ReplaceAllString(str, "${1}")
}

// Split a `key=value' field of a declaration line.
func splitAttribute(field string) (string, string, bool) {
  i := strings.Index(field, "=")
  if i <= 0 {
    return "", "", false
  }
  return field[0:i], removeQuotes(field[i+1:]), true
}

/* -------------------------------------------------------------------------- */

type sortFloat64Index struct {
  values []float64
  index  []int
}

func newSortFloat64Index(x []float64) sortFloat64Index {
  obj := sortFloat64Index{make([]float64, len(x)), make([]int, len(x))}
  copy(obj.values, x)
  for i := 0; i < len(x); i++ {
    obj.index[i] = i
  }
  return obj
}

func (obj sortFloat64Index) Len() int {
  return len(obj.values)
}

func (obj sortFloat64Index) Less(i, j int) bool {
  return obj.values[i] < obj.values[j]
}

func (obj sortFloat64Index) Swap(i, j int) {
  obj.values[i], obj.values[j] = obj.values[j], obj.values[i]
  obj.index [i], obj.index [j] = obj.index [j], obj.index [i]
}
