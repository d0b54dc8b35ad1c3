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
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// WiggleReader parses wiggle tracks (variableStep and fixedStep) and
// returns one coverage record per declaration line.
type WiggleReader struct {
  // name from the track definition line
  Name    string
  scanner *bufio.Scanner
  line    int
  header  bool
  pending []string
}

/* -------------------------------------------------------------------------- */

func NewWiggleReader(r io.Reader) (*WiggleReader, error) {
  r, err := openReader(r)
  if err != nil {
    return nil, err
  }
  return &WiggleReader{scanner: bufio.NewScanner(r)}, nil
}

/* -------------------------------------------------------------------------- */

// Return the fields of the next line that is not empty or a comment.
func (reader *WiggleReader) nextFields() ([]string, error) {
  if reader.pending != nil {
    fields := reader.pending
    reader.pending = nil
    return fields, nil
  }
  for reader.scanner.Scan() {
    reader.line++
    fields := fieldsQuoted(reader.scanner.Text())
    if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
      continue
    }
    return fields, nil
  }
  if err := reader.scanner.Err(); err != nil {
    return nil, err
  }
  return nil, io.EOF
}

func (reader *WiggleReader) readHeader(fields []string) error {
  if reader.header {
    return newFormatError(reader.line, "file contains more than one track definition line")
  }
  reader.header = true

  for i := 1; i < len(fields); i++ {
    key, value, ok := splitAttribute(fields[i])
    if !ok {
      return newFormatError(reader.line, "invalid track definition line")
    }
    switch key {
    case "name":
      reader.Name = value
    case "type":
      if value != "wiggle_0" {
        return newFormatError(reader.line, "unsupported wiggle format `%s'", value)
      }
    }
  }
  return nil
}

type wiggleDeclaration struct {
  seqname string
  start   int
  step    int
  span    int
  fixed   bool
}

func (reader *WiggleReader) readDeclaration(fields []string) (wiggleDeclaration, error) {
  decl := wiggleDeclaration{fixed: fields[0] == "fixedStep", start: 1, step: 1, span: 1}

  for i := 1; i < len(fields); i++ {
    key, value, ok := splitAttribute(fields[i])
    if !ok {
      return decl, newFormatError(reader.line, "invalid declaration line")
    }
    if key == "chrom" {
      decl.seqname = value
      continue
    }
    var target *int
    switch key {
    case "start": target = &decl.start
    case "step" : target = &decl.step
    case "span" : target = &decl.span
    default:
      continue
    }
    t, err := strconv.ParseInt(value, 10, 64)
    if err != nil {
      return decl, newFormatError(reader.line, "invalid %s value `%s'", key, value)
    }
    if t <= 0 {
      return decl, newFormatError(reader.line, "%s must be positive", key)
    }
    *target = int(t)
  }
  if decl.seqname == "" {
    return decl, newFormatError(reader.line, "declaration line is missing the chromosome name")
  }
  return decl, nil
}

func isWiggleKeyword(field string) bool {
  switch field {
  case "track", "browser", "fixedStep", "variableStep":
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

// Read the next chromosome block. A block without data lines results in
// an empty record.
func (reader *WiggleReader) Next() (CoverageRecord, error) {
  var fields []string
  var err    error
  // search for the next declaration line
  for {
    if fields, err = reader.nextFields(); err != nil {
      return CoverageRecord{}, err
    }
    if fields[0] == "fixedStep" || fields[0] == "variableStep" {
      break
    }
    switch fields[0] {
    case "track":
      if err := reader.readHeader(fields); err != nil {
        return CoverageRecord{}, err
      }
    case "browser":
      // skip any browser options
    default:
      return CoverageRecord{}, newFormatError(reader.line, "unknown sequence type (i.e. not fixedStep or variableStep)")
    }
  }
  decl, err := reader.readDeclaration(fields)
  if err != nil {
    return CoverageRecord{}, err
  }
  record := CoverageRecord{Seqname: decl.seqname}
  // parse data lines
  for position := decl.start; ; position += decl.step {
    fields, err = reader.nextFields()
    if err == io.EOF {
      break
    }
    if err != nil {
      return CoverageRecord{}, err
    }
    if isWiggleKeyword(fields[0]) {
      // not a data line, keep it for the next call
      reader.pending = fields
      break
    }
    if decl.fixed {
      if len(fields) != 1 {
        return CoverageRecord{}, newFormatError(reader.line, "fixedStep data line must have one column")
      }
    } else {
      if len(fields) != 2 {
        return CoverageRecord{}, newFormatError(reader.line, "variableStep data line must have two columns")
      }
      t, err := strconv.ParseInt(fields[0], 10, 64)
      if err != nil {
        return CoverageRecord{}, newFormatError(reader.line, "invalid chromosomal position `%s'", fields[0])
      }
      if t <= 0 {
        return CoverageRecord{}, newFormatError(reader.line, "invalid chromosomal position %d", t)
      }
      position = int(t)
    }
    value, err := strconv.ParseFloat(fields[len(fields)-1], 64)
    if err != nil {
      return CoverageRecord{}, newFormatError(reader.line, "invalid value `%s'", fields[len(fields)-1])
    }
    for j := 0; j < decl.span; j++ {
      record.Append(position+j, value)
    }
  }
  return record, nil
}
