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

// BedGraphReader parses bedGraph tracks. Consecutive lines with the same
// chromosome name are returned as a single coverage record.
type BedGraphReader struct {
  scanner *bufio.Scanner
  line    int
  pending *bedGraphLine
}

type bedGraphLine struct {
  seqname string
  from    int
  to      int
  value   float64
}

/* -------------------------------------------------------------------------- */

func NewBedGraphReader(r io.Reader) (*BedGraphReader, error) {
  r, err := openReader(r)
  if err != nil {
    return nil, err
  }
  return &BedGraphReader{scanner: bufio.NewScanner(r)}, nil
}

/* -------------------------------------------------------------------------- */

func (reader *BedGraphReader) nextLine() (*bedGraphLine, error) {
  if reader.pending != nil {
    l := reader.pending
    reader.pending = nil
    return l, nil
  }
  for reader.scanner.Scan() {
    reader.line++
    fields := strings.Fields(reader.scanner.Text())
    if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
      continue
    }
    if fields[0] == "track" || fields[0] == "browser" {
      continue
    }
    if len(fields) != 4 {
      return nil, newFormatError(reader.line, "bedGraph file must have four columns")
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return nil, newFormatError(reader.line, "invalid start position `%s'", fields[1])
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64); if err != nil {
      return nil, newFormatError(reader.line, "invalid end position `%s'", fields[2])
    }
    t3, err := strconv.ParseFloat(fields[3], 64); if err != nil {
      return nil, newFormatError(reader.line, "invalid value `%s'", fields[3])
    }
    if t1 < 0 || t2 <= t1 {
      return nil, newFormatError(reader.line, "invalid interval [%d, %d)", t1, t2)
    }
    return &bedGraphLine{fields[0], int(t1), int(t2), t3}, nil
  }
  if err := reader.scanner.Err(); err != nil {
    return nil, err
  }
  return nil, io.EOF
}

// Read the next chromosome block. Intervals are zero-based and half-open,
// i.e. [from, to) sets the positions from+1 to to.
func (reader *BedGraphReader) Next() (CoverageRecord, error) {
  l, err := reader.nextLine()
  if err != nil {
    return CoverageRecord{}, err
  }
  record := CoverageRecord{Seqname: l.seqname}
  for {
    for position := l.from+1; position <= l.to; position++ {
      record.Append(position, l.value)
    }
    l, err = reader.nextLine()
    if err == io.EOF {
      break
    }
    if err != nil {
      return CoverageRecord{}, err
    }
    if l.seqname != record.Seqname {
      reader.pending = l
      break
    }
  }
  return record, nil
}
