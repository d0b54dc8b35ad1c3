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

import   "bytes"
import   "compress/gzip"
import   "errors"
import   "io"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func readAllRecords(t *testing.T, reader TrackReader) []CoverageRecord {
  records := []CoverageRecord{}
  for {
    r, err := reader.Next()
    if err == io.EOF {
      return records
    }
    if err != nil {
      t.Fatal(err)
    }
    records = append(records, r)
  }
}

func checkRecord(t *testing.T, record CoverageRecord, seqname string, m map[int]float64) {
  if record.Seqname != seqname {
    t.Errorf("expected chromosome `%s' but got `%s'", seqname, record.Seqname)
  }
  r := record.Map()
  if len(r) != len(m) {
    t.Errorf("chromosome `%s': expected %d positions but got %d", seqname, len(m), len(r))
  }
  for position, value := range m {
    if v, ok := r[position]; !ok || v != value {
      t.Errorf("chromosome `%s': invalid value at position %d", seqname, position)
    }
  }
}

/* -------------------------------------------------------------------------- */

const wiggleTest1 = `browser position chr1:1-100
track type=wiggle_0 name="test track" description="variable and fixed steps"
# comment
variableStep chrom=chr1
2 5.0
4 1.5
variableStep chrom=chr2 span=2

10 2
fixedStep chrom=chr3 start=3 step=4 span=2
1.0
2.0
variableStep chrom=chr4
`

func TestWiggle1(t *testing.T) {
  reader, err := NewWiggleReader(strings.NewReader(wiggleTest1))
  if err != nil {
    t.Error(err); return
  }
  records := readAllRecords(t, reader)

  if reader.Name != "test track" {
    t.Error("TestWiggle1 failed")
  }
  if len(records) != 4 {
    t.Errorf("TestWiggle1 failed: expected 4 records but got %d", len(records)); return
  }
  checkRecord(t, records[0], "chr1", map[int]float64{2: 5.0, 4: 1.5})
  checkRecord(t, records[1], "chr2", map[int]float64{10: 2.0, 11: 2.0})
  checkRecord(t, records[2], "chr3", map[int]float64{3: 1.0, 4: 1.0, 7: 2.0, 8: 2.0})
  checkRecord(t, records[3], "chr4", map[int]float64{})
}

func TestWiggle2(t *testing.T) {
  var buffer bytes.Buffer

  w := gzip.NewWriter(&buffer)
  io.WriteString(w, "fixedStep chrom=chr1 start=1\n0.5\n0.25\n")
  w.Close()

  reader, err := NewWiggleReader(&buffer)
  if err != nil {
    t.Error(err); return
  }
  records := readAllRecords(t, reader)
  if len(records) != 1 {
    t.Error("TestWiggle2 failed"); return
  }
  checkRecord(t, records[0], "chr1", map[int]float64{1: 0.5, 2: 0.25})
}

func TestWiggle3(t *testing.T) {
  inputs := []string{
    "1 2.0\n",
    "variableStep span=1\n1 2.0\n",
    "variableStep chrom=chr1\n0 2.0\n",
    "variableStep chrom=chr1\n1 abc\n",
    "variableStep chrom=chr1\n1\n",
    "fixedStep chrom=chr1 start=1\n1 2\n",
    "fixedStep chrom=chr1 start=0\n1\n",
    "track type=bedGraph\n",
    "track type=wiggle_0\ntrack type=wiggle_0\n" }

  for _, input := range inputs {
    reader, err := NewWiggleReader(strings.NewReader(input))
    if err != nil {
      t.Error(err); continue
    }
    for err == nil {
      _, err = reader.Next()
    }
    if !errors.Is(err, ErrFormat) {
      t.Errorf("TestWiggle3 failed for input %q", input)
    }
  }
}

func TestWiggle4(t *testing.T) {
  reader, _ := NewWiggleReader(strings.NewReader("variableStep chrom=chr1\n1 1\nfoo 2\n"))

  _, err := reader.Next()

  var e *FormatError
  if !errors.As(err, &e) || e.Line != 3 {
    t.Errorf("TestWiggle4 failed: %v", err)
  }
}
