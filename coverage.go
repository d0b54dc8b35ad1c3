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

// Coverage values of a single chromosome block. Positions are 1-based,
// positions not listed have coverage zero.
type CoverageRecord struct {
  Seqname   string
  Positions []int
  Values    []float64
}

// TrackReader returns one coverage record per call and io.EOF once the
// track is exhausted.
type TrackReader interface {
  Next() (CoverageRecord, error)
}

/* -------------------------------------------------------------------------- */

func (record CoverageRecord) Len() int {
  return len(record.Positions)
}

func (record *CoverageRecord) Append(position int, value float64) {
  record.Positions = append(record.Positions, position)
  record.Values    = append(record.Values,    value)
}

// Convert the record to a position/value map. If a position occurs more
// than once, the last value is kept.
func (record CoverageRecord) Map() map[int]float64 {
  m := make(map[int]float64, len(record.Positions))
  for i, position := range record.Positions {
    m[position] = record.Values[i]
  }
  return m
}

/* -------------------------------------------------------------------------- */

// Fill dst with the coverage values at positions 1..len(dst). Positions
// outside this range are ignored.
func DensifyInto(dst []float64, m map[int]float64) []float64 {
  for i := range dst {
    dst[i] = 0.0
  }
  for position, value := range m {
    if position >= 1 && position <= len(dst) {
      dst[position-1] = value
    }
  }
  return dst
}

// Dense vector of coverage values at positions 1..length.
func Densify(m map[int]float64, length int) []float64 {
  return DensifyInto(make([]float64, length), m)
}
