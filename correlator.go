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

import "fmt"
import "io"
import "strings"

import "github.com/pbenner/wigcorr/lib/progress"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// WiggleCorrelator computes for each chromosome the correlation between
// the coverage of two conditions. Each condition is given by one or two
// tracks, where the dense coverage vectors of both tracks are
// concatenated.
type WiggleCorrelator struct {
  Genome     Genome
  Method     CorrelationMethod
  // join records of the four tracks by chromosome name instead of
  // reading them in lockstep
  JoinByName bool
  // number of threads used to construct coverage vectors
  Threads    int
  // if not empty, save a scatter plot for each chromosome
  Plot       string
  // if not nil, print a status bar
  Progress   io.Writer
  Verbose    int
  Log        io.Writer
}

/* -------------------------------------------------------------------------- */

func NewWiggleCorrelator(genome Genome, method CorrelationMethod) WiggleCorrelator {
  return WiggleCorrelator{Genome: genome, Method: method, Threads: 1}
}

/* -------------------------------------------------------------------------- */

func (c WiggleCorrelator) printLog(level int, format string, args ...interface{}) {
  if c.Log != nil && c.Verbose >= level {
    fmt.Fprintf(c.Log, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

// Correlate the coverage of condition 1 (track1a, track1b) with the
// coverage of condition 2 (track2a, track2b). The tracks track1b and
// track2b are optional, but must be either both given or both nil. One
// result line is written to w per chromosome.
func (c WiggleCorrelator) Correlate(w io.Writer, track1a, track2a, track1b, track2b TrackReader) error {
  if track1a == nil || track2a == nil {
    return fmt.Errorf("%w: tracks for both conditions are required", ErrConfiguration)
  }
  if (track1b == nil) != (track2b == nil) {
    return fmt.Errorf("%w: second tracks must be given for both conditions or for none", ErrConfiguration)
  }
  readers := []TrackReader{track1a, track2a}
  if track1b != nil {
    readers = append(readers, track1b, track2b)
  }
  var steps recordIterator
  if c.JoinByName {
    c.printLog(1, "Joining tracks by chromosome name... ")
    if s, err := newJoinedRecords(readers); err != nil {
      c.printLog(1, "failed\n")
      return err
    } else {
      c.printLog(1, "done\n")
      steps = s
    }
  } else {
    steps = &lockstepRecords{readers: readers}
  }
  threads := c.Threads
  if threads < 1 {
    threads = 1
  }
  pool := threadpool.New(threads, 100*threads)
  defer pool.Stop()

  bar := progress.New(c.Genome.Length(), 1)

  if _, err := fmt.Fprintf(w, "Replicon: %s correlation coefficient (p-value)\n", c.Method); err != nil {
    return err
  }
  err := c.correlateSteps(w, pool, steps, bar)
  if c.Progress != nil {
    // terminate the status bar line
    if err == nil {
      bar.Print(c.Progress, bar.N)
    } else {
      fmt.Fprint(c.Progress, "\n")
    }
  }
  return err
}

func (c WiggleCorrelator) correlateSteps(w io.Writer, pool threadpool.ThreadPool, steps recordIterator, bar progress.Progress) error {
  for i := 1; ; i++ {
    records, err := steps.Next()
    if err == io.EOF {
      return nil
    }
    if err != nil {
      return err
    }
    if err := c.correlateRecords(w, pool, records); err != nil {
      return err
    }
    // chromosomes split into several blocks may exceed the
    // number of chromosomes, the last step is printed by the caller
    if c.Progress != nil && i < bar.N {
      bar.Label = records[0].Seqname
      bar.Print(c.Progress, i)
    }
  }
}

/* -------------------------------------------------------------------------- */

// Records are ordered as condition 1, condition 2 followed optionally by
// the second tracks of condition 1 and 2.
func (c WiggleCorrelator) correlateRecords(w io.Writer, pool threadpool.ThreadPool, records []CoverageRecord) error {
  seqname := records[0].Seqname

  noCoverage := func(i int) bool {
    if records[i].Len() != 0 {
      return false
    }
    return len(records) == 2 || records[i+2].Len() == 0
  }
  if noCoverage(0) || noCoverage(1) {
    c.printLog(1, "Skipping `%s' without coverage\n", seqname)
    _, err := fmt.Fprintf(w, "%s: At least one replicon has no coverage for this libs.\n", seqname)
    return err
  }
  n, err := c.Genome.SeqLength(seqname)
  if err != nil {
    return err
  }
  values := make([][]float64, 2)
  transf := make([][]float64, 2)

  g := pool.NewJobGroup()
  if err := pool.AddRangeJob(0, 2, g, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    values[i] = conditionVector(records, i, n)
    transf[i] = c.Method.Transform(values[i])
    return nil
  }); err != nil {
    return err
  }
  if err := pool.Wait(g); err != nil {
    return err
  }
  result, err := Pearson(transf[0], transf[1])
  if err != nil {
    return fmt.Errorf("chromosome `%s': %w", seqname, err)
  }
  if c.Plot != "" {
    if err := c.savePlot(seqname, values[0], values[1], result); err != nil {
      return err
    }
  }
  _, err = fmt.Fprintf(w, "%s: %v\n", seqname, result)
  return err
}

// Dense coverage vector of condition i, which is the concatenation of
// the first and (if available) the second track.
func conditionVector(records []CoverageRecord, i, n int) []float64 {
  m := len(records)/2
  x := make([]float64, m*n)
  for j := 0; j < m; j++ {
    DensifyInto(x[j*n:(j+1)*n], records[i+2*j].Map())
  }
  return x
}

/* -------------------------------------------------------------------------- */

var trackNames = []string{"1a", "2a", "1b", "2b"}

type recordIterator interface {
  Next() ([]CoverageRecord, error)
}

// Read one record from each track per step. Iteration stops as soon as
// one track is exhausted.
type lockstepRecords struct {
  readers []TrackReader
  step    int
}

func (obj *lockstepRecords) Next() ([]CoverageRecord, error) {
  records := make([]CoverageRecord, len(obj.readers))
  for i, reader := range obj.readers {
    if r, err := reader.Next(); err != nil {
      return nil, err
    } else {
      records[i] = r
    }
  }
  obj.step++
  for i := 1; i < len(records); i++ {
    if records[i].Seqname != records[0].Seqname {
      seqnames := make([]string, len(records))
      for j := range records {
        seqnames[j] = records[j].Seqname
      }
      return nil, fmt.Errorf("%w: chromosome names differ at record %d (%s)", ErrAlignment, obj.step, strings.Join(seqnames, ", "))
    }
  }
  return records, nil
}

// Read all tracks and join records by chromosome name. Chromosomes are
// visited in the order of the first track. Records of the same
// chromosome within one track are merged.
type joinedRecords struct {
  seqnames []string
  tracks   []map[string]CoverageRecord
  i        int
}

func newJoinedRecords(readers []TrackReader) (*joinedRecords, error) {
  obj := joinedRecords{tracks: make([]map[string]CoverageRecord, len(readers))}
  for i, reader := range readers {
    obj.tracks[i] = make(map[string]CoverageRecord)
    for {
      r, err := reader.Next()
      if err == io.EOF {
        break
      }
      if err != nil {
        return nil, err
      }
      if s, ok := obj.tracks[i][r.Seqname]; ok {
        s.Positions = append(s.Positions, r.Positions...)
        s.Values    = append(s.Values,    r.Values...)
        obj.tracks[i][r.Seqname] = s
      } else {
        obj.tracks[i][r.Seqname] = r
        if i == 0 {
          obj.seqnames = append(obj.seqnames, r.Seqname)
        }
      }
    }
  }
  return &obj, nil
}

func (obj *joinedRecords) Next() ([]CoverageRecord, error) {
  if obj.i >= len(obj.seqnames) {
    return nil, io.EOF
  }
  seqname := obj.seqnames[obj.i]
  obj.i++

  records := make([]CoverageRecord, len(obj.tracks))
  for j, track := range obj.tracks {
    if r, ok := track[seqname]; !ok {
      return nil, fmt.Errorf("%w: chromosome `%s' is missing in track %s", ErrAlignment, seqname, trackNames[j])
    } else {
      records[j] = r
    }
  }
  return records, nil
}
