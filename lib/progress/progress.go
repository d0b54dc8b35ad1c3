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

package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "fmt"
import "io"
import "os"

/* -------------------------------------------------------------------------- */

// Progress draws a status bar for n steps, the bar is updated every k
// steps.
type Progress struct {
  N, K, LineWidth int
  Label           string
}

/* -------------------------------------------------------------------------- */

func New(n, k int) Progress {
  progress := Progress{N: n, K: k, LineWidth: 40}
  if k < 1 || k > n {
    progress.K = 1
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const __line_del__ = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  var buffer bytes.Buffer

  p := 1.0
  if progress.N > 0 && i < progress.N {
    p = float64(i)/float64(progress.N)
  }
  // carriage return
  fmt.Fprintf(&buffer, "%s", __line_del__)
  if progress.Label != "" {
    fmt.Fprintf(&buffer, "%s ", progress.Label)
  }
  fmt.Fprintf(&buffer, "|")

  for j := 1; j < progress.LineWidth-1; j++ {
    if float64(j)/float64(progress.LineWidth) < p {
      fmt.Fprintf(&buffer, ">")
    } else {
      fmt.Fprintf(&buffer, " ")
    }
  }
  fmt.Fprintf(&buffer, "| %6.2f%%", p*100)
  // add newline if finished
  if p == 1.0 {
    fmt.Fprintf(&buffer, "\n")
  }
  return buffer.String()
}

// Print the status bar for step i to w. Nothing is printed for steps
// that are not a multiple of K, except for the first and the last step.
func (progress Progress) Print(w io.Writer, i int) {
  if i == 0 || i == progress.N || (i % progress.K == 0) {
    fmt.Fprint(w, progress.Exec(i))
  }
}

func (progress Progress) PrintStderr(i int) {
  progress.Print(os.Stderr, i)
}
