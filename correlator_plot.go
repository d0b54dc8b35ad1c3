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
import "path/filepath"
import "strings"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/plotutil"
import "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

// File name of the scatter plot for the given chromosome, i.e. the
// chromosome name is inserted before the extension of c.Plot.
func (c WiggleCorrelator) plotFilename(seqname string) string {
  ext := filepath.Ext(c.Plot)
  if ext == "" {
    ext = ".pdf"
  }
  basename := strings.TrimSuffix(c.Plot, filepath.Ext(c.Plot))
  return fmt.Sprintf("%s.%s%s", basename, seqname, ext)
}

func (c WiggleCorrelator) savePlot(seqname string, x, y []float64, result CorrelationResult) error {
  filename := c.plotFilename(seqname)

  xy := make(plotter.XYs, len(x))
  for i := 0; i < len(x); i++ {
    xy[i].X = x[i]
    xy[i].Y = y[i]
  }
  p := plot.New()
  p.Title.Text = fmt.Sprintf("%s: %s correlation %.4f", seqname, c.Method, result.Coefficient)
  p.X.Label.Text = "coverage condition 1"
  p.Y.Label.Text = "coverage condition 2"

  if err := plotutil.AddScatters(p, xy); err != nil {
    return err
  }
  c.printLog(1, "Writing scatter plot to `%s'... ", filename)
  if err := p.Save(6*vg.Inch, 6*vg.Inch, filename); err != nil {
    c.printLog(1, "failed\n")
    return err
  }
  c.printLog(1, "done\n")
  return nil
}
