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
import "math"
import "sort"
import "strings"

import "gonum.org/v1/gonum/stat"
import "gonum.org/v1/gonum/stat/distuv"

/* -------------------------------------------------------------------------- */

type CorrelationResult struct {
  Coefficient float64
  PValue      float64
}

func (r CorrelationResult) String() string {
  return fmt.Sprintf("%v (%v)", r.Coefficient, r.PValue)
}

/* -------------------------------------------------------------------------- */

type CorrelationMethod int

const (
  MethodPearson CorrelationMethod = iota
  MethodSpearman
)

func ParseCorrelationMethod(str string) (CorrelationMethod, error) {
  switch strings.ToLower(str) {
  case "pearson":
    return MethodPearson, nil
  case "spearman":
    return MethodSpearman, nil
  default:
    return MethodPearson, fmt.Errorf("%w: invalid correlation method `%s' (expected pearson or spearman)", ErrConfiguration, str)
  }
}

func (method CorrelationMethod) String() string {
  switch method {
  case MethodPearson:
    return "pearson"
  case MethodSpearman:
    return "spearman"
  default:
    return fmt.Sprintf("CorrelationMethod(%d)", int(method))
  }
}

// Transformation applied to both vectors before the Pearson correlation
// is computed. The Spearman correlation is the Pearson correlation of
// ranks.
func (method CorrelationMethod) Transform(x []float64) []float64 {
  if method == MethodSpearman {
    return Rank(x)
  }
  return x
}

func (method CorrelationMethod) Correlate(x, y []float64) (CorrelationResult, error) {
  if method == MethodSpearman {
    return Spearman(x, y)
  }
  return Pearson(x, y)
}

/* -------------------------------------------------------------------------- */

// Rank values in ascending order, starting with one. Tied values receive
// the average of their ranks.
func Rank(x []float64) []float64 {
  obj := newSortFloat64Index(x)
  sort.Stable(obj)

  r := make([]float64, len(x))
  for i, j := 0, 0; i < len(x); i = j {
    for j = i+1; j < len(x) && obj.values[j] == obj.values[i]; j++ {
    }
    // average of ranks i+1, ..., j
    rank := float64(i+j+1)/2.0
    for k := i; k < j; k++ {
      r[obj.index[k]] = rank
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

func isConstant(x []float64) bool {
  for i := 1; i < len(x); i++ {
    if x[i] != x[0] {
      return false
    }
  }
  return true
}

// Two-sided p-value for the null hypothesis of zero correlation, using
// a t-distribution with n-2 degrees of freedom.
func correlationPValue(r float64, n int) float64 {
  if n <= 2 {
    return 1.0
  }
  if math.Abs(r) == 1.0 {
    return 0.0
  }
  df := float64(n-2)
  t  := r*math.Sqrt(df/(1.0-r*r))
  d  := distuv.StudentsT{Mu: 0.0, Sigma: 1.0, Nu: df}
  return 2.0*d.Survival(math.Abs(t))
}

// Pearson correlation coefficient and p-value. An error is returned if
// the correlation is undefined, i.e. if the vectors have different
// lengths, less than two values or zero variance.
func Pearson(x, y []float64) (CorrelationResult, error) {
  if len(x) != len(y) {
    return CorrelationResult{}, fmt.Errorf("%w: vectors have different lengths (%d and %d)", ErrUndefined, len(x), len(y))
  }
  if len(x) < 2 {
    return CorrelationResult{}, fmt.Errorf("%w: at least two values required, got %d", ErrUndefined, len(x))
  }
  if isConstant(x) || isConstant(y) {
    return CorrelationResult{}, fmt.Errorf("%w: zero variance", ErrUndefined)
  }
  r := stat.Correlation(x, y, nil)
  if math.IsNaN(r) {
    return CorrelationResult{}, fmt.Errorf("%w: correlation is NaN", ErrUndefined)
  }
  // rounding errors
  r = math.Max(-1.0, math.Min(1.0, r))

  return CorrelationResult{r, correlationPValue(r, len(x))}, nil
}

// Spearman rank correlation coefficient and p-value.
func Spearman(x, y []float64) (CorrelationResult, error) {
  if len(x) != len(y) {
    return CorrelationResult{}, fmt.Errorf("%w: vectors have different lengths (%d and %d)", ErrUndefined, len(x), len(y))
  }
  return Pearson(Rank(x), Rank(y))
}
