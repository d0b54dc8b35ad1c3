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

import   "errors"
import   "math"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestPearson1(t *testing.T) {
  r, err := Pearson([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4})
  if err != nil {
    t.Error(err); return
  }
  if math.Abs(r.Coefficient - 1.0) > 1e-12 {
    t.Errorf("TestPearson1 failed: %v", r)
  }
  if r.PValue > 1e-8 {
    t.Errorf("TestPearson1 failed: %v", r)
  }
}

func TestPearson2(t *testing.T) {
  r, err := Pearson([]float64{1, 2, 3, 4}, []float64{4, 3, 2, 1})
  if err != nil {
    t.Error(err); return
  }
  if math.Abs(r.Coefficient + 1.0) > 1e-12 {
    t.Errorf("TestPearson2 failed: %v", r)
  }
}

func TestPearson3(t *testing.T) {
  r, err := Pearson([]float64{1, 2, 3, 4, 5}, []float64{2, 1, 4, 3, 5})
  if err != nil {
    t.Error(err); return
  }
  if math.Abs(r.Coefficient - 0.8) > 1e-12 {
    t.Errorf("TestPearson3 failed: %v", r)
  }
  if math.Abs(r.PValue - 0.1040880387552987) > 1e-6 {
    t.Errorf("TestPearson3 failed: %v", r)
  }
}

func TestPearson4(t *testing.T) {
  // undefined correlations
  if _, err := Pearson([]float64{1, 1, 1, 1}, []float64{1, 2, 3, 4}); !errors.Is(err, ErrUndefined) {
    t.Error("TestPearson4 failed")
  }
  if _, err := Pearson([]float64{1, 2, 3, 4}, []float64{0, 0, 0, 0}); !errors.Is(err, ErrUndefined) {
    t.Error("TestPearson4 failed")
  }
  if _, err := Pearson([]float64{1}, []float64{2}); !errors.Is(err, ErrUndefined) {
    t.Error("TestPearson4 failed")
  }
  if _, err := Pearson([]float64{}, []float64{}); !errors.Is(err, ErrUndefined) {
    t.Error("TestPearson4 failed")
  }
  if _, err := Pearson([]float64{1, 2}, []float64{1, 2, 3}); !errors.Is(err, ErrUndefined) {
    t.Error("TestPearson4 failed")
  }
}

func TestPearson5(t *testing.T) {
  // two values are always perfectly correlated
  r, err := Pearson([]float64{1, 2}, []float64{5, 3})
  if err != nil {
    t.Error(err); return
  }
  if math.Abs(r.Coefficient + 1.0) > 1e-12 || r.PValue != 1.0 {
    t.Errorf("TestPearson5 failed: %v", r)
  }
}

/* -------------------------------------------------------------------------- */

func TestRank1(t *testing.T) {
  x := Rank([]float64{3, 1, 3, 2, 3})
  r := []float64{4, 1, 4, 2, 4}

  for i := 0; i < len(r); i++ {
    if x[i] != r[i] {
      t.Errorf("TestRank1 failed: %v", x); break
    }
  }
}

func TestSpearman1(t *testing.T) {
  r, err := Spearman([]float64{0, 5, 0, 1, 0, 2}, []float64{0, 4, 1, 1, 0, 3})
  if err != nil {
    t.Error(err); return
  }
  if math.Abs(r.Coefficient - 0.9066928292470475) > 1e-8 {
    t.Errorf("TestSpearman1 failed: %v", r)
  }
  if math.Abs(r.PValue - 0.012653165414255447) > 1e-6 {
    t.Errorf("TestSpearman1 failed: %v", r)
  }
}

func TestSpearman2(t *testing.T) {
  // monotonic but not linear
  r, err := Spearman([]float64{1, 2, 3, 4, 5}, []float64{1, 4, 9, 16, 100})
  if err != nil {
    t.Error(err); return
  }
  if math.Abs(r.Coefficient - 1.0) > 1e-12 || r.PValue > 1e-8 {
    t.Errorf("TestSpearman2 failed: %v", r)
  }
  if _, err := Spearman([]float64{2, 2, 2}, []float64{1, 2, 3}); !errors.Is(err, ErrUndefined) {
    t.Error("TestSpearman2 failed")
  }
}

func TestCorrelationMethod1(t *testing.T) {
  if m, err := ParseCorrelationMethod("spearman"); err != nil || m != MethodSpearman {
    t.Error("TestCorrelationMethod1 failed")
  }
  if m, err := ParseCorrelationMethod("Pearson"); err != nil || m != MethodPearson || m.String() != "pearson" {
    t.Error("TestCorrelationMethod1 failed")
  }
  if _, err := ParseCorrelationMethod("kendall"); !errors.Is(err, ErrConfiguration) {
    t.Error("TestCorrelationMethod1 failed")
  }
}

func TestCorrelationMethod2(t *testing.T) {
  x := []float64{1, 2, 3, 4, 5}
  y := []float64{1, 4, 9, 16, 100}

  r1, err1 := MethodPearson .Correlate(x, y)
  r2, err2 := MethodSpearman.Correlate(x, y)
  if err1 != nil || err2 != nil {
    t.Error("TestCorrelationMethod2 failed"); return
  }
  if s, _ := Pearson(x, y); r1 != s {
    t.Errorf("TestCorrelationMethod2 failed: %v", r1)
  }
  if s, _ := Spearman(x, y); r2 != s || math.Abs(r2.Coefficient - 1.0) > 1e-12 {
    t.Errorf("TestCorrelationMethod2 failed: %v", r2)
  }
  if r1.Coefficient >= r2.Coefficient {
    t.Error("TestCorrelationMethod2 failed")
  }
}
