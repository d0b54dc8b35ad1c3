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
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestGenome1(t *testing.T) {
  genome, err := ParseGenome(" NC_016810.1:4878012,NC_017718.1:93939, ")
  if err != nil {
    t.Error(err); return
  }
  if genome.Length() != 2 {
    t.Error("TestGenome1 failed")
  }
  if n, err := genome.SeqLength("NC_017718.1"); err != nil || n != 93939 {
    t.Error("TestGenome1 failed")
  }
  if _, err := genome.SeqLength("chr1"); !errors.Is(err, ErrConfiguration) {
    t.Error("TestGenome1 failed")
  }
}

func TestGenome2(t *testing.T) {
  for _, str := range []string{"", "chr1", "chr1:", ":100", "chr1:abc", "chr1:0", "chr1:10,chr1:20"} {
    if _, err := ParseGenome(str); !errors.Is(err, ErrConfiguration) {
      t.Errorf("TestGenome2 failed for `%s'", str)
    }
  }
}

func TestGenome3(t *testing.T) {
  // chromosome names may contain colons
  genome, err := ParseGenome("HLA-A*01:01:01:01:3503")
  if err != nil {
    t.Error(err); return
  }
  if n, _ := genome.SeqLength("HLA-A*01:01:01:01"); n != 3503 {
    t.Error("TestGenome3 failed")
  }
}

func TestGenome4(t *testing.T) {
  genome := Genome{}
  if err := genome.Read(strings.NewReader("chr1\t1000\n\n# comment\nchr2 200\n")); err != nil {
    t.Error(err); return
  }
  if genome.Length() != 2 || genome.Seqnames[1] != "chr2" || genome.Lengths[1] != 200 {
    t.Error("TestGenome4 failed")
  }
  if err := genome.Read(strings.NewReader("chr1\n")); !errors.Is(err, ErrConfiguration) {
    t.Error("TestGenome4 failed")
  }
}
