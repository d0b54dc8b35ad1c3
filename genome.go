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
import "bytes"
import "database/sql"
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

import _ "github.com/go-sql-driver/mysql"

/* -------------------------------------------------------------------------- */

// Structure containing chromosome sizes. Chromosomes are also called
// replicons, since bacterial genomes often consist of a chromosome and
// several plasmids.
type Genome struct {
  Seqnames []string
  Lengths  []int
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewGenome(seqnames []string, lengths []int) Genome {
  if len(seqnames) != len(lengths) {
    panic("NewGenome(): invalid parameters")
  }
  return Genome{seqnames, lengths}
}

// Parse a chromosome size table of the form `name1:length1,name2:length2'.
// Empty items are ignored, so that a trailing comma is allowed.
func ParseGenome(str string) (Genome, error) {
  seqnames := []string{}
  lengths  := []int{}

  for _, item := range strings.Split(strings.TrimSpace(str), ",") {
    item = strings.TrimSpace(item)
    if item == "" {
      continue
    }
    i := strings.LastIndex(item, ":")
    if i <= 0 || i == len(item)-1 {
      return Genome{}, fmt.Errorf("%w: invalid chromosome size `%s' (expected name:length)", ErrConfiguration, item)
    }
    t, err := strconv.ParseInt(item[i+1:], 10, 64)
    if err != nil {
      return Genome{}, fmt.Errorf("%w: invalid length of chromosome `%s': %v", ErrConfiguration, item[0:i], err)
    }
    seqnames = append(seqnames, item[0:i])
    lengths  = append(lengths,  int(t))
  }
  genome := NewGenome(seqnames, lengths)
  if err := genome.validate(); err != nil {
    return Genome{}, err
  }
  return genome, nil
}

/* -------------------------------------------------------------------------- */

func (genome Genome) validate() error {
  if genome.Length() == 0 {
    return fmt.Errorf("%w: chromosome size table is empty", ErrConfiguration)
  }
  seen := make(map[string]bool)
  for i, seqname := range genome.Seqnames {
    if seen[seqname] {
      return fmt.Errorf("%w: chromosome `%s' is defined more than once", ErrConfiguration, seqname)
    }
    if genome.Lengths[i] <= 0 {
      return fmt.Errorf("%w: chromosome `%s' has invalid length %d", ErrConfiguration, seqname, genome.Lengths[i])
    }
    seen[seqname] = true
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Number of chromosomes in the structure.
func (genome Genome) Length() int {
  return len(genome.Seqnames)
}

// Length of the given chromosome. Returns a configuration error if the
// chromosome is not found.
func (genome Genome) SeqLength(seqname string) (int, error) {
  for i, s := range genome.Seqnames {
    if seqname == s {
      return genome.Lengths[i], nil
    }
  }
  return 0, fmt.Errorf("%w: chromosome `%s' not found in chromosome size table", ErrConfiguration, seqname)
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (genome Genome) String() string {
  var buffer bytes.Buffer

  buffer.WriteString(
    fmt.Sprintf("%10s %10s", "seqnames", "lengths"))

  for i := 0; i < genome.Length(); i++ {
    buffer.WriteString(
      fmt.Sprintf("\n%10s %10d",
        genome.Seqnames[i],
        genome.Lengths [i]))
  }
  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read chromosome sizes from a UCSC text file. The format is a whitespace
// separated table where the first column is the name of the chromosome and
// the second column the chromosome length.
func (genome *Genome) Read(r io.Reader) error {
  seqnames := []string{}
  lengths  := []int{}

  scanner := bufio.NewScanner(r)
  for line := 1; scanner.Scan(); line++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
      continue
    }
    if len(fields) < 2 {
      return fmt.Errorf("%w: line %d of chromosome size table has less than two columns", ErrConfiguration, line)
    }
    t, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return fmt.Errorf("%w: line %d of chromosome size table: %v", ErrConfiguration, line, err)
    }
    seqnames = append(seqnames, fields[0])
    lengths  = append(lengths,  int(t))
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  result := NewGenome(seqnames, lengths)
  if err := result.validate(); err != nil {
    return err
  }
  *genome = result
  return nil
}

func (genome *Genome) Import(filename string) error {
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  r, err := openReader(f)
  if err != nil {
    return err
  }
  return genome.Read(r)
}

// Import chromosome sizes of an assembly (e.g. hg19) from the chromInfo
// table of the public UCSC MySQL server.
func ImportGenomeFromUCSC(assembly string) (Genome, error) {
  var i_seqname string
  var i_length  int

  seqnames := []string{}
  lengths  := []int{}

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.soe.ucsc.edu:3306)/%s", assembly))
  if err != nil {
    return Genome{}, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return Genome{}, err
  }

  /* receive data */
  rows, err := db.Query("SELECT chrom, size FROM chromInfo")
  if err != nil {
    return Genome{}, err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_seqname, &i_length); err != nil {
      return Genome{}, err
    }
    seqnames = append(seqnames, i_seqname)
    lengths  = append(lengths,  i_length)
  }
  if err := rows.Err(); err != nil {
    return Genome{}, err
  }
  genome := NewGenome(seqnames, lengths)
  if err := genome.validate(); err != nil {
    return Genome{}, err
  }
  return genome, nil
}
