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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "io"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/wigcorr"

/* -------------------------------------------------------------------------- */

type SessionConfig struct {
  Format     string
  JoinByName bool
  Method     string
  Plot       string
  Status     bool
  Threads    int
  Verbose    int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config SessionConfig, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importGenome(config SessionConfig, repSizes, filename, assembly string) Genome {
  genome := Genome{}
  switch {
  case repSizes != "":
    if g, err := ParseGenome(repSizes); err != nil {
      log.Fatal(err)
    } else {
      genome = g
    }
  case filename != "":
    PrintStderr(config, 1, "Reading chromosome sizes from `%s'... ", filename)
    if err := genome.Import(filename); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  case assembly != "":
    PrintStderr(config, 1, "Importing chromosome sizes of `%s' from UCSC... ", assembly)
    if g, err := ImportGenomeFromUCSC(assembly); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    } else {
      PrintStderr(config, 1, "done\n")
      genome = g
    }
  default:
    log.Fatal("chromosome sizes are required (--rep_sizes, --genome or --ucsc)")
  }
  PrintStderr(config, 2, "%v\n", genome)
  return genome
}

func newTrackReader(config SessionConfig, r io.Reader) (TrackReader, error) {
  switch config.Format {
  case "wiggle":
    return NewWiggleReader(r)
  case "bedGraph":
    return NewBedGraphReader(r)
  default:
    return nil, fmt.Errorf("invalid track format `%s'", config.Format)
  }
}

// Open a track file, nil is returned for an empty filename.
func openTrack(config SessionConfig, filename string) (TrackReader, *os.File) {
  if filename == "" {
    return nil, nil
  }
  PrintStderr(config, 1, "Opening track `%s'\n", filename)
  f, err := os.Open(filename)
  if err != nil {
    log.Fatal(err)
  }
  reader, err := newTrackReader(config, f)
  if err != nil {
    f.Close()
    log.Fatalf("opening track `%s' failed: %v", filename, err)
  }
  return reader, f
}

/* -------------------------------------------------------------------------- */

func wiggleCorrelation(config SessionConfig, genome Genome, filename1a, filename1b, filename2a, filename2b string) {
  method, err := ParseCorrelationMethod(config.Method)
  if err != nil {
    log.Fatal(err)
  }
  if (filename1b == "") != (filename2b == "") {
    log.Fatal("second track files must be given for both conditions or for none")
  }
  tracks := make([]TrackReader, 4)
  for i, filename := range []string{filename1a, filename2a, filename1b, filename2b} {
    if r, f := openTrack(config, filename); f != nil {
      defer f.Close()
      tracks[i] = r
    }
  }
  correlator := NewWiggleCorrelator(genome, method)
  correlator.JoinByName = config.JoinByName
  correlator.Threads    = config.Threads
  correlator.Plot       = config.Plot
  correlator.Verbose    = config.Verbose
  correlator.Log        = os.Stderr
  if config.Status {
    correlator.Progress = os.Stderr
  }
  if err := correlator.Correlate(os.Stdout, tracks[0], tracks[1], tracks[2], tracks[3]); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := SessionConfig{}
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  optTrack1a    := options. StringLong("wiggle_file_1a", 0 , "",         "first track of condition 1")
  optTrack1b    := options. StringLong("wiggle_file_1b", 0 , "",         "second track of condition 1 [optional]")
  optTrack2a    := options. StringLong("wiggle_file_2a", 0 , "",         "first track of condition 2")
  optTrack2b    := options. StringLong("wiggle_file_2b", 0 , "",         "second track of condition 2 [optional]")
  optMethod     := options. StringLong("method",        'm', "pearson",  "correlation method [pearson (default), spearman]")
  optRepSizes   := options. StringLong("rep_sizes",     'r', "",         "chromosome sizes (name1:length1,name2:length2,...)")
  optGenome     := options. StringLong("genome",         0 , "",         "read chromosome sizes from file")
  optUCSC       := options. StringLong("ucsc",           0 , "",         "import chromosome sizes of an assembly from UCSC")
  optFormat     := options. StringLong("format",         0 , "wiggle",   "track format [wiggle (default), bedGraph]")
  optJoin       := options.   BoolLong("join-by-name",   0 ,             "join tracks by chromosome name")
  optPlot       := options. StringLong("plot",           0 , "",         "save scatter plots to file")
  optStatus     := options.   BoolLong("status",         0 ,             "show status bar")
  optThreads    := options.    IntLong("threads",        0 ,  1,         "number of threads")
  optVerbose    := options.CounterLong("verbose",       'v',             "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",          'h',             "print help")

  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 0 || *optTrack1a == "" || *optTrack2a == "" {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Format     = *optFormat
  config.JoinByName = *optJoin
  config.Method     = *optMethod
  config.Plot       = *optPlot
  config.Status     = *optStatus
  config.Threads    = *optThreads
  config.Verbose    = *optVerbose

  genome := importGenome(config, *optRepSizes, *optGenome, *optUCSC)

  wiggleCorrelation(config, genome, *optTrack1a, *optTrack1b, *optTrack2a, *optTrack2b)
}
