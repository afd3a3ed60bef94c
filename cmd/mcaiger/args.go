package main

import (
	"fmt"
	"strconv"

	"github.com/mcaiger-go/mcaiger/pkg/engine"
)

// parsedArgs is the result of scanning argv, before any file I/O happens:
// a resolved engine.Config plus the positional input path (empty meaning
// "read from stdin") and whether -h was given.
type parsedArgs struct {
	cfg  engine.Config
	path string
	help bool
}

const usage = `usage: mcaiger [-h] [-v]... [-b|-i] [-a|-d|-r|-m|-n] [-w] [maxk] [file]

  -h  print this message and exit
  -v  increase verbosity (repeatable, 0-3)
  -b  base case only (counterexample search only)
  -i  inductive case only (proof search only)
  -a  all-different observer simple-path constraints (default)
  -d  classical eager pairwise-different simple-path constraints
  -r  lazy refinement simple-path constraints
  -m  mix: observer first, fall back to refinement
  -n  no simple-path constraints
  -w  print witness on reachable verdict
  maxk  maximum bound (default: unbounded)
  file  AIG input path (default: stdin)
`

// ParseArgs scans argv in the style of original_source/mcaiger.c's main()
// loop: single-dash boolean switches, at most one bare decimal (maxk), and
// at most one bare path (the input file). It performs every flag-combination
// validation spec.md §6 names, so a returned error always means a usage
// error (exit code convention left to main).
func ParseArgs(argv []string) (parsedArgs, error) {
	var (
		out          parsedArgs
		regimeChosen bool
		regimeFlag   string
		sawK         bool
		sawPath      bool
	)
	out.cfg = engine.DefaultConfig()

	setRegime := func(flag string, r engine.Regime) error {
		if regimeChosen && regimeFlag != flag {
			return fmt.Errorf("mcaiger: -%s conflicts with earlier -%s", flag, regimeFlag)
		}
		regimeChosen = true
		regimeFlag = flag
		out.cfg.Regime = r
		return nil
	}

	for _, arg := range argv {
		if len(arg) >= 2 && arg[0] == '-' && !isNumber(arg) {
			for _, c := range arg[1:] {
				switch c {
				case 'h':
					out.help = true
				case 'v':
					out.cfg.Verbosity++
				case 'b':
					if out.cfg.InductionOnly {
						return out, fmt.Errorf("mcaiger: -b conflicts with -i")
					}
					out.cfg.BaseOnly = true
				case 'i':
					if out.cfg.BaseOnly {
						return out, fmt.Errorf("mcaiger: -i conflicts with -b")
					}
					out.cfg.InductionOnly = true
				case 'a':
					if err := setRegime("a", engine.RegimeObserver); err != nil {
						return out, err
					}
				case 'd':
					if err := setRegime("d", engine.RegimeDiff); err != nil {
						return out, err
					}
				case 'r':
					if err := setRegime("r", engine.RegimeRefine); err != nil {
						return out, err
					}
				case 'm':
					if err := setRegime("m", engine.RegimeMix); err != nil {
						return out, err
					}
				case 'n':
					if err := setRegime("n", engine.RegimeNone); err != nil {
						return out, err
					}
				case 'w':
					out.cfg.Witness = true
				default:
					return out, fmt.Errorf("mcaiger: unknown flag -%c", c)
				}
			}
			continue
		}

		if isNumber(arg) {
			if sawK {
				return out, fmt.Errorf("mcaiger: maxk given twice (%q)", arg)
			}
			k, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return out, fmt.Errorf("mcaiger: invalid maxk %q: %w", arg, err)
			}
			out.cfg.MaxK = k
			sawK = true
			continue
		}

		if sawPath {
			return out, fmt.Errorf("mcaiger: multiple input files (%q and %q)", out.path, arg)
		}
		out.path = arg
		sawPath = true
	}

	if out.help {
		return out, nil
	}

	if out.cfg.BaseOnly && regimeChosen && out.cfg.Regime != engine.RegimeNone {
		return out, fmt.Errorf("mcaiger: -b implies -n; -%s is rejected with -b", regimeFlag)
	}
	if out.cfg.BaseOnly {
		out.cfg.Regime = engine.RegimeNone
	}

	return out, nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
