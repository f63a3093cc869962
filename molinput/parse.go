package molinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNoBasis      = errors.New("molinput: no basis specification")
	ErrNoGeometry   = errors.New("molinput: no geometry specification")
	ErrUnterminated = errors.New("molinput: unterminated section")
	ErrBadCommand   = errors.New("molinput: invalid command")
	ErrBadLine      = errors.New("molinput: malformed line")
)

// Parse reads a complete input file. Directive names are matched without
// regard to case or spaces; atom labels are matched exactly. Print and
// orthog commands are kept in file order.
func Parse(r io.Reader) (*Input, error) {
	in := &Input{Threshold: DefaultThreshold}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return stripComment(sc.Text()), true
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		head, rest, found := strings.Cut(line, ",")
		if !found {
			continue
		}

		switch token(head) {
		case "basis":
			for {
				l, ok := next()
				if !ok {
					return nil, fmt.Errorf("%w: basis without basisend", ErrUnterminated)
				}
				if token(l) == "basisend" {
					break
				}
				if strings.TrimSpace(l) == "" {
					continue
				}
				e, err := parseBasisLine(l)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				in.Basis = append(in.Basis, e)
			}

		case "geom":
			for {
				l, ok := next()
				if !ok {
					return nil, fmt.Errorf("%w: geom without geomend", ErrUnterminated)
				}
				if token(l) == "geomend" {
					break
				}
				if strings.TrimSpace(l) == "" {
					continue
				}
				a, err := parseAtomLine(l)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				in.Geometry = append(in.Geometry, a)
			}

		case "threshold":
			v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: threshold %q", lineNo, ErrBadLine, strings.TrimSpace(rest))
			}
			in.Threshold = v

		case "print":
			cmd, err := parsePrint(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			in.Commands = append(in.Commands, cmd)

		case "orthog":
			cmd, err := parseOrthog(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			in.Commands = append(in.Commands, cmd)

		default:
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrBadCommand, strings.TrimSpace(head))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("molinput: read: %w", err)
	}

	switch {
	case len(in.Basis) == 0:
		return nil, ErrNoBasis
	case len(in.Geometry) == 0:
		return nil, ErrNoGeometry
	}
	return in, nil
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, '!'); i >= 0 {
		return s[:i]
	}
	return s
}

// token lowercases s and drops all whitespace, so " Sparse Graph" matches
// "sparsegraph".
func token(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseBasisLine(l string) (BasisEntry, error) {
	f := splitFields(l)
	if len(f) != 2 || f[0] == "" {
		return BasisEntry{}, fmt.Errorf("%w: basis entry %q", ErrBadLine, strings.TrimSpace(l))
	}
	exp, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return BasisEntry{}, fmt.Errorf("%w: exponent %q", ErrBadLine, f[1])
	}
	return BasisEntry{Label: f[0], Exponent: exp}, nil
}

func parseAtomLine(l string) (Atom, error) {
	f := splitFields(l)
	if len(f) != 4 || f[0] == "" {
		return Atom{}, fmt.Errorf("%w: atom %q", ErrBadLine, strings.TrimSpace(l))
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(f[i+1], 64)
		if err != nil {
			return Atom{}, fmt.Errorf("%w: coordinate %q", ErrBadLine, f[i+1])
		}
		xyz[i] = v
	}
	return Atom{Label: f[0], X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

func parsePrint(rest string) (Command, error) {
	f := splitFields(rest)
	switch token(f[0]) {
	case "integrals":
		return Command{Kind: PrintIntegrals}, nil
	case "sparsegraph":
		if len(f) < 2 {
			return Command{}, fmt.Errorf("%w: sparsegraph needs a fineness", ErrBadCommand)
		}
		n, err := strconv.Atoi(f[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: fineness %q", ErrBadCommand, f[1])
		}
		return Command{Kind: PrintSparseGraph, Fineness: n}, nil
	}
	return Command{}, fmt.Errorf("%w: print %q", ErrBadCommand, f[0])
}

func parseOrthog(rest string) (Command, error) {
	f := splitFields(rest)
	if len(f) < 2 {
		return Command{}, fmt.Errorf("%w: no orthogonalisation method specified", ErrBadCommand)
	}
	var m Method
	switch token(f[0]) {
	case "canonical":
		m = Canonical
	case "gramschmidt":
		m = GramSchmidt
	case "symlowdin":
		m = SymLowdin
	default:
		return Command{}, fmt.Errorf("%w: orthog %q", ErrBadCommand, f[0])
	}
	n, err := strconv.Atoi(f[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: function count %q", ErrBadCommand, f[1])
	}
	return Command{Kind: Orthogonalise, Method: m, N: n}, nil
}
