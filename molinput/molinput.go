// Package molinput reads and writes molecular input files.
//
// An input file names a basis (one exponent per atom label), a geometry
// (one atom per line) and optional directives:
//
//	basis,
//	C, 0.2
//	basisend
//	geom,
//	C, 0.000000, 1.250000, -3.500000
//	geomend
//	threshold, 1e-6
//	print, sparsegraph, 100
//	orthog, canonical, 5
//
// Everything after '!' on a line is a comment.
package molinput

// DefaultThreshold applies when the file has no threshold directive.
const DefaultThreshold = 1e-4

// Atom is one geometry line.
type Atom struct {
	Label   string
	X, Y, Z float64
}

// BasisEntry assigns a Gaussian exponent to every atom with Label.
type BasisEntry struct {
	Label    string
	Exponent float64
}

// Method selects an orthogonalisation procedure.
type Method int

const (
	Canonical Method = iota + 1
	GramSchmidt
	SymLowdin
)

func (m Method) String() string {
	switch m {
	case Canonical:
		return "canonical"
	case GramSchmidt:
		return "gram schmidt"
	case SymLowdin:
		return "symmetric lowdin"
	}
	return "unknown"
}

// CommandKind identifies a post-geometry command.
type CommandKind int

const (
	PrintIntegrals CommandKind = iota + 1
	PrintSparseGraph
	Orthogonalise
)

// Command is one print or orthog directive, in file order.
type Command struct {
	Kind CommandKind
	// Fineness is the number of blocks per side for PrintSparseGraph.
	Fineness int
	// Method and N apply to Orthogonalise: the first N basis functions.
	Method Method
	N      int
}

// Input is a parsed molecular input file.
type Input struct {
	Basis     []BasisEntry
	Geometry  []Atom
	Threshold float64
	Commands  []Command
}
