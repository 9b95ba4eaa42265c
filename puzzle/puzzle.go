package puzzle

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/knights"
	"github.com/katalvlaran/statespace/space"
)

// Sentinel errors for puzzle loading.
var (
	// ErrInvalid indicates a puzzle document that cannot describe a search.
	ErrInvalid = errors.New("puzzle: invalid puzzle")
	// ErrNotFound indicates an unknown classic puzzle name.
	ErrNotFound = errors.New("puzzle: no such classic puzzle")
)

//go:embed classics/*.yaml
var classicsFS embed.FS

// document mirrors the YAML layout.
type document struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Start       [][]int `yaml:"start"`
	Goal        struct {
		Board    [][]int `yaml:"board"`
		Occupies [][]int `yaml:"occupies"`
	} `yaml:"goal"`
	Limits struct {
		MaxDepth  int    `yaml:"max_depth"`
		MaxStates int    `yaml:"max_states"`
		Timeout   string `yaml:"timeout"`
	} `yaml:"limits"`
}

// Puzzle is a validated search problem over knights boards.
type Puzzle struct {
	Name        string
	Description string
	MaxDepth    int
	MaxStates   int
	Timeout     time.Duration

	start     knights.State
	target    knights.State
	hasTarget bool
	occupies  []knights.Location
}

// New builds a Puzzle searching from start to the exact board target.
func New(name string, start, target knights.State) *Puzzle {
	return &Puzzle{Name: name, start: start, target: target, hasTarget: true}
}

// NewOccupying builds a Puzzle searching from start to any board holding a
// piece on every one of locs.
func NewOccupying(name string, start knights.State, locs ...knights.Location) *Puzzle {
	return &Puzzle{Name: name, start: start, occupies: append([]knights.Location(nil), locs...)}
}

// Decode reads one YAML puzzle document from r.
func Decode(r io.Reader) (*Puzzle, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return doc.puzzle()
}

// Load reads a YAML puzzle file. A missing name defaults to the file name.
func Load(filename string) (*Puzzle, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("puzzle: open %s: %w", filename, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if p.Name == "" {
		p.Name = filepath.Base(filename)
	}

	return p, nil
}

// puzzle validates doc and converts it to a Puzzle.
func (doc *document) puzzle() (*Puzzle, error) {
	start, err := knights.FromPairs(doc.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrInvalid, err)
	}
	p := &Puzzle{
		Name:        doc.Name,
		Description: doc.Description,
		MaxDepth:    doc.Limits.MaxDepth,
		MaxStates:   doc.Limits.MaxStates,
		start:       start,
	}
	if p.MaxDepth < 0 || p.MaxStates < 0 {
		return nil, fmt.Errorf("%w: limits must be non-negative", ErrInvalid)
	}
	if doc.Limits.Timeout != "" {
		if p.Timeout, err = time.ParseDuration(doc.Limits.Timeout); err != nil || p.Timeout < 0 {
			return nil, fmt.Errorf("%w: limits.timeout %q", ErrInvalid, doc.Limits.Timeout)
		}
	}

	switch board, occ := doc.Goal.Board, doc.Goal.Occupies; {
	case board != nil && occ != nil:
		return nil, fmt.Errorf("%w: goal: board and occupies are exclusive", ErrInvalid)
	case board != nil:
		if p.target, err = knights.FromPairs(board); err != nil {
			return nil, fmt.Errorf("%w: goal.board: %w", ErrInvalid, err)
		}
		p.hasTarget = true
	case occ != nil:
		want, err := knights.FromPairs(occ)
		if err != nil {
			return nil, fmt.Errorf("%w: goal.occupies: %w", ErrInvalid, err)
		}
		p.occupies = want.Occupied()
	default:
		return nil, fmt.Errorf("%w: goal: one of board or occupies is required", ErrInvalid)
	}

	return p, nil
}

// Start returns the start board.
func (p *Puzzle) Start() knights.State { return p.start }

// Target returns the exact goal board, if the puzzle has one.
func (p *Puzzle) Target() (knights.State, bool) { return p.target, p.hasTarget }

// Occupies returns the squares an acceptable board must hold, if the puzzle
// uses an occupancy goal.
func (p *Puzzle) Occupies() []knights.Location { return p.occupies }

// Goal returns the goal predicate for the puzzle.
func (p *Puzzle) Goal() space.Goal {
	if p.hasTarget {
		return space.EqualTo(p.target)
	}
	return knights.Occupies(p.occupies...)
}

// Options returns the bfs options implied by the puzzle limits.
// The timeout is not included; see Timeout.
func (p *Puzzle) Options() []bfs.Option {
	return []bfs.Option{bfs.WithMaxDepth(p.MaxDepth), bfs.WithMaxStates(p.MaxStates)}
}

// Classics returns the bundled formation-shift puzzles, smallest first.
func Classics() ([]*Puzzle, error) {
	entries, err := classicsFS.ReadDir("classics")
	if err != nil {
		return nil, fmt.Errorf("puzzle: read classics: %w", err)
	}
	out := make([]*Puzzle, 0, len(entries))
	for _, e := range entries {
		data, err := classicsFS.ReadFile(path.Join("classics", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("puzzle: read %s: %w", e.Name(), err)
		}
		p, err := Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		out = append(out, p)
	}

	return out, nil
}

// Classic returns the bundled puzzle called name.
func Classic(name string) (*Puzzle, error) {
	all, err := Classics()
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.Name == name {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
