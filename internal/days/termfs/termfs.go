// Package termfs solves day 7: directory sizes recovered from a terminal session.
package termfs

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/udisondev/advent/internal/puzzle"
)

const Day = 7

const (
	DiskSize   = 70_000_000
	UpdateSize = 30_000_000
	SmallLimit = 100_000
)

// Tree is the directory tree seen in a session.
// Sizes are recursive: a directory includes everything below it.
type Tree struct {
	dirs  map[string]int
	files map[string]int
}

// Parse replays "$ cd" / "$ ls" commands and their output.
// Listing the same file twice counts it once.
func Parse(input string) (*Tree, error) {
	t := &Tree{
		dirs:  map[string]int{"/": 0},
		files: make(map[string]int),
	}
	var cwd []string

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fail := func(reason string) error {
			return &puzzle.ParseError{Day: Day, Line: i + 1, Text: line, Reason: reason}
		}

		switch {
		case line == "$ ls":
		case strings.HasPrefix(line, "$ cd "):
			target := strings.TrimSpace(strings.TrimPrefix(line, "$ cd "))
			switch target {
			case "/":
				cwd = cwd[:0]
			case "..":
				if len(cwd) == 0 {
					return nil, fail("cd .. above root")
				}
				cwd = cwd[:len(cwd)-1]
			default:
				cwd = append(cwd, target)
				if _, ok := t.dirs[join(cwd)]; !ok {
					t.dirs[join(cwd)] = 0
				}
			}
		case strings.HasPrefix(line, "$"):
			return nil, fail("unknown command")
		case strings.HasPrefix(line, "dir "):
			dir := join(append(slices.Clone(cwd), strings.TrimPrefix(line, "dir ")))
			if _, ok := t.dirs[dir]; !ok {
				t.dirs[dir] = 0
			}
		default:
			sizeText, name, ok := strings.Cut(line, " ")
			size, err := strconv.Atoi(sizeText)
			if !ok || err != nil || size < 0 {
				return nil, fail("expected \"<size> <name>\" or \"dir <name>\"")
			}
			t.addFile(cwd, strings.TrimSpace(name), size)
		}
	}
	return t, nil
}

func (t *Tree) addFile(cwd []string, name string, size int) {
	path := join(append(slices.Clone(cwd), name))
	if _, ok := t.files[path]; ok {
		return
	}
	t.files[path] = size
	for i := 0; i <= len(cwd); i++ {
		t.dirs[join(cwd[:i])] += size
	}
}

func join(parts []string) string {
	return "/" + strings.Join(parts, "/")
}

// Size returns the recursive size of the directory at path ("/a/e").
func (t *Tree) Size(path string) (int, bool) {
	s, ok := t.dirs[path]
	return s, ok
}

// Used returns the size of the root directory.
func (t *Tree) Used() int { return t.dirs["/"] }

// Sizes returns every directory size in ascending order.
func (t *Tree) Sizes() []int {
	return slices.Sorted(maps.Values(t.dirs))
}

// SumAtMost sums the sizes of directories no larger than limit.
// Nested directories are counted on their own and inside their parents.
func (t *Tree) SumAtMost(limit int) int {
	sum := 0
	for _, s := range t.dirs {
		if s <= limit {
			sum += s
		}
	}
	return sum
}

// SmallestToFree returns the smallest directory whose removal leaves at
// least need bytes free on a disk of size total. Zero when nothing must go.
func (t *Tree) SmallestToFree(total, need int) (int, error) {
	missing := need - (total - t.Used())
	if missing <= 0 {
		return 0, nil
	}
	for _, s := range t.Sizes() {
		if s >= missing {
			return s, nil
		}
	}
	return 0, fmt.Errorf("no directory frees %d bytes", missing)
}

// Solver solves day 7.
type Solver struct{}

func (Solver) Day() int      { return Day }
func (Solver) Title() string { return "No Space Left On Device" }

func (Solver) Solve(input string) (puzzle.Answer, error) {
	t, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	free, err := t.SmallestToFree(DiskSize, UpdateSize)
	if err != nil {
		return puzzle.Answer{}, &puzzle.ParseError{Day: Day, Reason: err.Error()}
	}
	return puzzle.Ints(t.SumAtMost(SmallLimit), free), nil
}
