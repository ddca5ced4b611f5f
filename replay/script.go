package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrSyntax is flagged for script lines which are not a valid operation.
var ErrSyntax = errors.New("replay: syntax error")

// OpKind identifies a deque operation.
type OpKind int

// Operations of a script.
const (
	PushBack OpKind = iota
	PushFront
	PopBack
	PopFront
	Insert
	Erase
	Clear
	At
	Front
	Back
)

var opNames = [...]string{"push_back", "push_front", "pop_back", "pop_front",
	"insert", "erase", "clear", "at", "front", "back"}

func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
	return opNames[k]
}

// takesIndex and takesValue describe the arguments of an operation.
func (k OpKind) takesIndex() bool { return k == Insert || k == Erase || k == At }
func (k OpKind) takesValue() bool { return k == PushBack || k == PushFront || k == Insert }

// Op is a single operation of a script.
type Op struct {
	Kind  OpKind
	Index int    // for insert, erase and at
	Value string // for pushes and insert
	Line  int    // line number in the script, starting at 1
}

func (op Op) String() string {
	var sb strings.Builder
	sb.WriteString(op.Kind.String())
	if op.Kind.takesIndex() {
		fmt.Fprintf(&sb, " %d", op.Index)
	}
	if op.Kind.takesValue() {
		sb.WriteByte(' ')
		sb.WriteString(op.Value)
	}
	return sb.String()
}

// Load reads a script file. The file must be a regular file.
func Load(name string) ([]Op, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file: %s", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	ops, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	tracer().Infof("loaded %d operations from %s", len(ops), name)
	return ops, nil
}

// Parse reads a script from r.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineno, err)
		}
		op.Line = lineno
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

func parseLine(line string) (Op, error) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	var op Op
	found := false
	for k, name := range opNames {
		if cmd == name {
			op.Kind, found = OpKind(k), true
			break
		}
	}
	if !found {
		return op, fmt.Errorf("unknown operation %q", cmd)
	}
	if op.Kind.takesIndex() {
		var arg string
		arg, rest, _ = strings.Cut(rest, " ")
		rest = strings.TrimSpace(rest)
		i, err := strconv.Atoi(arg)
		if err != nil {
			return op, fmt.Errorf("%s: index expected, have %q", cmd, arg)
		}
		op.Index = i
	}
	if op.Kind.takesValue() {
		if rest == "" {
			return op, fmt.Errorf("%s: value expected", cmd)
		}
		op.Value = rest
	} else if rest != "" {
		return op, fmt.Errorf("%s: unexpected argument %q", cmd, rest)
	}
	return op, nil
}
