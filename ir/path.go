package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrPath = errors.New("invalid path")

type StepKind int

const (
	FieldStep StepKind = iota
	IndexStep
	AllStep
	DescendStep
)

// Step is one element of a Path.  Field is set for FieldStep and Index
// for IndexStep.
type Step struct {
	Kind  StepKind
	Field string
	Index int
}

// Path is a parsed query such as $.a[0].b, $.items[*] or $..name.  The
// empty Path denotes the root.
type Path []Step

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for i, s := range p {
		switch s.Kind {
		case FieldStep:
			if i == 0 || p[i-1].Kind != DescendStep {
				sb.WriteByte('.')
			}
			sb.WriteString(PathField(s.Field))
		case IndexStep:
			fmt.Fprintf(&sb, "[%d]", s.Index)
		case AllStep:
			sb.WriteString("[*]")
		case DescendStep:
			sb.WriteString("..")
		}
	}
	return sb.String()
}

func ParsePath(p string) (Path, error) {
	if !strings.HasPrefix(p, "$") {
		return nil, fmt.Errorf("%w %q: must start with '$'", ErrPath, p)
	}
	res := Path{}
	rest := p[1:]
	for rest != "" {
		var (
			s   Step
			err error
		)
		switch {
		case strings.HasPrefix(rest, ".."):
			if len(rest) == 2 {
				return nil, fmt.Errorf("%w %q: dangling '..'", ErrPath, p)
			}
			res = append(res, Step{Kind: DescendStep})
			rest = rest[2:]
			if rest[0] == '[' || rest[0] == '.' {
				continue
			}
			s.Field, rest, err = parseField(rest)
		case rest[0] == '.':
			s.Field, rest, err = parseField(rest[1:])
		case rest[0] == '[':
			s, rest, err = parseIndex(rest[1:])
		default:
			return nil, fmt.Errorf("%w %q: expected '.' or '[' at %q", ErrPath, p, rest)
		}
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrPath, p, err)
		}
		res = append(res, s)
	}
	return res, nil
}

func parseIndex(frag string) (Step, string, error) {
	i := strings.IndexByte(frag, ']')
	if i == -1 {
		return Step{}, "", errors.New("unterminated '['")
	}
	if frag[:i] == "*" {
		return Step{Kind: AllStep}, frag[i+1:], nil
	}
	n, err := strconv.ParseUint(frag[:i], 10, 31)
	if err != nil {
		return Step{}, "", err
	}
	return Step{Kind: IndexStep, Index: int(n)}, frag[i+1:], nil
}

func parseField(frag string) (string, string, error) {
	if frag == "" {
		return "", "", errors.New("missing field")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", errors.New("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	var sb strings.Builder
	for i := 1; i < len(frag); i++ {
		switch c := frag[i]; c {
		case '\'':
			return sb.String(), frag[i+1:], nil
		case '\\':
			if i+1 < len(frag) {
				i++
				c = frag[i]
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return "", "", errors.New("unterminated quoted field")
}

// PathField renders a member key as a path step, quoting it when it
// contains path syntax.
func PathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(f) + "'"
}

// GetPath returns a copy of the single node at yPath, or nil if a field
// along the way is missing.  Wildcard and descend steps are rejected.
func (y *Node) GetPath(yPath string) (*Node, error) {
	p, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for _, s := range p {
		switch s.Kind {
		case FieldStep:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%s: expected object, got %s", yPath, res.Type)
			}
			res = Get(res, s.Field)
			if res == nil {
				return nil, nil
			}
		case IndexStep:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%s: expected array, got %s", yPath, res.Type)
			}
			if s.Index >= len(res.Values) {
				return nil, fmt.Errorf("%s: index %d out of bounds (len %d)", yPath, s.Index, len(res.Values))
			}
			res = res.Values[s.Index]
		default:
			return nil, fmt.Errorf("%s: get needs a single-valued path", yPath)
		}
	}
	return res.Clone(), nil
}

// ListPath appends copies of every node matching yPath to dst.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	p, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return p.collect(dst, y), nil
}

func (p Path) collect(dst []*Node, y *Node) []*Node {
	if len(p) == 0 {
		return append(dst, y.Clone())
	}
	s, rest := p[0], p[1:]
	switch s.Kind {
	case FieldStep:
		if y.Type != ObjectType {
			return dst
		}
		for _, v := range y.Values {
			if v.Key == s.Field {
				dst = rest.collect(dst, v)
			}
		}
	case IndexStep:
		if y.Type == ArrayType && s.Index < len(y.Values) {
			dst = rest.collect(dst, y.Values[s.Index])
		}
	case AllStep:
		if y.Type == ArrayType {
			for _, v := range y.Values {
				dst = rest.collect(dst, v)
			}
		}
	case DescendStep:
		_ = y.Visit(func(n *Node, isPost bool) (bool, error) {
			if isPost || n.Type.IsLeaf() {
				return false, nil
			}
			dst = rest.collect(dst, n)
			return true, nil
		})
	}
	return dst
}
