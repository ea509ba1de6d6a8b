package format

import (
	"errors"
	"fmt"
	"path"
)

type Format int

const (
	EDNFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	name, short string
	suffixes    []string
	parseable   bool
}

// infos is indexed by Format.
var infos = []formatInfo{
	EDNFormat:  {name: "edn", short: "e", suffixes: []string{".edn"}, parseable: true},
	JSONFormat: {name: "json", short: "j", suffixes: []string{".json"}, parseable: true},
	YAMLFormat: {name: "yaml", short: "y", suffixes: []string{".yaml", ".yml"}},
}

func (f Format) info() *formatInfo {
	if f < 0 || int(f) >= len(infos) {
		return nil
	}
	return &infos[f]
}

// ParseFormat accepts a format name or its one letter abbreviation.
func ParseFormat(v string) (Format, error) {
	for i := range infos {
		if v == infos[i].name || v == infos[i].short {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	fi := f.info()
	if fi == nil {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(fi.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsEDN() bool  { return f == EDNFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Parseable reports whether documents in this format can be read back by
// the parser.
func (f Format) Parseable() bool {
	fi := f.info()
	return fi != nil && fi.parseable
}

// Suffix returns the preferred file extension, including the dot.
func (f Format) Suffix() string {
	fi := f.info()
	if fi == nil {
		return ""
	}
	return fi.suffixes[0]
}

// FromSuffix guesses a format from a file name or URI extension.
func FromSuffix(name string) (Format, bool) {
	ext := path.Ext(name)
	for i := range infos {
		for _, s := range infos[i].suffixes {
			if ext == s {
				return Format(i), true
			}
		}
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{EDNFormat, JSONFormat, YAMLFormat}
}
