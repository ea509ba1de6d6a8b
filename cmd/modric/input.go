package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/modric/modric/ir"
	"github.com/modric/modric/parse"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/scott-cotton/cli"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// readInput reads all of r.  Gzip and zstd streams are recognized by their
// magic number and decompressed.
func readInput(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return io.ReadAll(br)
}

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := readInput(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// inputName strips compression suffixes so the format can be guessed from
// what remains.
func inputName(path string) string {
	for _, s := range []string{".gz", ".zst"} {
		path = strings.TrimSuffix(path, s)
	}
	return path
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// splitDocs splits an input holding several documents separated by lines
// containing only "---".  Blank documents, such as the one before a
// leading separator, are dropped.
func splitDocs(d []byte) [][]byte {
	var res [][]byte
	start := 0
	add := func(doc []byte) {
		if len(bytes.TrimSpace(doc)) != 0 {
			res = append(res, doc)
		}
	}
	for i := 0; i < len(d); {
		end := bytes.IndexByte(d[i:], '\n')
		next := len(d)
		if end == -1 {
			end = len(d)
		} else {
			end += i
			next = end + 1
		}
		if string(bytes.TrimRight(d[i:end], "\r")) == "---" {
			add(d[start:i])
			start = next
		}
		i = next
	}
	add(d[start:])
	if len(res) == 0 {
		return [][]byte{d}
	}
	return res
}

// eachDoc calls f on every document of every file, writing a separator to
// w between results.  No files means stdin.
func eachDoc(cc *cli.Context, files []string, optsFor func(string) []parse.ParseOption, f func(*ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	first := true
	for _, file := range files {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		for i, doc := range splitDocs(d) {
			y, err := parse.Parse(doc, optsFor(file)...)
			if err != nil {
				return fmt.Errorf("error decoding %s document %d: %w", file, i, err)
			}
			if !first {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			first = false
			if err := f(y); err != nil {
				return fmt.Errorf("error processing %s document %d: %w", file, i, err)
			}
		}
	}
	return nil
}
