// SPDX-License-Identifier: MIT
//
// Package pajek reads and writes networks in the Pajek text format.
//
// Read accepts the subset of Pajek found in edge-list style network files:
//
//	% comment
//	*Network name            (ignored)
//	*Vertices 4              (vertices 1..4 unless vertex lines follow)
//	1 "a"
//	*Arcs | *Edges           (one edge per line, weight ignored)
//	1 2 1.0
//	*Arcslist | *Edgeslist   (u v1 v2 ... adds u→vk for every k)
//
// Lines before any section header name one vertex (one field) or one edge (two
// or more fields). Section keywords are case-insensitive. Whether arcs are
// directed is decided by the caller, never by the section keyword, so the same
// file can be loaded either way.
package pajek

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/snowball/core"
)

// ErrSyntax is returned for malformed input; the message carries the line number.
var ErrSyntax = errors.New("pajek: syntax error")

// maxLine bounds a single input line (long *arcslist rows on hub nodes).
const maxLine = 16 << 20

type section int

const (
	secNone section = iota
	secVertices
	secEdges
	secEdgeList
)

// reader holds parse state for one input stream.
type reader struct {
	g    *core.Graph
	sec  section
	line int

	declared  int // N from the last *vertices header
	vertLines int // vertex lines seen since that header
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, directed bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pajek: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f, directed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Read parses a Pajek network from r into a new graph. The graph keeps
// parallel edges and self-loops exactly as listed.
func Read(r io.Reader, directed bool) (*core.Graph, error) {
	p := &reader{
		g: core.NewGraph(core.WithDirected(directed), core.WithMultiEdges(), core.WithLoops()),
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pajek: read line %d: %w", p.line+1, err)
	}
	if err := p.closeVertices(); err != nil {
		return nil, err
	}

	return p.g, nil
}

func (p *reader) parseLine(raw string) error {
	text := strings.TrimSpace(raw)
	if text == "" || text[0] == '%' {
		return nil
	}
	if text[0] == '*' {
		return p.header(text)
	}

	fields := strings.Fields(text)
	switch p.sec {
	case secVertices:
		p.vertLines++
		return p.vertex(fields[0])
	case secEdges:
		if len(fields) < 2 {
			return p.errorf("edge line needs two endpoints, got %q", text)
		}
		return p.edge(fields[0], fields[1])
	case secEdgeList:
		for _, to := range fields[1:] {
			if err := p.edge(fields[0], to); err != nil {
				return err
			}
		}
		return p.vertex(fields[0])
	default:
		if len(fields) == 1 {
			return p.vertex(fields[0])
		}
		return p.edge(fields[0], fields[1])
	}
}

// header switches section on a *keyword line.
func (p *reader) header(text string) error {
	if err := p.closeVertices(); err != nil {
		return err
	}

	fields := strings.Fields(text)
	switch strings.ToLower(fields[0]) {
	case "*vertices":
		if len(fields) < 2 {
			return p.errorf("*vertices needs a count")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return p.errorf("bad vertex count %q", fields[1])
		}
		p.sec, p.declared, p.vertLines = secVertices, n, 0
	case "*arcs", "*edges":
		p.sec = secEdges
	case "*arcslist", "*edgeslist":
		p.sec = secEdgeList
	case "*network":
		p.sec = secNone
	default:
		return p.errorf("unsupported section %q", fields[0])
	}

	return nil
}

// closeVertices materializes 1..N for a *vertices header with no vertex lines.
func (p *reader) closeVertices() error {
	if p.sec != secVertices || p.vertLines > 0 {
		p.declared = 0
		return nil
	}
	for id := 1; id <= p.declared; id++ {
		if err := p.g.AddVertex(id); err != nil {
			return p.errorf("vertex %d: %v", id, err)
		}
	}
	p.declared = 0

	return nil
}

func (p *reader) vertex(tok string) error {
	id, err := p.id(tok)
	if err != nil {
		return err
	}

	return p.g.AddVertex(id)
}

func (p *reader) edge(fromTok, toTok string) error {
	from, err := p.id(fromTok)
	if err != nil {
		return err
	}
	to, err := p.id(toTok)
	if err != nil {
		return err
	}
	if _, err = p.g.AddEdge(from, to); err != nil {
		return p.errorf("edge %d->%d: %v", from, to, err)
	}

	return nil
}

func (p *reader) id(tok string) (int, error) {
	id, err := strconv.Atoi(tok)
	if err != nil || id < 0 {
		return 0, p.errorf("bad node id %q", tok)
	}

	return id, nil
}

func (p *reader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, p.line, fmt.Sprintf(format, args...))
}
