package ioformats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergmee/digraph"
)

// LoadNetwork reads a Pajek-like directed network file from path: a first
// non-empty line "*vertices <n>" (case-insensitive), any number of ignored
// lines up to one whose trimmed, lowercased content is "*arcs", then arc
// lines "i j" giving 1-based node indices. Reading stops at EOF, or at the
// first malformed arc line with an error.
func LoadNetwork(path string) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformats: open network file %s: %w", path, err)
	}
	defer f.Close()

	return loadNetwork(path, f)
}

func loadNetwork(path string, r io.Reader) (*digraph.Graph, error) {
	scanner := bufio.NewScanner(r)
	line := 0

	n, err := readVerticesHeader(path, scanner, &line)
	if err != nil {
		return nil, err
	}

	g, err := digraph.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s:%d: %w", path, line, err)
	}

	skipToArcsSection(scanner, &line)

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: %w", path, line, ErrMalformedHeader)
		}
		i1, err1 := strconv.Atoi(fields[0])
		j1, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, ErrNonIntegerToken)
		}
		if i1 < 1 || i1 > n || j1 < 1 || j1 > n || i1 == j1 {
			return nil, fmt.Errorf("%s:%d: %w", path, line, ErrNodeIndexOutOfRange)
		}
		if err := g.InsertArc(i1-1, j1-1); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
	}

	return g, nil
}

func readVerticesHeader(path string, scanner *bufio.Scanner, line *int) (int, error) {
	for scanner.Scan() {
		*line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "*vertices") {
			return 0, fmt.Errorf("%s:%d: %w", path, *line, ErrMalformedHeader)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%s:%d: %w", path, *line, ErrMalformedHeader)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%s:%d: %w", path, *line, ErrMalformedHeader)
}

func skipToArcsSection(scanner *bufio.Scanner, line *int) {
	for scanner.Scan() {
		*line++
		text := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if text == "*arcs" {
			return
		}
	}
}
