package ioformats

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Attribute holds a loaded attribute table plus the name from its header
// line, preserved for trace file labels.
type Attribute struct {
	Name   string
	Values []int
}

// LoadAttribute reads a plain attribute file: a first line naming the
// attribute, then n whitespace-separated non-negative integer tokens, one
// per node in node-index order.
func LoadAttribute(path string, n int) (Attribute, error) {
	f, err := os.Open(path)
	if err != nil {
		return Attribute{}, fmt.Errorf("ioformats: open attribute file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return Attribute{}, fmt.Errorf("%s:1: %w", path, ErrMalformedHeader)
	}
	name := strings.TrimSpace(scanner.Text())

	var values []int
	line := 1
	for scanner.Scan() {
		line++
		for _, tok := range strings.Fields(scanner.Text()) {
			v, err := strconv.Atoi(tok)
			if err != nil || v < 0 {
				return Attribute{}, fmt.Errorf("%s:%d: %w", path, line, ErrNonIntegerToken)
			}
			values = append(values, v)
		}
	}

	if len(values) != n {
		return Attribute{}, fmt.Errorf("%s:%d: %w", path, line, ErrAttributeCountMismatch)
	}

	return Attribute{Name: name, Values: values}, nil
}

// LoadBinaryAttribute is LoadAttribute restricted to {0,1} tokens.
func LoadBinaryAttribute(path string, n int) (Attribute, error) {
	attr, err := LoadAttribute(path, n)
	if err != nil {
		return Attribute{}, err
	}
	for _, v := range attr.Values {
		if v != 0 && v != 1 {
			return Attribute{}, fmt.Errorf("%s: %w", path, ErrBadBinaryToken)
		}
	}
	return attr, nil
}

// LoadCategoricalAttribute is an alias of LoadAttribute; categorical tokens
// carry no value restriction beyond non-negative integers.
func LoadCategoricalAttribute(path string, n int) (Attribute, error) {
	return LoadAttribute(path, n)
}
