package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for sorting and searching.
var (
	// ErrUnknownAlgorithm is returned by Parse for an unrecognized name.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrRadixInteger is returned when Radix is dispatched over a slice
	// whose element type is not a built-in integer kind.
	ErrRadixInteger = errors.New("sorting: radix sort requires integer elements")

	// ErrNegative is returned when Radix encounters a negative element.
	ErrNegative = errors.New("sorting: radix sort requires non-negative elements")

	// ErrBadBase is returned when WithBase is given a base below 2.
	ErrBadBase = errors.New("sorting: radix base must be at least 2")

	// ErrUnsorted is returned by the ordered searches on unsorted input.
	ErrUnsorted = errors.New("sorting: data must be sorted")
)

// Algorithm is the closed enumeration of supported sorting strategies.
type Algorithm int

// Supported algorithms. Default is the platform comparison sort and is the
// zero value, so an unspecified algorithm sorts the standard way.
const (
	Default Algorithm = iota
	Selection
	Insertion
	Bubble
	Merge
	Quick
	Radix
)

// algorithmNames backs both String and Parse.
var algorithmNames = map[Algorithm]string{
	Default:   "default",
	Selection: "selection",
	Insertion: "insertion",
	Bubble:    "bubble",
	Merge:     "merge",
	Quick:     "quick",
	Radix:     "radix",
}

// String returns the canonical lower-case name of the algorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("algorithm(%d)", int(a))
}

// valid reports whether a is one of the declared constants.
func (a Algorithm) valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// Parse resolves a case-insensitive algorithm name to its Algorithm.
// Every strategy accepts three spellings — "merge", "mergesort" and
// "merge sort" — and the empty string or "standard" select Default.
// Returns ErrUnknownAlgorithm for anything else.
func Parse(name string) (Algorithm, error) {
	folded := strings.ToLower(strings.TrimSpace(name))
	switch folded {
	case "", "default", "standard":
		return Default, nil
	}

	for alg, canonical := range algorithmNames {
		if alg == Default {
			continue
		}
		switch folded {
		case canonical, canonical + "sort", canonical + " sort":
			return alg, nil
		}
	}

	return Default, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option configures radix-specific behavior.
type Option func(*options)

type options struct {
	base int
	err  error
}

// defaultOptions returns the decimal radix configuration.
func defaultOptions() options {
	return options{base: 10}
}

// WithBase selects the radix used to split digits.
//
//	b >= 2: use base b
//	b <  2: invalid option → ErrBadBase when the sort runs
func WithBase(b int) Option {
	return func(o *options) {
		if b < 2 {
			o.err = fmt.Errorf("%w: %d", ErrBadBase, b)
			return
		}
		o.base = b
	}
}
