package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override the launcher grid.
const (
	EnvBoxSize  = "MENU_BOX_SIZE"
	EnvHSpacing = "MENU_H_SPACING"
	EnvVSpacing = "MENU_V_SPACING"
)

// MinBoxSize keeps room for a border and a label.
const MinBoxSize = 6

// Layout sizes the launcher grid in terminal cells.
// A box is BoxSize columns wide and BoxSize/2 rows tall, which is square
// on a terminal whose cells are twice as tall as they are wide.
type Layout struct {
	BoxSize  int
	HSpacing int
	VSpacing int
}

// DefaultLayout is used when no override is set.
func DefaultLayout() Layout {
	return Layout{BoxSize: 16, HSpacing: 2, VSpacing: 1}
}

// BoxRows returns the box height in rows.
func (l Layout) BoxRows() int {
	return l.BoxSize / 2
}

// LayoutFromEnv reads the layout from the process environment.
func LayoutFromEnv() (Layout, error) {
	return ParseLayout(os.LookupEnv)
}

// ParseLayout builds a layout from lookup. Invalid values keep their
// default and are reported in the returned error; the layout is always usable.
func ParseLayout(lookup func(string) (string, bool)) (Layout, error) {
	l := DefaultLayout()
	var errs []error

	read := func(key string, dst *int, lo int) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s=%q: not an integer", key, v))
			return
		}
		if n < lo {
			errs = append(errs, fmt.Errorf("config: %s=%d: must be at least %d", key, n, lo))
			return
		}
		*dst = n
	}
	read(EnvBoxSize, &l.BoxSize, MinBoxSize)
	read(EnvHSpacing, &l.HSpacing, 0)
	read(EnvVSpacing, &l.VSpacing, 0)

	return l, errors.Join(errs...)
}
