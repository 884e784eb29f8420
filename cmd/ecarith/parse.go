package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
)

// parsePoint accepts "x,y", "(x, y)" or one of "inf", "infinity", "∞".
func parsePoint(s string) (curves.Point, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "inf", "infinity", "∞":
		return curves.Infinity(), nil
	}

	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return curves.Point{}, errors.Errorf("invalid point %q: want x,y or inf", s)
	}

	x, err := parseInt(parts[0])
	if err != nil {
		return curves.Point{}, err
	}
	y, err := parseInt(parts[1])
	if err != nil {
		return curves.Point{}, err
	}
	return curves.NewPoint(x, y), nil
}
