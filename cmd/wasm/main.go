//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Global map to store constructed curves
// Key: curve handle (string)
var sessions = make(map[string]*curves.Curve)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go Weierstrass WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoWeierstrass", map[string]interface{}{
		"NewCurve":   js.FuncOf(NewCurve),
		"Add":        js.FuncOf(Add),
		"Double":     js.FuncOf(Double),
		"IsOnCurve":  js.FuncOf(IsOnCurve),
		"ModInverse": js.FuncOf(ModInverse),
	})

	<-c
}

// PointDTO is the JSON form of a point. Infinity omits the coordinates.
type PointDTO struct {
	X        int64 `json:"x"`
	Y        int64 `json:"y"`
	Infinity bool  `json:"infinity,omitempty"`
}

func (d PointDTO) point() curves.Point {
	if d.Infinity {
		return curves.Infinity()
	}
	return curves.NewPoint(d.X, d.Y)
}

func toDTO(p curves.Point) PointDTO {
	x, y, ok := p.Coords()
	if !ok {
		return PointDTO{Infinity: true}
	}
	return PointDTO{X: x, Y: y}
}

// NewCurve registers a curve.
// Arguments:
// 0: JSON string {"name": "..."} or {"a": .., "b": .., "p": ..}
// Returns:
// Curve handle (string) or an error string
func NewCurve(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	type ParamsInput struct {
		Name string `json:"name"`
		A    int64  `json:"a"`
		B    int64  `json:"b"`
		P    int64  `json:"p"`
	}

	var input ParamsInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	var (
		curve *curves.Curve
		err   error
	)
	if input.Name != "" {
		curve, err = curves.Lookup(input.Name)
	} else {
		curve, err = curves.New(input.A, input.B, input.P)
	}
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	a, b, p := curve.Params()
	handle := fmt.Sprintf("%d-%d-%d", a, b, p)
	sessions[handle] = curve
	return handle
}

// Add returns the JSON sum of two JSON points.
// Arguments: curve handle, point, point
func Add(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (handle, p, q)"
	}
	curve, points, errStr := decodeArgs(args[0], args[1:]...)
	if errStr != "" {
		return errStr
	}

	r, err := curve.Add(points[0], points[1])
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshalPoint(r)
}

// Double returns the JSON double of a JSON point.
// Arguments: curve handle, point
func Double(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (handle, p)"
	}
	curve, points, errStr := decodeArgs(args[0], args[1])
	if errStr != "" {
		return errStr
	}

	r, err := curve.Double(points[0])
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshalPoint(r)
}

// IsOnCurve reports curve membership.
// Arguments: curve handle, point
func IsOnCurve(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (handle, p)"
	}
	curve, points, errStr := decodeArgs(args[0], args[1])
	if errStr != "" {
		return errStr
	}
	return curve.IsOnCurve(points[0])
}

// ModInverse returns the inverse of a modulo m.
// Arguments: a (number), m (number)
func ModInverse(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (a, m)"
	}
	inv, err := field.Inverse(int64(args[0].Int()), int64(args[1].Int()))
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return inv
}

// Helpers

func decodeArgs(handle js.Value, pts ...js.Value) (*curves.Curve, []curves.Point, string) {
	curve, ok := sessions[handle.String()]
	if !ok {
		return nil, nil, "error: curve not found"
	}

	points := make([]curves.Point, len(pts))
	for i, v := range pts {
		var dto PointDTO
		if err := json.Unmarshal([]byte(v.String()), &dto); err != nil {
			return nil, nil, fmt.Sprintf("error: invalid point json: %v", err)
		}
		points[i] = dto.point()
	}
	return curve, points, ""
}

func marshalPoint(p curves.Point) string {
	b, _ := json.Marshal(toDTO(p))
	return string(b)
}
