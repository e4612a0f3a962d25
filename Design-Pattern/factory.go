package designpattern

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
)

var ErrUnknownShape = errors.New("unknown shape")

type Shape interface {
	Draw()
	ID() uuid.UUID
}

type ShapeKind string

// Keys are matched exactly. The mixed casing is kept as-is: "RECTANGLE" or
// "circle" are not accepted.
const (
	ShapeCircle    ShapeKind = "CIRCLE"
	ShapeRectangle ShapeKind = "Rectangle"
)

type Circle struct {
	id  uuid.UUID
	out io.Writer
}

type Rectangle struct {
	id  uuid.UUID
	out io.Writer
}

func (c *Circle) Draw() {
	fmt.Fprintln(c.out, "Circle")
}

func (c *Circle) ID() uuid.UUID {
	return c.id
}

func (r *Rectangle) Draw() {
	fmt.Fprintln(r.out, "Rectangle")
}

func (r *Rectangle) ID() uuid.UUID {
	return r.id
}

type ShapeFactory struct {
	out      io.Writer
	registry map[ShapeKind]func(io.Writer) Shape
}

// NewShapeFactory returns a factory whose shapes draw to out, or to stdout if out is nil.
func NewShapeFactory(out io.Writer) *ShapeFactory {
	if out == nil {
		out = os.Stdout
	}
	return &ShapeFactory{
		out: out,
		registry: map[ShapeKind]func(io.Writer) Shape{
			ShapeCircle: func(w io.Writer) Shape {
				return &Circle{id: uuid.New(), out: w}
			},
			ShapeRectangle: func(w io.Writer) Shape {
				return &Rectangle{id: uuid.New(), out: w}
			},
		},
	}
}

// GetShape builds a new shape for key on every call, nothing is cached.
func (f *ShapeFactory) GetShape(key string) (Shape, error) {
	build, ok := f.registry[ShapeKind(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, key)
	}
	return build(f.out), nil
}

func (f *ShapeFactory) Kinds() []ShapeKind {
	kinds := make([]ShapeKind, 0, len(f.registry))
	for k := range f.registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
