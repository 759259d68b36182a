package shader

import (
	"errors"
	"fmt"
	"math"
)

// Float is the element type constraint for vectors.
type Float interface {
	~float32 | ~float64
}

// Scalar is the numeric type used by the shader pipeline.
type Scalar = float32

// Vec2 is a 2-component vector.
type Vec2[T Float] [2]T

// Vec3 is a 3-component vector.
type Vec3[T Float] [3]T

var ErrIndexOutOfBounds = errors.New("vector index out of bounds")

// IndexError reports an out-of-range vector access.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

func V2[T Float](x, y T) Vec2[T]    { return Vec2[T]{x, y} }
func V3[T Float](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// Splat3 broadcasts s to all three components.
func Splat3[T Float](s T) Vec3[T] { return Vec3[T]{s, s, s} }

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + o[0], v[1] + o[1]} }
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] * o[0], v[1] * o[1]} }

// At returns component i. It panics with *IndexError when i is out of range.
func (v Vec2[T]) At(i int) T {
	if uint(i) >= uint(len(v)) {
		panic(&IndexError{Index: i, Len: len(v)})
	}
	return v[i]
}

// Cos replaces every component with its cosine.
func (v *Vec2[T]) Cos() {
	v[0] = cos(v[0])
	v[1] = cos(v[1])
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// At returns component i. It panics with *IndexError when i is out of range.
func (v Vec3[T]) At(i int) T {
	if uint(i) >= uint(len(v)) {
		panic(&IndexError{Index: i, Len: len(v)})
	}
	return v[i]
}

// Cos replaces every component with its cosine.
func (v *Vec3[T]) Cos() {
	v[0] = cos(v[0])
	v[1] = cos(v[1])
	v[2] = cos(v[2])
}

func cos[T Float](v T) T {
	return T(math.Cos(float64(v)))
}
