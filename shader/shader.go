package shader

// Func maps a normalized coordinate and a time value to a color.
type Func func(coord Vec2[Scalar], t Scalar) Vec3[Scalar]

var (
	cosineBase  = V3[Scalar](0, 2, 4)
	cosineScale = Splat3[Scalar](0.5)
)

// Cosine is the default color field: 0.5 + 0.5*cos(t + uv.xyx + (0, 2, 4)).
//
// The third channel samples x again, not a third coordinate.
func Cosine(coord Vec2[Scalar], t Scalar) Vec3[Scalar] {
	uvxyx := V3(coord.X(), coord.Y(), coord.X())
	sum := Splat3(t).Add(uvxyx)
	sum = sum.Add(cosineBase)
	sum.Cos()
	return cosineScale.Add(cosineScale.Mul(sum))
}

// Normalize maps pixel (x, y) on a w×h surface into [0, 1)×[0, 1).
func Normalize(x, y, w, h int) Vec2[Scalar] {
	return V2(
		(1/Scalar(w))*Scalar(x),
		(1/Scalar(h))*Scalar(y),
	)
}
