// Package shader evaluates the color field drawn by nanoshader.
//
// The pipeline is fixed and allocation free:
//
//	pixel (x, y) → normalized coordinate → shader → Vec3 color → RGB888 → RGB565.
//
// Vectors are small array-backed value types (Vec2, Vec3) generic over the
// float element type. The shader itself runs in single precision (Scalar) to
// match what the target MCUs compute natively.
//
// Conversion to bytes truncates and does not clamp. Cosine (the only built-in
// shader) never leaves [0, 1], so truncation is exact for it; custom shaders
// that overshoot get whatever Go's float-to-integer conversion produces.
package shader
