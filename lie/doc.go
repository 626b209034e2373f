// Package lie holds the small generic contracts shared by the motion groups
// (so3.Rotation, se3.Transform and the cmtm types) and the helpers written
// once against them.
//
// Go has no operator overloading, so Mul(a, b) stands in for a*b. It is
// defined as a.Compose(b), which keeps the operator form and the method form
// trivially identical.
package lie
