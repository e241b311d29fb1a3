// Package scene provides the 2D drawing surface that atom models render onto.
//
// The package separates what a frame contains from how it is shown:
//
//   - [Surface]: the plotting capability a model draws with
//   - [DisplayList]: a retained Surface that records shapes for a backend to replay
//   - [Field]: a scalar grid drawn as filled contour bands
//   - [Viewport]: maps world coordinates onto a square pixel area
//
// # Paint Order
//
// Backends replay a DisplayList in a fixed z-order regardless of call order:
// contour fields, disks, circles, then point markers on top.
package scene
