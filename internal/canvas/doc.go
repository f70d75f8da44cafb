// Package canvas measures and rasterizes the scene with the embedded Go fonts.
package canvas
