// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
)

// CompareUint8 returns true if two numbers are within tol of each other
func CompareUint8(cc, ic uint8, tol int) bool {
	d := int(cc) - int(ic)
	return d >= -tol && d <= tol
}

// CompareColors returns true if two colors are within tol of each other
// in every channel
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return CompareUint8(cc.R, ic.R, tol) && CompareUint8(cc.G, ic.G, tol) &&
		CompareUint8(cc.B, ic.B, tol) && CompareUint8(cc.A, ic.A, tol)
}

// CountColor returns the number of pixels of the image that are
// within tol of the given color.
func CountColor(img image.Image, c color.RGBA, tol int) int {
	n := 0
	ib := img.Bounds()
	for y := ib.Min.Y; y < ib.Max.Y; y++ {
		for x := ib.Min.X; x < ib.Max.X; x++ {
			ic := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if CompareColors(ic, c, tol) {
				n++
			}
		}
	}
	return n
}

// DiffImage returns the difference between two images,
// with pixels having the abs of the difference between pixels.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			cc := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			di.Set(x, y, color.RGBA{absDiff(cc.R, ic.R), absDiff(cc.G, ic.G), absDiff(cc.B, ic.B), 255})
		}
	}
	return di
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
