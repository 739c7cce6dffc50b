// Package imaging loads, transforms and writes raster images.
//
// An *Image is immutable: Resize, Fit, Crop, CropCenter, Overlay,
// Grayscale and Rotate return a new *Image. Decoding understands JPEG,
// PNG, GIF, BMP, TIFF and WebP; encoding covers all but WebP.
// Resampling uses golang.org/x/image/draw (Catmull-Rom by default).
//
//	img, err := imaging.Open("photo.jpg")
//	if err != nil { ... }
//	thumb, _ := img.Fit(320, 320)
//	err = thumb.Save("thumb.png", 0)
package imaging
