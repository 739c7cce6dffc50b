// Package color converts, adjusts and names colours.
//
// What:
//
//   - Color is an 8-bit RGBA value. ParseHex accepts #rgb, #rgba,
//     #rrggbb and #rrggbbaa (the leading # is optional).
//   - Conversions: FromRGB, FromHSL, Hex, RGBString, HSL.
//   - Adjustments: Lighten, Darken, Mix, Invert.
//   - Accessibility: Luminance and Contrast follow WCAG 2.x; IsDark
//     picks the better of black or white text.
//   - Palette: Lookup by CSS name; Name returns the perceptually nearest
//     named colour (CIEDE2000 distance in CIE Lab).
//   - Extract: dominant colours of an image.
//
// All functions are pure; the palette is read-only.
package color
