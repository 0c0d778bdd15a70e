// Package barcode turns encoded barcodes into pageflow image blocks so they
// can flow through cells, rows, and pagination like any other content.
//
// Encoding is delegated to github.com/boombuler/barcode (Code 128, QR) and
// github.com/ruudk/golang-pdf417 (PDF417). The encoded symbol is scaled to
// the requested box in whole pixels, never below its intrinsic module size.
package barcode

import (
	"fmt"
	"math"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
	pdf417 "github.com/ruudk/golang-pdf417"

	"github.com/lvillar/pageflow"
)

// Code128 encodes content as a Code 128 barcode occupying dim page units.
func Code128(content string, dim pageflow.Dim) (*pageflow.Image, error) {
	code, err := code128.Encode(content)
	if err != nil {
		return nil, fmt.Errorf("barcode: encoding code128: %w", err)
	}
	return scaled(code, dim)
}

// QR encodes content as a QR code (medium error correction) occupying dim
// page units.
func QR(content string, dim pageflow.Dim) (*pageflow.Image, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("barcode: encoding qr: %w", err)
	}
	return scaled(code, dim)
}

// PDF417 encodes content as a PDF417 barcode with the given column count
// and security level, occupying dim page units.
func PDF417(content string, columns, securityLevel int, dim pageflow.Dim) (*pageflow.Image, error) {
	code := pdf417.Encode(content, columns, securityLevel)
	return scaled(code, dim)
}

// scaled resamples the symbol to the requested box, clamped up to its
// intrinsic pixel bounds, and wraps it as a fixed-size image block.
func scaled(code barcode.Barcode, dim pageflow.Dim) (*pageflow.Image, error) {
	d := pageflow.NewDim(dim.Width, dim.Height)
	w := int(math.Ceil(d.Width))
	h := int(math.Ceil(d.Height))
	b := code.Bounds()
	if w < b.Dx() {
		w = b.Dx()
	}
	if h < b.Dy() {
		h = b.Dy()
	}
	out, err := barcode.Scale(code, w, h)
	if err != nil {
		return nil, fmt.Errorf("barcode: scaling to %dx%d: %w", w, h, err)
	}
	return pageflow.NewImage(out, d), nil
}
