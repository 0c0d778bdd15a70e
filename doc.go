// Package pageflow is a box-model layout and pagination engine for composing
// styled, flowing content into fixed-width columns and splitting it across
// pages. It provides CSS-like cell semantics (padding, borders, background
// fill, alignment) without a browser engine.
//
// Content is modeled as a tree of Renderables (text runs, images, cells,
// table rows) built once through builders and then driven in two phases:
// Measure computes the dimensions a unit would occupy at a given width
// (memoized per width), and Render paints it at a position through an
// abstract RenderTarget. A PageManager decides, between top-level blocks,
// whether the next block still fits on the current page.
//
// Coordinates follow PDF user space: the origin is at the bottom-left and y
// grows upward, so a block's top edge has a larger y value than its bottom
// edge and content flows down the page by subtracting from y. The convention
// is centralized in Offset.Below and Padding.ApplyTopLeft; a port to a y-down
// system only needs to flip those and the vertical sign in Align.CalcOffset.
//
// The engine performs no I/O and knows nothing about PDF byte streams, font
// files, or glyph shaping. Drawing and font metrics are supplied by
// collaborators through the RenderTarget and FontMetrics interfaces; the
// raster subpackage ships a reference implementation over an RGBA image.
package pageflow
