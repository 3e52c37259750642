// Package drawml reconstructs vector path geometry for shapes whose
// outlines are described by DrawingML-style guide formulas, as found in
// presentation documents.
//
// # Guides and formulas
//
// A shape's geometry is parameterized by guides: named values defined by a
// literal or by a formula in a small arithmetic language ("*/ h 1.0 2.0" is
// half the shape height). A fixed table of preset guides provides fractions
// of a circle, shape edges, and dimension ratios; angles are expressed in
// 60000ths of a degree. [Geometry] resolves any token (a literal, preset,
// guide, or formula) to a number, and [Evaluate] implements the closed set
// of formula operations.
//
// # Paths
//
// Raw path commands, with coordinates still in attribute-string form, are
// resolved into a [BezPath] of move, line, quadratic and cubic elements.
// Elliptical arc segments are approximated by runs of cubic Béziers with
// [ArcToBeziers], for renderers that support only line and cubic-curve
// primitives. The construction follows the closed-form optimal
// single-cubic approximation of [Luc Maisonobe's elliptical arc paper],
// with the SVG endpoint-to-center conversion of [SVG 1.1 appendix F.6].
//
// All types are plain values with no shared mutable state; a [Geometry] is
// immutable after construction and everything here is safe to use
// concurrently across shapes.
//
// [Luc Maisonobe's elliptical arc paper]: https://www.spaceroots.org/documents/ellipse/elliptical-arc.pdf
// [SVG 1.1 appendix F.6]: https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes
package drawml
