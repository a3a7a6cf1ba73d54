// Package figure turns datasets into renderable chart descriptions.
//
// A [Figure] is a library-independent description of one chart: its kind,
// the encoded series, axis titles and ranges, and the shared visual [Theme].
// Figures are plain values built fresh on every render; the HTTP layer
// serializes them as JSON and the browser maps them onto a plotting library.
//
// [Builder] functions are created by constructors such as [Bar], [Line] and
// [Gauge], each bound to the dataset columns it encodes. [Empty] returns the
// canonical placeholder used for slots that are not on the active page.
package figure
