// Package render computes chart figures for the active page.
//
// The [Engine] is the only place figures are constructed. For an active slot
// it calls the slot's data source, passes the dataset to the slot's figure
// builder and returns the themed result. Inactive slots get the canonical
// empty placeholder without touching their data source.
//
// Bindings are checked once in [NewEngine]: every slot in the page registry
// must be bound and every binding must name a known slot. A failure while
// rendering one slot (returned error or panic) is reported as a [SlotError]
// for that slot only; the rest of the page still renders.
package render
