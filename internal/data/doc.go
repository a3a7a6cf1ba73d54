// Package data provides the synthetic datasets behind the dashboard charts.
//
// Every generator is a [Source]: a pure function from a seed to an immutable
// [Dataset]. Generators never share random state. Each call builds its own
// PCG generator from the seed and a per-domain salt, so two calls with the
// same seed return row-for-row identical datasets and datasets of different
// domains are independent of each other and of call order.
//
// Users of the paineis library should not need to interact with this
// package directly. Sources are bound to chart slots by the root package.
package data
