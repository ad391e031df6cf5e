// SPDX-License-Identifier: MIT

// Package measure turns single-cell gene histories into simulated microarray
// measurements.
//
// Cells are grown in dishes. Every cell of every dish is simulated with the
// same History (its initialization perturbed by the dish bump), and the stored
// time steps of the cells of one dish are averaged. Each dish is sampled onto
// several chips; a measurement is the dish average plus a per-(dish, chip)
// sample error, a per-(dish, chip) chip error and a per-value pixel error.
//
// Raw per-cell data can be kept as well; it has numDishes·numCellsPerDish
// columns and may be very large.
package measure
