// Package rainbow describes the rbw commands as data for the executor: the
// endpoints each one calls, in which order, and how the results are shown.
package rainbow
