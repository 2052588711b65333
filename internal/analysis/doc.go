// Package analysis computes summary statistics over generated fields:
// escape fractions, count histograms and row profiles for plotting.
package analysis
