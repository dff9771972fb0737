// Package strmatch implements exact byte-string search (C6): naive
// sliding comparison, Boyer-Moore (three interchangeable bad-character
// rules, with and without the Galil skip), and Knuth-Morris-Pratt.
//
// Every matcher operates over the full 256-value byte alphabet and
// returns the list of indices in text at which pattern occurs,
// including overlapping occurrences, in ascending order.
package strmatch
