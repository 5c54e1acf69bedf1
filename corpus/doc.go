// Package corpus reads document/word frequency corpora and turns them into
// dense frequency vectors.
//
// File format (all ids 1-based, whitespace separated):
//
//	nTexts
//	nUniqueWords
//	nLines
//	textID wordID frequency     ← repeated nLines times
//
// Filtering happens in two stages, controlled by WithFrequencyBounds(lower, upper):
//
//  1. While reading, every record adds its frequency to the corpus-wide total
//     of its word, but the token is kept on its text only if its own
//     frequency is ≤ upper.
//  2. After reading, a kept token survives only if its word's total lies in
//     [lower, upper].
//
// Blank lines are ignored. Records past nLines are ignored.
package corpus
