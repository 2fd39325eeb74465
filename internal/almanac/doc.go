// Package almanac reads stage tables and seed lists from almanac files.
//
// Two encodings are understood: the plain text layout
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// and an equivalent YAML document (.yaml/.yml). Either may be gzip
// compressed (.gz). Path "-" reads the text layout from stdin.
package almanac
