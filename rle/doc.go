// Package rle implements the two run-length codecs used by the encoding
// level EL2 cascade: a byte-oriented literal/repeat codec for the BYTE
// category, and an integer codec for the SHORT/INT/LONG/DATE/TIME/TIMESTAMP
// categories and for dictionary codes.
package rle
