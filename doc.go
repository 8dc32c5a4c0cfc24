// Package writeints generates integer fixture tables for testing byte conversion functions:
// JavaScript modules mapping the fixed width two's complement hexadecimal form of signed
// integers to their decimal value.
//
// The generator itself is cmd/writeints. The width, sample and fixture packages hold the
// encoding, the choice of values and the document layout.
package writeints
