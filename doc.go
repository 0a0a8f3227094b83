// Package huffcode implements prefix-tree Huffman codes: building the tree
// from a frequency table, saving and loading the tree as symbol/codeword line
// pairs, and decoding a bitstream by walking the tree.
//
// The saved form looks like this, one pair per symbol, in any order:
//
//     65
//     1100
//     70
//     0
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
package huffcode
