// Package hufftree implements Huffman coding over explicit binary code
// trees.  A tree is built bottom-up from observed symbol frequencies, with
// more frequent symbols ending up closer to the root, which yields an
// optimal prefix-free variable-length binary code for the alphabet.
//
// Unlike canonical Huffman codes, the tree itself is the code: encoding
// looks up root-to-leaf paths in a table flattened from the tree, and
// decoding walks the tree bit by bit.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package hufftree
