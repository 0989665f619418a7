package hufftree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Example(t *testing.T) {
	tree := makeExampleTree(t)

	// x -> "00", e -> "01", t -> "1"
	decoded, err := Decode(tree, []Bit{0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []Symbol{'x', 't'}, decoded)

	decoded, err = Decode(tree, []Bit{0, 0, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []Symbol{'x', 'e', 't'}, decoded)
}

func TestDecode_NonZeroBitsGoRight(t *testing.T) {
	tree := makeExampleTree(t)

	decoded, err := Decode(tree, []Bit{7})
	require.NoError(t, err)
	assert.Equal(t, []Symbol{'t'}, decoded)
}

func TestDecode_Empty(t *testing.T) {
	tree := makeExampleTree(t)

	decoded, err := Decode(tree, nil)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecode_Truncated(t *testing.T) {
	tree := makeExampleTree(t)

	// Bit 0 leads to the {x,e} fork with no bits left.
	_, err := Decode(tree, []Bit{0})
	assert.ErrorIs(t, err, ErrTruncatedCode)

	// A clean symbol followed by a dangling fork.
	_, err = Decode(tree, []Bit{1, 0})
	assert.ErrorIs(t, err, ErrTruncatedCode)
}

func TestDecode_LoneLeaf(t *testing.T) {
	tree, err := BuildTreeFromWeights([]SymbolWeight{{Sym: 'a', Weight: 5}})
	require.NoError(t, err)

	decoded, err := Decode(tree, nil)
	require.NoError(t, err)
	assert.Equal(t, []Symbol{'a'}, decoded)

	_, err = Decode(tree, []Bit{0})
	assert.ErrorIs(t, err, ErrTruncatedCode)
}

func TestDecoder_Dump(t *testing.T) {
	var d Decoder
	d.Init(makeExampleTree(t))

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tWeight() = 4\n",
		"\tSymbol 'x'\n",
		"\tSymbol 'e'\n",
		"\tSymbol 't'\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
