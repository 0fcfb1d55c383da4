package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReAsksOnEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(strings.NewReader("\n\n/Documents/Photos\n"), out)

	answer, err := p.Line("Path")

	require.NoError(t, err)
	assert.Equal(t, "/Documents/Photos", answer)
	assert.Contains(t, out.String(), "A value is required.")
}

func TestLineTrimsWhitespace(t *testing.T) {
	p := New(strings.NewReader("  srcAcct  \n"), io.Discard)

	answer, err := p.Line("Name")

	require.NoError(t, err)
	assert.Equal(t, "srcAcct", answer)
}

func TestLineEOF(t *testing.T) {
	p := New(strings.NewReader(""), io.Discard)

	_, err := p.Line("Name")

	assert.ErrorIs(t, err, io.EOF)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		p := New(strings.NewReader(tt.input), io.Discard)
		got, err := p.Confirm("Proceed?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestSelectByNumber(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(strings.NewReader("2\n"), out)

	answer, err := p.Select("Folder", []string{"Documents", "Pictures"})

	require.NoError(t, err)
	assert.Equal(t, "Pictures", answer)
	assert.Contains(t, out.String(), "1. Documents")
	assert.Contains(t, out.String(), "2. Pictures")
}

func TestSelectOutOfRangeReAsks(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(strings.NewReader("5\n0\n1\n"), out)

	answer, err := p.Select("Folder", []string{"Documents", "Pictures"})

	require.NoError(t, err)
	assert.Equal(t, "Documents", answer)
	assert.Contains(t, out.String(), "Enter a number between 1 and 2.")
}

func TestSelectFreeText(t *testing.T) {
	p := New(strings.NewReader("/Backup/Photos\n"), io.Discard)

	answer, err := p.Select("Folder", []string{"Documents"})

	require.NoError(t, err)
	assert.Equal(t, "/Backup/Photos", answer)
}

func TestChoose(t *testing.T) {
	p := New(strings.NewReader("3\n"), io.Discard)

	i, err := p.Choose("Operation", []string{"copy", "sync", "migrate"}, -1)

	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestChooseRejectsFreeText(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(strings.NewReader("sync\n2\n"), out)

	i, err := p.Choose("Operation", []string{"copy", "sync"}, -1)

	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Contains(t, out.String(), "Enter a number between 1 and 2.")
}

func TestChooseDefaultOnEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(strings.NewReader("\n"), out)

	i, err := p.Choose("Operation", []string{"copy", "sync"}, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Contains(t, out.String(), "Operation [1]: ")
}

func TestLastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("y"), io.Discard)

	got, err := p.Confirm("Proceed?")

	require.NoError(t, err)
	assert.True(t, got)
}
