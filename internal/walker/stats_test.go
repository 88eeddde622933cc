package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsAdd(t *testing.T) {
	fsys := newTree(t, "src/a.c", "src/b.c", "inc/")

	var st Stats
	err := Walk(fsys, ".", func(path string, e Entry) error {
		st.Add(e)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, st.Files)
	assert.Equal(t, 2, st.Dirs)
	assert.Equal(t, int64(2*len("int x;\n")), st.Bytes)
}
