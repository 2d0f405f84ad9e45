package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/announce/internal/ordered"
)

func mustDecode(t *testing.T, src string) any {
	t.Helper()
	doc, err := ordered.DecodeJSON([]byte(src))
	require.NoError(t, err)
	return doc
}
