package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/snippr/internal/common"
	"github.com/dmitrijs2005/snippr/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *cryptox.Cipher {
	t.Helper()
	c, err := cryptox.New(common.GenerateRandByteArray(cryptox.KeySize))
	require.NoError(t, err)
	return c
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seedData.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cipher := newTestCipher(t)
	path := writeSeedFile(t, `[
		{"id": 1, "language": "python", "code": "print(1)", "description": "demo"},
		{"id": 5, "language": "go", "code": "fmt.Println(1)"}
	]`)

	snippets, err := Load(path, cipher)
	require.NoError(t, err)
	require.Len(t, snippets, 2)

	assert.Equal(t, int64(1), snippets[0].ID)
	assert.Equal(t, "python", snippets[0].Language)
	assert.Equal(t, "demo", snippets[0].Description)

	// code is encrypted on import
	assert.NotEqual(t, "print(1)", snippets[0].Ciphertext)
	code, err := cipher.Decrypt(snippets[0].Ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "print(1)", code)

	assert.Equal(t, int64(5), snippets[1].ID)
}

func TestLoad_MissingFile(t *testing.T) {
	snippets, err := Load(filepath.Join(t.TempDir(), "absent.json"), newTestCipher(t))
	require.NoError(t, err)
	assert.Nil(t, snippets)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeSeedFile(t, `{not json`)

	_, err := Load(path, newTestCipher(t))
	assert.Error(t, err)
}
