package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSignatureBareBase64(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	data, err := DecodeSignature(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestDecodeSignatureDataURI(t *testing.T) {
	raw := []byte("signature bytes")
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	data, err := DecodeSignature(payload)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestDecodeSignatureRejectsGarbage(t *testing.T) {
	_, err := DecodeSignature("not!!valid!!base64")
	assert.Error(t, err)

	_, err = DecodeSignature("")
	assert.Error(t, err, "empty payload is not a signature")
}

func TestDiskStoreSave(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	raw := []byte{0x89, 'P', 'N', 'G'}

	path, err := store.Save("aaaaaaaa-0000-0000-0000-000000000001", raw)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(store.MediaDir, "assessments", "patient_signatures"), filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "aaaaaaaa-0000-0000-0000-000000000001_"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, raw, written)
}

func TestDiskStoreSaveUniqueNames(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	first, err := store.Save("aaaaaaaa-0000-0000-0000-000000000001", []byte("one"))
	require.NoError(t, err)
	second, err := store.Save("aaaaaaaa-0000-0000-0000-000000000001", []byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "repeat saves must not overwrite")
}
