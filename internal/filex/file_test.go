package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureSubdDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureSubdDir("preupload")
	require.NoError(t, err)

	want := filepath.Join(tmp, "preupload")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureSubdDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	first, err := EnsureSubdDir("preupload")
	require.NoError(t, err)

	second, err := EnsureSubdDir("preupload")
	require.NoError(t, err)

	require.Equal(t, first, second)
	fi, err := os.Stat(second)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureSubdDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("preupload", []byte("x"), 0o660))

	_, err := EnsureSubdDir("preupload")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestReadForUpload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "laudo.PDF")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))

	name, data, err := ReadForUpload(path)
	require.NoError(t, err)
	require.Equal(t, "laudo.PDF", name)
	require.Equal(t, []byte("%PDF"), data)

	_, _, err = ReadForUpload(dir)
	require.Error(t, err)

	_, _, err = ReadForUpload(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestAttachmentType(t *testing.T) {
	cases := map[string]string{
		"foto.JPG":       "image",
		"planta.png":     "image",
		"laudo.pdf":      "pdf",
		"medicao.xlsx":   "xls",
		"ata.docx":       "doc",
		"projeto.dwg":    "file",
		"sem_extensao":   "file",
		"arquivo.tar.gz": "file",
	}
	for name, want := range cases {
		require.Equal(t, want, AttachmentType(name), name)
	}
}

func TestContentType(t *testing.T) {
	require.Equal(t, "application/pdf", ContentType("a.pdf"))
	require.Equal(t, "application/octet-stream", ContentType("noext"))
	require.Equal(t, "application/octet-stream", ContentType("a.unknownext"))
}
