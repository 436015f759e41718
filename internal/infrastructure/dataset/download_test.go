package dataset

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cinescope/cinescope/internal/infrastructure/config"
)

func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "MovieSummaries/",
		Typeflag: tar.TypeDir,
		Mode:     0o755,
	}))
	for name, content := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     "MovieSummaries/" + name,
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestExtract(t *testing.T) {
	t.Run("lands files in the target directory", func(t *testing.T) {
		dir := t.TempDir()
		archive := filepath.Join(dir, archiveName)
		require.NoError(t, os.WriteFile(archive, buildArchive(t, map[string]string{
			"plot_summaries.txt": "1\tA plot.\n",
		}), 0o644))

		dest := filepath.Join(dir, "corpus", "MovieSummaries")
		require.NoError(t, extract(archive, dest))

		content, err := os.ReadFile(filepath.Join(dest, "plot_summaries.txt"))
		require.NoError(t, err)
		assert.Equal(t, "1\tA plot.\n", string(content))

		// No temporary directory left behind
		_, err = os.Stat(dest + ".partial")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("failed extraction leaves no target directory", func(t *testing.T) {
		dir := t.TempDir()
		archive := filepath.Join(dir, archiveName)
		require.NoError(t, os.WriteFile(archive, []byte("not a gzip archive"), 0o644))

		dest := filepath.Join(dir, "MovieSummaries")
		require.Error(t, extract(archive, dest))

		_, err := os.Stat(dest)
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(dest + ".partial")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("clears leftovers from an interrupted extraction", func(t *testing.T) {
		dir := t.TempDir()
		archive := filepath.Join(dir, archiveName)
		require.NoError(t, os.WriteFile(archive, buildArchive(t, map[string]string{
			"movie.metadata.tsv": "row\n",
		}), 0o644))

		dest := filepath.Join(dir, "MovieSummaries")
		stale := dest + ".partial"
		require.NoError(t, os.MkdirAll(stale, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(stale, "truncated.tsv"), []byte("half a row"), 0o644))

		require.NoError(t, extract(archive, dest))

		_, err := os.Stat(filepath.Join(dest, "truncated.tsv"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(dest, "movie.metadata.tsv"))
		assert.NoError(t, err)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		dir := t.TempDir()

		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		tw := tar.NewWriter(gz)
		content := "gotcha"
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     "../evil.txt",
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, tw.Close())
		require.NoError(t, gz.Close())

		archive := filepath.Join(dir, archiveName)
		require.NoError(t, os.WriteFile(archive, buf.Bytes(), 0o644))

		assert.Error(t, extract(archive, filepath.Join(dir, "MovieSummaries")))
	})
}

func TestEnsure(t *testing.T) {
	t.Run("extracts an existing archive into the configured directory", func(t *testing.T) {
		dir := t.TempDir()
		downloadDir := filepath.Join(dir, "downloads")
		require.NoError(t, os.MkdirAll(downloadDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(downloadDir, archiveName), buildArchive(t, map[string]string{
			"plot_summaries.txt": "1\tA plot.\n",
		}), 0o644))

		// ExtractDir outside DownloadDir
		cfg := &config.DatasetConfig{
			URL:         "http://localhost:0/unused",
			DownloadDir: downloadDir,
			ExtractDir:  filepath.Join(dir, "corpus"),
		}

		got, err := Ensure(cfg, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, cfg.ExtractDir, got)
		_, err = os.Stat(filepath.Join(cfg.ExtractDir, "plot_summaries.txt"))
		assert.NoError(t, err)
	})

	t.Run("skips extraction when the directory exists", func(t *testing.T) {
		dir := t.TempDir()
		downloadDir := filepath.Join(dir, "downloads")
		extractDir := filepath.Join(dir, "corpus")
		require.NoError(t, os.MkdirAll(downloadDir, 0o755))
		require.NoError(t, os.MkdirAll(extractDir, 0o755))
		// Archive present but deliberately unreadable as gzip; it must not
		// be touched when the extract directory already exists.
		require.NoError(t, os.WriteFile(filepath.Join(downloadDir, archiveName), []byte("stale"), 0o644))

		cfg := &config.DatasetConfig{
			URL:         "http://localhost:0/unused",
			DownloadDir: downloadDir,
			ExtractDir:  extractDir,
		}

		got, err := Ensure(cfg, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, extractDir, got)
	})
}
