package dataset

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/cinescope/cinescope/internal/infrastructure/config"
)

const archiveName = "MovieSummaries.tar.gz"

// Ensure makes the extracted corpus available on disk, downloading and
// extracting the archive only when missing. It returns the directory
// containing the TSV files.
func Ensure(cfg *config.DatasetConfig, log *zap.Logger) (string, error) {
	if err := os.MkdirAll(cfg.DownloadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	archivePath := filepath.Join(cfg.DownloadDir, archiveName)

	if _, err := os.Stat(archivePath); os.IsNotExist(err) {
		log.Info("Downloading dataset", zap.String("url", cfg.URL))
		if err := download(cfg.URL, archivePath); err != nil {
			return "", err
		}
		log.Info("Download complete")
	} else {
		log.Info("Dataset already downloaded", zap.String("path", archivePath))
	}

	if _, err := os.Stat(cfg.ExtractDir); os.IsNotExist(err) {
		log.Info("Extracting dataset", zap.String("path", archivePath))
		if err := extract(archivePath, cfg.ExtractDir); err != nil {
			return "", err
		}
		log.Info("Extraction complete")
	} else {
		log.Info("Dataset already extracted", zap.String("path", cfg.ExtractDir))
	}

	return cfg.ExtractDir, nil
}

func download(url, dest string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to download dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dataset download returned status %d", resp.StatusCode)
	}

	tmp := dest + ".partial"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}

	return os.Rename(tmp, dest)
}

// extract unpacks the archive into destDir. It extracts into a sibling
// temporary directory first and renames it into place once the whole
// archive has been read, so an interrupted extraction never leaves a
// half-populated destDir behind.
func extract(archivePath, destDir string) error {
	tmp := destDir + ".partial"
	if err := os.RemoveAll(tmp); err != nil {
		return fmt.Errorf("failed to clear extract directory: %w", err)
	}
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return fmt.Errorf("failed to create extract directory: %w", err)
	}

	if err := extractTo(archivePath, tmp); err != nil {
		os.RemoveAll(tmp)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(destDir), 0o755); err != nil {
		return fmt.Errorf("failed to create extract directory: %w", err)
	}
	return os.Rename(tmp, destDir)
}

func extractTo(archivePath, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to read gzip archive: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read tar entry: %w", err)
		}

		// Reject entries that would escape the destination directory.
		name := filepath.Clean(hdr.Name)
		if strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
			return fmt.Errorf("archive contains invalid path %q", hdr.Name)
		}

		// The archive nests everything under a single top-level directory;
		// strip it so the files land in destDir itself.
		rel := name
		if i := strings.IndexByte(name, '/'); i >= 0 {
			rel = name[i+1:]
		} else if hdr.Typeflag == tar.TypeDir {
			continue
		}
		if rel == "" {
			continue
		}
		target := filepath.Join(destDir, rel)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
			out, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("failed to create file: %w", err)
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return fmt.Errorf("failed to extract %s: %w", hdr.Name, err)
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", hdr.Name, err)
			}
		}
	}
}
