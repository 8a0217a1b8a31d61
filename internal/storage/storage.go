package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	MaxFileSize = 5 * 1024 * 1024
	// PublicPrefix is the URL path under which the upload directory is served.
	PublicPrefix = "/uploads"
)

var (
	ErrFileTooLarge      = errors.New("file exceeds the 5MB limit")
	ErrUnsupportedFormat = errors.New("only JPG and PNG images are accepted")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// SaveEvidence stores the evidence photo of report reportID under
// dir/reports/<reportID>/ and returns the URL path it is served from.
func SaveEvidence(dir, reportID string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxFileSize {
		return "", errors.Wrap(ErrFileTooLarge, fileHeader.Filename)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", errors.Wrap(ErrUnsupportedFormat, fileHeader.Filename)
	}

	uploadDir := filepath.Join(dir, "reports", reportID)
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", errors.Wrap(err, "create upload dir")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer file.Close()

	filename := "evidence" + ext
	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", errors.Wrap(err, "create evidence file")
	}
	defer dst.Close()

	// Headers may understate the size, so the copy is capped as well.
	n, err := io.Copy(dst, io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return "", errors.Wrap(err, "write evidence file")
	}
	if n > MaxFileSize {
		_ = os.RemoveAll(uploadDir)
		return "", errors.Wrap(ErrFileTooLarge, fileHeader.Filename)
	}

	return path.Join(PublicPrefix, "reports", reportID, filename), nil
}
