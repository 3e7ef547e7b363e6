// Package filex holds small file helpers shared by the server and the CLI:
// local directories, reading files for upload and classifying attachments.
package filex

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// MaxUploadSize caps files read by ReadForUpload.
const MaxUploadSize = 20 << 20

func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ReadForUpload reads path and returns its base name and content.
func ReadForUpload(path string) (string, []byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", nil, err
	}
	if fi.IsDir() {
		return "", nil, fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > MaxUploadSize {
		return "", nil, fmt.Errorf("%s is larger than %d bytes", path, MaxUploadSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return filepath.Base(path), data, nil
}

// Ext returns the lower-cased extension of name without the dot.
func Ext(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// AttachmentType classifies a file name as image, pdf, xls, doc or file.
func AttachmentType(name string) string {
	switch Ext(name) {
	case "png", "jpg", "jpeg", "gif", "webp", "bmp", "svg":
		return "image"
	case "pdf":
		return "pdf"
	case "xls", "xlsx", "csv", "ods":
		return "xls"
	case "doc", "docx", "odt", "rtf", "txt":
		return "doc"
	default:
		return "file"
	}
}

// ContentType guesses a MIME type from the extension of name.
func ContentType(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return "application/octet-stream"
	}
	if t := mime.TypeByExtension(strings.ToLower(ext)); t != "" {
		return t
	}
	return "application/octet-stream"
}
