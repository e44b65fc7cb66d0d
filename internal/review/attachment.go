// Package review implements the review-drafting session: image discovery,
// initial message assembly, the interactive conversation loop, and transcript
// persistence.
package review

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Recognized image extensions, matched case-insensitively
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// ImageAttachment is a discovered image file ready to be embedded in a message
type ImageAttachment struct {
	Path      string
	MediaType string // Derived from the file extension, e.g. "image/jpeg"
	Data      string // Base64-encoded file content
}

// CollectImages scans dir non-recursively for files with a recognized image
// extension and encodes each one. A missing directory yields no attachments;
// an unreadable file is an error. Attachments are returned in directory
// listing order, which os.ReadDir sorts by filename.
func CollectImages(dir string) ([]ImageAttachment, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list images directory: %w", err)
	}

	var attachments []ImageAttachment
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !isImageExtension(ext) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read image '%s': %w", path, err)
		}
		attachments = append(attachments, ImageAttachment{
			Path: path,
			// The label comes from the extension as found on disk; the file
			// content is not inspected
			MediaType: "image/" + strings.TrimPrefix(ext, "."),
			Data:      base64.StdEncoding.EncodeToString(b),
		})
	}
	return attachments, nil
}

func isImageExtension(ext string) bool {
	for _, e := range imageExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
