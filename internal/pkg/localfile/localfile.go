package localfile

import (
	"fmt"
	"os"
	"path/filepath"

	"ai-docqa-client/internal/entity"

	"github.com/gabriel-vasile/mimetype"
)

// Load reads path and declares the media type sniffed from its content,
// the way a browser declares one for a picked or dropped file. The extension
// is not trusted.
func Load(path string) (entity.UploadFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return entity.UploadFile{}, fmt.Errorf("read %s: %w", path, err)
	}

	return entity.UploadFile{
		Name:      filepath.Base(path),
		MediaType: mimetype.Detect(content).String(),
		Content:   content,
	}, nil
}
