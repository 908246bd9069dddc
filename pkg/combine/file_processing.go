package combine

import (
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ProcessSingleFile reads one matched file into a FileContent. Read and decode
// failures are stored in the result rather than returned.
func ProcessSingleFile(filePath, root string, logger *zap.Logger) FileContent {
	relativePath := relativePath(root, filePath)
	logger.Debug("Reading file content", zap.String("filePath", filePath))

	content, err := readTextFile(filePath)
	if err != nil {
		logger.Warn("Failed to read file, writing error placeholder",
			zap.String("filePath", filePath),
			zap.Error(err))
		return FileContent{Path: relativePath, Err: err}
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", filePath),
		zap.Int("contentSizeBytes", len(content)))
	return FileContent{Path: relativePath, Content: content}
}

// readTextFile reads the whole file and rejects content that is not valid UTF-8.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return string(data), nil
}

// Record renders fc as one delimited block of the export format.
func (fc FileContent) Record() string {
	body := fc.Content
	if fc.Err != nil {
		body = errorPrefix + fc.Err.Error() + errorSuffix
	}

	var b strings.Builder
	b.Grow(len(fc.Path) + len(body) + 64)
	b.WriteString(fileHeaderPrefix)
	b.WriteString(fc.Path)
	b.WriteString(fileHeaderSuffix)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(fileFooter)
	b.WriteString("\n\n")
	return b.String()
}
