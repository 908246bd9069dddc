package combine

// Record delimiters of the export format.
const (
	fileHeaderPrefix = "=== FILE: "
	fileHeaderSuffix = " ==="
	fileFooter       = "=== END OF FILE ==="
	errorPrefix      = "[ERROR READING FILE: "
	errorSuffix      = "]"
)

// FileContent holds one matched file as it will appear in the export.
type FileContent struct {
	Path    string // Path relative to the export root, forward slashes.
	Content string // Full UTF-8 content; empty when Err is set.
	Err     error  // Read or decode failure, rendered in place of Content.
}

// Summary describes an export. It is safe to derive UI status text from it.
// When the sink fails, it covers only the complete records the sink accepted.
type Summary struct {
	Files  int              // Complete records written, including failed ones.
	Failed []*FileReadError // Written records that carry an error placeholder.
	Bytes  int64            // Bytes accepted by the sink.
}

// Succeeded returns the number of records that carry real file content.
func (s Summary) Succeeded() int {
	return s.Files - len(s.Failed)
}
