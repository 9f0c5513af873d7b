package document

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
)

// TypePDF is the only declared type the assistant accepts for upload.
const TypePDF = "application/pdf"

const fallbackType = "application/octet-stream"

// File describes a locally chosen document. The Type field is the declared
// MIME type derived from the file name, not a sniffed one.
type File struct {
	ID    string
	Name  string
	Path  string
	Size  int64
	Type  string
	Pages int
}

// IsPDF reports whether the declared type is exactly application/pdf.
func (f File) IsPDF() bool {
	return f.Type == TypePDF
}

// DetectType maps a file name to its declared MIME type.
func DetectType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		return TypePDF
	case ".txt":
		return "text/plain"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return fallbackType
}

// Stat builds a File for the given path. For PDFs the page count is read from
// the document trailer; a malformed PDF degrades to zero pages rather than an
// error, since the count is display-only.
func Stat(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}
	f := File{
		ID:   uuid.New().String(),
		Name: info.Name(),
		Path: path,
		Size: info.Size(),
		Type: DetectType(info.Name()),
	}
	if f.IsPDF() {
		f.Pages = countPages(path)
	}
	return f, nil
}

func countPages(path string) int {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return 0
	}
	defer file.Close()
	return reader.NumPage()
}
