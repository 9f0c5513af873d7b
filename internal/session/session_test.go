package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/document"
)

func pdfFile(name string) document.File {
	return document.File{ID: "f-1", Name: name, Path: "/tmp/" + name, Size: 1024, Type: document.TypePDF, Pages: 3}
}

func TestUploadWithoutFileIsNoOp(t *testing.T) {
	s := New()
	require.False(t, s.BeginUpload())
	assert.False(t, s.Uploading())
	assert.Nil(t, s.Outcome())
	assert.Nil(t, s.File())
}

func TestUploadLifecycle(t *testing.T) {
	s := New()
	require.True(t, s.Drop(pdfFile("thesis.pdf")))

	require.True(t, s.BeginUpload())
	assert.True(t, s.Uploading())
	assert.Nil(t, s.Outcome(), "prior outcome must be cleared while uploading")

	// A second attempt while busy is refused.
	assert.False(t, s.BeginUpload())

	s.FinishUpload(Success("thesis.pdf uploaded and processed successfully."))
	assert.False(t, s.Uploading())
	require.NotNil(t, s.Outcome())
	assert.Equal(t, StatusSuccess, s.Outcome().Status)
	assert.Contains(t, s.Outcome().Message, "thesis.pdf")
}

func TestUploadFailureClearsBusyFlag(t *testing.T) {
	s := New()
	require.True(t, s.Drop(pdfFile("a.pdf")))
	require.True(t, s.BeginUpload())

	s.FinishUpload(Failure("upload failed: simulated network error"))
	assert.False(t, s.Uploading())
	require.NotNil(t, s.Outcome())
	assert.Equal(t, StatusError, s.Outcome().Status)
}

func TestAskBlankQuestionIsNoOp(t *testing.T) {
	s := New()
	for _, q := range []string{"", "   ", "\t\n"} {
		s.SetQuestion(q)
		_, ok := s.BeginAsk()
		assert.False(t, ok, "question %q should not start a query", q)
		assert.False(t, s.Asking())
		assert.Empty(t, s.Report())
	}
}

func TestAskLifecycle(t *testing.T) {
	s := New()
	s.SetQuestion("  What is the evaluation metric?  ")

	q, ok := s.BeginAsk()
	require.True(t, ok)
	assert.Equal(t, "What is the evaluation metric?", q)
	assert.True(t, s.Asking())

	_, ok = s.BeginAsk()
	assert.False(t, ok, "concurrent queries are refused")

	s.FinishAsk("Answer: echoes \"What is the evaluation metric?\"", nil)
	assert.False(t, s.Asking())
	assert.Contains(t, s.Report(), "What is the evaluation metric?")
	assert.Empty(t, s.AskError())
}

func TestAskFailureKeepsPriorReport(t *testing.T) {
	s := New()
	s.SetQuestion("first")
	_, ok := s.BeginAsk()
	require.True(t, ok)
	s.FinishAsk("first report", nil)

	s.SetQuestion("second")
	_, ok = s.BeginAsk()
	require.True(t, ok)
	s.FinishAsk("", errors.New("query failed: simulated processing error"))

	assert.False(t, s.Asking())
	assert.Equal(t, "first report", s.Report())
	assert.Contains(t, s.AskError(), "simulated processing error")
}

func TestDropRequiresDeclaredPDFType(t *testing.T) {
	s := New()
	require.True(t, s.Drop(pdfFile("keep.pdf")))

	other := document.File{Name: "notes.txt", Type: "text/plain"}
	assert.False(t, s.Drop(other))
	require.NotNil(t, s.File())
	assert.Equal(t, "keep.pdf", s.File().Name, "non-PDF drop must not replace the selection")
}

func TestDropReplacesSelection(t *testing.T) {
	s := New()
	require.True(t, s.Drop(pdfFile("old.pdf")))
	require.True(t, s.Drop(pdfFile("new.pdf")))
	assert.Equal(t, "new.pdf", s.File().Name)
}

func TestHoverFlag(t *testing.T) {
	s := New()
	s.HoverStart()
	assert.True(t, s.DragHover())
	s.HoverEnd()
	assert.False(t, s.DragHover())

	// Leave always clears, regardless of prior state.
	s.HoverEnd()
	assert.False(t, s.DragHover())

	s.HoverStart()
	require.True(t, s.Drop(pdfFile("dropped.pdf")))
	assert.False(t, s.DragHover(), "drop clears the hover flag")

	s.HoverStart()
	assert.False(t, s.Drop(document.File{Name: "x.csv", Type: "text/csv"}))
	assert.False(t, s.DragHover(), "even an ignored drop clears the hover flag")
}
