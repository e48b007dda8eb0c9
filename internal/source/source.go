package source

import (
	"github.com/gen2brain/go-fitz"
)

// Source reports how many frames the conditioning target has. The scheduler
// only ever consumes the count; rendering stays with the video pipeline.
type Source interface {
	FrameCount() int
	Close() error
}

// FitzPDFSource derives the frame count from a PDF, one page per frame
type FitzPDFSource struct {
	doc *fitz.Document
}

func NewFitzPDFSource(path string) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &FitzPDFSource{doc: doc}, nil
}

func (f *FitzPDFSource) FrameCount() int {
	return f.doc.NumPage()
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}

// StaticSource is a fixed frame count supplied directly, e.g. from a flag
type StaticSource int

func (s StaticSource) FrameCount() int {
	return int(s)
}

func (s StaticSource) Close() error {
	return nil
}
