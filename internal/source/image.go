package source

import (
	"os"
	"path/filepath"
)

// ImageSource counts the frames of an image-sequence batch: every image in a
// directory, or exactly one for a single file.
type ImageSource struct {
	paths []string
}

func NewImageSource(path string) (*ImageSource, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	if fi.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				ext := filepath.Ext(entry.Name())
				if ext == ".jpg" || ext == ".jpeg" || ext == ".png" {
					paths = append(paths, filepath.Join(path, entry.Name()))
				}
			}
		}
	} else {
		paths = []string{path}
	}

	return &ImageSource{paths: paths}, nil
}

func (s *ImageSource) FrameCount() int {
	return len(s.paths)
}

func (s *ImageSource) Close() error {
	return nil
}
