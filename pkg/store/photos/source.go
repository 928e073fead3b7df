package photos

import (
	"fmt"
	"os"
)

// Source lists the improvement-photo filenames available for pairing.
type Source interface {
	List() ([]string, error)
}

type Settings struct {
	Dir string
}

type dirSource struct {
	dir string
}

// NewDirSource reads filenames from a local directory. A missing directory
// is not an error: the photo section is optional and simply comes out empty.
func NewDirSource(settings Settings) Source {
	return &dirSource{dir: settings.Dir}
}

func (s *dirSource) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list photo directory %q: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
