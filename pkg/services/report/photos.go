package report

import (
	"path"
	"strings"

	"github.com/de-tools/scoop-report/pkg/models/domain"
)

var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

type photoGroup struct {
	before string
	after  string
}

// pairPhotos groups improvement photos that share a base name once the
// extension and the "antes"/"depois" markers are stripped. A group with
// both sides becomes a before/after improvement; a lone photo is kept as
// a plain record. Emission follows the order keys first appear in the
// listing, which the source already sorts.
func pairPhotos(names []string, urlPrefix string) []domain.PhotoPair {
	groups := make(map[string]*photoGroup)
	var order []string

	for _, name := range names {
		lower := strings.ToLower(name)
		key := photoKey(lower)

		g, ok := groups[key]
		if !ok {
			g = &photoGroup{}
			groups[key] = g
			order = append(order, key)
		}

		ref := path.Join(urlPrefix, name)
		switch {
		case strings.Contains(lower, "antes"):
			if g.before == "" {
				g.before = ref
			}
		case strings.Contains(lower, "depois"):
			if g.after == "" {
				g.after = ref
			}
		default:
			// Unmarked photos still count as a record shot.
			if g.after == "" {
				g.after = ref
			} else if g.before == "" {
				g.before = ref
			}
		}
	}

	var pairs []domain.PhotoPair
	for _, key := range order {
		g := groups[key]
		if g.before == "" && g.after == "" {
			continue
		}

		kind := domain.PhotoRecord
		if g.before != "" && g.after != "" && g.before != g.after {
			kind = domain.PhotoImprovement
		}
		pairs = append(pairs, domain.PhotoPair{
			Before: g.before,
			After:  g.after,
			Kind:   kind,
			Title:  "Reg. " + key,
		})
	}
	return pairs
}

func photoKey(lower string) string {
	if ext := path.Ext(lower); photoExtensions[ext] {
		lower = strings.TrimSuffix(lower, ext)
	}
	lower = strings.ReplaceAll(lower, "antes", "")
	lower = strings.ReplaceAll(lower, "depois", "")
	return strings.Trim(lower, "-_ .")
}
