package entity

import "path/filepath"

// StagingDir is the per-day local directory that buffers files before
// publication. It always has original/, resized/ and thumbnail/ children.
type StagingDir struct {
	Root string
	Date string // MM-DD-YYYY
}

func (d StagingDir) Path(r Role) string {
	return filepath.Join(d.Root, string(r))
}

func (d StagingDir) Original() string  { return d.Path(Original) }
func (d StagingDir) Resized() string   { return d.Path(Resized) }
func (d StagingDir) Thumbnail() string { return d.Path(Thumbnail) }

type StagedFile struct {
	Filename string
	Path     string
}

// DerivativeSet holds the three staged variants of one upload. All members
// share Filename.
type DerivativeSet struct {
	Original  StagedFile
	Resized   StagedFile
	Thumbnail StagedFile
}

func (s DerivativeSet) File(r Role) StagedFile {
	switch r {
	case Resized:
		return s.Resized
	case Thumbnail:
		return s.Thumbnail
	default:
		return s.Original
	}
}
