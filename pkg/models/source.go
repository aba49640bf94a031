package models

// SourceKind tells the loader where an image lives
type SourceKind string

const (
	SourceLocal SourceKind = "local"
	SourceURL   SourceKind = "url"
)

// Source identifies a single image to load
type Source struct {
	Kind     SourceKind `json:"kind"`
	Location string     `json:"location"`
}

// LocalSource builds a source for a file path
func LocalSource(path string) Source {
	return Source{Kind: SourceLocal, Location: path}
}

// URLSource builds a source for a remote image
func URLSource(rawURL string) Source {
	return Source{Kind: SourceURL, Location: rawURL}
}

func (s Source) String() string {
	return string(s.Kind) + ":" + s.Location
}
