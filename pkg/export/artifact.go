package export

// Artifact is a downloadable report: a filename for the save dialog and the
// finished file content.
type Artifact struct {
	Filename string
	Content  []byte
}
