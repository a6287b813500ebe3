package domain

// UploadKind distinguishes the two staged file categories.
type UploadKind string

const (
	UploadDocument UploadKind = "document"
	UploadImage    UploadKind = "image"
)

// MaxStagedPerKind caps how many files of each kind a user can hold before
// committing an upload batch.
const MaxStagedPerKind = 3

// StagedFile is a picked file held in memory until the batch is committed.
type StagedFile struct {
	Kind     UploadKind `json:"kind"`
	Filename string     `json:"filename"`
	Content  []byte     `json:"-"`
}

// UploadResult reports the outcome of uploading one staged file.
// A batch commit returns one result per attempted item; earlier successes are
// not rolled back when a later item fails.
type UploadResult struct {
	Kind     UploadKind `json:"kind"`
	Filename string     `json:"filename"`
	Path     string     `json:"path,omitempty"`
	URL      string     `json:"url,omitempty"`
	Error    string     `json:"error,omitempty"`
}
