package ports

import "github.com/mkazemie/github-profile-generator/internal/domain"

// DocumentSink persists a generated document and returns where it went.
type DocumentSink interface {
	WriteDocument(doc domain.Document) (location string, err error)
}
