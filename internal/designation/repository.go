package designation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

// ErrDesignationNotFound indicates no designation exists for the given path.
var ErrDesignationNotFound = errors.New("designation: not found")

// ErrPathRequired indicates a designation without a path.
var ErrPathRequired = errors.New("designation: path is required")

// Designation records a page intentionally excluded from bilingual parity,
// e.g. original-language scholarly citations. Records are editorial input
// curated outside the validator; the validator only reads them.
type Designation struct {
	ID        uuid.UUID
	Path      string
	Language  interfaces.Language
	Reason    string
	CreatedAt time.Time
}

// Repository persists non-parity designations and emits change notifications.
type Repository interface {
	Get(ctx context.Context, path string) (Designation, error)
	List(ctx context.Context) ([]Designation, error)
	Upsert(ctx context.Context, record Designation) (Designation, error)
	Delete(ctx context.Context, path string) error
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}

// ChangeType enumerates designation change events.
type ChangeType string

const (
	// ChangeCreated indicates a designation was first persisted.
	ChangeCreated ChangeType = "created"
	// ChangeUpdated indicates a designation was updated.
	ChangeUpdated ChangeType = "updated"
	// ChangeDeleted indicates a designation was removed.
	ChangeDeleted ChangeType = "deleted"
)

// ChangeEvent reports designation mutations to interested subscribers.
type ChangeEvent struct {
	Type   ChangeType
	Record Designation
}

func newChangeEvent(changeType ChangeType, record Designation) ChangeEvent {
	return ChangeEvent{
		Type:   changeType,
		Record: record,
	}
}

// NormalizePath canonicalizes a designation path for keyed lookups.
func NormalizePath(path string) string {
	trimmed := strings.ToLower(strings.TrimSpace(path))
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return trimmed
}

func prepare(record Designation) (Designation, error) {
	record.Path = NormalizePath(record.Path)
	if record.Path == "" {
		return Designation{}, ErrPathRequired
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if !record.Language.Valid() {
		record.Language = interfaces.LanguageEnglish
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	return record, nil
}
