package designation

import (
	"context"
	"errors"

	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

// Lookup adapts a Repository into the read-only capability the parity
// validator consumes, keeping editorial override policy out of the
// validator's control flow.
type Lookup struct {
	repo Repository
}

// NewLookup wraps a repository. A nil repository yields a lookup that never
// matches, which keeps the validator usable without a designation store.
func NewLookup(repo Repository) *Lookup {
	return &Lookup{repo: repo}
}

var _ interfaces.NonParityLookup = (*Lookup)(nil)

// Designation reports whether path is designated non-parity.
func (l *Lookup) Designation(ctx context.Context, path string) (interfaces.NonParityDesignation, bool, error) {
	if l == nil || l.repo == nil {
		return interfaces.NonParityDesignation{}, false, nil
	}
	record, err := l.repo.Get(ctx, path)
	if err != nil {
		if errors.Is(err, ErrDesignationNotFound) {
			return interfaces.NonParityDesignation{}, false, nil
		}
		return interfaces.NonParityDesignation{}, false, err
	}
	return interfaces.NonParityDesignation{
		Path:     record.Path,
		Language: record.Language,
		Reason:   record.Reason,
	}, true, nil
}
