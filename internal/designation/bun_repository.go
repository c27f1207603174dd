package designation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

// BunRepository persists designations using a Bun-backed database.
type BunRepository struct {
	db          *bun.DB
	broadcaster *changeBroadcaster
}

// NewBunRepository constructs a Bun-backed repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{
		db:          db,
		broadcaster: newChangeBroadcaster(),
	}
}

var _ Repository = (*BunRepository)(nil)

// Get returns the persisted designation for path.
func (r *BunRepository) Get(ctx context.Context, path string) (Designation, error) {
	if r.db == nil {
		return Designation{}, errors.New("designation: bun repository requires a database")
	}
	var model designationModel
	if err := r.db.NewSelect().Model(&model).Where("path = ?", NormalizePath(path)).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Designation{}, ErrDesignationNotFound
		}
		return Designation{}, err
	}
	return modelToDesignation(&model), nil
}

// List returns every persisted designation ordered by path.
func (r *BunRepository) List(ctx context.Context) ([]Designation, error) {
	if r.db == nil {
		return nil, errors.New("designation: bun repository requires a database")
	}
	var models []designationModel
	if err := r.db.NewSelect().Model(&models).Order("path ASC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]Designation, 0, len(models))
	for i := range models {
		out = append(out, modelToDesignation(&models[i]))
	}
	return out, nil
}

// Upsert creates or updates the persisted designation for record.Path.
func (r *BunRepository) Upsert(ctx context.Context, record Designation) (Designation, error) {
	if r.db == nil {
		return Designation{}, errors.New("designation: bun repository requires a database")
	}

	prepared, err := prepare(record)
	if err != nil {
		return Designation{}, err
	}

	var existing designationModel
	selectErr := r.db.NewSelect().Model(&existing).Where("path = ?", prepared.Path).Scan(ctx)
	created := false
	if selectErr != nil {
		if errors.Is(selectErr, sql.ErrNoRows) {
			created = true
		} else {
			return Designation{}, selectErr
		}
	}

	model := modelFromDesignation(prepared)
	if created {
		if _, err := r.db.NewInsert().Model(&model).Exec(ctx); err != nil {
			return Designation{}, err
		}
	} else {
		model.ID = existing.ID
		model.CreatedAt = existing.CreatedAt
		if _, err := r.db.NewUpdate().
			Model(&model).
			Column("language", "reason").
			WherePK().
			Exec(ctx); err != nil {
			return Designation{}, err
		}
	}

	stored, err := r.Get(ctx, prepared.Path)
	if err != nil {
		return Designation{}, err
	}

	eventType := ChangeUpdated
	if created {
		eventType = ChangeCreated
	}
	r.broadcaster.Broadcast(newChangeEvent(eventType, stored))
	return stored, nil
}

// Delete removes the persisted designation for path.
func (r *BunRepository) Delete(ctx context.Context, path string) error {
	if r.db == nil {
		return errors.New("designation: bun repository requires a database")
	}
	var model designationModel
	err := r.db.NewSelect().Model(&model).Where("path = ?", NormalizePath(path)).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDesignationNotFound
		}
		return err
	}
	if _, err := r.db.NewDelete().Model(&model).WherePK().Exec(ctx); err != nil {
		return err
	}
	r.broadcaster.Broadcast(newChangeEvent(ChangeDeleted, modelToDesignation(&model)))
	return nil
}

// Subscribe delivers change events until the context is cancelled.
func (r *BunRepository) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	return r.broadcaster.Subscribe(ctx)
}

type designationModel struct {
	bun.BaseModel `bun:"table:non_parity_designations"`

	Path      string    `bun:"path,pk"`
	ID        string    `bun:"id,notnull"`
	Language  string    `bun:"language,notnull"`
	Reason    string    `bun:"reason"`
	CreatedAt time.Time `bun:"created_at"`
}

func modelFromDesignation(record Designation) designationModel {
	return designationModel{
		Path:      record.Path,
		ID:        record.ID.String(),
		Language:  string(record.Language),
		Reason:    record.Reason,
		CreatedAt: record.CreatedAt,
	}
}

func modelToDesignation(model *designationModel) Designation {
	if model == nil {
		return Designation{}
	}
	id, err := uuid.Parse(model.ID)
	if err != nil {
		id = uuid.Nil
	}
	lang, ok := interfaces.ParseLanguage(model.Language)
	if !ok {
		lang = interfaces.LanguageEnglish
	}
	return Designation{
		ID:        id,
		Path:      model.Path,
		Language:  lang,
		Reason:    model.Reason,
		CreatedAt: model.CreatedAt,
	}
}
