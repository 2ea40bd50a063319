package catalog

import "context"

// MachineModelRepository persists catalog machine models.
type MachineModelRepository interface {
	Create(ctx context.Context, model *MachineModel) error
	Update(ctx context.Context, model *MachineModel) error
	FindByID(ctx context.Context, id uint) (*MachineModel, error)
	ListActive(ctx context.Context) ([]*MachineModel, error)
	List(ctx context.Context, offset, limit int) ([]*MachineModel, int64, error)
}

// SymptomRepository persists selectable symptoms.
type SymptomRepository interface {
	Create(ctx context.Context, symptom *Symptom) error
	Update(ctx context.Context, symptom *Symptom) error
	FindByID(ctx context.Context, id uint) (*Symptom, error)
	ListActive(ctx context.Context) ([]*Symptom, error)
	ListActiveByCategory(ctx context.Context, category Category) ([]*Symptom, error)
	List(ctx context.Context, offset, limit int) ([]*Symptom, int64, error)
}

// PartRepository persists spare parts and their model compatibility.
type PartRepository interface {
	Create(ctx context.Context, part *Part) error
	Update(ctx context.Context, part *Part) error
	FindByID(ctx context.Context, id uint) (*Part, error)
	ListActive(ctx context.Context) ([]*Part, error)
	// ListActiveCompatibleWith narrows to active parts compatible with the
	// given machine model. Used to build the selectable set on part
	// requests.
	ListActiveCompatibleWith(ctx context.Context, modelID uint) ([]*Part, error)
	List(ctx context.Context, offset, limit int) ([]*Part, int64, error)
}

// ManualRepository persists manuals attached to machine models.
type ManualRepository interface {
	Create(ctx context.Context, manual *Manual) error
	Update(ctx context.Context, manual *Manual) error
	FindByID(ctx context.Context, id uint) (*Manual, error)
	// ListActive returns every active manual, ordered by the owning model
	// name and then by title.
	ListActive(ctx context.Context) ([]*Manual, error)
	List(ctx context.Context, offset, limit int) ([]*Manual, int64, error)
}
