package mappers

import (
	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
)

// CatalogMapper converts catalog entities to and from persistence models.
type CatalogMapper interface {
	MachineModelToModel(mm *catalog.MachineModel) *models.MachineModelModel
	MachineModelToDomain(model *models.MachineModelModel) (*catalog.MachineModel, error)
	SymptomToModel(s *catalog.Symptom) *models.SymptomModel
	SymptomToDomain(model *models.SymptomModel) (*catalog.Symptom, error)
	PartToModel(p *catalog.Part) (*models.PartModel, []models.PartCompatibleModelModel)
	PartToDomain(model *models.PartModel, compatibleModelIDs []uint) (*catalog.Part, error)
	ManualToModel(m *catalog.Manual) *models.ManualModel
	ManualToDomain(model *models.ManualModel) (*catalog.Manual, error)
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) MachineModelToModel(mm *catalog.MachineModel) *models.MachineModelModel {
	return &models.MachineModelModel{
		ID:          mm.ID(),
		Name:        mm.Name(),
		Category:    mm.Category().String(),
		Description: mm.Description(),
		Active:      mm.IsActive(),
		CreatedAt:   mm.CreatedAt().UnixMilli(),
		UpdatedAt:   mm.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) MachineModelToDomain(model *models.MachineModelModel) (*catalog.MachineModel, error) {
	category, err := catalog.NewCategory(model.Category)
	if err != nil {
		return nil, err
	}
	return catalog.ReconstructMachineModel(
		model.ID,
		model.Name,
		category,
		model.Description,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) SymptomToModel(s *catalog.Symptom) *models.SymptomModel {
	return &models.SymptomModel{
		ID:        s.ID(),
		Name:      s.Name(),
		Category:  s.Category().String(),
		Active:    s.IsActive(),
		CreatedAt: s.CreatedAt().UnixMilli(),
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) SymptomToDomain(model *models.SymptomModel) (*catalog.Symptom, error) {
	category, err := catalog.NewCategory(model.Category)
	if err != nil {
		return nil, err
	}
	return catalog.ReconstructSymptom(
		model.ID,
		model.Name,
		category,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

// PartToModel also emits the compatibility join rows. The repository
// replaces the join set inside the same transaction as the part row.
func (m *CatalogMapperImpl) PartToModel(p *catalog.Part) (*models.PartModel, []models.PartCompatibleModelModel) {
	model := &models.PartModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Code:        p.Code(),
		Description: p.Description(),
		Active:      p.IsActive(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}

	ids := p.CompatibleModelIDs()
	joins := make([]models.PartCompatibleModelModel, 0, len(ids))
	for _, modelID := range ids {
		joins = append(joins, models.PartCompatibleModelModel{
			PartID:  p.ID(),
			ModelID: modelID,
		})
	}

	return model, joins
}

func (m *CatalogMapperImpl) PartToDomain(model *models.PartModel, compatibleModelIDs []uint) (*catalog.Part, error) {
	return catalog.ReconstructPart(
		model.ID,
		model.Name,
		model.Code,
		model.Description,
		model.Active,
		compatibleModelIDs,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) ManualToModel(manual *catalog.Manual) *models.ManualModel {
	return &models.ManualModel{
		ID:          manual.ID(),
		ModelID:     manual.ModelID(),
		Title:       manual.Title(),
		StoragePath: manual.StoragePath(),
		ExternalURL: manual.ExternalURL(),
		Active:      manual.IsActive(),
		CreatedAt:   manual.CreatedAt().UnixMilli(),
		UpdatedAt:   manual.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) ManualToDomain(model *models.ManualModel) (*catalog.Manual, error) {
	return catalog.ReconstructManual(
		model.ID,
		model.ModelID,
		model.Title,
		model.StoragePath,
		model.ExternalURL,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
