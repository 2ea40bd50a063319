package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/domain/showcase"
	"github.com/giftex-inc/giftex/internal/domain/sitesetting"
	"github.com/giftex-inc/giftex/internal/domain/ticket"
	vo "github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	"github.com/giftex-inc/giftex/internal/domain/user"
	"github.com/giftex-inc/giftex/internal/infrastructure/migration"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named in-memory database so the connection pool shares one schema
	// per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *user.User {
	t.Helper()
	u, err := user.NewUser("Cliente Teste", email, "hash", authorization.RoleClient, "Fumos BH", "31999990000")
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedModel(t *testing.T, db *gorm.DB, name string) *catalog.MachineModel {
	t.Helper()
	mm, err := catalog.NewMachineModel(name, catalog.CategoryCorte, "")
	require.NoError(t, err)
	require.NoError(t, NewMachineModelRepository(db).Create(context.Background(), mm))
	return mm
}

func seedMachine(t *testing.T, db *gorm.DB, ownerID, modelID uint) *machine.Machine {
	t.Helper()
	m, err := machine.NewMachine(ownerID, modelID, "SN-001", "Santa Cruz do Sul", "RS", nil, "")
	require.NoError(t, err)
	require.NoError(t, NewMachineRepository(db).Create(context.Background(), m))
	return m
}

func TestMachineRepositoryOwnershipScope(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "dono@example.com")
	other := seedUser(t, db, "outro@example.com")
	mm := seedModel(t, db, "Corte A")
	m := seedMachine(t, db, owner.ID(), mm.ID())

	repo := NewMachineRepository(db)

	found, err := repo.FindByIDAndOwner(ctx, m.ID(), owner.ID())
	require.NoError(t, err)
	assert.Equal(t, m.ID(), found.ID())

	// Wrong owner gets the same not-found as a missing row.
	_, err = repo.FindByIDAndOwner(ctx, m.ID(), other.ID())
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))

	machines, err := repo.ListByOwner(ctx, owner.ID())
	require.NoError(t, err)
	assert.Len(t, machines, 1)

	machines, err = repo.ListByOwner(ctx, other.ID())
	require.NoError(t, err)
	assert.Empty(t, machines)
}

func TestTicketRepositoryOwnerJoin(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "dono@example.com")
	other := seedUser(t, db, "outro@example.com")
	mm := seedModel(t, db, "Corte A")
	m := seedMachine(t, db, owner.ID(), mm.ID())

	repo := NewTicketRepository(db)

	tk, err := ticket.NewTicket(m.ID(), owner.ID(), catalog.CategoryCorte, nil, "Lâmina travando", vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tk))

	found, err := repo.FindByIDAndOwner(ctx, tk.ID(), owner.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen, found.Status())

	_, err = repo.FindByIDAndOwner(ctx, tk.ID(), other.ID())
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))

	tickets, total, err := repo.ListByOwner(ctx, owner.ID(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, tickets, 1)
}

func TestTicketMediaRepositoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "dono@example.com")
	mm := seedModel(t, db, "Corte A")
	m := seedMachine(t, db, owner.ID(), mm.ID())

	tk, err := ticket.NewTicket(m.ID(), owner.ID(), catalog.CategoryCorte, nil, "Lâmina travando", vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, NewTicketRepository(db).Create(ctx, tk))

	mediaRepo := NewTicketMediaRepository(db)
	for _, name := range []string{"primeira.jpg", "segunda.jpg", "terceira.jpg"} {
		media, err := ticket.NewMedia(tk.ID(), "tickets/tm_"+name, name, "image/jpeg", 1024)
		require.NoError(t, err)
		require.NoError(t, mediaRepo.Create(ctx, media))
	}

	listed, err := mediaRepo.ListByTicket(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "terceira.jpg", listed[0].OriginalName())
	assert.Equal(t, "segunda.jpg", listed[1].OriginalName())
	assert.Equal(t, "primeira.jpg", listed[2].OriginalName())
}

func TestTicketRepositoryUpdatePersistsStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "dono@example.com")
	mm := seedModel(t, db, "Prensa 40t")
	m := seedMachine(t, db, owner.ID(), mm.ID())

	repo := NewTicketRepository(db)

	tk, err := ticket.NewTicket(m.ID(), owner.ID(), catalog.CategoryPrensa, nil, "Vazamento", vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tk))

	require.NoError(t, tk.ChangeStatus(vo.StatusTriage))
	require.NoError(t, tk.ChangePriority(vo.PriorityHigh))
	require.NoError(t, repo.Update(ctx, tk))

	reloaded, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusTriage, reloaded.Status())
	assert.Equal(t, vo.PriorityHigh, reloaded.Priority())
}

func TestPartRepositoryCompatibility(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	modelA := seedModel(t, db, "Corte A")
	modelB := seedModel(t, db, "Corte B")

	repo := NewPartRepository(db)

	blade, err := catalog.NewPart("Lâmina", "LA-01", "", []uint{modelA.ID()})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, blade))

	belt, err := catalog.NewPart("Correia", "CO-02", "", []uint{modelA.ID(), modelB.ID()})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, belt))

	partsForA, err := repo.ListActiveCompatibleWith(ctx, modelA.ID())
	require.NoError(t, err)
	assert.Len(t, partsForA, 2)

	partsForB, err := repo.ListActiveCompatibleWith(ctx, modelB.ID())
	require.NoError(t, err)
	require.Len(t, partsForB, 1)
	assert.Equal(t, "Correia", partsForB[0].Name())

	// Inactive parts drop out of the selectable set.
	blade.Deactivate()
	require.NoError(t, repo.Update(ctx, blade))

	partsForA, err = repo.ListActiveCompatibleWith(ctx, modelA.ID())
	require.NoError(t, err)
	require.Len(t, partsForA, 1)
	assert.Equal(t, "Correia", partsForA[0].Name())
}

func TestPartRepositoryCodeUnique(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	modelA := seedModel(t, db, "Corte A")
	repo := NewPartRepository(db)

	blade, err := catalog.NewPart("Lâmina", "LA-01", "", []uint{modelA.ID()})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, blade))

	dup, err := catalog.NewPart("Lâmina reposição", "LA-01", "", []uint{modelA.ID()})
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, appErrors.IsConflictError(err))
}

func TestManualRepositoryListActiveOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	modelB := seedModel(t, db, "Prensa 40t")
	modelA := seedModel(t, db, "Corte A")

	repo := NewManualRepository(db)
	seedManual := func(modelID uint, title string, active bool) {
		m, err := catalog.NewManual(modelID, title, "", "https://docs.example.com/"+title)
		require.NoError(t, err)
		if !active {
			m.Deactivate()
		}
		require.NoError(t, repo.Create(ctx, m))
	}

	seedManual(modelB.ID(), "Manual de operação", true)
	seedManual(modelA.ID(), "Manual de operação", true)
	seedManual(modelA.ID(), "Esquema elétrico", true)
	seedManual(modelA.ID(), "Manual antigo", false)

	manuals, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, manuals, 3)

	// Model name first, then title within the model.
	assert.Equal(t, modelA.ID(), manuals[0].ModelID())
	assert.Equal(t, "Esquema elétrico", manuals[0].Title())
	assert.Equal(t, modelA.ID(), manuals[1].ModelID())
	assert.Equal(t, "Manual de operação", manuals[1].Title())
	assert.Equal(t, modelB.ID(), manuals[2].ModelID())
}

func TestShowcaseRepositorySlugLookup(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	repo := NewShowcaseRepository(db)

	m, err := showcase.NewMachine("Prensa Hidráulica 40t", catalog.CategoryPrensa, "Prensa de alta capacidade", "",
		showcase.Specs{Capacity: "40 t", Power: "7,5 cv"}, "", true, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, m))

	found, err := repo.FindActiveBySlug(ctx, "prensa-hidraulica-40t")
	require.NoError(t, err)
	assert.Equal(t, m.ID(), found.ID())

	exists, err := repo.ExistsBySlug(ctx, "prensa-hidraulica-40t")
	require.NoError(t, err)
	assert.True(t, exists)

	m.Deactivate()
	require.NoError(t, repo.Update(ctx, m))

	_, err = repo.FindActiveBySlug(ctx, "prensa-hidraulica-40t")
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestSiteSettingRepositoryUpsert(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	repo := NewSiteSettingRepository(db)

	setting, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, setting)

	s := sitesetting.NewSiteSetting()
	s.Update("GIFT Custom", "", "5531988887777", "", "", "", "")
	require.NoError(t, repo.Upsert(ctx, s))

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "GIFT Custom", loaded.SiteName())

	// Second upsert replaces the same row.
	s.Update("GIFT Excellence", "", "", "", "", "", "")
	require.NoError(t, repo.Upsert(ctx, s))

	loaded, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "GIFT Excellence", loaded.SiteName())
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	seedUser(t, db, "cliente@example.com")

	u, err := repo.FindByEmail(ctx, "cliente@example.com")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleClient, u.Role())

	_, err = repo.FindByEmail(ctx, "inexistente@example.com")
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}
