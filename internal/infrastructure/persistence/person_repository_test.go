package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

func TestGormPersonRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewGormPersonRepository(setupTestDB(t))
	tenantID := uuid.New()

	t.Run("round-trips an individual", func(t *testing.T) {
		person := newTestIndividual(t, tenantID, "Maria")
		require.NoError(t, repo.SaveIndividual(ctx, person))

		found, err := repo.FindIndividualByID(ctx, tenantID, person.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, person.Name, found.Name)
		assert.Equal(t, party.MaritalStatusSingle, found.MaritalStatus)
		assert.Equal(t, person.Version, found.Version)
	})

	t.Run("round-trips a company", func(t *testing.T) {
		person := newTestCompany(t, tenantID, "ACME")
		require.NoError(t, repo.SaveLegal(ctx, person))

		found, err := repo.FindLegalByID(ctx, tenantID, person.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "ACME Ltda", found.LegalName)
	})

	t.Run("record view carries the kind-specific field", func(t *testing.T) {
		person := newTestIndividual(t, tenantID, "Pedro")
		require.NoError(t, repo.SaveIndividual(ctx, person))

		record, err := repo.FindByIDForTenant(ctx, tenantID, person.ID)
		require.NoError(t, err)
		require.NotNil(t, record)
		require.NotNil(t, record.MaritalStatus)
		assert.Nil(t, record.LegalName)
	})

	t.Run("kind mismatch yields nil", func(t *testing.T) {
		person := newTestIndividual(t, tenantID, "Joana")
		require.NoError(t, repo.SaveIndividual(ctx, person))

		legal, err := repo.FindLegalByID(ctx, tenantID, person.ID)
		require.NoError(t, err)
		assert.Nil(t, legal)
	})

	t.Run("missing person is nil not error", func(t *testing.T) {
		found, err := repo.FindByIDForTenant(ctx, tenantID, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("tenants are isolated", func(t *testing.T) {
		person := newTestIndividual(t, tenantID, "Isolada")
		require.NoError(t, repo.SaveIndividual(ctx, person))

		found, err := repo.FindByIDForTenant(ctx, uuid.New(), person.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("save updates in place", func(t *testing.T) {
		person := newTestIndividual(t, tenantID, "Carla")
		require.NoError(t, repo.SaveIndividual(ctx, person))

		require.True(t, person.ChangeEmail("carla.nova@example.com").IsSuccess())
		require.NoError(t, repo.SaveIndividual(ctx, person))

		found, err := repo.FindIndividualByID(ctx, tenantID, person.ID)
		require.NoError(t, err)
		assert.Equal(t, "carla.nova@example.com", found.Email)
	})
}

func TestGormPersonRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewGormPersonRepository(setupTestDB(t))
	tenantID := uuid.New()

	require.NoError(t, repo.SaveIndividual(ctx, newTestIndividual(t, tenantID, "Ana")))
	require.NoError(t, repo.SaveIndividual(ctx, newTestIndividual(t, tenantID, "Bruno")))
	require.NoError(t, repo.SaveLegal(ctx, newTestCompany(t, tenantID, "ACME")))
	require.NoError(t, repo.SaveIndividual(ctx, newTestIndividual(t, uuid.New(), "Outra")))

	t.Run("lists only the tenant's persons", func(t *testing.T) {
		records, err := repo.FindAllForTenant(ctx, tenantID, party.PersonFilter{})
		require.NoError(t, err)
		assert.Len(t, records, 3)

		count, err := repo.CountForTenant(ctx, tenantID, party.PersonFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("filters by kind", func(t *testing.T) {
		kind := party.PersonTypeCompany
		records, err := repo.FindAllForTenant(ctx, tenantID, party.PersonFilter{Type: &kind})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "ACME", records[0].Name)
	})

	t.Run("searches across name and document", func(t *testing.T) {
		records, err := repo.FindAllForTenant(ctx, tenantID, party.PersonFilter{
			Filter: shared.Filter{Search: "Bruno"},
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Bruno", records[0].Name)
	})

	t.Run("orders by name with paging", func(t *testing.T) {
		records, err := repo.FindAllForTenant(ctx, tenantID, party.PersonFilter{
			Filter: shared.Filter{Page: 1, PageSize: 2, OrderBy: "name", OrderDir: "asc"},
		})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "ACME", records[0].Name)
		assert.Equal(t, "Ana", records[1].Name)
	})

	t.Run("unknown sort column falls back to the default", func(t *testing.T) {
		records, err := repo.FindAllForTenant(ctx, tenantID, party.PersonFilter{
			Filter: shared.Filter{OrderBy: "name; DROP TABLE persons"},
		})
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})
}

func TestGormPersonRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewGormPersonRepository(setupTestDB(t))
	tenantID := uuid.New()

	t.Run("deletes an existing person", func(t *testing.T) {
		person := newTestIndividual(t, tenantID, "Temp")
		require.NoError(t, repo.SaveIndividual(ctx, person))

		require.NoError(t, repo.DeleteForTenant(ctx, tenantID, person.ID))

		found, err := repo.FindByIDForTenant(ctx, tenantID, person.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("missing person yields ErrNotFound", func(t *testing.T) {
		err := repo.DeleteForTenant(ctx, tenantID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("another tenant cannot delete", func(t *testing.T) {
		person := newTestIndividual(t, tenantID, "Protegida")
		require.NoError(t, repo.SaveIndividual(ctx, person))

		err := repo.DeleteForTenant(ctx, uuid.New(), person.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
