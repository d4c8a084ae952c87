package projector_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/projector"
	"github.com/feral-file/persona-indexer/internal/store"
	"github.com/feral-file/persona-indexer/internal/store/schema"
)

func getL2Persona(t *testing.T, st store.Store, id string) *schema.Persona {
	t.Helper()
	persona, err := st.GetPersona(context.Background(), domain.LayerL2, id)
	require.NoError(t, err)
	require.NotNil(t, persona, "persona %s", id)
	return persona
}

func getUser(t *testing.T, st store.Store, address string) *schema.User {
	t.Helper()
	user, err := st.GetUser(context.Background(), address)
	require.NoError(t, err)
	require.NotNil(t, user, "user %s", address)
	return user
}

// seedMirroredPersona bridges a persona to owner through the projector
func seedMirroredPersona(t *testing.T, p projector.Projector, tx int, id, owner string) {
	t.Helper()
	require.NoError(t, p.Handle(context.Background(), changeOwnerEvent(tx, id, domain.ETHEREUM_ZERO_ADDRESS, owner)))
}

// seedUser creates a user that holds no persona
func seedUser(t *testing.T, st store.Store, address string) {
	t.Helper()
	require.NoError(t, st.SaveUser(context.Background(), schema.NewUser(address, 0)))
}

func TestProjector_ChangeOwner_UnseenPersona(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	e := changeOwnerEvent(1, "7", domain.ETHEREUM_ZERO_ADDRESS, addrA)
	require.NoError(t, mocks.projector.Handle(ctx, e))

	persona := getL2Persona(t, mocks.store, "7")
	assert.Equal(t, addrA, persona.Owner)
	assert.Nil(t, persona.URI)
	assert.Empty(t, persona.Authorizations)
	assert.Empty(t, persona.Impersonations)
	require.NotNil(t, persona.LastBridgeNonce)
	assert.Equal(t, e.Nonce, *persona.LastBridgeNonce)

	assert.Equal(t, uint64(1), getUser(t, mocks.store, addrA).Balance)

	zero, err := mocks.store.GetUser(ctx, domain.ETHEREUM_ZERO_ADDRESS)
	require.NoError(t, err)
	assert.Nil(t, zero)

	transfer, err := mocks.store.GetTransfer(ctx, domain.LayerL2, e.ID())
	require.NoError(t, err)
	require.NotNil(t, transfer)
	assert.Equal(t, addrA, transfer.To)

	// layers are separate namespaces
	l1, err := mocks.store.GetPersona(ctx, domain.LayerL1, "7")
	require.NoError(t, err)
	assert.Nil(t, l1)
}

func TestProjector_ChangeOwner_MovesBalance(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	seedMirroredPersona(t, mocks.projector, 1, "1", addrA)
	require.NoError(t, mocks.projector.Handle(ctx, changeOwnerEvent(2, "1", addrA, addrB)))

	assert.Equal(t, uint64(0), getUser(t, mocks.store, addrA).Balance)
	assert.Equal(t, uint64(1), getUser(t, mocks.store, addrB).Balance)
	assert.Equal(t, addrB, getL2Persona(t, mocks.store, "1").Owner)
}

func TestProjector_ChangeOwner_ReplayIsNoop(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	e := changeOwnerEvent(1, "1", domain.ETHEREUM_ZERO_ADDRESS, addrA)
	require.NoError(t, mocks.projector.Handle(ctx, e))
	require.NoError(t, mocks.projector.Handle(ctx, e))

	assert.Equal(t, uint64(1), getUser(t, mocks.store, addrA).Balance)
	_, total, err := mocks.store.ListTransfersByPersona(ctx, domain.LayerL2, "1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
}

func TestProjector_ChangeOwner_BalanceNeverNegative(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	// out of order: A sends twice but only ever received once
	seedMirroredPersona(t, mocks.projector, 1, "1", addrA)
	require.NoError(t, mocks.projector.Handle(ctx, changeOwnerEvent(2, "1", addrA, addrB)))
	require.NoError(t, mocks.projector.Handle(ctx, changeOwnerEvent(3, "2", addrA, addrB)))

	assert.Equal(t, uint64(0), getUser(t, mocks.store, addrA).Balance)
	assert.Equal(t, uint64(2), getUser(t, mocks.store, addrB).Balance)
}

// delegationGraph builds persona 1 owned by A with:
//   - authorizations (A, consumer1) and (B, consumer2)
//   - impersonations (1, A, consumer1) and (1, B, consumer2)
//   - persona 2 owned by C with an impersonation (2, A, consumer1) that must survive
func delegationGraph(t *testing.T, mocks *testProjectorMocks) {
	t.Helper()
	ctx := context.Background()

	seedMirroredPersona(t, mocks.projector, 1, "1", addrA)
	seedMirroredPersona(t, mocks.projector, 2, "2", addrC)
	seedUser(t, mocks.store, addrB)

	events := []*domain.PersonaEvent{
		delegationEvent(domain.EventKindAuthorize, 10, "1", addrA, consumer1, "0x12345678"),
		delegationEvent(domain.EventKindAuthorize, 11, "1", addrB, consumer2, "0xdeadbeef"),
		delegationEvent(domain.EventKindImpersonate, 12, "1", addrA, consumer1),
		delegationEvent(domain.EventKindImpersonate, 13, "1", addrB, consumer2),
		delegationEvent(domain.EventKindImpersonate, 14, "2", addrA, consumer1),
	}
	for _, e := range events {
		require.NoError(t, mocks.projector.Handle(ctx, e))
	}

	persona := getL2Persona(t, mocks.store, "1")
	require.Len(t, persona.Authorizations, 2)
	require.Len(t, persona.Impersonations, 2)
	require.Len(t, getUser(t, mocks.store, addrA).Impersonations, 2)
}

func requireDelegationsCleared(t *testing.T, st store.Store, authorizationIDs []string) {
	t.Helper()
	ctx := context.Background()

	persona := getL2Persona(t, st, "1")
	assert.Empty(t, persona.Authorizations)
	assert.Empty(t, persona.Impersonations)

	for _, id := range authorizationIDs {
		authorization, err := st.GetAuthorization(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, authorization, "authorization %s", id)
	}
	for _, id := range []string{
		domain.ImpersonationID("1", addrA, consumer1),
		domain.ImpersonationID("1", addrB, consumer2),
	} {
		impersonation, err := st.GetImpersonation(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, impersonation, "impersonation %s", id)
	}

	userA := getUser(t, st, addrA)
	userB := getUser(t, st, addrB)
	assert.Empty(t, userA.Authorizations)
	assert.Empty(t, userB.Authorizations)
	assert.Empty(t, userB.Impersonations)

	// delegations on other personas are untouched
	other := domain.ImpersonationID("2", addrA, consumer1)
	assert.Equal(t, []string{other}, []string(userA.Impersonations))
	impersonation, err := st.GetImpersonation(ctx, other)
	require.NoError(t, err)
	assert.NotNil(t, impersonation)
	assert.Equal(t, []string{other}, []string(getL2Persona(t, st, "2").Impersonations))
}

func TestProjector_Nuke_Cascade(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)

	delegationGraph(t, mocks)
	authorizationIDs := append([]string(nil), getL2Persona(t, mocks.store, "1").Authorizations...)

	e := nukeEvent(20, "1")
	require.NoError(t, mocks.projector.Handle(context.Background(), e))

	requireDelegationsCleared(t, mocks.store, authorizationIDs)

	persona := getL2Persona(t, mocks.store, "1")
	assert.Equal(t, addrA, persona.Owner, "nuke keeps the owner")
	require.NotNil(t, persona.LastBridgeNonce)
	assert.Equal(t, e.Nonce, *persona.LastBridgeNonce)
}

func TestProjector_ChangeOwner_Cascade(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)

	delegationGraph(t, mocks)
	authorizationIDs := append([]string(nil), getL2Persona(t, mocks.store, "1").Authorizations...)

	require.NoError(t, mocks.projector.Handle(context.Background(), changeOwnerEvent(20, "1", addrA, addrB)))

	requireDelegationsCleared(t, mocks.store, authorizationIDs)
	assert.Equal(t, addrB, getL2Persona(t, mocks.store, "1").Owner)
	assert.Equal(t, uint64(0), getUser(t, mocks.store, addrA).Balance)
	assert.Equal(t, uint64(1), getUser(t, mocks.store, addrB).Balance)
}

func TestProjector_Nuke_UnknownPersonaIsFatal(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)

	err := mocks.projector.Handle(context.Background(), nukeEvent(1, "404"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPersonaNotFound))
	assert.True(t, domain.IsFatal(err))
}

func TestProjector_Impersonate_Idempotent(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	seedMirroredPersona(t, mocks.projector, 1, "1", addrA)

	require.NoError(t, mocks.projector.Handle(ctx, delegationEvent(domain.EventKindImpersonate, 2, "1", addrA, consumer1)))
	require.NoError(t, mocks.projector.Handle(ctx, delegationEvent(domain.EventKindImpersonate, 3, "1", addrA, consumer1)))

	id := domain.ImpersonationID("1", addrA, consumer1)
	assert.Equal(t, "1:"+addrA+":"+consumer1, id)

	impersonation, err := mocks.store.GetImpersonation(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, impersonation)
	assert.True(t, impersonation.Matches("1", addrA, consumer1))

	assert.Equal(t, []string{id}, []string(getL2Persona(t, mocks.store, "1").Impersonations))
	assert.Equal(t, []string{id}, []string(getUser(t, mocks.store, addrA).Impersonations))

	found, err := mocks.store.GetImpersonationsByIDs(ctx, []string{id})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestProjector_Delegation_RequiresPersonaAndUser(t *testing.T) {
	kinds := []domain.EventKind{
		domain.EventKindImpersonate,
		domain.EventKindAuthorize,
		domain.EventKindDeauthorize,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			mocks := setupTestProjector(t, projector.Config{})
			defer tearDownTestProjector(mocks)
			ctx := context.Background()

			err := mocks.projector.Handle(ctx, delegationEvent(kind, 1, "1", addrA, consumer1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrPersonaNotFound))

			seedMirroredPersona(t, mocks.projector, 2, "1", addrA)

			err = mocks.projector.Handle(ctx, delegationEvent(kind, 3, "1", addrB, consumer1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUserNotFound))
			assert.True(t, domain.IsFatal(err))
		})
	}
}

func TestProjector_Deimpersonate(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	seedMirroredPersona(t, mocks.projector, 1, "1", addrA)
	require.NoError(t, mocks.projector.Handle(ctx, delegationEvent(domain.EventKindImpersonate, 2, "1", addrA, consumer1)))
	require.NoError(t, mocks.projector.Handle(ctx, delegationEvent(domain.EventKindDeimpersonate, 3, "1", addrA, consumer1)))

	impersonation, err := mocks.store.GetImpersonation(ctx, domain.ImpersonationID("1", addrA, consumer1))
	require.NoError(t, err)
	assert.Nil(t, impersonation)
	assert.Empty(t, getL2Persona(t, mocks.store, "1").Impersonations)
	assert.Empty(t, getUser(t, mocks.store, addrA).Impersonations)

	// absent relation is a benign anomaly
	require.NoError(t, mocks.projector.Handle(ctx, delegationEvent(domain.EventKindDeimpersonate, 4, "1", addrA, consumer1)))
}

func TestProjector_Authorize(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	seedMirroredPersona(t, mocks.projector, 1, "1", addrA)

	e := delegationEvent(domain.EventKindAuthorize, 2, "1", addrA, consumer1, "0x12345678", "0xdeadbeef", "0x12345678")
	require.NoError(t, mocks.projector.Handle(ctx, e))
	// replay
	require.NoError(t, mocks.projector.Handle(ctx, e))

	authorization, err := mocks.store.GetAuthorization(ctx, e.ID())
	require.NoError(t, err)
	require.NotNil(t, authorization)
	assert.Equal(t, "1", authorization.Persona)
	assert.Equal(t, addrA, authorization.User)
	assert.Equal(t, consumer1, authorization.Consumer)
	assert.Equal(t, []string{"0x12345678", "0xdeadbeef"}, []string(authorization.FnSignatures))

	assert.Equal(t, []string{e.ID()}, []string(getL2Persona(t, mocks.store, "1").Authorizations))
	assert.Equal(t, []string{e.ID()}, []string(getUser(t, mocks.store, addrA).Authorizations))
}

func TestProjector_Authorize_RepeatedGrantsAreDistinct(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	seedMirroredPersona(t, mocks.projector, 1, "1", addrA)

	first := delegationEvent(domain.EventKindAuthorize, 2, "1", addrA, consumer1, "0x12345678")
	second := delegationEvent(domain.EventKindAuthorize, 3, "1", addrA, consumer1, "0x12345678")
	require.NoError(t, mocks.projector.Handle(ctx, first))
	require.NoError(t, mocks.projector.Handle(ctx, second))

	ids := []string{first.ID(), second.ID()}
	assert.Equal(t, ids, []string(getL2Persona(t, mocks.store, "1").Authorizations))

	found, err := mocks.store.GetAuthorizationsByIDs(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestProjector_Deauthorize_RemovesFirstMatchOnly(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	seedMirroredPersona(t, mocks.projector, 1, "1", addrA)
	seedUser(t, mocks.store, addrB)

	first := delegationEvent(domain.EventKindAuthorize, 2, "1", addrA, consumer1)
	other := delegationEvent(domain.EventKindAuthorize, 3, "1", addrB, consumer2)
	duplicate := delegationEvent(domain.EventKindAuthorize, 4, "1", addrA, consumer1)
	for _, e := range []*domain.PersonaEvent{first, other, duplicate} {
		require.NoError(t, mocks.projector.Handle(ctx, e))
	}

	require.NoError(t, mocks.projector.Handle(ctx, delegationEvent(domain.EventKindDeauthorize, 5, "1", addrA, consumer1)))

	assert.Equal(t, []string{other.ID(), duplicate.ID()}, []string(getL2Persona(t, mocks.store, "1").Authorizations))

	// the record itself is immutable and kept
	authorization, err := mocks.store.GetAuthorization(ctx, first.ID())
	require.NoError(t, err)
	assert.NotNil(t, authorization)
}

func TestProjector_Deauthorize_DropsMatchingImpersonation(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	seedMirroredPersona(t, mocks.projector, 1, "1", addrA)
	seedMirroredPersona(t, mocks.projector, 2, "2", addrC)

	events := []*domain.PersonaEvent{
		delegationEvent(domain.EventKindAuthorize, 3, "1", addrA, consumer1),
		delegationEvent(domain.EventKindImpersonate, 4, "1", addrA, consumer2),
		delegationEvent(domain.EventKindImpersonate, 5, "1", addrA, consumer1),
		delegationEvent(domain.EventKindImpersonate, 6, "2", addrA, consumer1),
		delegationEvent(domain.EventKindDeauthorize, 7, "1", addrA, consumer1),
	}
	for _, e := range events {
		require.NoError(t, mocks.projector.Handle(ctx, e))
	}

	removed := domain.ImpersonationID("1", addrA, consumer1)
	kept := domain.ImpersonationID("1", addrA, consumer2)
	otherPersona := domain.ImpersonationID("2", addrA, consumer1)

	impersonation, err := mocks.store.GetImpersonation(ctx, removed)
	require.NoError(t, err)
	assert.Nil(t, impersonation)

	assert.Equal(t, []string{kept}, []string(getL2Persona(t, mocks.store, "1").Impersonations))
	assert.Equal(t, []string{kept, otherPersona}, []string(getUser(t, mocks.store, addrA).Impersonations))
	assert.Empty(t, getL2Persona(t, mocks.store, "1").Authorizations)
}

func TestProjector_Deauthorize_ReplayIsNoop(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	seedMirroredPersona(t, mocks.projector, 1, "1", addrA)

	first := delegationEvent(domain.EventKindAuthorize, 2, "1", addrA, consumer1)
	second := delegationEvent(domain.EventKindAuthorize, 3, "1", addrA, consumer1)
	revoke := delegationEvent(domain.EventKindDeauthorize, 4, "1", addrA, consumer1)
	for _, e := range []*domain.PersonaEvent{first, second, revoke, revoke} {
		require.NoError(t, mocks.projector.Handle(ctx, e))
	}

	assert.Equal(t, []string{second.ID()}, []string(getL2Persona(t, mocks.store, "1").Authorizations))
}

func TestProjector_ReplayedBlockAfterCascade(t *testing.T) {
	tests := []struct {
		name    string
		cascade func() *domain.PersonaEvent
		owner   string
	}{
		{
			name:    "change owner",
			cascade: func() *domain.PersonaEvent { return changeOwnerEvent(4, "1", addrA, addrB) },
			owner:   addrB,
		},
		{
			name:    "nuke",
			cascade: func() *domain.PersonaEvent { return nukeEvent(4, "1") },
			owner:   addrA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestProjector(t, projector.Config{})
			defer tearDownTestProjector(mocks)
			ctx := context.Background()

			seedMirroredPersona(t, mocks.projector, 1, "1", addrA)

			block := []*domain.PersonaEvent{
				delegationEvent(domain.EventKindAuthorize, 2, "1", addrA, consumer1, "0x12345678"),
				delegationEvent(domain.EventKindImpersonate, 3, "1", addrA, consumer2),
				tt.cascade(),
			}
			// the block is delivered again after a restart
			for _, e := range append(block, block...) {
				require.NoError(t, mocks.projector.Handle(ctx, e))
			}

			persona := getL2Persona(t, mocks.store, "1")
			assert.Equal(t, tt.owner, persona.Owner)
			assert.Empty(t, persona.Authorizations)
			assert.Empty(t, persona.Impersonations)

			userA := getUser(t, mocks.store, addrA)
			assert.Empty(t, userA.Authorizations)
			assert.Empty(t, userA.Impersonations)

			authorization, err := mocks.store.GetAuthorization(ctx, block[0].ID())
			require.NoError(t, err)
			assert.Nil(t, authorization, "a cascaded authorization must not be recreated")

			impersonation, err := mocks.store.GetImpersonation(ctx, domain.ImpersonationID("1", addrA, consumer2))
			require.NoError(t, err)
			assert.Nil(t, impersonation)
		})
	}
}
