package projector_test

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/projector"
	"github.com/feral-file/persona-indexer/internal/store"
	"github.com/feral-file/persona-indexer/internal/store/schema"
)

func requireOwnerBalance(t *testing.T, st store.Store, address string, balance uint64) {
	t.Helper()
	owner, err := st.GetOwner(context.Background(), address)
	require.NoError(t, err)
	require.NotNil(t, owner, "owner %s", address)
	assert.Equal(t, balance, owner.Balance, "balance of %s", address)
}

func TestProjector_Transfer_Mint(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	e := transferEvent(1, "5", domain.ETHEREUM_ZERO_ADDRESS, addrA)
	mocks.reader.EXPECT().
		TokenURI(gomock.Any(), personaContract, "5", e.BlockNumber).
		Return("ipfs://persona/5", nil)

	require.NoError(t, mocks.projector.Handle(ctx, e))

	persona, err := mocks.store.GetPersona(ctx, domain.LayerL1, "5")
	require.NoError(t, err)
	require.NotNil(t, persona)
	assert.Equal(t, addrA, persona.Owner)
	require.NotNil(t, persona.URI)
	assert.Equal(t, "ipfs://persona/5", *persona.URI)

	requireOwnerBalance(t, mocks.store, addrA, 1)

	zero, err := mocks.store.GetOwner(ctx, domain.ETHEREUM_ZERO_ADDRESS)
	require.NoError(t, err)
	assert.Nil(t, zero, "the zero address is never materialized")

	transfer, err := mocks.store.GetTransfer(ctx, domain.LayerL1, e.ID())
	require.NoError(t, err)
	require.NotNil(t, transfer)
	assert.Equal(t, "5", transfer.Persona)
	assert.Equal(t, domain.ETHEREUM_ZERO_ADDRESS, transfer.From)
	assert.Equal(t, addrA, transfer.To)
	assert.Equal(t, e.BlockNumber, transfer.Block)
	assert.Equal(t, e.TxHash, transfer.TransactionHash)
}

func TestProjector_Transfer_Chain(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	// the URI is only read for the first-seen persona
	mocks.reader.EXPECT().
		TokenURI(gomock.Any(), personaContract, "1", gomock.Any()).
		Return("ipfs://persona/1", nil).
		Times(1)

	require.NoError(t, mocks.projector.Handle(ctx, transferEvent(1, "1", domain.ETHEREUM_ZERO_ADDRESS, addrA)))
	require.NoError(t, mocks.projector.Handle(ctx, transferEvent(2, "1", addrA, addrB)))

	requireOwnerBalance(t, mocks.store, addrA, 0)
	requireOwnerBalance(t, mocks.store, addrB, 1)

	persona, err := mocks.store.GetPersona(ctx, domain.LayerL1, "1")
	require.NoError(t, err)
	assert.Equal(t, addrB, persona.Owner)
	require.NotNil(t, persona.URI)
	assert.Equal(t, "ipfs://persona/1", *persona.URI)

	transfers, total, err := mocks.store.ListTransfersByPersona(ctx, domain.LayerL1, "1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, transfers, 2)
}

func TestProjector_Transfer_Burn(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), "1", gomock.Any()).Return("ipfs://1", nil)

	require.NoError(t, mocks.projector.Handle(ctx, transferEvent(1, "1", domain.ETHEREUM_ZERO_ADDRESS, addrA)))
	require.NoError(t, mocks.projector.Handle(ctx, transferEvent(2, "1", addrA, domain.ETHEREUM_ZERO_ADDRESS)))

	requireOwnerBalance(t, mocks.store, addrA, 0)

	persona, err := mocks.store.GetPersona(ctx, domain.LayerL1, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.ETHEREUM_ZERO_ADDRESS, persona.Owner)

	zero, err := mocks.store.GetOwner(ctx, domain.ETHEREUM_ZERO_ADDRESS)
	require.NoError(t, err)
	assert.Nil(t, zero)
}

func TestProjector_Transfer_UnseenSenderStartsAtZero(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), "9", gomock.Any()).Return("ipfs://9", nil)

	require.NoError(t, mocks.projector.Handle(ctx, transferEvent(1, "9", addrA, addrB)))

	requireOwnerBalance(t, mocks.store, addrA, 0)
	requireOwnerBalance(t, mocks.store, addrB, 1)
}

func TestProjector_Transfer_SelfTransferKeepsBalance(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), "1", gomock.Any()).Return("ipfs://1", nil)

	require.NoError(t, mocks.projector.Handle(ctx, transferEvent(1, "1", domain.ETHEREUM_ZERO_ADDRESS, addrA)))
	require.NoError(t, mocks.projector.Handle(ctx, transferEvent(2, "1", addrA, addrA)))

	requireOwnerBalance(t, mocks.store, addrA, 1)
}

func TestProjector_Transfer_ReplayIsNoop(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), "1", gomock.Any()).Return("ipfs://1", nil).Times(1)

	mint := transferEvent(1, "1", domain.ETHEREUM_ZERO_ADDRESS, addrA)
	move := transferEvent(2, "1", addrA, addrB)
	for _, e := range []*domain.PersonaEvent{mint, move, move, mint} {
		require.NoError(t, mocks.projector.Handle(ctx, e))
	}

	requireOwnerBalance(t, mocks.store, addrA, 0)
	requireOwnerBalance(t, mocks.store, addrB, 1)

	persona, err := mocks.store.GetPersona(ctx, domain.LayerL1, "1")
	require.NoError(t, err)
	assert.Equal(t, addrB, persona.Owner, "replaying the mint must not move the persona back")

	_, total, err := mocks.store.ListTransfersByPersona(ctx, domain.LayerL1, "1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
}

func TestProjector_Transfer_NormalizesAddresses(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), "1", gomock.Any()).Return("ipfs://1", nil)

	checksummed := "0xAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAa"
	require.NoError(t, mocks.projector.Handle(ctx, transferEvent(1, "1", domain.ETHEREUM_ZERO_ADDRESS, checksummed)))

	requireOwnerBalance(t, mocks.store, addrA, 1)
}

func TestProjector_Transfer_URIFailureIsFatal(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	mocks.reader.EXPECT().
		TokenURI(gomock.Any(), gomock.Any(), "1", gomock.Any()).
		Return("", errors.New("execution reverted"))

	err := mocks.projector.Handle(ctx, transferEvent(1, "1", domain.ETHEREUM_ZERO_ADDRESS, addrA))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrContractReadFailed))
	assert.True(t, domain.IsFatal(err))

	// nothing of the event is applied
	owner, err := mocks.store.GetOwner(ctx, addrA)
	require.NoError(t, err)
	assert.Nil(t, owner)
	persona, err := mocks.store.GetPersona(ctx, domain.LayerL1, "1")
	require.NoError(t, err)
	assert.Nil(t, persona)
}

func TestProjector_Transfer_URIFailureTolerated(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{TolerateURIFailure: true})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	mocks.reader.EXPECT().
		TokenURI(gomock.Any(), gomock.Any(), "1", gomock.Any()).
		Return("", errors.New("execution reverted"))

	require.NoError(t, mocks.projector.Handle(ctx, transferEvent(1, "1", domain.ETHEREUM_ZERO_ADDRESS, addrA)))

	persona, err := mocks.store.GetPersona(ctx, domain.LayerL1, "1")
	require.NoError(t, err)
	require.NotNil(t, persona)
	assert.Nil(t, persona.URI)
	assert.Equal(t, addrA, persona.Owner)
	requireOwnerBalance(t, mocks.store, addrA, 1)
}

func TestProjector_Transfer_BalanceConservation(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("ipfs://x", nil).AnyTimes()

	zero := domain.ETHEREUM_ZERO_ADDRESS
	events := []*domain.PersonaEvent{
		transferEvent(1, "1", zero, addrA),
		transferEvent(2, "2", zero, addrA),
		transferEvent(3, "3", zero, addrB),
		transferEvent(4, "1", addrA, addrB),
		transferEvent(5, "3", addrB, addrC),
		transferEvent(6, "2", addrA, zero),
		transferEvent(7, "4", zero, addrC),
		transferEvent(8, "1", addrB, addrA),
		transferEvent(9, "4", addrC, addrA),
	}
	for _, e := range events {
		require.NoError(t, mocks.projector.Handle(ctx, e))
	}

	for _, address := range []string{addrA, addrB, addrC} {
		_, owned, err := mocks.store.ListPersonasByOwner(ctx, domain.LayerL1, address, 100, 0)
		require.NoError(t, err)
		requireOwnerBalance(t, mocks.store, address, owned)
	}
}

func seedL1Personas(t *testing.T, st store.Store, ids ...uint64) {
	t.Helper()
	for _, id := range ids {
		uri := "ipfs://old/" + strconv.FormatUint(id, 10)
		persona := schema.NewPersona(domain.LayerL1, strconv.FormatUint(id, 10))
		persona.Owner = addrA
		persona.URI = &uri
		require.NoError(t, st.SavePersona(context.Background(), persona))
	}
}

func requireURI(t *testing.T, st store.Store, id, uri string) {
	t.Helper()
	persona, err := st.GetPersona(context.Background(), domain.LayerL1, id)
	require.NoError(t, err)
	require.NotNil(t, persona)
	require.NotNil(t, persona.URI)
	assert.Equal(t, uri, *persona.URI, "uri of persona %s", id)
}

func TestProjector_MetadataGeneratorChanged_Backfill(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{BackfillConcurrency: 2})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	seedL1Personas(t, mocks.store, 0, 1, 2, 3)

	e := generatorEvent(1)
	mocks.reader.EXPECT().
		CurrentPersonaID(gomock.Any(), personaContract, e.BlockNumber).
		Return(big.NewInt(3), nil)
	for _, id := range []string{"0", "1", "2"} {
		mocks.reader.EXPECT().
			TokenURI(gomock.Any(), personaContract, id, e.BlockNumber).
			Return("ipfs://new/"+id, nil)
	}

	require.NoError(t, mocks.projector.Handle(ctx, e))

	requireURI(t, mocks.store, "0", "ipfs://new/0")
	requireURI(t, mocks.store, "1", "ipfs://new/1")
	requireURI(t, mocks.store, "2", "ipfs://new/2")
	requireURI(t, mocks.store, "3", "ipfs://old/3")
}

func TestProjector_MetadataGeneratorChanged_FirstPersonaID(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{FirstPersonaID: 1})
	defer tearDownTestProjector(mocks)
	ctx := context.Background()

	seedL1Personas(t, mocks.store, 1, 2)

	mocks.reader.EXPECT().CurrentPersonaID(gomock.Any(), gomock.Any(), gomock.Any()).Return(big.NewInt(3), nil)
	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), "1", gomock.Any()).Return("ipfs://new/1", nil)
	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), "2", gomock.Any()).Return("ipfs://new/2", nil)

	require.NoError(t, mocks.projector.Handle(ctx, generatorEvent(1)))

	requireURI(t, mocks.store, "1", "ipfs://new/1")
	requireURI(t, mocks.store, "2", "ipfs://new/2")
}

func TestProjector_MetadataGeneratorChanged_NothingMinted(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)

	mocks.reader.EXPECT().CurrentPersonaID(gomock.Any(), gomock.Any(), gomock.Any()).Return(big.NewInt(0), nil)

	require.NoError(t, mocks.projector.Handle(context.Background(), generatorEvent(1)))
}

func TestProjector_MetadataGeneratorChanged_CurrentPersonaIDReverts(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)

	seedL1Personas(t, mocks.store, 0)
	mocks.reader.EXPECT().
		CurrentPersonaID(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("execution reverted"))

	require.NoError(t, mocks.projector.Handle(context.Background(), generatorEvent(1)))
	requireURI(t, mocks.store, "0", "ipfs://old/0")
}

func TestProjector_MetadataGeneratorChanged_MissingPersonaIsFatal(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{})
	defer tearDownTestProjector(mocks)

	seedL1Personas(t, mocks.store, 0, 2)
	mocks.reader.EXPECT().CurrentPersonaID(gomock.Any(), gomock.Any(), gomock.Any()).Return(big.NewInt(3), nil)

	err := mocks.projector.Handle(context.Background(), generatorEvent(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPersonaNotFound))
	assert.True(t, domain.IsFatal(err))
	requireURI(t, mocks.store, "0", "ipfs://old/0")
}

func TestProjector_MetadataGeneratorChanged_ReadFailureIsAllOrNothing(t *testing.T) {
	mocks := setupTestProjector(t, projector.Config{BackfillConcurrency: 4})
	defer tearDownTestProjector(mocks)

	seedL1Personas(t, mocks.store, 0, 1, 2)
	mocks.reader.EXPECT().CurrentPersonaID(gomock.Any(), gomock.Any(), gomock.Any()).Return(big.NewInt(3), nil)
	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), "0", gomock.Any()).Return("ipfs://new/0", nil).AnyTimes()
	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), "1", gomock.Any()).Return("", errors.New("execution reverted")).AnyTimes()
	mocks.reader.EXPECT().TokenURI(gomock.Any(), gomock.Any(), "2", gomock.Any()).Return("ipfs://new/2", nil).AnyTimes()

	err := mocks.projector.Handle(context.Background(), generatorEvent(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrContractReadFailed))

	for _, id := range []string{"0", "1", "2"} {
		requireURI(t, mocks.store, id, "ipfs://old/"+id)
	}
}
