package documents

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmarm/internal/clienttype"
	id "gmarm/pkg/domain"
)

type profileStub map[id.ClientID]ClientProfile

func (p profileStub) ClientDocumentProfile(_ context.Context, clientID id.ClientID) (ClientProfile, error) {
	return p[clientID], nil
}

type refsStub map[id.ClientID][]UploadedDocumentRef

func (r refsStub) ListDocuments(_ context.Context, clientID id.ClientID) ([]UploadedDocumentRef, error) {
	return r[clientID], nil
}

func TestGate_PassiveMilitaryUsesCivilChecklist(t *testing.T) {
	registry := clienttype.NewRegistry(nil)
	source := &countingSource{}
	resolver := NewResolver(source, newMapCache())

	clientID := id.ClientID(uuid.New())
	profiles := profileStub{clientID: {TypeName: "Militar Fuerza Terrestre", ServiceStatus: clienttype.StatusPassive}}
	refs := refsStub{clientID: {{DocumentTypeID: 1, Status: RefLoaded, UploadedAt: time.Now()}}}

	gate := NewGate(registry, resolver, profiles, refs)
	got, err := gate.Completeness(context.Background(), clientID)
	require.NoError(t, err)
	// civil checklist only has the cédula, which is loaded
	assert.Equal(t, CompletenessComplete, got)

	profiles[clientID] = ClientProfile{TypeName: "Militar Fuerza Terrestre", ServiceStatus: clienttype.StatusActive}
	got, err = gate.Completeness(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, CompletenessIncomplete, got)
}
