package documents

import (
	"context"

	"gmarm/internal/clienttype"
	id "gmarm/pkg/domain"
)

// ClientLookup reads the classification of a stored client.
type ClientLookup interface {
	ClientDocumentProfile(ctx context.Context, clientID id.ClientID) (ClientProfile, error)
}

// RefSource lists the document refs stored for a client.
type RefSource interface {
	ListDocuments(ctx context.Context, clientID id.ClientID) ([]UploadedDocumentRef, error)
}

// TypeResolver maps a client type and status to the effective type.
type TypeResolver interface {
	Effective(typeName string, status clienttype.ServiceStatus) (clienttype.Config, error)
}

// Gate answers completeness for a stored client, with nothing pending.
type Gate struct {
	types    TypeResolver
	resolver RequirementsGetter
	clients  ClientLookup
	refs     RefSource
}

func NewGate(types TypeResolver, resolver RequirementsGetter, clients ClientLookup, refs RefSource) *Gate {
	return &Gate{types: types, resolver: resolver, clients: clients, refs: refs}
}

// Completeness loads the client's profile, checklist and refs.
func (g *Gate) Completeness(ctx context.Context, clientID id.ClientID) (Completeness, error) {
	profile, err := g.clients.ClientDocumentProfile(ctx, clientID)
	if err != nil {
		return "", err
	}
	effective, err := g.types.Effective(profile.TypeName, profile.ServiceStatus)
	if err != nil {
		return "", err
	}
	reqs, err := g.resolver.GetRequirements(ctx, NewRequirementKey(effective, profile.ServiceStatus))
	if err != nil {
		return "", err
	}
	refs, err := g.refs.ListDocuments(ctx, clientID)
	if err != nil {
		return "", err
	}
	return ComputeCompleteness(reqs, nil, refs), nil
}
