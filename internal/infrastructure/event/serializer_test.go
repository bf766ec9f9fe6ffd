package event

import (
	"testing"

	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializer_RoundTrip(t *testing.T) {
	s := NewSerializer()
	RegisterDomainEvents(s)

	ref := assignment.LedgerRef{
		AssignmentID: uuid.New(),
		AssetID:      uuid.New(),
		EmployeeID:   uuid.New(),
		AssignedBy:   uuid.New(),
	}
	original := &assignment.AssignmentReturnedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(assignment.EventTypeAssignmentReturned,
			assignment.AggregateTypeAssignment, ref.AssignmentID),
		LedgerRef:          ref,
		Condition:          assignment.ConditionDamaged,
		PendingAccessories: []string{"Charger"},
	}

	data, err := s.Serialize(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"assignment.returned"`)
	assert.Contains(t, string(data), `"pending_accessories":["Charger"]`)

	decoded, err := s.Deserialize(assignment.EventTypeAssignmentReturned, data)
	require.NoError(t, err)

	got, ok := decoded.(*assignment.AssignmentReturnedEvent)
	require.True(t, ok)
	assert.Equal(t, original.EventID(), got.EventID())
	assert.Equal(t, ref, got.Ledger())
	assert.Equal(t, assignment.ConditionDamaged, got.Condition)
	assert.True(t, original.OccurredAt().Equal(got.OccurredAt()))
}

func TestSerializer_RejectsUnregistered(t *testing.T) {
	s := NewSerializer()

	_, err := s.Serialize(newSampleEvent("sample.happened"))
	assert.ErrorContains(t, err, "unregistered event type")

	_, err = s.Deserialize("sample.happened", []byte(`{}`))
	assert.ErrorContains(t, err, "unregistered event type")
}

func TestSerializer_BadPayload(t *testing.T) {
	s := NewSerializer()
	s.Register("sample.happened", &sampleEvent{})

	_, err := s.Deserialize("sample.happened", []byte(`{"id":`))
	assert.Error(t, err)
}

func TestRegisterDomainEvents(t *testing.T) {
	s := NewSerializer()
	RegisterDomainEvents(s)

	assert.Equal(t, []string{
		"asset.created",
		"asset.deleted",
		"asset.status_changed",
		"assignment.accessories_reconciled",
		"assignment.created",
		"assignment.returned",
		"assignment.updated",
		"employee.created",
		"employee.status_changed",
		"user.created",
		"user.password_changed",
		"user.status_changed",
	}, s.RegisteredTypes())
}
