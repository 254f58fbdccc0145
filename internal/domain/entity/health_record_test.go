package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRecord_RespondedForcesStatus(t *testing.T) {
	record := &HealthRecord{ID: "2", Status: RecordStatusPending}

	next, err := record.Responded(RecordUpdate{
		Prescription: "rest",
		DoctorID:     "1",
		DoctorName:   "Dr. Smith",
		Status:       RecordStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, RecordStatusResponded, next.Status)
	assert.True(t, next.HasCompleteResponse())

	// the receiver is not modified
	assert.Equal(t, RecordStatusPending, record.Status)
	assert.Empty(t, record.Prescription)
}

func TestHealthRecord_RespondedRejectsIncomplete(t *testing.T) {
	record := &HealthRecord{ID: "2", Status: RecordStatusPending}

	_, err := record.Responded(RecordUpdate{})
	assert.ErrorIs(t, err, ErrIncompleteResponse)
	assert.True(t, record.IsPending())
}
