package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
)

func TestStatusRank(t *testing.T) {
	assert.Equal(t, 0, entities.StatusRank(entities.RecordStatusPending))
	assert.Equal(t, 1, entities.StatusRank(entities.RecordStatusProcessing))
	assert.Equal(t, 2, entities.StatusRank(entities.RecordStatusCompleted))
	assert.Equal(t, 2, entities.StatusRank(entities.RecordStatusFailed))
	assert.Equal(t, 2, entities.StatusRank(entities.RecordStatusExpired))
	assert.Equal(t, 2, entities.StatusRank(entities.RecordStatusDiscrepancy))
	assert.Equal(t, -1, entities.StatusRank(entities.RecordStatus("BOGUS")))
}

func TestRecordStatus_IsTerminal(t *testing.T) {
	assert.False(t, entities.RecordStatusPending.IsTerminal())
	assert.False(t, entities.RecordStatusProcessing.IsTerminal())
	assert.True(t, entities.RecordStatusCompleted.IsTerminal())
	assert.True(t, entities.RecordStatusDiscrepancy.IsTerminal())
}

func TestRecordStatus_IsValid(t *testing.T) {
	assert.True(t, entities.RecordStatusExpired.IsValid())
	assert.False(t, entities.RecordStatus("").IsValid())
}
