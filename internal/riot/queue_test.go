package riot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueForType(t *testing.T) {
	tests := []struct {
		queueType string
		want      QueueID
	}{
		{"RANKED_SOLO_5x5", QueueRankedSolo},
		{"RANKED_FLEX_SR", QueueRankedFlex},
		{"NORMAL_BLIND_PICK", QueueNormalBlind},
		{"NORMAL_DRAFT_PICK", QueueNormalDraft},
		{"ARAM", QueueARAM},
		{"ALL", QueueAll},
	}

	for _, tt := range tests {
		got, ok := QueueForType(tt.queueType)
		assert.True(t, ok, tt.queueType)
		assert.Equal(t, tt.want, got)
	}

	_, ok := QueueForType("CHERRY")
	assert.False(t, ok)
}
