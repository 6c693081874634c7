package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPriority(t *testing.T) {
	assert.Equal(t, uint8(1), clampPriority(-3))
	assert.Equal(t, uint8(1), clampPriority(0))
	assert.Equal(t, uint8(5), clampPriority(5))
	assert.Equal(t, uint8(maxPriority), clampPriority(42))
}

func TestTask_JSONShape(t *testing.T) {
	body, err := json.Marshal(Task{Type: TaskNewFollower, UserID: "u1", InitiatorID: "u2"})
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, "new_follower", raw["type"])
	assert.Equal(t, "u1", raw["user_id"])
	assert.Equal(t, "u2", raw["initiator_id"])
	assert.NotContains(t, raw, "entity_id")
}

func TestRoutingKeysCoverTaskTypes(t *testing.T) {
	assert.ElementsMatch(t, []string{TaskFriendRequest, TaskFriendConfirmed, TaskNewFollower}, RoutingKeys)
}
