package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"portfolio-backend/models"
)

func TestStampRepliedOnUpdate(t *testing.T) {
	set := bson.M{"status": models.ContactStatusReplied}
	StampRepliedOnUpdate(set, &models.Contact{Status: models.ContactStatusRead}, "jordan")
	assert.Contains(t, set, "responded_at")
	assert.Equal(t, "jordan", set["responded_by"])
}

func TestStampRepliedOnUpdateDefaultsActor(t *testing.T) {
	set := bson.M{"status": models.ContactStatusReplied}
	StampRepliedOnUpdate(set, &models.Contact{Status: models.ContactStatusNew}, "")
	assert.Equal(t, "admin", set["responded_by"])
}

func TestStampRepliedOnUpdateStampsOnlyOnce(t *testing.T) {
	stamped := time.Now().Add(-time.Hour)
	existing := &models.Contact{
		Status:      models.ContactStatusReplied,
		RespondedAt: &stamped,
		RespondedBy: "jordan",
	}

	// Re-applying "replied" must not rewrite the original stamp.
	set := bson.M{"status": models.ContactStatusReplied}
	StampRepliedOnUpdate(set, existing, "someone-else")
	assert.NotContains(t, set, "responded_at")
	assert.NotContains(t, set, "responded_by")
}

func TestStampRepliedOnUpdateIgnoresOtherTransitions(t *testing.T) {
	set := bson.M{"status": models.ContactStatusArchived}
	StampRepliedOnUpdate(set, &models.Contact{Status: models.ContactStatusNew}, "jordan")
	assert.NotContains(t, set, "responded_at")

	set = bson.M{"notes": "call back next week"}
	StampRepliedOnUpdate(set, &models.Contact{Status: models.ContactStatusNew}, "jordan")
	assert.NotContains(t, set, "responded_at")
}
