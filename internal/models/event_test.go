package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEvent_CloneIsDeep(t *testing.T) {
	runner := "runner-1"
	deactivated := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	e := &Event{
		ID:               uuid.New(),
		Location:         "OR 1",
		LocationHistory:  []LocationChange{{FromLocation: "ED", ToLocation: "OR 1"}},
		AssignedRunnerID: &runner,
		DeactivationTime: &deactivated,
		Packs:            []*Pack{{Name: "P"}},
	}

	c := e.Clone()
	c.LocationHistory[0].ToLocation = "ICU"
	*c.AssignedRunnerID = "runner-2"
	*c.DeactivationTime = deactivated.Add(time.Hour)
	c.Packs[0].Name = "Q"

	assert.Equal(t, "OR 1", e.LocationHistory[0].ToLocation)
	assert.Equal(t, "runner-1", *e.AssignedRunnerID)
	assert.Equal(t, deactivated, *e.DeactivationTime)
	assert.Equal(t, "P", e.Packs[0].Name)
	assert.Nil(t, c.AssignedClinicianID)
}
