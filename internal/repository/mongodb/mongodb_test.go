package mongodb

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eventattendance/internal/domain"
)

func TestIsDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}
	other := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 121, Message: "validation failed"}}}

	assert.True(t, isDuplicateKey(dup))
	assert.True(t, isDuplicateKey(fmt.Errorf("insert: %w", dup)))
	assert.False(t, isDuplicateKey(other))
	assert.False(t, isDuplicateKey(errors.New("boom")))
	assert.False(t, isDuplicateKey(nil))
}

func TestParticipantDoc_roundTrip(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	doc := participantDoc{
		Key:           participantKey("ev-1", "p-1"),
		ParticipantID: "p-1",
		WorkspaceID:   "ws-1",
		EventID:       "ev-1",
		PersonDoc:     newPersonDoc(domain.PersonFields{IDNumber: "2023-001", FirstName: "Ana", LastName: "Cruz"}),
		Status:        string(domain.StatusAttended),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var flat bson.M
	require.NoError(t, bson.Unmarshal(raw, &flat))
	assert.Equal(t, "ev-1/p-1", flat["_id"])
	assert.Equal(t, "2023-001", flat["id_number"], "person fields are stored inline")

	var back participantDoc
	require.NoError(t, bson.Unmarshal(raw, &back))
	p := back.toDomain()
	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, domain.StatusAttended, p.Status)
	assert.Equal(t, "Cruz", p.LastName)
}

func TestProfileDoc_toDomain(t *testing.T) {
	doc := profileDoc{ID: "p-1", WorkspaceID: "ws-1", PersonDoc: PersonDoc{IDNumber: "2023-001", Section: "A"}}
	p := doc.toDomain()
	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "A", p.Section)
}
