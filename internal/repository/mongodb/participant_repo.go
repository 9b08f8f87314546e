package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eventattendance/internal/domain"
)

type participantDoc struct {
	// Key is "<event_id>/<participant_id>", making (event, participant) unique.
	Key           string `bson:"_id"`
	ParticipantID string `bson:"participant_id"`
	WorkspaceID   string `bson:"workspace_id"`
	EventID       string `bson:"event_id"`
	PersonDoc     `bson:",inline"`
	Status        string    `bson:"status"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func participantKey(eventID, id string) string {
	return eventID + "/" + id
}

func (d participantDoc) toDomain() *domain.Participant {
	return &domain.Participant{
		ID:           d.ParticipantID,
		WorkspaceID:  d.WorkspaceID,
		EventID:      d.EventID,
		PersonFields: d.PersonDoc.toDomain(),
		Status:       domain.ParticipantStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type participantRepository struct {
	coll *mongo.Collection
}

func NewParticipantRepository(db *mongo.Database) domain.ParticipantRepository {
	return &participantRepository{coll: db.Collection(participantsCollection)}
}

func (r *participantRepository) CreateIfAbsent(ctx context.Context, p *domain.Participant) (bool, error) {
	doc := participantDoc{
		Key:           participantKey(p.EventID, p.ID),
		ParticipantID: p.ID,
		WorkspaceID:   p.WorkspaceID,
		EventID:       p.EventID,
		PersonDoc:     newPersonDoc(p.PersonFields),
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *participantRepository) Get(ctx context.Context, workspaceID, eventID, id string) (*domain.Participant, error) {
	return r.findOne(ctx, bson.M{"_id": participantKey(eventID, id), "workspace_id": workspaceID})
}

func (r *participantRepository) GetByIDNumber(ctx context.Context, workspaceID, eventID, idNumber string) (*domain.Participant, error) {
	return r.findOne(ctx, bson.M{"workspace_id": workspaceID, "event_id": eventID, "id_number": domain.NormalizeIDNumber(idNumber)})
}

func (r *participantRepository) findOne(ctx context.Context, filter bson.M) (*domain.Participant, error) {
	var doc participantDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *participantRepository) ListByEvent(ctx context.Context, workspaceID, eventID string) ([]*domain.Participant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"workspace_id": workspaceID, "event_id": eventID}, opts)
	if err != nil {
		return nil, err
	}
	var docs []participantDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.Participant, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *participantRepository) UpdateStatus(ctx context.Context, workspaceID, eventID, id string, expected, status domain.ParticipantStatus) (*domain.Participant, error) {
	filter := bson.M{"_id": participantKey(eventID, id), "workspace_id": workspaceID, "status": string(expected)}
	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now()}}
	var doc participantDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if _, err := r.Get(ctx, workspaceID, eventID, id); err != nil {
		return nil, err
	}
	return nil, domain.ErrConcurrentUpdate
}

func (r *participantRepository) Delete(ctx context.Context, workspaceID, eventID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": participantKey(eventID, id), "workspace_id": workspaceID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *participantRepository) DeleteByEvent(ctx context.Context, workspaceID, eventID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"workspace_id": workspaceID, "event_id": eventID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *participantRepository) ResetStatuses(ctx context.Context, workspaceID, eventID string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"workspace_id": workspaceID, "event_id": eventID},
		bson.M{"$set": bson.M{"status": string(domain.StatusRegistered), "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *participantRepository) CountByProfile(ctx context.Context, workspaceID, profileID string) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"workspace_id": workspaceID, "participant_id": profileID})
	return int(n), err
}

func (r *participantRepository) DeleteByProfile(ctx context.Context, workspaceID, profileID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"workspace_id": workspaceID, "participant_id": profileID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
