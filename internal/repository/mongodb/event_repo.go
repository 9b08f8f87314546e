package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eventattendance/internal/domain"
)

type eventDoc struct {
	ID          string     `bson:"_id"`
	WorkspaceID string     `bson:"workspace_id"`
	Name        string     `bson:"name"`
	Summary     string     `bson:"summary"`
	Description string     `bson:"description"`
	Date        *time.Time `bson:"date,omitempty"`
	CreatedBy   string     `bson:"created_by"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}

func newEventDoc(e *domain.Event) eventDoc {
	return eventDoc{ID: e.ID, WorkspaceID: e.WorkspaceID, Name: e.Name, Summary: e.Summary, Description: e.Description,
		Date: e.Date, CreatedBy: e.CreatedBy, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
}

func (d eventDoc) toDomain() *domain.Event {
	return &domain.Event{ID: d.ID, WorkspaceID: d.WorkspaceID, Name: d.Name, Summary: d.Summary, Description: d.Description,
		Date: d.Date, CreatedBy: d.CreatedBy, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

type eventRepository struct {
	coll         *mongo.Collection
	participants *mongo.Collection
}

func NewEventRepository(db *mongo.Database) domain.EventRepository {
	return &eventRepository{coll: db.Collection(eventsCollection), participants: db.Collection(participantsCollection)}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	doc := newEventDoc(e)
	doc.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	e.ID = doc.ID
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, workspaceID, id string) (*domain.Event, error) {
	var doc eventDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id, "workspace_id": workspaceID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *eventRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Event, error) {
	cur, err := r.coll.Find(ctx, bson.M{"workspace_id": workspaceID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.Event, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	set := bson.M{"name": e.Name, "summary": e.Summary, "description": e.Description, "updated_at": e.UpdatedAt}
	update := bson.M{"$set": set}
	if e.Date != nil {
		set["date"] = *e.Date
	} else {
		update["$unset"] = bson.M{"date": ""}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": e.ID, "workspace_id": e.WorkspaceID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, workspaceID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "workspace_id": workspaceID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	_, err = r.participants.DeleteMany(ctx, bson.M{"workspace_id": workspaceID, "event_id": id})
	return err
}
