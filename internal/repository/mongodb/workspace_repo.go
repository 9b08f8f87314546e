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

type workspaceDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Slug      string    `bson:"slug"`
	CreatedBy string    `bson:"created_by"`
	Members   []string  `bson:"members"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d workspaceDoc) toDomain() *domain.Workspace {
	return &domain.Workspace{ID: d.ID, Name: d.Name, Slug: d.Slug, CreatedBy: d.CreatedBy, Members: d.Members, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

type workspaceRepository struct {
	coll *mongo.Collection
}

func NewWorkspaceRepository(db *mongo.Database) domain.WorkspaceRepository {
	return &workspaceRepository{coll: db.Collection(workspacesCollection)}
}

func (r *workspaceRepository) Create(ctx context.Context, ws *domain.Workspace) error {
	doc := workspaceDoc{
		ID:        uuid.NewString(),
		Name:      ws.Name,
		Slug:      ws.Slug,
		CreatedBy: ws.CreatedBy,
		Members:   []string{ws.CreatedBy},
		CreatedAt: ws.CreatedAt,
		UpdatedAt: ws.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	ws.ID = doc.ID
	ws.Members = doc.Members
	return nil
}

func (r *workspaceRepository) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	var doc workspaceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *workspaceRepository) ListByMember(ctx context.Context, userID string) ([]*domain.Workspace, error) {
	cur, err := r.coll.Find(ctx, bson.M{"members": userID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []workspaceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.Workspace, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *workspaceRepository) AddMember(ctx context.Context, workspaceID, userID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": workspaceID, "members": bson.M{"$ne": userID}},
		bson.M{"$push": bson.M{"members": userID}, "$set": bson.M{"updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}
	if _, err := r.GetByID(ctx, workspaceID); err != nil {
		return err
	}
	return domain.ErrAlreadyMember
}

func (r *workspaceRepository) IsMember(ctx context.Context, workspaceID, userID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": workspaceID, "members": userID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *workspaceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	db := r.coll.Database()
	for _, name := range []string{eventsCollection, profilesCollection, participantsCollection} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{"workspace_id": id}); err != nil {
			return err
		}
	}
	return nil
}
