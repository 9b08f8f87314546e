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

// PersonDoc is the stored form of domain.PersonFields.
type PersonDoc struct {
	IDNumber          string `bson:"id_number"`
	FirstName         string `bson:"first_name"`
	LastName          string `bson:"last_name"`
	MiddleName        string `bson:"middle_name"`
	Email             string `bson:"email"`
	Phone             string `bson:"phone"`
	CollegeDepartment string `bson:"college_department"`
	Course            string `bson:"course"`
	YearLevel         string `bson:"year_level"`
	Section           string `bson:"section"`
}

func newPersonDoc(f domain.PersonFields) PersonDoc {
	return PersonDoc(f)
}

func (d PersonDoc) toDomain() domain.PersonFields {
	return domain.PersonFields(d)
}

type profileDoc struct {
	ID          string `bson:"_id"`
	WorkspaceID string `bson:"workspace_id"`
	PersonDoc   `bson:",inline"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d profileDoc) toDomain() *domain.Profile {
	return &domain.Profile{ID: d.ID, WorkspaceID: d.WorkspaceID, PersonFields: d.PersonDoc.toDomain(), CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

type profileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) domain.ProfileRepository {
	return &profileRepository{coll: db.Collection(profilesCollection)}
}

// CreateIfAbsent inserts by _id; a duplicate key on _id or on (workspace_id, id_number) means the
// profile already exists.
func (r *profileRepository) CreateIfAbsent(ctx context.Context, p *domain.Profile) (bool, error) {
	doc := profileDoc{ID: p.ID, WorkspaceID: p.WorkspaceID, PersonDoc: newPersonDoc(p.PersonFields), CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *profileRepository) GetByID(ctx context.Context, workspaceID, id string) (*domain.Profile, error) {
	return r.findOne(ctx, bson.M{"_id": id, "workspace_id": workspaceID})
}

func (r *profileRepository) GetByIDNumber(ctx context.Context, workspaceID, idNumber string) (*domain.Profile, error) {
	return r.findOne(ctx, bson.M{"workspace_id": workspaceID, "id_number": domain.NormalizeIDNumber(idNumber)})
}

func (r *profileRepository) findOne(ctx context.Context, filter bson.M) (*domain.Profile, error) {
	var doc profileDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *profileRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Profile, error) {
	sort := bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}, {Key: "id_number", Value: 1}}
	cur, err := r.coll.Find(ctx, bson.M{"workspace_id": workspaceID}, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	var docs []profileDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.Profile, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	update := struct {
		PersonDoc `bson:",inline"`
		UpdatedAt time.Time `bson:"updated_at"`
	}{newPersonDoc(p.PersonFields), p.UpdatedAt}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.ID, "workspace_id": p.WorkspaceID}, bson.M{"$set": update})
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateIDNumber
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, workspaceID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "workspace_id": workspaceID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
