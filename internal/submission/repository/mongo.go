package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/whynotact/backend/internal/submission"
)

// MongoRepo persists submissions in MongoDB. Documents are identified by
// ObjectID hex strings assigned at create time.
type MongoRepo struct {
	petitions *mongo.Collection
	stories   *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		petitions: db.Collection("petition_signatures"),
		stories:   db.Collection("stories"),
	}
}

func (m *MongoRepo) CreatePetition(ctx context.Context, sig *submission.PetitionSignature) (string, error) {
	sig.ID = primitive.NewObjectID().Hex()
	if _, err := m.petitions.InsertOne(ctx, sig); err != nil {
		return "", err
	}
	return sig.ID, nil
}

func (m *MongoRepo) CountPetitions(ctx context.Context, theme string) (int64, error) {
	filter := bson.M{}
	if theme != "" {
		filter["theme"] = theme
	}
	return m.petitions.CountDocuments(ctx, filter)
}

func (m *MongoRepo) DeletePetition(ctx context.Context, id string) error {
	res, err := m.petitions.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) CreateStory(ctx context.Context, st *submission.Story) (string, error) {
	st.ID = primitive.NewObjectID().Hex()
	if _, err := m.stories.InsertOne(ctx, st); err != nil {
		return "", err
	}
	return st.ID, nil
}

// ListPublishedStories returns published stories newest first. The projection
// is allowlist-only so sensitive fields can never leak into the read path.
func (m *MongoRepo) ListPublishedStories(ctx context.Context, opts submission.ListOptions) ([]*submission.StoryView, error) {
	filter := bson.M{"status": submission.StatusPublished}
	if opts.Theme != "" {
		filter["theme"] = opts.Theme
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"_id": 1, "name": 1, "story": 1, "theme": 1, "createdAt": 1}).
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit))
	cur, err := m.stories.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*submission.StoryView{}
	for cur.Next(ctx) {
		var v submission.StoryView
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

func (m *MongoRepo) DeleteStory(ctx context.Context, id string) error {
	res, err := m.stories.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
