package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/whynotact/backend/internal/content"
)

// MongoRepo reads authored content from the CMS-owned MongoDB collections.
// This service never writes content; authoring and moderation happen in the CMS.
type MongoRepo struct {
	questions    *mongo.Collection
	impactPoints *mongo.Collection
	dataPoints   *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		questions:    db.Collection("questions"),
		impactPoints: db.Collection("impact_points"),
		dataPoints:   db.Collection("data_points"),
	}
}

func (m *MongoRepo) Questions(ctx context.Context, layer string) ([]*content.Question, error) {
	filter := bson.M{}
	if layer != "" {
		filter["layer"] = layer
	}
	cur, err := m.questions.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*content.Question{}
	for cur.Next(ctx) {
		var q content.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		out = append(out, &q)
	}
	return out, cur.Err()
}

func (m *MongoRepo) ImpactPoints(ctx context.Context) ([]*content.ImpactPoint, error) {
	cur, err := m.impactPoints.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*content.ImpactPoint{}
	for cur.Next(ctx) {
		var p content.ImpactPoint
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (m *MongoRepo) DataPoints(ctx context.Context) ([]*content.DataPoint, error) {
	cur, err := m.dataPoints.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*content.DataPoint{}
	for cur.Next(ctx) {
		var d content.DataPoint
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, cur.Err()
}
