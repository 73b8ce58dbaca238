package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillscope/internal/model"
)

type SkillRepo interface {
	GetByName(ctx context.Context, name string) (*model.Skill, error)
	// EnsureByName returns the skill, creating it when missing.
	EnsureByName(ctx context.Context, name, category string) (*model.Skill, error)
	List(ctx context.Context) ([]*model.Skill, error)
}

type skillRepo struct {
	collection *mongo.Collection
}

func NewSkillRepo(db *mongo.Database) SkillRepo {
	return &skillRepo{collection: db.Collection("skills")}
}

func (r *skillRepo) GetByName(ctx context.Context, name string) (*model.Skill, error) {
	var skill model.Skill
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&skill)
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepo) EnsureByName(ctx context.Context, name, category string) (*model.Skill, error) {
	skill, err := r.GetByName(ctx, name)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	created := &model.Skill{Name: name, Category: category}
	result, err := r.collection.InsertOne(ctx, created)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return created, nil
}

func (r *skillRepo) List(ctx context.Context) ([]*model.Skill, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var skills []*model.Skill
	if err = cursor.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}
