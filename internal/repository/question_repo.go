package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"skillscope/internal/model"
)

type QuestionRepo interface {
	InsertMany(ctx context.Context, questions []model.Question) error
	ForJob(ctx context.Context, jobID string) ([]model.Question, error)
	CountForJob(ctx context.Context, jobID string) (int64, error)
}

type questionRepo struct {
	collection *mongo.Collection
}

func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{collection: db.Collection("questions")}
}

func (r *questionRepo) InsertMany(ctx context.Context, questions []model.Question) error {
	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		docs[i] = q
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *questionRepo) ForJob(ctx context.Context, jobID string) ([]model.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"jobId": jobID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) CountForJob(ctx context.Context, jobID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"jobId": jobID})
}
