package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillscope/internal/model"
)

type JobRepo interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id string) (*model.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID string) ([]*model.Job, error)
}

type jobRepo struct {
	collection *mongo.Collection
}

func NewJobRepo(db *mongo.Database) JobRepo {
	return &jobRepo{collection: db.Collection("jobs")}
}

func (r *jobRepo) Create(ctx context.Context, job *model.Job) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, job)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid.Hex()
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var job model.Job
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) ListByRecruiter(ctx context.Context, recruiterID string) ([]*model.Job, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"recruiterId": recruiterID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []*model.Job
	if err = cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
