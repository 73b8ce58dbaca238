package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"skillscope/internal/model"
)

type AttemptRepo interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	GetByID(ctx context.Context, id string) (*model.Attempt, error)
	MarkStarted(ctx context.Context, id string, startedAt time.Time) error
	// Complete writes the frozen report, status, and end timestamp in a single
	// update. This is the durable finalization write.
	Complete(ctx context.Context, id string, report model.PerformanceReport, endedAt time.Time) error
	CompletedForJob(ctx context.Context, jobID string) ([]*model.Attempt, error)
}

type attemptRepo struct {
	collection *mongo.Collection
}

func NewAttemptRepo(db *mongo.Database) AttemptRepo {
	return &attemptRepo{collection: db.Collection("attempts")}
}

func (r *attemptRepo) Create(ctx context.Context, attempt *model.Attempt) error {
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	if attempt.Status == "" {
		attempt.Status = model.AttemptRegistered
	}
	_, err := r.collection.InsertOne(ctx, attempt)
	return err
}

func (r *attemptRepo) GetByID(ctx context.Context, id string) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepo) MarkStarted(ctx context.Context, id string, startedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"status":    model.AttemptStarted,
		"startTime": startedAt,
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *attemptRepo) Complete(ctx context.Context, id string, report model.PerformanceReport, endedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"status":  model.AttemptCompleted,
		"report":  report,
		"endTime": endedAt,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *attemptRepo) CompletedForJob(ctx context.Context, jobID string) ([]*model.Attempt, error) {
	filter := bson.M{"jobId": jobID, "status": model.AttemptCompleted}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attempts []*model.Attempt
	if err = cursor.All(ctx, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}
