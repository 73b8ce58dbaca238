package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"skillscope/internal/model"
)

type RegistrationRepo interface {
	Register(ctx context.Context, reg *model.Registration) error
	ForJob(ctx context.Context, jobID string) ([]*model.Registration, error)
	Find(ctx context.Context, jobID, candidateID string) (*model.Registration, error)
}

type registrationRepo struct {
	collection *mongo.Collection
}

func NewRegistrationRepo(db *mongo.Database) RegistrationRepo {
	return &registrationRepo{collection: db.Collection("registrations")}
}

func (r *registrationRepo) Register(ctx context.Context, reg *model.Registration) error {
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, reg)
	return err
}

func (r *registrationRepo) ForJob(ctx context.Context, jobID string) ([]*model.Registration, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"jobId": jobID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var regs []*model.Registration
	if err = cursor.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepo) Find(ctx context.Context, jobID, candidateID string) (*model.Registration, error) {
	var reg model.Registration
	err := r.collection.FindOne(ctx, bson.M{"jobId": jobID, "candidateId": candidateID}).Decode(&reg)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}
