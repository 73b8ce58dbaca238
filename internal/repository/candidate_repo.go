package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skillscope/internal/model"
)

type CandidateRepo interface {
	Create(ctx context.Context, candidate *model.Candidate) error
	GetByID(ctx context.Context, id string) (*model.Candidate, error)
	ListByIDs(ctx context.Context, ids []string) ([]*model.Candidate, error)
}

type candidateRepo struct {
	collection *mongo.Collection
}

func NewCandidateRepo(db *mongo.Database) CandidateRepo {
	return &candidateRepo{collection: db.Collection("candidates")}
}

func (r *candidateRepo) Create(ctx context.Context, candidate *model.Candidate) error {
	result, err := r.collection.InsertOne(ctx, candidate)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		candidate.ID = oid.Hex()
	}
	return nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*model.Candidate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var candidate model.Candidate
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) ListByIDs(ctx context.Context, ids []string) ([]*model.Candidate, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var candidates []*model.Candidate
	if err = cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// CandidateSkillRepo stores the proficiency rows inferred for candidates.
type CandidateSkillRepo interface {
	Upsert(ctx context.Context, cs *model.CandidateSkill) error
	ForCandidate(ctx context.Context, candidateID string) (map[string]int, error)
	ForCandidates(ctx context.Context, candidateIDs []string) (map[string]map[string]int, error)
}

type candidateSkillRepo struct {
	collection *mongo.Collection
}

func NewCandidateSkillRepo(db *mongo.Database) CandidateSkillRepo {
	return &candidateSkillRepo{collection: db.Collection("candidate_skills")}
}

func (r *candidateSkillRepo) Upsert(ctx context.Context, cs *model.CandidateSkill) error {
	filter := bson.M{"candidateId": cs.CandidateID, "skill": cs.Skill}
	update := bson.M{"$set": bson.M{"proficiency": cs.Proficiency}}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *candidateSkillRepo) ForCandidate(ctx context.Context, candidateID string) (map[string]int, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"candidateId": candidateID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []*model.CandidateSkill
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, cs := range rows {
		out[cs.Skill] = cs.Proficiency
	}
	return out, nil
}

func (r *candidateSkillRepo) ForCandidates(ctx context.Context, candidateIDs []string) (map[string]map[string]int, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"candidateId": bson.M{"$in": candidateIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []*model.CandidateSkill
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make(map[string]map[string]int)
	for _, cs := range rows {
		if out[cs.CandidateID] == nil {
			out[cs.CandidateID] = make(map[string]int)
		}
		out[cs.CandidateID][cs.Skill] = cs.Proficiency
	}
	return out, nil
}
