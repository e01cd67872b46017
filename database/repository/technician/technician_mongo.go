package technicianRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coolq/database"
	"coolq/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTechnicianRepo implements TechnicianRepository using MongoDB.
type MongoTechnicianRepo struct {
	coll *mongo.Collection
}

// NewMongoTechnicianRepo creates a new instance of TechnicianRepository using MongoDB.
func NewMongoTechnicianRepo() TechnicianRepository {
	return &MongoTechnicianRepo{coll: database.Collection("technicians")}
}

func (r *MongoTechnicianRepo) GetByID(id string) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var technician models.Technician
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&technician); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch technician with id %s: %w", id, err)
	}
	return &technician, nil
}

func (r *MongoTechnicianRepo) GetByEmail(email string) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var technician models.Technician
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&technician); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch technician with email %s: %w", email, err)
	}
	return &technician, nil
}

func (r *MongoTechnicianRepo) GetAll(status string) ([]models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve technicians: %w", err)
	}
	defer cursor.Close(ctx)
	var technicians []models.Technician
	if err := cursor.All(ctx, &technicians); err != nil {
		return nil, fmt.Errorf("failed to decode technicians: %w", err)
	}
	return technicians, nil
}

// FirstApprovedInDistrict sorts candidates by ascending id so the assignment
// tie-break is deterministic rather than dependent on store ordering.
func (r *MongoTechnicianRepo) FirstApprovedInDistrict(district string) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{
		"status":    models.TechnicianApproved,
		"districts": district,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: 1}})
	var technician models.Technician
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&technician); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find technician for district %s: %w", district, err)
	}
	return &technician, nil
}

func (r *MongoTechnicianRepo) Create(technician *models.Technician) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, technician); err != nil {
		return fmt.Errorf("failed to create technician: %w", err)
	}
	return nil
}

func (r *MongoTechnicianRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update technician with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("technician with id %s not found", id)
	}
	return nil
}

// UpdateRatingIf is the storage half of the rating fold's compare-and-swap: the
// filter matches only while total_reviews is unchanged, so concurrent folds
// cannot both apply against the same base values.
func (r *MongoTechnicianRepo) UpdateRatingIf(id string, oldTotal int, newRating float64, newTotal int) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id, "total_reviews": oldTotal}
	update := bson.M{"$set": bson.M{
		"rating":        newRating,
		"total_reviews": newTotal,
		"updated_at":    time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update rating for technician %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

func (r *MongoTechnicianRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete technician with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("technician with id %s not found", id)
	}
	return nil
}
