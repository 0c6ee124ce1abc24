package services

import (
	"context"
	"errors"
	"time"

	"fibresite/database"
	"fibresite/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CoverageService struct {
	coverageCollection Collection
}

func NewCoverageService() *CoverageService {
	return NewCoverageServiceWithCollection(database.GetCollection(database.CoverageAreasCollection))
}

// NewCoverageServiceWithCollection injects the backing collection, for tests.
func NewCoverageServiceWithCollection(coll Collection) *CoverageService {
	return &CoverageService{coverageCollection: coll}
}

// GetCoverageAreas returns all coverage areas, newest first.
func (cs *CoverageService) GetCoverageAreas() ([]models.CoverageArea, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := cs.coverageCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	areas := []models.CoverageArea{}
	if err = cursor.All(ctx, &areas); err != nil {
		return nil, err
	}

	return areas, nil
}

func (cs *CoverageService) GetCoverageArea(areaID primitive.ObjectID) (*models.CoverageArea, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var area models.CoverageArea
	err := cs.coverageCollection.FindOne(ctx, bson.M{"_id": areaID}).Decode(&area)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &area, nil
}

func (cs *CoverageService) CreateCoverageArea(req *models.CoverageAreaRequest) (*models.CoverageArea, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	area := models.CoverageArea{
		ID:         primitive.NewObjectID(),
		Area:       req.Area,
		City:       req.City,
		Status:     req.Status,
		Population: req.Population,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if _, err := cs.coverageCollection.InsertOne(ctx, area); err != nil {
		return nil, err
	}

	return &area, nil
}

func (cs *CoverageService) UpdateCoverageArea(areaID primitive.ObjectID, req *models.CoverageAreaRequest) (*models.CoverageArea, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.CoverageArea
	err := cs.coverageCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": areaID},
		bson.M{"$set": bson.M{
			"area":       req.Area,
			"city":       req.City,
			"status":     req.Status,
			"population": req.Population,
			"updated_at": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}

func (cs *CoverageService) DeleteCoverageArea(areaID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := cs.coverageCollection.DeleteOne(ctx, bson.M{"_id": areaID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
