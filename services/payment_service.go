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

type PaymentService struct {
	paymentCollection Collection
}

func NewPaymentService() *PaymentService {
	return NewPaymentServiceWithCollection(database.GetCollection(database.PaymentMethodsCollection))
}

// NewPaymentServiceWithCollection injects the backing collection, for tests.
func NewPaymentServiceWithCollection(coll Collection) *PaymentService {
	return &PaymentService{paymentCollection: coll}
}

// GetPaymentMethods lists methods by explicit order, then name.
func (ps *PaymentService) GetPaymentMethods() ([]models.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ps.paymentCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "method_name", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	methods := []models.PaymentMethod{}
	if err = cursor.All(ctx, &methods); err != nil {
		return nil, err
	}

	return methods, nil
}

func (ps *PaymentService) GetPaymentMethod(methodID primitive.ObjectID) (*models.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var method models.PaymentMethod
	err := ps.paymentCollection.FindOne(ctx, bson.M{"_id": methodID}).Decode(&method)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &method, nil
}

func (ps *PaymentService) CreatePaymentMethod(req *models.PaymentMethodRequest) (*models.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	method := models.PaymentMethod{
		ID:         primitive.NewObjectID(),
		MethodName: req.MethodName,
		IconClass:  req.IconClass,
		Steps:      req.Steps,
		Order:      req.Order,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if _, err := ps.paymentCollection.InsertOne(ctx, method); err != nil {
		return nil, err
	}

	return &method, nil
}

func (ps *PaymentService) UpdatePaymentMethod(methodID primitive.ObjectID, req *models.PaymentMethodRequest) (*models.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated models.PaymentMethod
	err := ps.paymentCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": methodID},
		bson.M{"$set": bson.M{
			"method_name": req.MethodName,
			"icon_class":  req.IconClass,
			"steps":       req.Steps,
			"order":       req.Order,
			"updated_at":  time.Now(),
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

func (ps *PaymentService) DeletePaymentMethod(methodID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ps.paymentCollection.DeleteOne(ctx, bson.M{"_id": methodID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
