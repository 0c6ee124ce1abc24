// Package testutil provides in-memory test doubles for the data layer.
package testutil

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MemCollection is an in-memory stand-in for a MongoDB collection. It
// supports the equality filters, $set/$setOnInsert updates, and sort options
// the services actually issue. Documents are normalized through BSON
// marshalling so comparisons behave like the driver's.
type MemCollection struct {
	mu   sync.Mutex
	docs []bson.M
}

func NewMemCollection() *MemCollection {
	return &MemCollection{}
}

// Seed inserts documents without going through InsertOne, for test setup.
func (mc *MemCollection) Seed(docs ...interface{}) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	for _, d := range docs {
		doc, err := normalize(d)
		if err != nil {
			return err
		}
		mc.docs = append(mc.docs, doc)
	}
	return nil
}

// Len reports the number of stored documents.
func (mc *MemCollection) Len() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.docs)
}

func (mc *MemCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	f, err := normalize(filter)
	if err != nil {
		return nil, err
	}

	matched := []bson.M{}
	for _, doc := range mc.docs {
		if matches(doc, f) {
			matched = append(matched, doc)
		}
	}

	if len(opts) > 0 && opts[0] != nil && opts[0].Sort != nil {
		applySort(matched, opts[0].Sort)
	}

	out := make([]interface{}, len(matched))
	for i, doc := range matched {
		out[i] = doc
	}
	return mongo.NewCursorFromDocuments(out, nil, nil)
}

func (mc *MemCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	f, err := normalize(filter)
	if err != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, err, nil)
	}

	for _, doc := range mc.docs {
		if matches(doc, f) {
			return mongo.NewSingleResultFromDocument(doc, nil, nil)
		}
	}
	return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
}

func (mc *MemCollection) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	f, err := normalize(filter)
	if err != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, err, nil)
	}
	u, err := normalize(update)
	if err != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, err, nil)
	}

	after := false
	upsert := false
	if len(opts) > 0 && opts[0] != nil {
		if opts[0].ReturnDocument != nil && *opts[0].ReturnDocument == options.After {
			after = true
		}
		if opts[0].Upsert != nil && *opts[0].Upsert {
			upsert = true
		}
	}

	for i, doc := range mc.docs {
		if !matches(doc, f) {
			continue
		}
		updated := cloneDoc(doc)
		if set, ok := u["$set"].(bson.M); ok {
			for k, v := range set {
				updated[k] = v
			}
		}
		mc.docs[i] = updated
		if after {
			return mongo.NewSingleResultFromDocument(updated, nil, nil)
		}
		return mongo.NewSingleResultFromDocument(doc, nil, nil)
	}

	if !upsert {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}

	created := bson.M{}
	for k, v := range f {
		created[k] = v
	}
	if setOnInsert, ok := u["$setOnInsert"].(bson.M); ok {
		for k, v := range setOnInsert {
			created[k] = v
		}
	}
	if set, ok := u["$set"].(bson.M); ok {
		for k, v := range set {
			created[k] = v
		}
	}
	if _, ok := created["_id"]; !ok {
		created["_id"] = primitive.NewObjectID()
	}
	mc.docs = append(mc.docs, created)

	if after {
		return mongo.NewSingleResultFromDocument(created, nil, nil)
	}
	return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
}

func (mc *MemCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	doc, err := normalize(document)
	if err != nil {
		return nil, err
	}
	mc.docs = append(mc.docs, doc)
	return &mongo.InsertOneResult{InsertedID: doc["_id"]}, nil
}

func (mc *MemCollection) InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	result := &mongo.InsertManyResult{}
	for _, d := range documents {
		doc, err := normalize(d)
		if err != nil {
			return nil, err
		}
		mc.docs = append(mc.docs, doc)
		result.InsertedIDs = append(result.InsertedIDs, doc["_id"])
	}
	return result, nil
}

func (mc *MemCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	f, err := normalize(filter)
	if err != nil {
		return nil, err
	}

	for i, doc := range mc.docs {
		if matches(doc, f) {
			mc.docs = append(mc.docs[:i], mc.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (mc *MemCollection) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	f, err := normalize(filter)
	if err != nil {
		return nil, err
	}

	kept := mc.docs[:0]
	deleted := int64(0)
	for _, doc := range mc.docs {
		if matches(doc, f) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	mc.docs = kept
	return &mongo.DeleteResult{DeletedCount: deleted}, nil
}

func (mc *MemCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	f, err := normalize(filter)
	if err != nil {
		return 0, err
	}

	count := int64(0)
	for _, doc := range mc.docs {
		if matches(doc, f) {
			count++
		}
	}
	return count, nil
}

// normalize round-trips a value through BSON so that field names, integer
// widths, and time representations match what the driver would store.
func normalize(v interface{}) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	return doc, nil
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func applySort(docs []bson.M, sortSpec interface{}) {
	spec, ok := sortSpec.(bson.D)
	if !ok {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		for _, field := range spec {
			dir := int32(1)
			switch d := field.Value.(type) {
			case int:
				dir = int32(d)
			case int32:
				dir = d
			case int64:
				dir = int32(d)
			}
			cmp := compareValues(docs[i][field.Key], docs[j][field.Key])
			if cmp == 0 {
				continue
			}
			if dir < 0 {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareValues(a, b interface{}) int {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	case primitive.ObjectID:
		if bv, ok := b.(primitive.ObjectID); ok {
			switch {
			case av.Hex() < bv.Hex():
				return -1
			case av.Hex() > bv.Hex():
				return 1
			default:
				return 0
			}
		}
	}
	return 0
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case primitive.DateTime:
		return float64(n), true
	}
	return 0, false
}
