// Package table adapts the legacy schemaless entity store: records are
// addressed by partition key and row key, and every write rotates an opaque
// ETag used to detect lost updates.
package table

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"abc-retail-backend/internal/model"
)

var (
	ErrNotFound = errors.New("entity not found")
	// ErrConflict means the entity changed since it was read. The caller
	// must re-fetch and retry manually; there is no automatic retry.
	ErrConflict = errors.New("concurrency token mismatch")
)

// Table is a partition-scoped view over one entity collection. T must embed
// model.TableEntity.
type Table[T any] struct {
	coll      *mongo.Collection
	partition string
}

func NewTable[T any](db *mongo.Database, collection, partition string) *Table[T] {
	return &Table[T]{coll: db.Collection(collection), partition: partition}
}

func metaOf(v any) (*model.TableEntity, error) {
	e, ok := v.(interface{ Meta() *model.TableEntity })
	if !ok {
		return nil, fmt.Errorf("entity %T does not embed model.TableEntity", v)
	}
	return e.Meta(), nil
}

func (t *Table[T]) Get(ctx context.Context, rowKey string) (*T, error) {
	var e T
	err := t.coll.FindOne(ctx, bson.M{"_id": rowKey, "partitionKey": t.partition}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", t.partition, rowKey, err)
	}
	return &e, nil
}

func (t *Table[T]) List(ctx context.Context) ([]*T, error) {
	cursor, err := t.coll.Find(ctx, bson.M{"partitionKey": t.partition})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.partition, err)
	}
	var entities []*T
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("decode %s entities: %w", t.partition, err)
	}
	return entities, nil
}

// Insert assigns the row key, concurrency token and timestamp.
func (t *Table[T]) Insert(ctx context.Context, e *T) error {
	m, err := metaOf(e)
	if err != nil {
		return err
	}
	if m.RowKey == "" {
		m.RowKey = uuid.NewString()
	}
	m.PartitionKey = t.partition
	m.ETag = uuid.NewString()
	m.Timestamp = time.Now().UTC()

	if _, err := t.coll.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert %s/%s: %w", t.partition, m.RowKey, err)
	}
	return nil
}

// Update writes the entity conditionally on the ETag it was read with. On
// success the entity carries the rotated token; on failure it is left with
// the token it came in with.
func (t *Table[T]) Update(ctx context.Context, e *T) error {
	m, err := metaOf(e)
	if err != nil {
		return err
	}
	token := m.ETag
	m.ETag = uuid.NewString()
	m.Timestamp = time.Now().UTC()

	res, err := t.coll.ReplaceOne(ctx, bson.M{"_id": m.RowKey, "etag": token}, e)
	if err != nil {
		m.ETag = token
		return fmt.Errorf("update %s/%s: %w", t.partition, m.RowKey, err)
	}
	if res.MatchedCount == 0 {
		m.ETag = token
		ferr := t.coll.FindOne(ctx, bson.M{"_id": m.RowKey}).Err()
		if errors.Is(ferr, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		if ferr != nil {
			return fmt.Errorf("update %s/%s: %w", t.partition, m.RowKey, ferr)
		}
		return ErrConflict
	}
	return nil
}

func (t *Table[T]) Delete(ctx context.Context, rowKey string) error {
	res, err := t.coll.DeleteOne(ctx, bson.M{"_id": rowKey, "partitionKey": t.partition})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", t.partition, rowKey, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
