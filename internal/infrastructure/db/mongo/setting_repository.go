package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/platformly/admin-api/internal/core/domain"
)

const collectionSettings = "settings"

// SettingRepository stores settings in a loosely typed value column. Older
// writers persisted primitive strings with JSON quoting, and some wrapped the
// value in a single-element array; reads classify the raw shape via
// domain.ParseSettingValue instead of assuming a bare string.
type SettingRepository struct {
	col *mongo.Collection
}

func NewSettingRepository(db *mongo.Database) *SettingRepository {
	return &SettingRepository{col: db.Collection(collectionSettings)}
}

type mongoSetting struct {
	TenantID  string `bson:"tenant_id,omitempty"`
	Key       string `bson:"key"`
	Value     any    `bson:"value"`
	UpdatedAt int64  `bson:"updated_at"`
}

// FindByKey looks a setting up globally by key alone, regardless of which
// tenant the row is scoped to.
func (r *SettingRepository) FindByKey(ctx context.Context, key string) (*domain.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSetting
	if err := r.col.FindOne(ctx, bson.M{"key": key}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSettingNotFound
		}
		return nil, fmt.Errorf("find setting: %w", err)
	}

	return &domain.Setting{
		TenantID:  ms.TenantID,
		Key:       ms.Key,
		Value:     domain.ParseSettingValue(normalizeRaw(ms.Value)),
		UpdatedAt: unixToTime(ms.UpdatedAt),
	}, nil
}

// Upsert writes the setting, always as a plain string value. New writes never
// add to the legacy quoted/array shapes.
func (r *SettingRepository) Upsert(ctx context.Context, setting *domain.Setting) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	value, _ := setting.Value.Text()
	update := bson.M{"$set": bson.M{
		"tenant_id":  setting.TenantID,
		"value":      value,
		"updated_at": time.Now().UTC().Unix(),
	}}

	_, err := r.col.UpdateOne(ctx, bson.M{"key": setting.Key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}

// normalizeRaw converts the driver's bson array type into plain Go slices so
// the domain parser only ever sees string / []any shapes.
func normalizeRaw(raw any) any {
	if arr, ok := raw.(bson.A); ok {
		return []any(arr)
	}
	return raw
}
