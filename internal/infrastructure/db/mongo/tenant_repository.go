package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/platformly/admin-api/internal/core/domain"
)

const collectionTenants = "tenants"

type TenantRepository struct {
	col *mongo.Collection
}

func NewTenantRepository(db *mongo.Database) *TenantRepository {
	return &TenantRepository{col: db.Collection(collectionTenants)}
}

type mongoTenant struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	ContactEmail string `bson:"contact_email,omitempty"`
	Address      string `bson:"address,omitempty"`
	Active       bool   `bson:"active"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

func (r *TenantRepository) FindByID(ctx context.Context, id string) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTenant
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("find tenant: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Tenant
	for cursor.Next(ctx) {
		var mt mongoTenant
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode tenant: %w", err)
		}
		out = append(out, *mt.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate tenants: %w", err)
	}
	return out, nil
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTenant{
		ID:           tenant.ID,
		Name:         tenant.Name,
		ContactEmail: tenant.ContactEmail,
		Address:      tenant.Address,
		Active:       tenant.Active,
		CreatedAt:    tenant.CreatedAt.Unix(),
		UpdatedAt:    tenant.UpdatedAt.Unix(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert tenant: %w", err)
	}
	return tenant, nil
}

func (mt mongoTenant) toDomain() *domain.Tenant {
	return &domain.Tenant{
		ID:           mt.ID,
		Name:         mt.Name,
		ContactEmail: mt.ContactEmail,
		Address:      mt.Address,
		Active:       mt.Active,
		CreatedAt:    unixToTime(mt.CreatedAt),
		UpdatedAt:    unixToTime(mt.UpdatedAt),
	}
}
