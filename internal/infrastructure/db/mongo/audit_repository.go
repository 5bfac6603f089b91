package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/platformly/admin-api/internal/core/domain"
)

const collectionAudit = "authz_audit"

type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

type mongoAuditEntry struct {
	ID       string `bson:"_id"`
	UserID   string `bson:"user_id,omitempty"`
	TenantID string `bson:"tenant_id,omitempty"`
	Allowed  bool   `bson:"allowed"`
	Reason   string `bson:"reason,omitempty"`
	Source   string `bson:"source"`
	Path     string `bson:"path,omitempty"`
	At       int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAuditEntry{
		ID:       entry.ID,
		UserID:   entry.UserID,
		TenantID: entry.TenantID,
		Allowed:  entry.Allowed,
		Reason:   string(entry.Reason),
		Source:   string(entry.Source),
		Path:     entry.Path,
		At:       entry.At.Unix(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
