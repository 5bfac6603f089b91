package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/platformly/admin-api/internal/core/domain"
)

func TestUserRepository_FindByID_MalformedID(t *testing.T) {
	// Ids that are not hex ObjectIDs resolve to not-found before any query
	// is issued, so no collection is needed.
	repo := &UserRepository{}

	for _, id := range []string{"", "u1", "not-a-hex-id", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := repo.FindByID(context.Background(), id); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("id %q: expected ErrUserNotFound, got %v", id, err)
		}
	}
}
