package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"user_backend/internal/feature/users/domain/entity"
)

// mockUserRepository is a mock UserRepository implementation for testing.
type mockUserRepository struct {
	existsFn   func(ctx context.Context, username string) (bool, error)
	findByIDFn func(ctx context.Context, id string) (*entity.User, error)
	findAllFn  func(ctx context.Context) ([]entity.User, error)
	saveFn     func(ctx context.Context, user *entity.User) error
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Save(ctx context.Context, user *entity.User) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) DeleteByID(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func TestNewCachingUserRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "users",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "users",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingUserRepository(nil, tt.ttl, &mockUserRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

func TestCachingUserRepository_FindByID_NilRedis(t *testing.T) {
	t.Parallel()

	expected := &entity.User{ID: "id-1", Username: "alice"}
	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*entity.User, error) {
			return expected, nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingUserRepository(nil, 5*time.Minute, inner, "users")

	user, err := repo.FindByID(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != expected {
		t.Errorf("expected the inner repository's user, got %+v", user)
	}
}

func TestCachingUserRepository_FindByID_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := &entity.User{ID: "id-1", Username: "alice"}
	cachedJSON, _ := json.Marshal(cached)

	mock.ExpectGet("users:id:id-1").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*entity.User, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	user, err := repo.FindByID(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if user == nil || user.Username != "alice" {
		t.Errorf("expected cached user, got %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_FindByID_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := &entity.User{ID: "id-1", Username: "alice"}
	expectedJSON, _ := json.Marshal(expected)

	// Cache miss
	mock.ExpectGet("users:id:id-1").RedisNil()
	// Set cache after fetching from the store
	mock.ExpectSet("users:id:id-1", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*entity.User, error) {
			return expected, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	user, err := repo.FindByID(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != expected {
		t.Errorf("expected the store's user, got %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_FindByID_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := &entity.User{ID: "id-1", Username: "alice"}
	expectedJSON, _ := json.Marshal(expected)

	// Return invalid JSON from cache
	mock.ExpectGet("users:id:id-1").SetVal("invalid json")
	// Delete corrupted cache
	mock.ExpectDel("users:id:id-1").SetVal(1)
	// Set new cache after fetching from the store
	mock.ExpectSet("users:id:id-1", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*entity.User, error) {
			return expected, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	user, err := repo.FindByID(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != expected {
		t.Errorf("expected the store's user, got %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_FindAll_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.User{{ID: "id-1"}, {ID: "id-2"}}
	expectedJSON, _ := json.Marshal(expected)

	mock.ExpectGet("users:all").RedisNil()
	mock.ExpectSet("users:all", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findAllFn: func(ctx context.Context) ([]entity.User, error) {
			return expected, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	users, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_Save_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("users:id:id-1", "users:all").SetVal(2)

	innerCalled := false
	inner := &mockUserRepository{
		saveFn: func(ctx context.Context, user *entity.User) error {
			innerCalled = true
			return nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	if err := repo.Save(context.Background(), &entity.User{ID: "id-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !innerCalled {
		t.Error("inner repository must be called")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_Save_InnerErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")
	inner := &mockUserRepository{
		saveFn: func(ctx context.Context, user *entity.User) error {
			return expectedErr
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	err := repo.Save(context.Background(), &entity.User{ID: "id-1"})
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	// No Del expectation was registered; a cache call here would fail the mock
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_DeleteByID_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("users:id:id-1", "users:all").SetVal(2)

	repo := NewCachingUserRepository(rdb, 5*time.Minute, &mockUserRepository{}, "users")
	if err := repo.DeleteByID(context.Background(), "id-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_ExistsByUsername_BypassesCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockUserRepository{
		existsFn: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}

	// The uniqueness guard must always hit the store; no Redis expectations
	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected true from the inner repository")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}
