package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/store/schema"
)

type gormStore struct {
	cursorStore
	db *gorm.DB
}

// NewGormStore creates a store backed by any gorm dialect (postgres in production, sqlite for tests)
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{cursorStore: cursorStore{db: db}, db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// WithTransaction runs fn inside a database transaction
func (s *gormStore) WithTransaction(ctx context.Context, fn func(tx EntityStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{cursorStore: cursorStore{db: tx}, db: tx})
	})
}

// first loads a single record into dest, returning found=false on a miss
func (s *gormStore) first(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := s.db.WithContext(ctx).Where(query, args...).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// upsert inserts value or replaces every column of the existing row
func (s *gormStore) upsert(ctx context.Context, value interface{}) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(value).Error
}

// GetPersona retrieves a persona by layer and token ID
func (s *gormStore) GetPersona(ctx context.Context, layer domain.Layer, id string) (*schema.Persona, error) {
	var persona schema.Persona
	found, err := s.first(ctx, &persona, "layer = ? AND id = ?", layer, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get persona: %w", err)
	}
	if !found {
		return nil, nil
	}
	if persona.Authorizations == nil {
		persona.Authorizations = schema.NewKeys()
	}
	if persona.Impersonations == nil {
		persona.Impersonations = schema.NewKeys()
	}
	return &persona, nil
}

// SavePersona upserts a persona
func (s *gormStore) SavePersona(ctx context.Context, persona *schema.Persona) error {
	if err := s.upsert(ctx, persona); err != nil {
		return fmt.Errorf("failed to save persona: %w", err)
	}
	return nil
}

// GetOwner retrieves an L1 owner by address
func (s *gormStore) GetOwner(ctx context.Context, address string) (*schema.Owner, error) {
	var owner schema.Owner
	found, err := s.first(ctx, &owner, "address = ?", address)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &owner, nil
}

// SaveOwner upserts an L1 owner
func (s *gormStore) SaveOwner(ctx context.Context, owner *schema.Owner) error {
	if err := s.upsert(ctx, owner); err != nil {
		return fmt.Errorf("failed to save owner: %w", err)
	}
	return nil
}

// GetUser retrieves an L2 user by address
func (s *gormStore) GetUser(ctx context.Context, address string) (*schema.User, error) {
	var user schema.User
	found, err := s.first(ctx, &user, "address = ?", address)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, nil
	}
	if user.Authorizations == nil {
		user.Authorizations = schema.NewKeys()
	}
	if user.Impersonations == nil {
		user.Impersonations = schema.NewKeys()
	}
	return &user, nil
}

// SaveUser upserts an L2 user
func (s *gormStore) SaveUser(ctx context.Context, user *schema.User) error {
	if err := s.upsert(ctx, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// GetTransfer retrieves a transfer by layer and event ID
func (s *gormStore) GetTransfer(ctx context.Context, layer domain.Layer, id string) (*schema.Transfer, error) {
	var transfer schema.Transfer
	found, err := s.first(ctx, &transfer, "layer = ? AND id = ?", layer, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &transfer, nil
}

// SaveTransfer upserts a transfer
func (s *gormStore) SaveTransfer(ctx context.Context, transfer *schema.Transfer) error {
	if err := s.upsert(ctx, transfer); err != nil {
		return fmt.Errorf("failed to save transfer: %w", err)
	}
	return nil
}

// GetAuthorization retrieves an authorization by event ID
func (s *gormStore) GetAuthorization(ctx context.Context, id string) (*schema.Authorization, error) {
	var authorization schema.Authorization
	found, err := s.first(ctx, &authorization, "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &authorization, nil
}

// SaveAuthorization upserts an authorization
func (s *gormStore) SaveAuthorization(ctx context.Context, authorization *schema.Authorization) error {
	if authorization.FnSignatures == nil {
		authorization.FnSignatures = schema.NewKeys()
	}
	if err := s.upsert(ctx, authorization); err != nil {
		return fmt.Errorf("failed to save authorization: %w", err)
	}
	return nil
}

// DeleteAuthorization removes an authorization
func (s *gormStore) DeleteAuthorization(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&schema.Authorization{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete authorization: %w", err)
	}
	return nil
}

// GetImpersonation retrieves an impersonation by its persona:user:consumer key
func (s *gormStore) GetImpersonation(ctx context.Context, id string) (*schema.Impersonation, error) {
	var impersonation schema.Impersonation
	found, err := s.first(ctx, &impersonation, "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get impersonation: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &impersonation, nil
}

// SaveImpersonation upserts an impersonation
func (s *gormStore) SaveImpersonation(ctx context.Context, impersonation *schema.Impersonation) error {
	if err := s.upsert(ctx, impersonation); err != nil {
		return fmt.Errorf("failed to save impersonation: %w", err)
	}
	return nil
}

// DeleteImpersonation removes an impersonation
func (s *gormStore) DeleteImpersonation(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&schema.Impersonation{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete impersonation: %w", err)
	}
	return nil
}

// IsEventProcessed reports whether the event has already been applied
func (s *gormStore) IsEventProcessed(ctx context.Context, layer domain.Layer, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.ProcessedEvent{}).
		Where("layer = ? AND id = ?", layer, id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check processed event: %w", err)
	}
	return count > 0, nil
}

// MarkEventProcessed records an applied event. Marking an event twice is a no-op.
func (s *gormStore) MarkEventProcessed(ctx context.Context, event *schema.ProcessedEvent) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(event).Error
	if err != nil {
		return fmt.Errorf("failed to mark event processed: %w", err)
	}
	return nil
}

// ListPersonasByOwner retrieves the personas currently owned by an address on a layer
func (s *gormStore) ListPersonasByOwner(ctx context.Context, layer domain.Layer, owner string, limit int, offset uint64) ([]schema.Persona, uint64, error) {
	query := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&schema.Persona{}).Where("layer = ? AND owner = ?", layer, owner)
	}

	// Count total
	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count personas: %w", err)
	}

	var personas []schema.Persona
	if err := query().Order("created_at ASC").Order("id ASC").Limit(limit).Offset(int(offset)).Find(&personas).Error; err != nil { //nolint:gosec,G115
		return nil, 0, fmt.Errorf("failed to get personas: %w", err)
	}

	return personas, uint64(total), nil //nolint:gosec,G115
}

// ListTransfersByPersona retrieves the transfers of a persona ordered by block
func (s *gormStore) ListTransfersByPersona(ctx context.Context, layer domain.Layer, persona string, limit int, offset uint64) ([]schema.Transfer, uint64, error) {
	query := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&schema.Transfer{}).Where("layer = ? AND persona = ?", layer, persona)
	}

	// Count total
	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	var transfers []schema.Transfer
	if err := query().Order("block ASC").Order("id ASC").Limit(limit).Offset(int(offset)).Find(&transfers).Error; err != nil { //nolint:gosec,G115
		return nil, 0, fmt.Errorf("failed to get transfers: %w", err)
	}

	return transfers, uint64(total), nil //nolint:gosec,G115
}

// GetAuthorizationsByIDs retrieves authorizations preserving the order of ids
func (s *gormStore) GetAuthorizationsByIDs(ctx context.Context, ids []string) ([]schema.Authorization, error) {
	if len(ids) == 0 {
		return []schema.Authorization{}, nil
	}

	var rows []schema.Authorization
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get authorizations: %w", err)
	}

	byID := make(map[string]schema.Authorization, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	result := make([]schema.Authorization, 0, len(rows))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			result = append(result, row)
		}
	}
	return result, nil
}

// GetImpersonationsByIDs retrieves impersonations preserving the order of ids
func (s *gormStore) GetImpersonationsByIDs(ctx context.Context, ids []string) ([]schema.Impersonation, error) {
	if len(ids) == 0 {
		return []schema.Impersonation{}, nil
	}

	var rows []schema.Impersonation
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get impersonations: %w", err)
	}

	byID := make(map[string]schema.Impersonation, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	result := make([]schema.Impersonation, 0, len(rows))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			result = append(result, row)
		}
	}
	return result, nil
}
