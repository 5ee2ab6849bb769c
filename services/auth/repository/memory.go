package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/internal/pkg/password"
	"github.com/carbonkhet/carbonkhet/services/auth"
)

// MemoryStore is the in-process credential store used when no MongoDB
// connection string is configured or the connection fails at startup.
// It mirrors the observable behavior of the Mongo store for the lifetime
// of the process; nothing survives a restart.
type MemoryStore struct {
	mu           sync.RWMutex
	farmers      map[string]*models.Farmer // keyed by id
	farmerEmails map[string]string         // email -> id
	admins       map[string]*models.Admin  // keyed by email
	passwords    map[string]string         // userID|userType -> bcrypt hash
	otps         map[string]*models.OTP    // keyed by email, at most one
}

// NewMemoryStore creates an empty in-memory credential store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		farmers:      make(map[string]*models.Farmer),
		farmerEmails: make(map[string]string),
		admins:       make(map[string]*models.Admin),
		passwords:    make(map[string]string),
		otps:         make(map[string]*models.OTP),
	}
}

func passwordKey(userID, userType string) string {
	return userID + "|" + userType
}

// cloneFarmer returns a copy so callers cannot mutate stored state
func cloneFarmer(f *models.Farmer) *models.Farmer {
	clone := *f
	clone.PrimaryCrops = append([]string(nil), f.PrimaryCrops...)
	clone.InterestedProjects = append([]string(nil), f.InterestedProjects...)
	clone.SustainablePractices = append([]string(nil), f.SustainablePractices...)
	if f.Coordinates != nil {
		coords := *f.Coordinates
		clone.Coordinates = &coords
	}
	return &clone
}

// FindFarmerByEmail retrieves a farmer by email
func (s *MemoryStore) FindFarmerByEmail(ctx context.Context, email string) (*models.Farmer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.farmerEmails[email]
	if !ok {
		return nil, nil
	}
	return cloneFarmer(s.farmers[id]), nil
}

// FindFarmerByID retrieves a farmer by id
func (s *MemoryStore) FindFarmerByID(ctx context.Context, id string) (*models.Farmer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	farmer, ok := s.farmers[id]
	if !ok {
		return nil, nil
	}
	return cloneFarmer(farmer), nil
}

// CreateFarmer creates a new farmer record. The existence check and the
// insert run under one lock, so concurrent duplicate registrations cannot
// both succeed here.
func (s *MemoryStore) CreateFarmer(ctx context.Context, email string, reg *models.FarmerRegistration) (*models.Farmer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.farmerEmails[email]; ok {
		return nil, auth.ErrEmailTaken
	}

	farmer := newFarmerFromRegistration(email, reg)
	s.farmers[farmer.ID] = farmer
	s.farmerEmails[email] = farmer.ID

	return cloneFarmer(farmer), nil
}

// UpdateFarmer applies a partial update to a farmer
func (s *MemoryStore) UpdateFarmer(ctx context.Context, id string, update *models.FarmerUpdate) (*models.Farmer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	farmer, ok := s.farmers[id]
	if !ok {
		return nil, auth.ErrFarmerNotFound
	}

	applyFarmerUpdate(farmer, update)

	return cloneFarmer(farmer), nil
}

// GetAllFarmers returns every farmer record, newest first
func (s *MemoryStore) GetAllFarmers(ctx context.Context) ([]*models.Farmer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	farmers := make([]*models.Farmer, 0, len(s.farmers))
	for _, farmer := range s.farmers {
		farmers = append(farmers, cloneFarmer(farmer))
	}
	sort.Slice(farmers, func(i, j int) bool {
		return farmers[i].CreatedAt.After(farmers[j].CreatedAt)
	})
	return farmers, nil
}

// FindAdminByEmail retrieves an admin by email
func (s *MemoryStore) FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin, ok := s.admins[email]
	if !ok {
		return nil, nil
	}
	clone := *admin
	return &clone, nil
}

// FindAdminByID retrieves an admin by ID
func (s *MemoryStore) FindAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, admin := range s.admins {
		if admin.ID == id {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, nil
}

// CreateDefaultAdmin creates the bootstrap admin account
func (s *MemoryStore) CreateDefaultAdmin(ctx context.Context, email, name string) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[email]; ok {
		return nil, auth.ErrEmailTaken
	}

	admin := &models.Admin{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Role:      models.UserTypeAdmin,
		CreatedAt: time.Now(),
	}
	s.admins[email] = admin

	clone := *admin
	return &clone, nil
}

// StorePassword hashes and stores a password, replacing any existing
// record for the (userID, userType) pair
func (s *MemoryStore) StorePassword(ctx context.Context, userID, userType, plaintext string) error {
	hash, err := password.Hash(plaintext)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.passwords[passwordKey(userID, userType)] = hash
	return nil
}

// VerifyUserPassword checks a password against the stored hash
func (s *MemoryStore) VerifyUserPassword(ctx context.Context, userID, userType, plaintext string) (bool, error) {
	s.mu.RLock()
	hash, ok := s.passwords[passwordKey(userID, userType)]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	return password.Verify(plaintext, hash), nil
}

// StoreOTP stores a new OTP for the email, discarding any prior one
func (s *MemoryStore) StoreOTP(ctx context.Context, email, code, purpose string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.otps[email] = &models.OTP{
		ID:        uuid.New().String(),
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		CreatedAt: now,
		ExpiresAt: now.Add(OTPTTL),
	}
	return nil
}

// VerifyOTP consumes a matching, unexpired OTP. Mismatched or expired
// codes return false and leave the record untouched.
func (s *MemoryStore) VerifyOTP(ctx context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	otp, ok := s.otps[email]
	if !ok {
		return false, nil
	}
	if otp.Code != code || time.Now().After(otp.ExpiresAt) {
		return false, nil
	}

	delete(s.otps, email)
	return true, nil
}
