package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carbonkhet/carbonkhet/internal/pkg/database"
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/internal/pkg/password"
	"github.com/carbonkhet/carbonkhet/services/auth"
)

// MongoStore is the durable credential store backed by MongoDB. Indexes
// (unique emails, unique password pairs, OTP and session TTLs) are created
// by the database client at connect time.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore creates a credential store on an established Mongo client
func NewMongoStore(client *database.MongoClient) *MongoStore {
	return &MongoStore{db: client.Database()}
}

func (s *MongoStore) farmers() *mongo.Collection {
	return s.db.Collection(database.CollFarmers)
}

func (s *MongoStore) admins() *mongo.Collection {
	return s.db.Collection(database.CollAdmins)
}

func (s *MongoStore) passwords() *mongo.Collection {
	return s.db.Collection(database.CollPasswords)
}

func (s *MongoStore) otps() *mongo.Collection {
	return s.db.Collection(database.CollOTPs)
}

// FindFarmerByEmail retrieves a farmer by email
func (s *MongoStore) FindFarmerByEmail(ctx context.Context, email string) (*models.Farmer, error) {
	var farmer models.Farmer
	err := s.farmers().FindOne(ctx, bson.M{"email": email}).Decode(&farmer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find farmer by email: %w", err)
	}
	return &farmer, nil
}

// FindFarmerByID retrieves a farmer by id
func (s *MongoStore) FindFarmerByID(ctx context.Context, id string) (*models.Farmer, error) {
	var farmer models.Farmer
	err := s.farmers().FindOne(ctx, bson.M{"_id": id}).Decode(&farmer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find farmer by id: %w", err)
	}
	return &farmer, nil
}

// CreateFarmer inserts a new farmer. The unique email index is the safety
// net against concurrent duplicate registrations; a duplicate-key error is
// translated into the standard ErrEmailTaken.
func (s *MongoStore) CreateFarmer(ctx context.Context, email string, reg *models.FarmerRegistration) (*models.Farmer, error) {
	farmer := newFarmerFromRegistration(email, reg)

	_, err := s.farmers().InsertOne(ctx, farmer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, auth.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert farmer: %w", err)
	}

	return farmer, nil
}

// UpdateFarmer applies a partial update, recomputing the income estimate
// when land fields or practices change
func (s *MongoStore) UpdateFarmer(ctx context.Context, id string, update *models.FarmerUpdate) (*models.Farmer, error) {
	var farmer models.Farmer
	err := s.farmers().FindOne(ctx, bson.M{"_id": id}).Decode(&farmer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrFarmerNotFound
		}
		return nil, fmt.Errorf("failed to find farmer for update: %w", err)
	}

	applyFarmerUpdate(&farmer, update)

	if _, err := s.farmers().ReplaceOne(ctx, bson.M{"_id": id}, &farmer); err != nil {
		return nil, fmt.Errorf("failed to update farmer: %w", err)
	}

	return &farmer, nil
}

// GetAllFarmers returns every farmer record, newest first
func (s *MongoStore) GetAllFarmers(ctx context.Context) ([]*models.Farmer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.farmers().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list farmers: %w", err)
	}
	defer cursor.Close(ctx)

	farmers := []*models.Farmer{}
	if err := cursor.All(ctx, &farmers); err != nil {
		return nil, fmt.Errorf("failed to decode farmers: %w", err)
	}
	return farmers, nil
}

// FindAdminByEmail retrieves an admin by email
func (s *MongoStore) FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.admins().FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return &admin, nil
}

// FindAdminByID retrieves an admin by ID
func (s *MongoStore) FindAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	err := s.admins().FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by id: %w", err)
	}
	return &admin, nil
}

// CreateDefaultAdmin inserts the bootstrap admin account
func (s *MongoStore) CreateDefaultAdmin(ctx context.Context, email, name string) (*models.Admin, error) {
	admin := &models.Admin{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Role:      models.UserTypeAdmin,
		CreatedAt: time.Now(),
	}

	_, err := s.admins().InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, auth.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert admin: %w", err)
	}

	return admin, nil
}

// StorePassword hashes and upserts the password record for the
// (userID, userType) pair
func (s *MongoStore) StorePassword(ctx context.Context, userID, userType, plaintext string) error {
	hash, err := password.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	record := models.PasswordRecord{
		UserID:       userID,
		UserType:     userType,
		PasswordHash: hash,
		UpdatedAt:    time.Now(),
	}

	filter := bson.M{"user_id": userID, "user_type": userType}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.passwords().ReplaceOne(ctx, filter, &record, opts); err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}

	return nil
}

// VerifyUserPassword checks a password against the stored hash
func (s *MongoStore) VerifyUserPassword(ctx context.Context, userID, userType, plaintext string) (bool, error) {
	var record models.PasswordRecord
	filter := bson.M{"user_id": userID, "user_type": userType}
	err := s.passwords().FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load password record: %w", err)
	}

	return password.Verify(plaintext, record.PasswordHash), nil
}

// StoreOTP deletes any prior OTPs for the email, then stores the new one
func (s *MongoStore) StoreOTP(ctx context.Context, email, code, purpose string) error {
	if _, err := s.otps().DeleteMany(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("failed to invalidate prior OTPs: %w", err)
	}

	now := time.Now()
	otp := models.OTP{
		ID:        uuid.New().String(),
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		CreatedAt: now,
		ExpiresAt: now.Add(OTPTTL),
	}

	if _, err := s.otps().InsertOne(ctx, &otp); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	return nil
}

// VerifyOTP consumes a matching, unexpired OTP. Expiry is checked here as
// well as by the TTL index, since the TTL sweep is not immediate.
func (s *MongoStore) VerifyOTP(ctx context.Context, email, code string) (bool, error) {
	var otp models.OTP
	err := s.otps().FindOne(ctx, bson.M{"email": email}).Decode(&otp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load OTP: %w", err)
	}

	if otp.Code != code || time.Now().After(otp.ExpiresAt) {
		return false, nil
	}

	if _, err := s.otps().DeleteOne(ctx, bson.M{"_id": otp.ID}); err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}

	return true, nil
}
