package userRepo

import (
	"context"
	"fmt"
	"time"

	"mehfil/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M, what string) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user by %s: %w", what, err)
	}
	return &user, nil
}

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id}, "id")
}

// GetByEmail retrieves a user by its email.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, "email")
}

func (r *MongoUserRepo) GetByVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*models.User, error) {
	filter := bson.M{
		"emailVerification.tokenHash": tokenHash,
		"emailVerification.expiresAt": bson.M{"$gt": now},
	}
	return r.findOne(ctx, filter, "verification token")
}

func (r *MongoUserRepo) GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*models.User, error) {
	filter := bson.M{
		"passwordReset.tokenHash": tokenHash,
		"passwordReset.expiresAt": bson.M{"$gt": now},
	}
	return r.findOne(ctx, filter, "reset token")
}
