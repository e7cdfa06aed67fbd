package userRepo

import (
	"context"
	"fmt"
	"time"

	"mehfil/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) update(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}

func (r *MongoUserRepo) UpdateFields(ctx context.Context, id string, set bson.M, unset ...string) error {
	fields := bson.M{"updatedAt": time.Now()}
	for k, v := range set {
		fields[k] = v
	}
	update := bson.M{"$set": fields}
	if len(unset) > 0 {
		drop := bson.M{}
		for _, f := range unset {
			drop[f] = ""
		}
		update["$unset"] = drop
	}
	return r.update(ctx, id, update)
}

func (r *MongoUserRepo) AddSession(ctx context.Context, id string, session models.Session) error {
	update := bson.M{
		"$push": bson.M{"sessions": session},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return r.update(ctx, id, update)
}

func (r *MongoUserRepo) RemoveSession(ctx context.Context, id, tokenHash string) error {
	update := bson.M{"$pull": bson.M{"sessions": bson.M{"tokenHash": tokenHash}}}
	return r.update(ctx, id, update)
}

// Delete removes a user document by its ID.
func (r *MongoUserRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}
