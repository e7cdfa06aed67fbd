package conversationRepo

import (
	"context"
	"fmt"
	"time"

	"mehfil/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConversationRepo implements ConversationRepository using MongoDB.
type MongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo creates the repository and its indexes.
func NewMongoConversationRepo(db *mongo.Database) ConversationRepository {
	repo := &MongoConversationRepo{coll: db.Collection("conversations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create conversation indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoConversationRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sessionId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "updatedAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func key(sessionID, userID string) bson.M {
	return bson.M{"sessionId": sessionID, "userId": userID}
}

func (r *MongoConversationRepo) Get(ctx context.Context, sessionID, userID string) (*models.Conversation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var conv models.Conversation
	if err := r.coll.FindOne(ctx, key(sessionID, userID)).Decode(&conv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch conversation %s: %w", sessionID, err)
	}
	return &conv, nil
}

func (r *MongoConversationRepo) Append(ctx context.Context, sessionID, userID string, msg models.Message) (*models.Conversation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{
			"title":     models.DefaultConversationTitle,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var conv models.Conversation
	if err := r.coll.FindOneAndUpdate(ctx, key(sessionID, userID), update, opts).Decode(&conv); err != nil {
		return nil, fmt.Errorf("failed to append message to conversation %s: %w", sessionID, err)
	}
	return &conv, nil
}

func (r *MongoConversationRepo) SetTitleIfDefault(ctx context.Context, sessionID, userID, title string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := key(sessionID, userID)
	filter["title"] = models.DefaultConversationTitle
	if _, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"title": title}}); err != nil {
		return fmt.Errorf("failed to set conversation title: %w", err)
	}
	return nil
}

func (r *MongoConversationRepo) Replace(ctx context.Context, sessionID, userID string, msgs []models.Message, title string, metadata map[string]any) (*models.Conversation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if msgs == nil {
		msgs = []models.Message{}
	}
	now := time.Now()
	set := bson.M{
		"messages":  msgs,
		"title":     title,
		"updatedAt": now,
	}
	if metadata != nil {
		set["metadata"] = metadata
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var conv models.Conversation
	if err := r.coll.FindOneAndUpdate(ctx, key(sessionID, userID), update, opts).Decode(&conv); err != nil {
		return nil, fmt.Errorf("failed to save conversation %s: %w", sessionID, err)
	}
	return &conv, nil
}

func (r *MongoConversationRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Conversation, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	convs := []models.Conversation{}
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, fmt.Errorf("failed to decode conversations: %w", err)
	}
	return convs, nil
}
