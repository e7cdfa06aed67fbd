package conversationRepo

import (
	"context"
	"testing"

	"mehfil/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoConversationRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get missing returns nil", func(mt *mtest.T) {
		repo := &MongoConversationRepo{coll: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		conv, err := repo.Get(context.Background(), "s1", "u1")
		assert.NoError(t, err)
		assert.Nil(t, conv)
	})

	mt.Run("append returns upserted document", func(mt *mtest.T) {
		repo := &MongoConversationRepo{coll: mt.Coll}
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "sessionId", Value: "s1"},
				{Key: "userId", Value: "u1"},
				{Key: "title", Value: models.DefaultConversationTitle},
				{Key: "messages", Value: bson.A{
					bson.D{{Key: "id", Value: "m1"}, {Key: "role", Value: "user"}},
				}},
			}},
		})

		conv, err := repo.Append(context.Background(), "s1", "u1", models.Message{ID: "m1", Role: models.RoleUser})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultConversationTitle, conv.Title)
		require.Len(t, conv.Messages, 1)
		assert.Equal(t, "m1", conv.Messages[0].ID)
	})

	mt.Run("list decodes conversations", func(mt *mtest.T) {
		repo := &MongoConversationRepo{coll: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "sessionId", Value: "s2"}, {Key: "userId", Value: "u1"}, {Key: "title", Value: "Shadi plan"}},
			bson.D{{Key: "sessionId", Value: "s1"}, {Key: "userId", Value: "u1"}, {Key: "title", Value: "Walima"}},
		))

		convs, err := repo.ListByUser(context.Background(), "u1", 50)
		require.NoError(t, err)
		require.Len(t, convs, 2)
		assert.Equal(t, "s2", convs[0].SessionID)
	})
}
