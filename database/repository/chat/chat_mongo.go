package chatRepo

import (
	"context"
	"fmt"
	"time"

	"drdhobi/database"
	"drdhobi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	conversations *mongo.Collection
	messages      *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo() ChatRepository {
	repo := &MongoChatRepo{
		conversations: database.Collection("conversations"),
		messages:      database.Collection("chatMessages"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoChatRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	convIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "last_message_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "last_message_at", Value: -1}}},
	}
	if _, err := r.conversations.Indexes().CreateMany(ctx, convIndexes); err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}

	msgIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	if _, err := r.messages.Indexes().CreateMany(ctx, msgIndexes); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}
	return nil
}

// CreateConversation inserts a new conversation document.
func (r *MongoChatRepo) CreateConversation(conv *models.Conversation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	conv.CreatedAt = now
	conv.UpdatedAt = now
	// A fresh thread must sort with the newest activity, so the stored
	// document carries last_message_at from the start.
	conv.LastMessageAt = now

	_, err := r.conversations.InsertOne(ctx, conv)
	if err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

// GetConversation retrieves a conversation by its unique ID.
func (r *MongoChatRepo) GetConversation(id string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conv models.Conversation
	if err := r.conversations.FindOne(ctx, bson.M{"id": id}).Decode(&conv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch conversation with id %s: %w", id, err)
	}
	return &conv, nil
}

// ListAll retrieves all conversations, optionally filtered by status.
func (r *MongoChatRepo) ListAll(status string) ([]models.Conversation, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.findConversations(filter)
}

// ListByUser retrieves a customer's own conversations.
func (r *MongoChatRepo) ListByUser(userID string) ([]models.Conversation, error) {
	return r.findConversations(bson.M{"user_id": userID})
}

func (r *MongoChatRepo) findConversations(filter bson.M) ([]models.Conversation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "last_message_at", Value: -1}})
	cursor, err := r.conversations.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var convs []models.Conversation
	for cursor.Next(ctx) {
		var c models.Conversation
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode conversation: %w", err)
		}
		convs = append(convs, c)
	}
	return convs, nil
}

// SetStatus sets the conversation status and records the acting admin.
func (r *MongoChatRepo) SetStatus(id, status, adminID, adminName string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":              status,
		"assigned_admin_id":   adminID,
		"assigned_admin_name": adminName,
		"updated_at":          time.Now(),
	}}
	result, err := r.conversations.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update conversation with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("conversation with id %s not found", id)
	}
	return nil
}

// AddMessage appends a message document.
func (r *MongoChatRepo) AddMessage(msg *models.ChatMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	_, err := r.messages.InsertOne(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to add message: %w", err)
	}
	return nil
}

// GetMessages retrieves a conversation's messages oldest first.
func (r *MongoChatRepo) GetMessages(conversationID string) ([]models.ChatMessage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.messages.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.ChatMessage
	for cursor.Next(ctx) {
		var m models.ChatMessage
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// ApplyMessage updates the preview fields and increments the recipient
// side's unread counter in a single atomic update. The $inc avoids lost
// updates from concurrent sends.
func (r *MongoChatRepo) ApplyMessage(conversationID, preview, senderRole string, reopen bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	unreadField := "unread_by_admin"
	if senderRole == models.RoleAdmin {
		unreadField = "unread_by_user"
	}

	now := time.Now()
	set := bson.M{
		"last_message":    preview,
		"last_message_at": now,
		"last_message_by": senderRole,
		"updated_at":      now,
	}
	if reopen {
		set["status"] = models.ConversationOpen
	}

	update := bson.M{
		"$set": set,
		"$inc": bson.M{unreadField: 1},
	}
	result, err := r.conversations.UpdateOne(ctx, bson.M{"id": conversationID}, update)
	if err != nil {
		return fmt.Errorf("failed to apply message to conversation %s: %w", conversationID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("conversation with id %s not found", conversationID)
	}
	return nil
}

// MarkRead flips every unread message addressed to viewerRole to read and
// zeroes that side's unread counter. Messages sent by the viewer are never
// touched.
func (r *MongoChatRepo) MarkRead(conversationID, viewerRole string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"conversation_id": conversationID,
		"read":            false,
		"sender_role":     bson.M{"$ne": viewerRole},
	}
	if _, err := r.messages.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}}); err != nil {
		return fmt.Errorf("failed to mark messages read in conversation %s: %w", conversationID, err)
	}

	unreadField := "unread_by_user"
	if viewerRole == models.RoleAdmin {
		unreadField = "unread_by_admin"
	}
	update := bson.M{"$set": bson.M{unreadField: 0}}
	if _, err := r.conversations.UpdateOne(ctx, bson.M{"id": conversationID}, update); err != nil {
		return fmt.Errorf("failed to reset unread counter on conversation %s: %w", conversationID, err)
	}
	return nil
}
