package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorlink/backend/internal/app/models"
)

// MessageRepository handles database operations for chat messages. Messages
// are append-only; there is no update or delete path.
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message and fills in the generated id and timestamp
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (
			sender_id, sender_kind, receiver_id, receiver_kind, body, read
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderID,
		message.SenderKind,
		message.ReceiverID,
		message.ReceiverKind,
		message.Body,
		message.Read,
	).Scan(&message.ID, &message.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// Conversation retrieves every message exchanged between two participants in
// either direction, oldest first. The pair is unordered: swapping a and b
// yields the same result. Ties on created_at break on id so the order is
// total.
func (r *MessageRepository) Conversation(ctx context.Context, a, b models.ParticipantRef) ([]*models.Message, error) {
	queryBuilder := squirrel.Select(
		"id", "sender_id", "sender_kind", "receiver_id", "receiver_kind",
		"body", "read", "created_at",
	).
		From("messages").
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"sender_id": a.ID, "sender_kind": a.Kind},
				squirrel.Eq{"receiver_id": b.ID, "receiver_kind": b.Kind},
			},
			squirrel.And{
				squirrel.Eq{"sender_id": b.ID, "sender_kind": b.Kind},
				squirrel.Eq{"receiver_id": a.ID, "receiver_kind": a.Kind},
			},
		}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.Message, 0)
	for rows.Next() {
		var m models.Message
		err := rows.Scan(
			&m.ID,
			&m.SenderID,
			&m.SenderKind,
			&m.ReceiverID,
			&m.ReceiverKind,
			&m.Body,
			&m.Read,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}
