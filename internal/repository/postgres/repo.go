package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/twitchcollab/collab-service/internal/config"
	"github.com/twitchcollab/collab-service/internal/model"
)

type txKey string

const keyTxConn = txKey("tx_conn")

type queryRunner interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the transaction bound to ctx when one is open, the pooled
// connection otherwise.
func (r *Repository) Chk(ctx context.Context) queryRunner {
	if tx, ok := ctx.Value(keyTxConn).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(keyTxConn).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyTxConn, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ----------------------------- users -----------------------------

func (r *Repository) GetUser(ctx context.Context, userID string) (*model.User, error) {
	query, args, err := sq.Select("id", "login", "display_name", "profile_image_url", "is_live", "category", "title").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetOrCreateUser upserts a placeholder profile for users first seen through
// a request or a message, before any profile sync has run for them.
func (r *Repository) GetOrCreateUser(ctx context.Context, userID string) (*model.User, error) {
	query, args, err := sq.Insert("users").
		Columns("id", "login", "display_name", "profile_image_url").
		Values(userID, fmt.Sprintf("user_%s", userID), fmt.Sprintf("User %s", userID), model.DefaultProfileImageURL).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %v", err)
	}

	return r.GetUser(ctx, userID)
}

func (r *Repository) GetUserLiveStatus(ctx context.Context, userID string) (bool, error) {
	query, args, err := sq.Select("is_live").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var isLive bool
	err = r.Chk(ctx).GetContext(ctx, &isLive, query, args...)
	if err != nil {
		return false, err
	}

	return isLive, nil
}

// SetUserLiveStatus is a last-write-wins single-row overwrite. The event feed
// carries no sequence numbers, so no ordering check is attempted here.
func (r *Repository) SetUserLiveStatus(ctx context.Context, userID string, isLive bool) error {
	query, args, err := sq.Update("users").
		Set("is_live", isLive).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) SetUserStreamInfo(ctx context.Context, userID string, category, title *string) error {
	query, args, err := sq.Update("users").
		Set("category", category).
		Set("title", title).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUserDisplayName(ctx context.Context, userID, displayName string) error {
	query, args, err := sq.Update("users").
		Set("display_name", displayName).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUserAvatar(ctx context.Context, userID, avatarLink string) error {
	query, args, err := sq.Update("users").
		Set("profile_image_url", avatarLink).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

// ----------------------------- messages -----------------------------

type messageRow struct {
	ID           uuid.UUID `db:"id"`
	RequestID    string    `db:"request_id"`
	Content      string    `db:"content"`
	CreatedAt    time.Time `db:"created_at"`
	Read         bool      `db:"read"`
	FromUserID   string    `db:"from_user_id"`
	FromUserName string    `db:"from_user_name"`
	FromUserImg  string    `db:"from_user_image"`
	ToUserID     string    `db:"to_user_id"`
	ToUserName   string    `db:"to_user_name"`
	ToUserImg    string    `db:"to_user_image"`
}

func (row *messageRow) toMessage() model.Message {
	return model.Message{
		ID:        row.ID,
		RequestID: row.RequestID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		Read:      row.Read,
		FromUser: model.UserRef{
			ID:              row.FromUserID,
			DisplayName:     row.FromUserName,
			ProfileImageURL: row.FromUserImg,
		},
		ToUser: model.UserRef{
			ID:              row.ToUserID,
			DisplayName:     row.ToUserName,
			ProfileImageURL: row.ToUserImg,
		},
	}
}

func messageSelectBuilder() sq.SelectBuilder {
	return sq.Select(
		"m.id",
		"m.request_id",
		"m.content",
		"m.created_at",
		"m.read",
		"m.from_user_id",
		"fu.display_name as from_user_name",
		"fu.profile_image_url as from_user_image",
		"m.to_user_id",
		"tu.display_name as to_user_name",
		"tu.profile_image_url as to_user_image",
	).
		From("messages m").
		Join("users fu ON m.from_user_id = fu.id").
		Join("users tu ON m.to_user_id = tu.id")
}

func (r *Repository) SaveMessage(ctx context.Context, messageID uuid.UUID, requestID, fromUserID, toUserID, content string) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "request_id", "from_user_id", "to_user_id", "content").
		Values(messageID, requestID, fromUserID, toUserID, content).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

// GetMessage returns the message hydrated with both parties' display fields.
func (r *Repository) GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	query, args, err := messageSelectBuilder().
		Where(sq.Eq{"m.id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row messageRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if err != nil {
		return nil, err
	}

	message := row.toMessage()
	return &message, nil
}

func (r *Repository) GetUserMessages(ctx context.Context, userID string) (*model.MessageList, error) {
	query, args, err := messageSelectBuilder().
		Where(sq.Or{
			sq.Eq{"m.from_user_id": userID},
			sq.Eq{"m.to_user_id": userID},
		}).
		OrderBy("m.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []messageRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	messages := make(model.MessageList, len(rows))
	for i := range rows {
		messages[i] = rows[i].toMessage()
	}

	return &messages, nil
}

// MarkMessageRead flips the read flag. Read state only applies from the
// recipient's perspective, hence the to_user_id guard.
func (r *Repository) MarkMessageRead(ctx context.Context, messageID uuid.UUID, recipientID string) error {
	query, args, err := sq.Update("messages").
		Set("read", true).
		Where(sq.And{
			sq.Eq{"id": messageID},
			sq.Eq{"to_user_id": recipientID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ----------------------------- requests -----------------------------

type requestRow struct {
	ID          uuid.UUID      `db:"id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Language    string         `db:"language"`
	CreatedAt   time.Time      `db:"created_at"`
	Categories  pq.StringArray `db:"categories"`

	OwnerLogin    string  `db:"owner_login"`
	OwnerName     string  `db:"owner_name"`
	OwnerImage    string  `db:"owner_image"`
	OwnerIsLive   bool    `db:"owner_is_live"`
	OwnerCategory *string `db:"owner_category"`
	OwnerTitle    *string `db:"owner_title"`
}

func (r *Repository) CreateRequest(ctx context.Context, request *model.CollabRequest) error {
	query, args, err := sq.Insert("requests").
		Columns("id", "user_id", "title", "description", "language").
		Values(request.ID, request.UserID, request.Title, request.Description, request.Language).
		Suffix("RETURNING created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).GetContext(ctx, &request.CreatedAt, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	return nil
}

func (r *Repository) AddRequestCategories(ctx context.Context, requestID uuid.UUID, categories []string) error {
	if len(categories) == 0 {
		return nil
	}

	query := sq.Insert("request_categories").
		Columns("request_id", "category").
		PlaceholderFormat(sq.Dollar)

	for _, category := range categories {
		query = query.Values(requestID, category)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sqlQuery, args...)

	return err
}

func (r *Repository) GetRequests(ctx context.Context, filter model.RequestFilter) (*model.CollabRequestList, error) {
	queryBuilder := sq.Select(
		"r.id",
		"r.user_id",
		"r.title",
		"r.description",
		"r.language",
		"r.created_at",
		"COALESCE(ARRAY_AGG(rc.category) FILTER (WHERE rc.category IS NOT NULL), ARRAY[]::text[]) as categories",
		"u.login as owner_login",
		"u.display_name as owner_name",
		"u.profile_image_url as owner_image",
		"u.is_live as owner_is_live",
		"u.category as owner_category",
		"u.title as owner_title",
	).
		From("requests r").
		Join("users u ON r.user_id = u.id").
		LeftJoin("request_categories rc ON r.id = rc.request_id").
		GroupBy("r.id", "u.id").
		OrderBy("r.created_at DESC")

	if filter.Category != "" {
		queryBuilder = queryBuilder.Where(
			"r.id IN (SELECT request_id FROM request_categories WHERE category = ?)", filter.Category)
	}
	if filter.Language != "" {
		queryBuilder = queryBuilder.Where(sq.Eq{"r.language": filter.Language})
	}
	if filter.LiveOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"u.is_live": true})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []requestRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get requests: %v", err)
	}

	requests := make(model.CollabRequestList, len(rows))
	for i, row := range rows {
		requests[i] = model.CollabRequest{
			ID:          row.ID,
			UserID:      row.UserID,
			Title:       row.Title,
			Description: row.Description,
			Language:    row.Language,
			CreatedAt:   row.CreatedAt,
			Categories:  row.Categories,
			User: &model.User{
				ID:              row.UserID,
				Login:           row.OwnerLogin,
				DisplayName:     row.OwnerName,
				ProfileImageURL: row.OwnerImage,
				IsLive:          row.OwnerIsLive,
				Category:        row.OwnerCategory,
				Title:           row.OwnerTitle,
			},
		}
	}

	return &requests, nil
}

func (r *Repository) GetRequestOwner(ctx context.Context, requestID uuid.UUID) (string, error) {
	query, args, err := sq.Select("user_id").
		From("requests").
		Where(sq.Eq{"id": requestID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var ownerID string
	err = r.Chk(ctx).GetContext(ctx, &ownerID, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("request not found")
		}
		return "", err
	}

	return ownerID, nil
}

func (r *Repository) DeleteRequest(ctx context.Context, requestID uuid.UUID) error {
	query, args, err := sq.Delete("requests").
		Where(sq.Eq{"id": requestID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}
