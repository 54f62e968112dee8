package data

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// insertChunkSize bounds the rows per INSERT so the statement stays under
// SQLite's bound-variable limit.
const insertChunkSize = 100

const insertTopicQuery = `INSERT INTO topics (id, title, summary, category, language, created_at) VALUES (:id, :title, :summary, :category, :language, :created_at)`

const upsertPreferenceQuery = `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// SQLTopicRepository stores the topic catalog using sqlx.
type SQLTopicRepository struct {
	db *sqlx.DB
	sq sq.StatementBuilderType
}

// NewSQLTopicRepository creates a new SQLTopicRepository.
func NewSQLTopicRepository(db *sqlx.DB) *SQLTopicRepository {
	return &SQLTopicRepository{db: db, sq: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

// Count returns the number of topics in the catalog.
func (r *SQLTopicRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM topics`); err != nil {
		return 0, fmt.Errorf("failed to count topics: %w", err)
	}
	return n, nil
}

// ReplaceAll deletes every topic, inserts topics and records seedVersion, all in
// one transaction. Readers see either the old catalog or the new one.
func (r *SQLTopicRepository) ReplaceAll(ctx context.Context, topics []Topic, seedVersion int) error {
	return WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM topics`); err != nil {
			return fmt.Errorf("failed to delete topics: %w", err)
		}
		for start := 0; start < len(topics); start += insertChunkSize {
			end := start + insertChunkSize
			if end > len(topics) {
				end = len(topics)
			}
			if _, err := tx.NamedExecContext(ctx, insertTopicQuery, topics[start:end]); err != nil {
				return fmt.Errorf("failed to insert topics: %w", err)
			}
		}
		if _, err := tx.ExecContext(ctx, upsertPreferenceQuery, PrefSeedVersion, strconv.Itoa(seedVersion), time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to record seed version: %w", err)
		}
		return nil
	})
}

// Sample returns up to limit distinct topics for language in random order.
// An empty category matches every category.
func (r *SQLTopicRepository) Sample(ctx context.Context, language, category string, limit int) ([]*Topic, error) {
	q := r.sq.Select("id", "title", "summary", "category", "language", "created_at").
		From("topics").
		Where(sq.Eq{"language": language})
	if category != "" {
		q = q.Where(sq.Eq{"category": category})
	}
	query, args, err := q.OrderBy("RANDOM()").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sample query: %w", err)
	}

	var topics []*Topic
	if err := r.db.SelectContext(ctx, &topics, query, args...); err != nil {
		return nil, fmt.Errorf("failed to sample topics: %w", err)
	}
	return topics, nil
}

// Categories returns the topic count per category for language, ordered by name.
func (r *SQLTopicRepository) Categories(ctx context.Context, language string) ([]*CategoryCount, error) {
	query, args, err := r.sq.Select("category", "COUNT(*) AS topic_count").
		From("topics").
		Where(sq.Eq{"language": language}).
		GroupBy("category").
		OrderBy("category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build categories query: %w", err)
	}

	var counts []*CategoryCount
	if err := r.db.SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return counts, nil
}
