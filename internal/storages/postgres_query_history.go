package storages

import (
	"context"

	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/postgresql"
	"github.com/ydataai/search-service/internal/configurations"
	"github.com/ydataai/search-service/internal/models"
)

const queryHistoryTable = "search_queries"

// PostgresQueryHistory is a struct to persist executed queries in PostgreSQL.
type PostgresQueryHistory struct {
	session db.Session
}

// NewPostgresQueryHistory opens a database session and creates a persistent query history.
func NewPostgresQueryHistory(configuration configurations.QueryHistoryConfiguration) (*PostgresQueryHistory, error) {
	connURL := postgresql.ConnectionURL{
		Host:     configuration.DBHost,
		User:     configuration.DBUser,
		Password: configuration.DBPassword,
		Database: configuration.DBName,
		Options:  map[string]string{"sslmode": configuration.DBSSLMode},
	}

	session, err := postgresql.Open(connURL)
	if err != nil {
		return nil, err
	}

	return &PostgresQueryHistory{session: session}, nil
}

// Record stores an executed query.
func (ph *PostgresQueryHistory) Record(ctx context.Context, record models.QueryRecord) error {
	_, err := ph.session.SQL().
		InsertInto(queryHistoryTable).
		Columns("id", "query", "page", "total_count", "created_at").
		Values(record.ID, record.Query, record.Page, record.TotalCount, record.CreatedAt).
		ExecContext(ctx)

	return err
}

// Recent gets the most recent queries, newest first.
func (ph *PostgresQueryHistory) Recent(ctx context.Context, limit int) ([]models.QueryRecord, error) {
	// Limit(0) would drop the LIMIT clause entirely and return every row.
	if limit <= 0 {
		return []models.QueryRecord{}, nil
	}
	records := make([]models.QueryRecord, 0, limit)

	err := ph.session.SQL().
		SelectFrom(queryHistoryTable).
		OrderBy("created_at DESC").
		Limit(limit).
		IteratorContext(ctx).
		All(&records)
	if err != nil {
		return nil, err
	}

	return records, nil
}
