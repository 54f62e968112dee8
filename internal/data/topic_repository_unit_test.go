//go:build unit

package data

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	return sqlx.NewDb(db, "sqlite3"), mock
}

func TestReplaceAll_InsertFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM topics`)).
		WillReturnResult(sqlmock.NewResult(0, 4500))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO topics`)).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	repo := NewSQLTopicRepository(db)
	topics := []Topic{{ID: "1", Title: "t", Summary: "s", Category: "Bilim", Language: "tr", CreatedAt: time.Now()}}
	err := repo.ReplaceAll(context.Background(), topics, 3)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestReplaceAll_ChunksInsertsAndRecordsVersion(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	topics := make([]Topic, 2*insertChunkSize+1)
	for i := range topics {
		topics[i] = Topic{ID: string(rune('a' + i%26)), Language: "en", CreatedAt: time.Now()}
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM topics`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	for i := 0; i < 3; i++ {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO topics`)).
			WillReturnResult(sqlmock.NewResult(0, insertChunkSize))
	}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO preferences`)).
		WithArgs(PrefSeedVersion, "3", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewSQLTopicRepository(db)
	if err := repo.ReplaceAll(context.Background(), topics, 3); err != nil {
		t.Fatalf("ReplaceAll error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestSample_BuildsFilteredQuery(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, summary, category, language, created_at FROM topics WHERE language = ? AND category = ? ORDER BY RANDOM() LIMIT 5`,
	)).
		WithArgs("tr", "Spor").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "summary", "category", "language", "created_at"}).
			AddRow("x", "Koşu", "Özet", "Spor", "tr", time.Now()))

	repo := NewSQLTopicRepository(db)
	got, err := repo.Sample(context.Background(), "tr", "Spor", 5)
	if err != nil {
		t.Fatalf("Sample error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Koşu" {
		t.Fatalf("unexpected result: %#v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
