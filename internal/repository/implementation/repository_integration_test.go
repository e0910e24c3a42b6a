package implementation_test

import (
	"context"
	"log"
	"os"
	"testing"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/model"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"
	"notekeep-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	require.NoError(t, gormDB.AutoMigrate(&model.User{}, &model.Note{}))
	return gormDB
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(context.Background())
	ctx := context.Background()

	email := "integration-" + uuid.NewString() + "@example.com"

	first := &entity.User{Email: email, PasswordHash: "h1"}
	require.NoError(t, uow.UserRepository().Create(ctx, first))
	assert.NotZero(t, first.Id)

	second := &entity.User{Email: email, PasswordHash: "h2"}
	err := uow.UserRepository().Create(ctx, second)
	assert.ErrorIs(t, err, apperror.ErrEmailRegistered)

	count, err := uow.UserRepository().Count(ctx, specification.ByEmail{Email: email})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestNoteRepositoryOwnerScoping(t *testing.T) {
	db := openTestDB(t)
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(context.Background())
	ctx := context.Background()

	owner := &entity.User{Email: "integration-" + uuid.NewString() + "@example.com", PasswordHash: "h"}
	other := &entity.User{Email: "integration-" + uuid.NewString() + "@example.com", PasswordHash: "h"}
	require.NoError(t, uow.UserRepository().Create(ctx, owner))
	require.NoError(t, uow.UserRepository().Create(ctx, other))

	note := &entity.Note{Title: "t", Content: "c", UserId: owner.Id}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))
	assert.NotZero(t, note.Id)

	found, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: note.Id},
		specification.OwnedBy{UserID: owner.Id},
	)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "t", found.Title)

	foreign, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: note.Id},
		specification.OwnedBy{UserID: other.Id},
	)
	require.NoError(t, err)
	assert.Nil(t, foreign)
}

func TestUnitOfWorkRollback(t *testing.T) {
	db := openTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	email := "integration-" + uuid.NewString() + "@example.com"
	user := &entity.User{Email: email, PasswordHash: "h"}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	require.NoError(t, uow.Rollback())

	check := factory.NewUnitOfWork(ctx)
	found, err := check.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	require.NoError(t, err)
	assert.Nil(t, found)
}
