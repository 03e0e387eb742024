//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"momgyeot-ai/internal/storage"
)

func startPostgres(ctx context.Context, t *testing.T) string {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "momgyeot",
			"POSTGRES_PASSWORD": "momgyeot",
			"POSTGRES_DB":       "momgyeot",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://momgyeot:momgyeot@%s:%s/momgyeot?sslmode=disable", host, port.Port())
}

func TestStore_Integration(t *testing.T) {
	ctx := context.Background()
	dsn := startPostgres(ctx, t)

	require.NoError(t, Migrate(dsn))
	require.NoError(t, Migrate(dsn), "second migration run should be a no-op")

	store, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer func() {
		_ = store.Close()
	}()

	require.NoError(t, store.UpsertKnowledge(ctx, []storage.KnowledgeRecord{
		{ID: "A-001", Title: "젖몸살", Content: "울혈", Keywords: []string{"울혈"}, Category: "A", Urgency: storage.UrgencyWithinDay},
		{ID: "PREG-001", Title: "입덧", Content: "입덧 완화", Category: "PREG"},
	}))
	require.NoError(t, store.UpsertKnowledge(ctx, []storage.KnowledgeRecord{
		{ID: "A-001", Title: "젖몸살 관리", Content: "울혈", Keywords: []string{"울혈", "통증"}, Category: "A"},
	}))

	all, err := store.ListKnowledge(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A-001", all[0].ID)
	assert.Equal(t, "젖몸살 관리", all[0].Title)
	assert.Equal(t, []string{"울혈", "통증"}, all[0].Keywords)

	preg, err := store.ListKnowledge(ctx, "PREG")
	require.NoError(t, err)
	require.Len(t, preg, 1)

	n, err := store.CountKnowledge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	base := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Microsecond)
	first := &storage.Conversation{UserID: "u1", Question: "q1", Answer: "a1", CreatedAt: base}
	second := &storage.Conversation{UserID: "u1", MateType: "agi", Question: "q2", Answer: "a2", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, store.AppendConversation(ctx, first, false))
	require.NoError(t, store.AppendConversation(ctx, second, true))
	assert.NotEmpty(t, second.ID)

	convs, err := store.ListConversations(ctx, storage.ConversationQuery{UserID: "u1", Limit: 10})
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, "q2", convs[0].Question)
	assert.Equal(t, storage.DefaultMateType, convs[1].MateType)

	count, err := store.CountConversations(ctx, base.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.NoError(t, store.Ping(ctx))
}
