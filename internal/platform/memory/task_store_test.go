package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSeededStore returns a store holding one task per text, created in order.
func newSeededStore(t *testing.T, texts ...string) *memory.TaskStore {
	t.Helper()

	s := memory.NewTaskStore(0, nil)
	for _, text := range texts {
		_, err := s.Create(context.Background(), text)
		require.NoError(t, err, "Setup: failed to create task %q", text)
	}
	return s
}

func listTasks(t *testing.T, s *memory.TaskStore) []domain.Task {
	t.Helper()

	tasks, err := s.List(context.Background())
	require.NoError(t, err)
	return tasks
}

func TestTaskStore_Scenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := memory.NewTaskStore(4, nil)

	milk, err := s.Create(ctx, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, domain.Task{ID: 1, Text: "buy milk"}, *milk)

	dog, err := s.Create(ctx, "walk dog")
	require.NoError(t, err)
	assert.Equal(t, int64(2), dog.ID)

	assert.Equal(t, []domain.Task{{ID: 1, Text: "buy milk"}, {ID: 2, Text: "walk dog"}}, listTasks(t, s))

	updated, err := s.Update(ctx, 1, "buy almond milk")
	require.NoError(t, err)
	assert.Equal(t, domain.Task{ID: 1, Text: "buy almond milk"}, *updated)

	require.NoError(t, s.Delete(ctx, 2))
	assert.Equal(t, []domain.Task{{ID: 1, Text: "buy almond milk"}}, listTasks(t, s))

	_, err = s.GetByID(ctx, 2)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskStore_List(t *testing.T) {
	t.Parallel()

	t.Run("empty store returns empty non-nil slice", func(t *testing.T) {
		tasks := listTasks(t, memory.NewTaskStore(0, nil))
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("returns a snapshot", func(t *testing.T) {
		s := newSeededStore(t, "a", "b")
		snapshot := listTasks(t, s)

		snapshot[0].Text = "mutated"
		_, err := s.Create(context.Background(), "c")
		require.NoError(t, err)

		assert.Len(t, snapshot, 2)
		assert.Equal(t, "a", listTasks(t, s)[0].Text)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := memory.NewTaskStore(0, nil).List(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestTaskStore_Create(t *testing.T) {
	t.Parallel()

	t.Run("ids are strictly increasing from 1", func(t *testing.T) {
		s := memory.NewTaskStore(0, nil)
		for want := int64(1); want <= 5; want++ {
			task, err := s.Create(context.Background(), "task")
			require.NoError(t, err)
			assert.Equal(t, want, task.ID)
		}
	})

	t.Run("ids are not reused after delete", func(t *testing.T) {
		s := newSeededStore(t, "a", "b", "c")
		require.NoError(t, s.Delete(context.Background(), 3))

		task, err := s.Create(context.Background(), "d")
		require.NoError(t, err)
		assert.Equal(t, int64(4), task.ID)
	})

	blankCases := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "spaces", text: "   "},
		{name: "mixed whitespace", text: "\t\n "},
		{name: "information separators", text: "\x1c\x1f"},
	}
	for _, tc := range blankCases {
		t.Run("blank text "+tc.name, func(t *testing.T) {
			s := newSeededStore(t, "a")

			task, err := s.Create(context.Background(), tc.text)
			assert.Nil(t, task)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Len(t, listTasks(t, s), 1, "store must be unchanged")

			next, err := s.Create(context.Background(), "b")
			require.NoError(t, err)
			assert.Equal(t, int64(2), next.ID, "rejected create must not consume an id")
		})
	}

	t.Run("returned task is a copy", func(t *testing.T) {
		s := memory.NewTaskStore(0, nil)
		task, err := s.Create(context.Background(), "original")
		require.NoError(t, err)

		task.Text = "mutated"

		got, err := s.GetByID(context.Background(), task.ID)
		require.NoError(t, err)
		assert.Equal(t, "original", got.Text)
	})
}

func TestTaskStore_GetByID(t *testing.T) {
	t.Parallel()
	s := newSeededStore(t, "a", "b")

	testCases := []struct {
		name     string
		id       int64
		wantText string
		wantErr  error
	}{
		{name: "first", id: 1, wantText: "a"},
		{name: "second", id: 2, wantText: "b"},
		{name: "unknown", id: 3, wantErr: store.ErrTaskNotFound},
		{name: "zero", id: 0, wantErr: store.ErrTaskNotFound},
		{name: "negative", id: -1, wantErr: store.ErrTaskNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			task, err := s.GetByID(context.Background(), tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.True(t, store.IsNotFoundError(err))
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, task.ID)
			assert.Equal(t, tc.wantText, task.Text)
		})
	}
}

func TestTaskStore_Update(t *testing.T) {
	t.Parallel()

	t.Run("changes only the target task", func(t *testing.T) {
		s := newSeededStore(t, "a", "b", "c")

		task, err := s.Update(context.Background(), 2, "B")
		require.NoError(t, err)
		assert.Equal(t, domain.Task{ID: 2, Text: "B"}, *task)

		assert.Equal(t, []domain.Task{
			{ID: 1, Text: "a"},
			{ID: 2, Text: "B"},
			{ID: 3, Text: "c"},
		}, listTasks(t, s))
	})

	t.Run("unknown id leaves store unchanged", func(t *testing.T) {
		s := newSeededStore(t, "a")
		before := listTasks(t, s)

		task, err := s.Update(context.Background(), 9, "x")
		assert.Nil(t, task)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Equal(t, before, listTasks(t, s))
	})

	t.Run("blank text leaves store unchanged", func(t *testing.T) {
		s := newSeededStore(t, "a")

		task, err := s.Update(context.Background(), 1, " ")
		assert.Nil(t, task)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, []domain.Task{{ID: 1, Text: "a"}}, listTasks(t, s))
	})
}

func TestTaskStore_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes exactly one task and keeps order", func(t *testing.T) {
		s := newSeededStore(t, "a", "b", "c", "d")

		require.NoError(t, s.Delete(context.Background(), 2))

		assert.Equal(t, []domain.Task{
			{ID: 1, Text: "a"},
			{ID: 3, Text: "c"},
			{ID: 4, Text: "d"},
		}, listTasks(t, s))

		_, err := s.GetByID(context.Background(), 2)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := newSeededStore(t, "a")

		err := s.Delete(context.Background(), 5)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		count, err := s.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("deleting twice", func(t *testing.T) {
		s := newSeededStore(t, "a")

		require.NoError(t, s.Delete(context.Background(), 1))
		assert.ErrorIs(t, s.Delete(context.Background(), 1), store.ErrTaskNotFound)
	})
}

func TestTaskStore_NotFoundIsStoreError(t *testing.T) {
	t.Parallel()

	s := newSeededStore(t, "a")
	ctx := context.Background()

	_, getErr := s.GetByID(ctx, 9)
	_, updateErr := s.Update(ctx, 9, "x")
	deleteErr := s.Delete(ctx, 9)

	for op, err := range map[string]error{"get": getErr, "update": updateErr, "delete": deleteErr} {
		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr, op)
		assert.Equal(t, "task", storeErr.Entity)
		assert.Equal(t, op, storeErr.Operation)
		assert.Contains(t, storeErr.Message, "9")
		assert.True(t, store.IsNotFoundError(err), op)
	}
}

func TestTaskStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	const workers = 50
	s := memory.NewTaskStore(0, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan int64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task, err := s.Create(ctx, "concurrent")
			if err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			ids <- task.ID
			// Readers interleave with writers.
			if _, err := s.List(ctx); err != nil {
				t.Errorf("list failed: %v", err)
			}
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	for want := int64(1); want <= workers; want++ {
		assert.True(t, seen[want], "id %d never assigned", want)
	}

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers, count)
}
