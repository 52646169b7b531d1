package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/services"
	"taskboard/pkg/testutil"
)

func newTaskService(t *testing.T) (services.TaskService, *testutil.MemoryTaskRepository, *testutil.MemoryUserRepository) {
	t.Helper()
	users := testutil.NewMemoryUserRepository()
	tasks := testutil.NewMemoryTaskRepository(users)
	return NewTaskService(tasks, users), tasks, users
}

func TestCreateTaskSetsOwner(t *testing.T) {
	svc, repo, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, 7, &dto.CreateTaskRequest{Title: "Buy milk", Description: "2%"})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, uint(7), stored.UserID)
	assert.Equal(t, "Buy milk", stored.Title)
	assert.Equal(t, "2%", stored.Description)
}

func TestGetTaskNotFound(t *testing.T) {
	svc, _, _ := newTaskService(t)

	_, err := svc.GetTask(context.Background(), 404)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestGetTaskWithOwner(t *testing.T) {
	svc, _, users := newTaskService(t)
	ctx := context.Background()

	owner := &models.User{Username: "ann", Email: "ann@example.com"}
	require.NoError(t, users.Create(ctx, owner))

	task, err := svc.CreateTask(ctx, owner.ID, &dto.CreateTaskRequest{Title: "t"})
	require.NoError(t, err)

	got, gotOwner, err := svc.GetTaskWithOwner(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	require.NotNil(t, gotOwner)
	assert.Equal(t, "ann", gotOwner.Username)
}

func TestGetTaskWithMissingOwner(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, 99, &dto.CreateTaskRequest{Title: "orphan"})
	require.NoError(t, err)

	got, owner, err := svc.GetTaskWithOwner(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "orphan", got.Title)
	assert.Nil(t, owner)
}

func TestAllTasksIsUnfiltered(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, 1, &dto.CreateTaskRequest{Title: "mine"})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, 2, &dto.CreateTaskRequest{Title: "theirs"})
	require.NoError(t, err)

	tasks, err := svc.AllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "mine", tasks[0].Title)
	assert.Equal(t, "theirs", tasks[1].Title)
}

func TestListTasksPaginates(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateTask(ctx, 1, &dto.CreateTaskRequest{Title: "t"})
		require.NoError(t, err)
	}

	tasks, total, err := svc.ListTasks(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, tasks, 2)
	assert.Equal(t, uint(3), tasks[0].ID)
}

func TestDeleteTask(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, 1, &dto.CreateTaskRequest{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, task.ID))

	_, err = svc.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	assert.ErrorIs(t, svc.DeleteTask(ctx, task.ID), services.ErrTaskNotFound)
}

func TestTaskServiceWrapsRepositoryErrors(t *testing.T) {
	svc, repo, _ := newTaskService(t)
	repo.Err = errors.New("db down")

	_, err := svc.AllTasks(context.Background())
	assert.ErrorIs(t, err, repo.Err)

	_, err = svc.GetTask(context.Background(), 1)
	assert.ErrorIs(t, err, repo.Err)
	assert.False(t, errors.Is(err, services.ErrTaskNotFound))
}
