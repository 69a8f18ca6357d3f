package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWarningsService_AddAndGet(t *testing.T) {
	svc := NewSystemWarningsService()

	id := svc.AddWarning(WarningCategoryRateLimiter, "Redis unreachable", "dial tcp: connection refused", "")
	assert.NotEmpty(t, id)

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningCategoryRateLimiter, warnings[0].Category)
	assert.Equal(t, "Redis unreachable", warnings[0].Message)
	assert.Equal(t, "dial tcp: connection refused", warnings[0].Details)
	assert.False(t, warnings[0].CreatedAt.IsZero())
}

func TestSystemWarningsService_ClearBySubjectID(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryBotQuota, "Monthly bot quota reached", "", "org-1")
	svc.AddWarning(WarningCategoryBotQuota, "Monthly bot quota reached", "", "org-2")

	assert.Len(t, svc.GetWarnings(), 2)

	// Clear org-1's warning
	cleared := svc.ClearBySubjectID(WarningCategoryBotQuota, "org-1")
	assert.True(t, cleared)
	assert.Len(t, svc.GetWarnings(), 1)
	assert.Equal(t, "org-2", svc.GetWarnings()[0].SubjectID)

	// Clear non-existent
	cleared = svc.ClearBySubjectID(WarningCategoryBotQuota, "org-9")
	assert.False(t, cleared)
}

func TestSystemWarningsService_ReplacesDuplicate(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryProviderAuth, "First refresh failure", "err1", "org-1")
	svc.AddWarning(WarningCategoryProviderAuth, "Second refresh failure", "err2", "org-1")

	// Should have replaced the first warning, not added a second
	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Second refresh failure", warnings[0].Message)
	assert.Equal(t, "err2", warnings[0].Details)
}

func TestSystemWarningsService_Empty(t *testing.T) {
	svc := NewSystemWarningsService()
	assert.Empty(t, svc.GetWarnings())
}

func TestSystemWarningsService_ThreadSafety(t *testing.T) {
	svc := NewSystemWarningsService()
	var wg sync.WaitGroup

	// Concurrent adds
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AddWarning("test", "msg", "", "")
		}()
	}

	// Concurrent reads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.GetWarnings()
		}()
	}

	wg.Wait()
	// Just ensure no panics — exact count doesn't matter for concurrency test
	assert.NotNil(t, svc.GetWarnings())
}
