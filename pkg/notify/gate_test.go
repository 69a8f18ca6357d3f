package notify

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/ent/usermetrics"
	"github.com/stridehq/cadenza/pkg/config"
	"github.com/stridehq/cadenza/pkg/services"
	testdb "github.com/stridehq/cadenza/test/database"
)

func TestFatigueMultiplier(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{0, 1.0},
		{19, 1.0},
		{20, 1.5},
		{39, 1.5},
		{40, 2.0},
		{59, 2.0},
		{60, 3.0},
		{79, 3.0},
		{80, 3.0},
		{100, 3.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FatigueMultiplier(tc.level), "level %d", tc.level)
	}
}

func TestDowngradePriority(t *testing.T) {
	steps := []struct {
		from notificationqueueitem.Priority
		to   notificationqueueitem.Priority
		ok   bool
	}{
		{notificationqueueitem.PriorityUrgent, notificationqueueitem.PriorityHigh, true},
		{notificationqueueitem.PriorityHigh, notificationqueueitem.PriorityNormal, true},
		{notificationqueueitem.PriorityNormal, notificationqueueitem.PriorityLow, true},
		{notificationqueueitem.PriorityLow, notificationqueueitem.PriorityLow, false},
	}
	for _, tc := range steps {
		got, ok := DowngradePriority(tc.from)
		assert.Equal(t, tc.to, got)
		assert.Equal(t, tc.ok, ok, "from %s", tc.from)
	}
}

type gateEnv struct {
	client        *ent.Client
	notifications *services.NotificationService
	metrics       *services.UserMetricsService
	gate          *Gate
}

func newGateEnv(t *testing.T) *gateEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	notifications := services.NewNotificationService(client.Client)
	metrics := services.NewUserMetricsService(client.Client)
	return &gateEnv{
		client:        client.Client,
		notifications: notifications,
		metrics:       metrics,
		gate:          NewGate(notifications, metrics, config.DefaultNotificationConfig()),
	}
}

const gateOrg = "org-gate"

// delivered records a past delivery for the user in the given priority
// bucket.
func (e *gateEnv) delivered(t *testing.T, userID, priority string, ago time.Duration) {
	t.Helper()
	_, err := e.client.NotificationInteraction.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetOrgID(gateOrg).
		SetNotificationType("meeting_ready").
		SetPriority(priority).
		SetDeliveredAt(time.Now().Add(-ago)).
		SetDeliveredVia("slack_dm").
		Save(context.Background())
	require.NoError(t, err)
}

// userWith seeds the metrics row the gate will read.
func (e *gateEnv) userWith(t *testing.T, userID string, frequency usermetrics.PreferredNotificationFrequency, fatigue int) {
	t.Helper()
	_, err := e.client.UserMetrics.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetOrgID(gateOrg).
		SetPreferredNotificationFrequency(frequency).
		SetNotificationFatigueLevel(fatigue).
		Save(context.Background())
	require.NoError(t, err)
}

func TestGate_Check(t *testing.T) {
	env := newGateEnv(t)
	ctx := context.Background()

	t.Run("allows a quiet user", func(t *testing.T) {
		result, err := env.gate.Check(ctx, "user-quiet", gateOrg, "normal")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Empty(t, result.Reason)
	})

	t.Run("hourly cap parks a full bucket", func(t *testing.T) {
		// Default frequency is moderate: 2 per hour. Both deliveries are
		// past the normal cooldown, so the cap is what blocks.
		env.delivered(t, "user-hourly", "normal", 35*time.Minute)
		env.delivered(t, "user-hourly", "normal", 45*time.Minute)

		result, err := env.gate.Check(ctx, "user-hourly", gateOrg, "normal")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, "hourly cap reached", result.Reason)
		assert.WithinDuration(t, time.Now().Add(30*time.Minute), result.NextAllowedAt, 5*time.Second)
	})

	t.Run("caps count per priority bucket", func(t *testing.T) {
		// The normal bucket is full, but a high send draws on its own
		// bucket. This is what a one-step downgrade banks on in reverse.
		env.delivered(t, "user-bucket", "normal", 35*time.Minute)
		env.delivered(t, "user-bucket", "normal", 45*time.Minute)

		result, err := env.gate.Check(ctx, "user-bucket", gateOrg, "high")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("urgent bypasses the hourly cap", func(t *testing.T) {
		env.delivered(t, "user-urgent", "urgent", 10*time.Minute)
		env.delivered(t, "user-urgent", "urgent", 20*time.Minute)

		result, err := env.gate.Check(ctx, "user-urgent", gateOrg, "urgent")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("daily cap blocks even urgent", func(t *testing.T) {
		// 8 urgent deliveries over the day, none in the last hour.
		for i := 0; i < 8; i++ {
			env.delivered(t, "user-daily", "urgent", 2*time.Hour+time.Duration(i)*time.Hour)
		}

		result, err := env.gate.Check(ctx, "user-daily", gateOrg, "urgent")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, "daily cap reached", result.Reason)
	})

	t.Run("cooldown spaces sends across buckets", func(t *testing.T) {
		// One urgent delivery two minutes ago. The normal bucket is
		// empty, but the cooldown counts from the last send of any kind.
		env.delivered(t, "user-cool", "urgent", 2*time.Minute)

		result, err := env.gate.Check(ctx, "user-cool", gateOrg, "normal")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, "cooldown active", result.Reason)
		// Reopens 30 minutes after the last delivery.
		assert.WithinDuration(t, time.Now().Add(28*time.Minute), result.NextAllowedAt, 5*time.Second)
	})

	t.Run("fatigue stretches the cooldown", func(t *testing.T) {
		// Fatigue 40 doubles the 30-minute normal cooldown, so a delivery
		// 40 minutes back still blocks.
		env.userWith(t, "user-tired", usermetrics.PreferredNotificationFrequencyModerate, 40)
		env.delivered(t, "user-tired", "high", 40*time.Minute)

		result, err := env.gate.Check(ctx, "user-tired", gateOrg, "normal")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, "cooldown active", result.Reason)
		assert.WithinDuration(t, time.Now().Add(20*time.Minute), result.NextAllowedAt, 5*time.Second)
	})

	t.Run("low frequency tightens the caps", func(t *testing.T) {
		env.userWith(t, "user-low", usermetrics.PreferredNotificationFrequencyLow, 0)
		env.delivered(t, "user-low", "normal", 50*time.Minute)

		result, err := env.gate.Check(ctx, "user-low", gateOrg, "normal")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, "hourly cap reached", result.Reason)
	})
}
