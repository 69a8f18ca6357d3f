package config

import "time"

// NotificationConfig controls the notification delivery pipeline.
type NotificationConfig struct {
	// BatchSize is the maximum number of queue items claimed per worker tick.
	BatchSize int `yaml:"batch_size"`

	// MaxAttempts is the number of delivery attempts before an item is
	// marked failed.
	MaxAttempts int `yaml:"max_attempts"`

	// RetryBackoff is the base delay applied after a failed delivery
	// attempt. Attempt n waits RetryBackoff * 2^(n-1).
	RetryBackoff Duration `yaml:"retry_backoff"`

	// LockStaleAfter is how long a processing claim may hold before any
	// worker can reclaim the item back to pending.
	LockStaleAfter Duration `yaml:"lock_stale_after"`

	// CancelStaleAfter is how long a pending item may sit past its
	// scheduled_for before the cleanup sweep cancels it outright.
	CancelStaleAfter Duration `yaml:"cancel_stale_after"`

	// Cooldowns is the minimum gap between sends to the same user,
	// keyed by the priority of the notification being considered.
	Cooldowns CooldownConfig `yaml:"cooldowns"`

	// FrequencyCaps limit sends per user by their preferred frequency.
	FrequencyCaps FrequencyCapsConfig `yaml:"frequency_caps"`

	// FeedbackInterval is the minimum gap between feedback prompts
	// asking a user to tune their notification volume.
	FeedbackInterval Duration `yaml:"feedback_interval"`

	// FeedbackMinNotifications is how many notifications a user must
	// receive since the last prompt before a new one is queued.
	FeedbackMinNotifications int `yaml:"feedback_min_notifications"`
}

// RetryDelay returns the wait before the next delivery attempt after
// attemptCount failures.
func (c *NotificationConfig) RetryDelay(attemptCount int) time.Duration {
	if attemptCount < 1 {
		attemptCount = 1
	}
	delay := c.RetryBackoff.Std()
	for i := 1; i < attemptCount; i++ {
		delay *= 2
	}
	return delay
}

// CooldownConfig holds per-priority send cooldowns. The cooldown is
// measured from the user's last send on any channel.
type CooldownConfig struct {
	Urgent Duration `yaml:"urgent"`
	High   Duration `yaml:"high"`
	Normal Duration `yaml:"normal"`
	Low    Duration `yaml:"low"`
}

// ForPriority returns the cooldown for a priority string. Unknown
// priorities get the normal cooldown.
func (c CooldownConfig) ForPriority(priority string) time.Duration {
	switch priority {
	case "urgent":
		return c.Urgent.Std()
	case "high":
		return c.High.Std()
	case "low":
		return c.Low.Std()
	default:
		return c.Normal.Std()
	}
}

// FrequencyCap is a per-hour and per-day send ceiling.
type FrequencyCap struct {
	PerHour int `yaml:"per_hour"`
	PerDay  int `yaml:"per_day"`
}

// FrequencyCapsConfig holds caps keyed by the user's preferred
// notification frequency.
type FrequencyCapsConfig struct {
	High     FrequencyCap `yaml:"high"`
	Moderate FrequencyCap `yaml:"moderate"`
	Low      FrequencyCap `yaml:"low"`
}

// ForFrequency returns the cap for a preferred-frequency string.
// Unknown frequencies get the moderate cap.
func (c FrequencyCapsConfig) ForFrequency(frequency string) FrequencyCap {
	switch frequency {
	case "high":
		return c.High
	case "low":
		return c.Low
	default:
		return c.Moderate
	}
}

// DefaultNotificationConfig returns the built-in notification defaults.
func DefaultNotificationConfig() *NotificationConfig {
	return &NotificationConfig{
		BatchSize:        50,
		MaxAttempts:      3,
		RetryBackoff:     Duration(5 * time.Minute),
		LockStaleAfter:   Duration(10 * time.Minute),
		CancelStaleAfter: Duration(24 * time.Hour),
		Cooldowns: CooldownConfig{
			Urgent: Duration(5 * time.Minute),
			High:   Duration(15 * time.Minute),
			Normal: Duration(30 * time.Minute),
			Low:    Duration(60 * time.Minute),
		},
		FrequencyCaps: FrequencyCapsConfig{
			High:     FrequencyCap{PerHour: 4, PerDay: 15},
			Moderate: FrequencyCap{PerHour: 2, PerDay: 8},
			Low:      FrequencyCap{PerHour: 1, PerDay: 3},
		},
		FeedbackInterval:         Duration(14 * 24 * time.Hour),
		FeedbackMinNotifications: 10,
	}
}
