package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestMonitor() (*SecurityEventMonitor, *time.Time) {
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewSecurityEventMonitor()
	m.now = func() time.Time { return clock }
	return m, &clock
}

func TestSecurityMonitor(t *testing.T) {
	m, clock := newTestMonitor()
	ip := "127.0.0.1"

	t.Run("Below threshold", func(t *testing.T) {
		for i := 0; i < rejectionThreshold-1; i++ {
			m.TrackRejectedSubmission(ip, "turnstile")
		}
		assert.Empty(t, m.GetRecentAlerts())
	})

	t.Run("Threshold triggers alert", func(t *testing.T) {
		m.TrackRejectedSubmission(ip, "turnstile")

		alerts := m.GetRecentAlerts()
		assert.Len(t, alerts, 1)
		assert.Equal(t, ip, alerts[0].IP)
		assert.Contains(t, alerts[0].Reason, "Repeated rejected lead submissions")
		assert.Contains(t, alerts[0].Reason, "turnstile")
	})

	t.Run("Duplicate alert is rate limited", func(t *testing.T) {
		for i := 0; i < rejectionThreshold; i++ {
			m.TrackRejectedSubmission(ip, "turnstile")
		}
		assert.Len(t, m.GetRecentAlerts(), 1)
	})

	t.Run("Alerts again after cooldown", func(t *testing.T) {
		*clock = clock.Add(alertCooldown + time.Minute)
		for i := 0; i < rejectionThreshold; i++ {
			m.TrackRejectedSubmission(ip, "validation")
		}
		alerts := m.GetRecentAlerts()
		assert.Len(t, alerts, 2)
		assert.Contains(t, alerts[0].Reason, "validation")
	})
}

func TestSecurityMonitorWindow(t *testing.T) {
	m, clock := newTestMonitor()

	for i := 0; i < rejectionThreshold-1; i++ {
		m.TrackRejectedSubmission("10.0.0.1", "turnstile")
	}
	*clock = clock.Add(rejectionWindow + time.Second)
	m.TrackRejectedSubmission("10.0.0.1", "turnstile")

	assert.Empty(t, m.GetRecentAlerts(), "old rejections fall out of the window")
}

func TestSecurityMonitorSweep(t *testing.T) {
	m, clock := newTestMonitor()
	m.TrackRejectedSubmission("10.0.0.2", "turnstile")
	m.TrackRejectedSubmission("", "turnstile")

	m.Sweep()
	assert.Len(t, m.rejections, 1)

	*clock = clock.Add(rejectionWindow + time.Second)
	m.Sweep()
	assert.Empty(t, m.rejections)
}
