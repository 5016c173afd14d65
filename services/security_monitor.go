package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

const (
	rejectionWindow    = 10 * time.Minute
	rejectionThreshold = 5
	alertCooldown      = time.Hour
	maxAlerts          = 100
)

// SecurityEventMonitor aggregates rejected lead submissions per client IP and
// raises an alert when one address keeps failing
type SecurityEventMonitor struct {
	mu         sync.Mutex
	rejections map[string][]time.Time // IP -> rejection timestamps
	alertedIPs map[string]time.Time   // IP -> last alert time
	alerts     []SecurityAlert        // Newest first
	now        func() time.Time
}

// SecurityAlert represents a triggered security alert
type SecurityAlert struct {
	Timestamp time.Time
	IP        string
	Reason    string
	Level     string // "WARNING", "CRITICAL"
}

// NewSecurityEventMonitor creates an empty monitor
func NewSecurityEventMonitor() *SecurityEventMonitor {
	return &SecurityEventMonitor{
		rejections: make(map[string][]time.Time),
		alertedIPs: make(map[string]time.Time),
		now:        time.Now,
	}
}

// TrackRejectedSubmission records a lead submission that was turned away
// (failed bot check, invalid payload) and alerts once an IP crosses the
// threshold inside the window
func (m *SecurityEventMonitor) TrackRejectedSubmission(ip, reason string) {
	if ip == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	windowStart := now.Add(-rejectionWindow)

	valid := m.rejections[ip][:0]
	for _, t := range m.rejections[ip] {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}
	valid = append(valid, now)
	m.rejections[ip] = valid

	if len(valid) >= rejectionThreshold {
		m.triggerAlertLocked(ip, fmt.Sprintf("Repeated rejected lead submissions (%s)", reason))
	}
}

// triggerAlertLocked logs and records an alert; called with m.mu held
func (m *SecurityEventMonitor) triggerAlertLocked(ip, reason string) {
	now := m.now()
	if last, ok := m.alertedIPs[ip]; ok && now.Sub(last) < alertCooldown {
		return
	}
	m.alertedIPs[ip] = now

	alert := SecurityAlert{
		Timestamp: now,
		IP:        ip,
		Reason:    reason,
		Level:     "CRITICAL",
	}
	m.alerts = append([]SecurityAlert{alert}, m.alerts...)
	if len(m.alerts) > maxAlerts {
		m.alerts = m.alerts[:maxAlerts]
	}

	log.Printf("[SECURITY ALERT] %s from IP: %s", reason, ip)
}

// GetRecentAlerts returns a copy of recent alerts
func (m *SecurityEventMonitor) GetRecentAlerts() []SecurityAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	alertsCopy := make([]SecurityAlert, len(m.alerts))
	copy(alertsCopy, m.alerts)
	return alertsCopy
}

// Sweep drops rejection history and alert cooldowns that have aged out
func (m *SecurityEventMonitor) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for ip, attempts := range m.rejections {
		if len(attempts) == 0 || now.Sub(attempts[len(attempts)-1]) > rejectionWindow {
			delete(m.rejections, ip)
		}
	}
	for ip, lastAlert := range m.alertedIPs {
		if now.Sub(lastAlert) > alertCooldown {
			delete(m.alertedIPs, ip)
		}
	}
}

// StartCleanup sweeps the monitor every interval until ctx is done
func (m *SecurityEventMonitor) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Monitor is the process-wide monitor used by the lead handlers
var Monitor *SecurityEventMonitor

// InitSecurityMonitor creates the global monitor and sweeps it hourly until
// ctx is done
func InitSecurityMonitor(ctx context.Context) {
	Monitor = NewSecurityEventMonitor()
	Monitor.StartCleanup(ctx, time.Hour)
}
