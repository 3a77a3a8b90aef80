// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appID = "navigator-app"

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.log(zap.InfoLevel, "sys_startup", "system startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.log(zap.InfoLevel, "sys_shutdown", "system shutdown")
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.log(
		zap.WarnLevel,
		fmt.Sprintf("authz_fail:%s,%s", subject, resource),
		fmt.Sprintf("user %s attempted to access %s without entitlement", subject, resource),
	)
}

func (s *SecurityLogger) PermissionGrant(userID, permission string) {
	s.log(
		zap.InfoLevel,
		fmt.Sprintf("authz_admin:%s,%s", userID, permission),
		fmt.Sprintf("permission %s granted to user %s", permission, userID),
	)
}

func (s *SecurityLogger) WebhookSignatureFailure(source string) {
	s.log(
		zap.WarnLevel,
		fmt.Sprintf("input_validation_fail:%s,signature", source),
		fmt.Sprintf("webhook from %s failed signature verification", source),
	)
}

func (s *SecurityLogger) log(level zapcore.Level, event, description string) {
	if s == nil || s.l == nil {
		return
	}

	s.l.Log(
		level,
		description,
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", event),
	)
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
