// Package logger builds slog loggers with a consistent shape across the
// toolkit and a redaction decorator that keeps personally identifiable
// information out of log output.
//
// The factory produces JSON (production) or text (development) handlers.
// Wrapping any handler with NewRedactingHandler masks the values of
// configured attribute keys with "***" before they reach the underlying
// handler, so a log call like
//
//	log.Info("user registered", slog.String("email", email))
//
// emits email=*** when "email" is in the redacted set. The default set
// covers name, email, phone, ssn and password.
package logger
