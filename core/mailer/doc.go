// Package mailer delivers merge-confirmation notifications to suggestion
// submitters.
//
// Delivery is best-effort by contract: the merge result is already committed
// when a notification is dispatched, so a failed send must never surface to
// the caller. The Dispatcher runs each send in its own goroutine with bounded
// retry/backoff and logs terminal failures.
//
// # Components
//
//   - Sender: the delivery interface (SMTP in production, mocks in tests).
//   - SMTPSender: gomail-backed implementation.
//   - Dispatcher: fire-and-forget wrapper with retry/backoff.
package mailer
