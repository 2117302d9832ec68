// Package user stores contributor accounts and resolves submitter contact
// addresses for merge notifications.
package user
