// Package apperr provides the application error taxonomy.
//
// Every failure the domain services surface is tagged with a Category
// (Validation, NotFound, Conflict, Persistence) and carries its underlying
// cause. The category drives client-facing presentation (HTTP status, exit
// codes) while the cause stays available for logging and errors.Is/As.
//
// # Usage
//
//	if sug == nil {
//	    return apperr.New(apperr.NotFound, "example suggestion doesn't exist")
//	}
//	if err := tx.Error; err != nil {
//	    return apperr.Wrap(apperr.Persistence, "saving example", err)
//	}
package apperr
