// Package handler is the HTTP layer, the first entry point after the
// router.
//
// It binds path parameters and bodies through the validation package,
// calls the service layer and picks the success status. Failures are
// returned to the global error handler, never written here.
package handler
