// Package logging provides leveled logging on top of the standard library logger.
//
// The active level is resolved once from the DEBUG and LOG_LEVEL environment
// variables; the default is info. Messages below the active level are dropped.
package logging
