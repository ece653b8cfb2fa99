// Package store defines persistence interfaces for the notesd sample
// service. Implementations live in other packages; this package must not
// import database drivers or concrete clients.
package store
