/*
Package store is the storage adapter for the ActionFlow API.

It wraps a *sql.DB (SQLite) and exposes the operations the handlers need:
point lookup by id, list-by-owner, insert, allow-listed partial update,
delete, and user lookup by email. The two action-item tables are addressed
through Kind values (ResourceActions, ActivityActions) rather than duplicated
method sets.

Missing records surface as ErrNotFound and duplicate registrations as
ErrDuplicateEmail; handlers translate those into HTTP statuses. Any other
error is a storage fault.
*/
package store
