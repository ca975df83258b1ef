/*
Package models defines the request, response, and domain types for the
ActionFlow API.

Domain entities:

  - User: account record; the password hash is never serialized
  - Action: a dated task item, used for both resource and activity actions

Resource actions and activity actions share the Action struct. The only
difference between the two kinds is the assignee field, which is nil for
activity actions and omitted from their JSON encoding.

Timestamps are stored and served as strings: dueDate as a calendar date
(2006-01-02) and createdAt/completedAt as RFC 3339.
*/
package models
