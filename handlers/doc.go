/*
Package handlers contains HTTP request handlers for the ActionFlow API.

# Handler Types

Each handler is a struct whose dependencies are injected via its constructor:

  - AuthHandler: login and registration
  - ActionHandler: CRUD over one action-item kind

Handlers receive the storage adapter:

	authHandler := handlers.NewAuthHandler(st)
	resourceHandler := handlers.NewActionHandler(st, store.ResourceActions)
	activityHandler := handlers.NewActionHandler(st, store.ActivityActions)

# Auth

	POST /auth/login    → Login (bcrypt comparison, 401 on mismatch)
	POST /auth/register → Register (400 when the email is taken)

Unknown email and wrong password return the same 401 body, so the endpoint
cannot be used to enumerate accounts. The password hash never appears in a
response.

# Action Items

Both kinds share one contract; resource actions additionally require an
assignee on create and accept it on update:

	GET    /{kind}/{userId} → List (most recently created first)
	POST   /{kind}          → Create (server-assigned id, createdAt; status
	                          defaults to Pending, completedAt starts null)
	PUT    /{kind}/{id}     → Update (partial; only supplied fields change)
	DELETE /{kind}/{id}     → Delete

Update never derives completedAt from status. Clients that mark an item
Completed set both fields themselves.
*/
package handlers
