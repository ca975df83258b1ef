/*
Package router defines HTTP routes for the ActionFlow API.

# Route Registration

NewRouter returns the full handler chain (ServeMux wrapped in CORS):

	handler := router.NewRouter(db)

# Endpoints

Health:

	GET /health

Auth:

	POST /auth/login    - Log in with email and password
	POST /auth/register - Create an account

Resource actions:

	GET    /resource-actions/{userId} - List a user's resource actions
	POST   /resource-actions          - Create a resource action
	PUT    /resource-actions/{id}     - Partially update a resource action
	DELETE /resource-actions/{id}     - Delete a resource action

Activity actions mirror resource actions under /activity-actions, minus the
assignee field.

Method patterns on the ServeMux give unsupported verbs on a known path a 405;
OPTIONS preflights are answered with 200 by the CORS wrapper before routing.
*/
package router
