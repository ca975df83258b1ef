/*
Package auth provides id generation and password hashing for the ActionFlow
API.

Ids are UUIDv4 strings generated with NewID. Passwords are stored as bcrypt
hashes; HashPassword is used at registration and during demo seeding, and
VerifyPassword performs the comparison at login.
*/
package auth
