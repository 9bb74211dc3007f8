/*
Package cliparse parses server configuration from CLI flags with environment
variable fallback. Secrets (JWT_SECRET, ADMIN_USER, ADMIN_PASS or
ADMIN_PASS_HASH) must be provided; network settings have defaults.
*/
package cliparse
