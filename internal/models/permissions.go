package models

// PermissionAll is the universal wildcard: a role holding it passes every
// permission check.
const PermissionAll = "all"

// Permissions is the closed capability vocabulary, namespaced as
// <resource>.<action>. Equality is exact string match except for the
// "all" wildcard.
var Permissions = []string{
	"dashboard.view",
	"jobs.create", "jobs.read", "jobs.update", "jobs.delete",
	"applications.read", "applications.update", "applications.delete",
	"events.create", "events.read", "events.update", "events.delete",
	"testimonials.create", "testimonials.read", "testimonials.update", "testimonials.delete",
	"consultations.read", "consultations.update",
	"pages.create", "pages.read", "pages.update", "pages.delete",
	"media.upload", "media.read", "media.delete",
	"users.create", "users.read", "users.update", "users.delete",
	"roles.create", "roles.read", "roles.update", "roles.delete",
	"settings.read", "settings.update",
	"audit.read",
	"theme.read", "theme.update",
	PermissionAll,
}

var permissionSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Permissions))
	for _, p := range Permissions {
		m[p] = struct{}{}
	}
	return m
}()

// ValidPermission reports whether the token belongs to the vocabulary.
func ValidPermission(token string) bool {
	_, ok := permissionSet[token]
	return ok
}
