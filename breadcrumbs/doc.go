// Package breadcrumbs models a navigation trail and renders it as
// accessible HTML or schema.org JSON-LD.
//
// A Trail is an ordered list of crumbs. The last crumb is the current
// page: Render marks it with aria-current="page" and never links it.
// Rendering does not mutate the trail, so rendering twice yields the
// same output.
package breadcrumbs
