// Package sqlscript splits SQL scripts into statements and runs them.
//
// Split understands the lexical corners that make naive splitting on ";"
// fail:
//
//   - quoted strings and identifiers ('…', "…", `…`), with backslash
//     escapes and doubled quotes;
//   - comments: "-- …", "# …" (MySQL) and "/* … */"; optimizer hints
//     (/*+ … */) and MySQL conditional comments (/*! … */) are kept;
//   - MySQL "DELIMITER $$" lines, which change the terminator for
//     stored-routine bodies;
//   - PostgreSQL dollar quoting ($$ … $$, $tag$ … $tag$).
//
// Empty statements are dropped. Runner executes the statements of a
// script inside one transaction through sqlx and rolls back on the first
// failure.
package sqlscript
