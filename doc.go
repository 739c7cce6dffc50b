// Package lvkit is a toolbox of small, independent helpers for web
// services and command-line tools.
//
// Every helper lives in its own subpackage and can be imported alone:
//
//	str/         — Unicode-aware string helpers (case, slugs, padding, masks)
//	arr/         — slice and map utilities
//	number/      — rounding, human formatting, ordinals, Roman numerals
//	dates/       — calendar arithmetic, relative times, cron schedules
//	stats/       — descriptive statistics, correlation and time warping
//	geo/         — coordinates, distances, bearings and route ordering
//	color/       — colour conversion, mixing and naming
//	email/       — address validation and normalisation
//	phone/       — telephone number parsing and formatting
//	urls/        — URL building and normalisation
//	uid/         — UUID generation and inspection
//	secure/      — password hashing, tokens, HMAC and key derivation
//	sanitize/    — HTML and text cleaning
//	jsonx/       — JSON formatting, queries and patches
//	files/       — atomic writes, hashing, MIME sniffing, watching
//	imaging/     — image resize, crop, overlay and encode
//	sqlscript/   — SQL script splitting and execution
//	env/         — environment and dotenv configuration
//	reqinfo/     — client IP, scheme and language of HTTP requests
//	seo/         — page metadata, tag rendering and sitemaps
//	breadcrumbs/ — navigation trails
//	supports/    — fixed vocabularies (statuses, salutations, ...)
//	sysinfo/     — host, CPU, memory and disk facts
//
// The lvkit command (cmd/lvkit) exposes a selection of these helpers on
// the command line.
//
// Quick example:
//
//	slug := str.Slugify("Hello, Wörld!", "-") // "hello-world"
//	d := geo.Haversine(london, paris)         // 343.56 km
//
//	go get github.com/katalvlaran/lvkit
package lvkit
