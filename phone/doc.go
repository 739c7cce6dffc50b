// Package phone parses, validates and formats telephone numbers using
// libphonenumber metadata (github.com/nyaruka/phonenumbers).
//
// A Number is parsed once with a default region (ISO 3166-1 alpha-2,
// used when the input has no leading + or international prefix) and can
// then be formatted in E.164, international, national or RFC 3966 form.
package phone
