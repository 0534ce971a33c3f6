// Package i18n holds the user-visible labels of the users page in every supported
// locale, backed by a golang.org/x/text message catalog.
package i18n
