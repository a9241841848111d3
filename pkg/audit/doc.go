// Package audit records who did what to which record, independent of
// application logging, so protect/recover/corrupt activity can be
// reviewed without scraping debug output.
package audit
